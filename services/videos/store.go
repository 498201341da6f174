package videos

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/video-feed/models"
)

const (
	refreshIntervalFlag = "refresh-interval"
)

func RegisterStoreFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.DurationFlag{
			Name:   refreshIntervalFlag,
			Usage:  "refetch videos on this interval (0 fetches once at startup)",
			EnvVar: "REFRESH_INTERVAL",
		},
	)
}

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "uninitialized"
	}
}

type fetcher interface {
	Fetch(ctx context.Context) *models.VideoList
}

// Store owns the current video snapshot. The snapshot is only ever replaced
// as a whole, readers get a consistent view without copying.
type Store struct {
	f        fetcher
	interval time.Duration
	mux      sync.RWMutex
	loadMux  sync.Mutex
	list     *models.VideoList
	state    State
	loaded   chan struct{}
	once     sync.Once
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewStore(c *cli.Context, f *Fetcher) *Store {
	return NewStoreWithInterval(f, c.Duration(refreshIntervalFlag))
}

func NewStoreWithInterval(f fetcher, interval time.Duration) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	return &Store{
		f:        f,
		interval: interval,
		list:     &models.VideoList{Videos: []models.Video{}},
		loaded:   make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Load fetches videos and replaces the snapshot.
func (s *Store) Load(ctx context.Context) *models.VideoList {
	s.loadMux.Lock()
	defer s.loadMux.Unlock()
	s.setState(StateLoading)
	l := s.f.Fetch(ctx)
	if l == nil {
		l = &models.VideoList{Videos: []models.Video{}}
	}
	s.mux.Lock()
	s.list = l
	s.state = StateLoaded
	s.mux.Unlock()
	s.once.Do(func() {
		close(s.loaded)
	})
	loadedVideos.Set(float64(l.Len()))
	return l
}

// Loaded is closed once the first load has finished.
func (s *Store) Loaded() <-chan struct{} {
	return s.loaded
}

func (s *Store) setState(st State) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.state = st
}

func (s *Store) List() *models.VideoList {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.list
}

func (s *Store) State() State {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state
}

func (s *Store) Serve() error {
	s.Load(s.ctx)
	if s.interval <= 0 {
		<-s.ctx.Done()
		return nil
	}
	log.Infof("refreshing videos every %v", s.interval)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return nil
		case <-t.C:
			s.Load(s.ctx)
		}
	}
}

func (s *Store) Close() {
	log.Info("closing video store")
	s.cancel()
}
