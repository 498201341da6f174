package videos

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/video-feed/models"
	"github.com/webtor-io/video-feed/services/format"
)

const (
	avatarURLFlag = "avatar-url"
)

const (
	defaultAvatarURL = "https://avatars.githubusercontent.com/u/11613311?v=4"
	watchURLTemplate = "https://www.youtube.com/watch?v=%v"
)

func RegisterFetcherFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   avatarURLFlag,
			Usage:  "avatar image shown on every card",
			EnvVar: "AVATAR_URL",
			Value:  defaultAvatarURL,
		},
	)
}

// Source provides raw video records from an upstream API.
type Source interface {
	Videos(ctx context.Context) ([]*models.RawVideo, error)
}

type Fetcher struct {
	src    Source
	avatar string
}

func NewFetcher(c *cli.Context, src Source) *Fetcher {
	return NewFetcherWithAvatar(src, c.String(avatarURLFlag))
}

func NewFetcherWithAvatar(src Source, avatar string) *Fetcher {
	return &Fetcher{
		src:    src,
		avatar: avatar,
	}
}

// Fetch makes a single attempt to get videos. It never fails: upstream errors
// are logged and turned into an empty list, malformed records are skipped
// and counted.
func (s *Fetcher) Fetch(ctx context.Context) *models.VideoList {
	raw, err := s.src.Videos(ctx)
	if err != nil {
		log.WithError(err).Error("failed to fetch video data")
		fetchTotal.WithLabelValues("error").Inc()
		return &models.VideoList{Videos: []models.Video{}}
	}
	res := &models.VideoList{
		Videos: make([]models.Video, 0, len(raw)),
	}
	for i, r := range raw {
		v, err := Map(r, s.avatar)
		if err != nil {
			l := log.WithError(err).WithField("index", i)
			if r != nil {
				l = l.WithField("id", r.ID)
			}
			l.Warn("skipping malformed video record")
			res.Skipped++
			continue
		}
		res.Videos = append(res.Videos, *v)
	}
	fetchTotal.WithLabelValues("ok").Inc()
	skippedTotal.Add(float64(res.Skipped))
	log.WithFields(log.Fields{
		"videos":  len(res.Videos),
		"skipped": res.Skipped,
	}).Info("videos fetched")
	return res
}

// Map flattens a raw record into a card.
func Map(r *models.RawVideo, avatar string) (*models.Video, error) {
	if r == nil {
		return nil, errors.New("no items")
	}
	if r.Snippet == nil {
		return nil, errors.New("no snippet")
	}
	if r.Snippet.Thumbnails == nil || r.Snippet.Thumbnails.High == nil {
		return nil, errors.New("no high thumbnail")
	}
	if r.Statistics == nil {
		return nil, errors.New("no statistics")
	}
	if r.ContentDetails == nil || r.ContentDetails.Duration == nil {
		return nil, errors.New("no duration")
	}
	return &models.Video{
		ThumbnailURL: r.Snippet.Thumbnails.High.URL,
		WatchURL:     fmt.Sprintf(watchURLTemplate, r.ID),
		AvatarURL:    avatar,
		Title:        r.Snippet.Title,
		ChannelName:  r.Snippet.ChannelTitle,
		Views:        format.FormatCount(r.Statistics.ViewCount) + " views",
		Likes:        format.FormatCount(r.Statistics.LikeCount) + " likes",
		Comments:     format.FormatCount(r.Statistics.CommentCount) + " comments",
		Duration:     format.ParseDuration(*r.ContentDetails.Duration),
	}, nil
}
