package index

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
	"github.com/webtor-io/video-feed/models"
	"github.com/webtor-io/video-feed/services/render"
	tm "github.com/webtor-io/video-feed/services/template"
	"github.com/webtor-io/video-feed/services/videos"
	"github.com/webtor-io/video-feed/services/web"
)

const (
	searchFlag = "search"
	queryParam = "q"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.BoolTFlag{
			Name:   searchFlag,
			Usage:  "render search input",
			EnvVar: "SEARCH",
		},
	)
}

type Data struct {
	Query     string
	Search    bool
	State     string
	Total     int
	Skipped   int
	Container template.HTML
}

type store interface {
	List() *models.VideoList
	State() videos.State
	Loaded() <-chan struct{}
}

type Handler struct {
	tb     *tm.View
	st     store
	search bool
}

func RegisterHandler(c *cli.Context, r *gin.Engine, m *tm.Manager, st store) {
	register(r, m, st, c.BoolT(searchFlag))
}

func register(r *gin.Engine, m *tm.Manager, st store, search bool) {
	h := &Handler{
		tb:     m.RegisterView("index", "main"),
		st:     st,
		search: search,
	}
	r.GET("/", h.index)
	r.GET("/videos", h.videos)
}

// view returns the stored snapshot filtered by the query. The query is
// ignored when the search input is disabled. Until the first load finishes
// it waits for it, or for the client to go away.
func (s *Handler) view(c *gin.Context) (*models.VideoList, string) {
	select {
	case <-s.st.Loaded():
	case <-c.Request.Context().Done():
		web.GetLogger(c).Debug("request done before videos loaded")
	}
	q := ""
	if s.search {
		q = c.Query(queryParam)
	}
	return s.st.List().Filter(q), q
}

func (s *Handler) index(c *gin.Context) {
	l, q := s.view(c)
	ct := render.NewContainer()
	render.Videos(ct, l.Videos)
	out, err := render.Outer(ct)
	if err != nil {
		web.GetLogger(c).WithError(err).Error("failed to render videos")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	s.tb.HTML(c, http.StatusOK, web.NewContext(c).WithData(&Data{
		Query:     q,
		Search:    s.search,
		State:     s.st.State().String(),
		Total:     l.Len(),
		Skipped:   l.Skipped,
		Container: out,
	}))
}

// videos renders just the cards, the page swaps them into the container
// on every keystroke.
func (s *Handler) videos(c *gin.Context) {
	l, _ := s.view(c)
	ct := render.NewContainer()
	render.Videos(ct, l.Videos)
	out, err := render.Inner(ct)
	if err != nil {
		web.GetLogger(c).WithError(err).Error("failed to render videos")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}
