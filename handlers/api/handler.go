package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/webtor-io/video-feed/models"
	"github.com/webtor-io/video-feed/services/videos"
)

type store interface {
	List() *models.VideoList
	State() videos.State
}

type Response struct {
	State   string         `json:"state"`
	Total   int            `json:"total"`
	Skipped int            `json:"skipped"`
	Videos  []models.Video `json:"videos"`
}

type Handler struct {
	st store
}

func RegisterHandler(r *gin.Engine, st store) {
	h := &Handler{
		st: st,
	}
	gr := r.Group("/api")
	gr.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
	}))
	gr.GET("/videos", h.videos)
}

func (s *Handler) videos(c *gin.Context) {
	l := s.st.List().Filter(c.Query("q"))
	vs := l.Videos
	if vs == nil {
		vs = []models.Video{}
	}
	c.JSON(http.StatusOK, &Response{
		State:   s.st.State().String(),
		Total:   len(vs),
		Skipped: l.Skipped,
		Videos:  vs,
	})
}
