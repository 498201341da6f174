package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags every request with an id, reusing the incoming one if set.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// GetLogger returns a logger carrying the request id.
func GetLogger(c *gin.Context) *log.Entry {
	return log.WithField(requestIDKey, c.GetString(requestIDKey))
}

// Context is passed to every page template.
type Context struct {
	RequestID string
	Data      any
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		RequestID: c.GetString(requestIDKey),
	}
}

func (s *Context) WithData(data any) *Context {
	s.Data = data
	return s
}
