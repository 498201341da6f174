package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Video is a render-ready card. Every field is already formatted.
type Video struct {
	ThumbnailURL string `json:"thumbnail_url"`
	WatchURL     string `json:"watch_url"`
	AvatarURL    string `json:"avatar_url"`
	Title        string `json:"title"`
	ChannelName  string `json:"channel_name"`
	Views        string `json:"views"`
	Likes        string `json:"likes"`
	Comments     string `json:"comments"`
	Duration     string `json:"duration"`
}

// VideoList is an immutable snapshot of fetched videos.
type VideoList struct {
	Videos  []Video
	Skipped int
}

func (s *VideoList) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Videos)
}

// Filter returns a derived list with videos whose title or channel name
// contains query, case-insensitively. The receiver is left untouched.
func (s *VideoList) Filter(query string) *VideoList {
	if s == nil {
		return &VideoList{}
	}
	if query == "" {
		return s
	}
	lc := cases.Lower(language.Und)
	q := lc.String(query)
	res := &VideoList{
		Videos:  make([]Video, 0, len(s.Videos)),
		Skipped: s.Skipped,
	}
	for _, v := range s.Videos {
		if strings.Contains(lc.String(v.Title), q) || strings.Contains(lc.String(v.ChannelName), q) {
			res.Videos = append(res.Videos, v)
		}
	}
	return res
}
