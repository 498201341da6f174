package videos

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webtor-io/video-feed/models"
)

type mockSource struct {
	videos []*models.RawVideo
	err    error
	calls  int
}

func (m *mockSource) Videos(_ context.Context) ([]*models.RawVideo, error) {
	m.calls++
	return m.videos, m.err
}

func rawVideo(id, title, channel, views, duration string) *models.RawVideo {
	d := duration
	return &models.RawVideo{
		ID: id,
		Snippet: &models.RawSnippet{
			Title:        title,
			ChannelTitle: channel,
			Thumbnails: &models.RawThumbnails{
				High: &models.RawThumbnail{URL: "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"},
			},
		},
		Statistics: &models.RawStatistics{
			ViewCount:    views,
			LikeCount:    "999",
			CommentCount: "1000",
		},
		ContentDetails: &models.RawContentDetails{Duration: &d},
	}
}

func TestMap(t *testing.T) {
	v, err := Map(rawVideo("abc", "Title", "Channel", "1500", "PT5M9S"), "https://example.com/avatar.png")
	require.NoError(t, err)
	assert.Equal(t, models.Video{
		ThumbnailURL: "https://i.ytimg.com/vi/abc/hqdefault.jpg",
		WatchURL:     "https://www.youtube.com/watch?v=abc",
		AvatarURL:    "https://example.com/avatar.png",
		Title:        "Title",
		ChannelName:  "Channel",
		Views:        "1.50K views",
		Likes:        "999 likes",
		Comments:     "1.00K comments",
		Duration:     "5:09",
	}, *v)
}

func TestMap_MissingCounts(t *testing.T) {
	r := rawVideo("abc", "Title", "Channel", "", "PT45S")
	r.Statistics.LikeCount = ""
	v, err := Map(r, "")
	require.NoError(t, err)
	assert.Equal(t, "NaN views", v.Views)
	assert.Equal(t, "NaN likes", v.Likes)
	assert.Equal(t, "0:45", v.Duration)
}

func TestMap_WatchURLKeepsID(t *testing.T) {
	for _, id := range []string{"dQw4w9WgXcQ", "a b&c=d", "x/y?z"} {
		v, err := Map(rawVideo(id, "Title", "Channel", "1", "PT1S"), "")
		require.NoError(t, err)
		assert.Equal(t, "https://www.youtube.com/watch?v="+id, v.WatchURL)
	}
}

func TestMap_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.RawVideo) *models.RawVideo
	}{
		{"nil record", func(r *models.RawVideo) *models.RawVideo { return nil }},
		{"no snippet", func(r *models.RawVideo) *models.RawVideo { r.Snippet = nil; return r }},
		{"no thumbnails", func(r *models.RawVideo) *models.RawVideo { r.Snippet.Thumbnails = nil; return r }},
		{"no high thumbnail", func(r *models.RawVideo) *models.RawVideo { r.Snippet.Thumbnails.High = nil; return r }},
		{"no statistics", func(r *models.RawVideo) *models.RawVideo { r.Statistics = nil; return r }},
		{"no content details", func(r *models.RawVideo) *models.RawVideo { r.ContentDetails = nil; return r }},
		{"no duration", func(r *models.RawVideo) *models.RawVideo { r.ContentDetails.Duration = nil; return r }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Map(tt.mutate(rawVideo("abc", "t", "c", "1", "PT1S")), "")
			assert.Error(t, err)
		})
	}
}

func TestFetcher_Fetch(t *testing.T) {
	src := &mockSource{videos: []*models.RawVideo{
		rawVideo("a", "First", "One", "1", "PT1S"),
		rawVideo("b", "Second", "Two", "2", "PT2S"),
		rawVideo("c", "Third", "Three", "3", "PT3S"),
	}}
	l := NewFetcherWithAvatar(src, "avatar").Fetch(context.Background())
	require.Len(t, l.Videos, 3)
	assert.Equal(t, 0, l.Skipped)
	assert.Equal(t, "First", l.Videos[0].Title)
	assert.Equal(t, "Second", l.Videos[1].Title)
	assert.Equal(t, "Third", l.Videos[2].Title)
	assert.Equal(t, 1, src.calls)
}

func TestFetcher_Fetch_SkipsMalformed(t *testing.T) {
	broken := rawVideo("b", "Broken", "Two", "2", "PT2S")
	broken.Statistics = nil
	src := &mockSource{videos: []*models.RawVideo{
		rawVideo("a", "First", "One", "1", "PT1S"),
		broken,
		nil,
		rawVideo("c", "Third", "Three", "3", "PT3S"),
	}}
	l := NewFetcherWithAvatar(src, "avatar").Fetch(context.Background())
	require.Len(t, l.Videos, 2)
	assert.Equal(t, 2, l.Skipped)
	assert.Equal(t, "First", l.Videos[0].Title)
	assert.Equal(t, "Third", l.Videos[1].Title)
}

func TestFetcher_Fetch_Error(t *testing.T) {
	src := &mockSource{err: errors.New("connection refused")}
	l := NewFetcherWithAvatar(src, "avatar").Fetch(context.Background())
	require.NotNil(t, l)
	assert.Empty(t, l.Videos)
	assert.Equal(t, 0, l.Len())
}
