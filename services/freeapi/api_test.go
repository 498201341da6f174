package freeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const videosJSON = `{
  "statusCode": 200,
  "data": {
    "page": 1,
    "limit": 10,
    "totalPages": 1,
    "totalItems": 2,
    "data": [
      {
        "kind": "youtube#video",
        "items": {
          "id": "vid1",
          "snippet": {
            "title": "Learn JavaScript",
            "channelTitle": "Chai aur Code",
            "thumbnails": {"high": {"url": "https://i.ytimg.com/vi/vid1/hqdefault.jpg", "width": 480, "height": 360}}
          },
          "statistics": {"viewCount": "1500", "likeCount": "20", "commentCount": "3"},
          "contentDetails": {"duration": "PT1H2M3S"}
        }
      },
      {"kind": "youtube#video"}
    ]
  },
  "message": "Videos fetched successfully",
  "success": true
}`

func TestApi_Videos(t *testing.T) {
	var got *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(videosJSON))
	}))
	defer ts.Close()

	api := NewWithURL(ts.URL, ts.Client(), 1, 10, "javascript", "latest")
	res, err := api.Videos(context.Background())
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "GET", got.Method)
	assert.Equal(t, videosPath, got.URL.Path)
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "1", got.URL.Query().Get("page"))
	assert.Equal(t, "10", got.URL.Query().Get("limit"))
	assert.Equal(t, "javascript", got.URL.Query().Get("query"))
	assert.Equal(t, "latest", got.URL.Query().Get("sortBy"))

	require.Len(t, res, 2)
	require.NotNil(t, res[0])
	assert.Equal(t, "vid1", res[0].ID)
	assert.Equal(t, "Learn JavaScript", res[0].Snippet.Title)
	assert.Equal(t, "Chai aur Code", res[0].Snippet.ChannelTitle)
	assert.Equal(t, "https://i.ytimg.com/vi/vid1/hqdefault.jpg", res[0].Snippet.Thumbnails.High.URL)
	assert.Equal(t, "1500", res[0].Statistics.ViewCount)
	require.NotNil(t, res[0].ContentDetails.Duration)
	assert.Equal(t, "PT1H2M3S", *res[0].ContentDetails.Duration)
	assert.Nil(t, res[1])
}

func TestApi_Videos_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "non json body", status: http.StatusOK, body: "<html>oops</html>"},
		{name: "bad status", status: http.StatusBadGateway, body: videosJSON},
		{name: "no data", status: http.StatusOK, body: `{"statusCode":200,"success":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			api := NewWithURL(ts.URL, ts.Client(), 1, 10, "", "")
			_, err := api.Videos(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestApi_Videos_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	u := ts.URL
	ts.Close()

	api := NewWithURL(u, http.DefaultClient, 1, 10, "", "")
	_, err := api.Videos(context.Background())
	assert.Error(t, err)
}

func TestApi_Videos_MistypedRecord(t *testing.T) {
	body := `{
  "statusCode": 200,
  "success": true,
  "data": {
    "page": 1,
    "data": [
      {"items": {"id": "good", "snippet": {"title": "Good", "thumbnails": {"high": {"url": "u"}}}, "statistics": {"viewCount": "10"}, "contentDetails": {"duration": "PT1S"}}},
      {"items": {"id": "bad", "snippet": {"title": "Bad", "thumbnails": {"high": {"url": "u", "width": "480"}}}, "statistics": {"viewCount": 1500}, "contentDetails": {"duration": 5}}},
      {"items": {"id": "last", "snippet": {"title": "Last", "thumbnails": {"high": {"url": "u"}}}, "statistics": {"viewCount": "20"}, "contentDetails": {"duration": "PT2S"}}}
    ]
  }
}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer ts.Close()

	api := NewWithURL(ts.URL, ts.Client(), 1, 10, "", "")
	res, err := api.Videos(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.NotNil(t, res[0])
	assert.Equal(t, "good", res[0].ID)
	assert.Nil(t, res[1])
	require.NotNil(t, res[2])
	assert.Equal(t, "last", res[2].ID)
}
