package models

// RawVideo mirrors a YouTube video resource as served by upstream APIs.
// Nested objects are pointers so absent ones can be told apart from empty ones.
type RawVideo struct {
	ID             string             `json:"id"`
	Snippet        *RawSnippet        `json:"snippet"`
	Statistics     *RawStatistics     `json:"statistics"`
	ContentDetails *RawContentDetails `json:"contentDetails"`
}

type RawSnippet struct {
	Title        string         `json:"title"`
	ChannelTitle string         `json:"channelTitle"`
	Thumbnails   *RawThumbnails `json:"thumbnails"`
}

type RawThumbnails struct {
	Default *RawThumbnail `json:"default"`
	Medium  *RawThumbnail `json:"medium"`
	High    *RawThumbnail `json:"high"`
}

type RawThumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// RawStatistics holds counts as decimal strings; absent counts stay empty.
type RawStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

type RawContentDetails struct {
	Duration *string `json:"duration"`
}
