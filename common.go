package main

import (
	"net/http"

	"github.com/urfave/cli"
	"github.com/webtor-io/video-feed/services/freeapi"
	"github.com/webtor-io/video-feed/services/videos"
	"github.com/webtor-io/video-feed/services/youtube"
)

func configureFetcher(f []cli.Flag) []cli.Flag {
	f = freeapi.RegisterFlags(f)
	f = youtube.RegisterFlags(f)
	f = videos.RegisterFetcherFlags(f)
	return f
}

func makeFetcher(c *cli.Context, cl *http.Client) (*videos.Fetcher, error) {
	var src videos.Source

	// Setting YouTube Data API source
	ya, err := youtube.New(c)
	if err != nil {
		return nil, err
	}
	if ya != nil {
		src = ya
	} else {
		// Setting FreeAPI source
		src = freeapi.New(c, cl)
	}

	// Setting Fetcher
	return videos.NewFetcher(c, src), nil
}
