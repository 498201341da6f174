package youtube

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/video-feed/models"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

const (
	apiKeyFlag = "youtube-api-key"
	regionFlag = "youtube-region"
	limitFlag  = "youtube-limit"
)

var parts = []string{"snippet", "statistics", "contentDetails"}

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   apiKeyFlag,
			Usage:  "youtube data api key (replaces freeapi as video source)",
			EnvVar: "YOUTUBE_API_KEY",
		},
		cli.StringFlag{
			Name:   regionFlag,
			Usage:  "youtube most popular chart region",
			EnvVar: "YOUTUBE_REGION",
			Value:  "US",
		},
		cli.IntFlag{
			Name:   limitFlag,
			Usage:  "youtube videos limit",
			EnvVar: "YOUTUBE_LIMIT",
			Value:  10,
		},
	)
}

// Api lists the most popular chart through the YouTube Data API.
type Api struct {
	svc    *yt.Service
	region string
	limit  int64
}

func New(c *cli.Context) (*Api, error) {
	key := c.String(apiKeyFlag)
	if key == "" {
		return nil, nil
	}
	svc, err := yt.NewService(context.Background(), option.WithAPIKey(key))
	if err != nil {
		return nil, errors.Wrap(err, "create youtube service")
	}
	log.Infof("youtube data api source enabled, region %v", c.String(regionFlag))
	return &Api{
		svc:    svc,
		region: c.String(regionFlag),
		limit:  int64(c.Int(limitFlag)),
	}, nil
}

func (api *Api) Videos(ctx context.Context) ([]*models.RawVideo, error) {
	call := api.svc.Videos.
		List(parts).
		Chart("mostPopular").
		MaxResults(api.limit)
	if api.region != "" {
		call = call.RegionCode(api.region)
	}
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "list videos")
	}
	res := make([]*models.RawVideo, 0, len(resp.Items))
	for _, v := range resp.Items {
		res = append(res, convert(v))
	}
	return res, nil
}

func convert(v *yt.Video) *models.RawVideo {
	if v == nil {
		return nil
	}
	r := &models.RawVideo{
		ID: v.Id,
	}
	if s := v.Snippet; s != nil {
		r.Snippet = &models.RawSnippet{
			Title:        s.Title,
			ChannelTitle: s.ChannelTitle,
		}
		if th := s.Thumbnails; th != nil {
			r.Snippet.Thumbnails = &models.RawThumbnails{
				Default: convertThumbnail(th.Default),
				Medium:  convertThumbnail(th.Medium),
				High:    convertThumbnail(th.High),
			}
		}
	}
	// hidden like and comment counts decode as 0
	if st := v.Statistics; st != nil {
		r.Statistics = &models.RawStatistics{
			ViewCount:    strconv.FormatUint(st.ViewCount, 10),
			LikeCount:    strconv.FormatUint(st.LikeCount, 10),
			CommentCount: strconv.FormatUint(st.CommentCount, 10),
		}
	}
	if cd := v.ContentDetails; cd != nil {
		d := cd.Duration
		r.ContentDetails = &models.RawContentDetails{Duration: &d}
	}
	return r
}

func convertThumbnail(t *yt.Thumbnail) *models.RawThumbnail {
	if t == nil {
		return nil
	}
	return &models.RawThumbnail{
		URL:    t.Url,
		Width:  int(t.Width),
		Height: int(t.Height),
	}
}
