package freeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/video-feed/models"
)

const (
	hostFlag   = "freeapi-host"
	portFlag   = "freeapi-port"
	secureFlag = "freeapi-secure"
	pageFlag   = "freeapi-page"
	limitFlag  = "freeapi-limit"
	queryFlag  = "freeapi-query"
	sortByFlag = "freeapi-sort-by"
)

const videosPath = "/api/v1/public/youtube/videos"

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   hostFlag,
			Usage:  "freeapi host",
			EnvVar: "FREEAPI_HOST",
			Value:  "api.freeapi.app",
		},
		cli.IntFlag{
			Name:   portFlag,
			Usage:  "freeapi port",
			EnvVar: "FREEAPI_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   secureFlag,
			Usage:  "freeapi secure (https)",
			EnvVar: "FREEAPI_SECURE",
		},
		cli.IntFlag{
			Name:   pageFlag,
			Usage:  "freeapi videos page",
			EnvVar: "FREEAPI_PAGE",
			Value:  1,
		},
		cli.IntFlag{
			Name:   limitFlag,
			Usage:  "freeapi videos per page",
			EnvVar: "FREEAPI_LIMIT",
			Value:  10,
		},
		cli.StringFlag{
			Name:   queryFlag,
			Usage:  "freeapi videos query",
			EnvVar: "FREEAPI_QUERY",
			Value:  "javascript",
		},
		cli.StringFlag{
			Name:   sortByFlag,
			Usage:  "freeapi videos sort order",
			EnvVar: "FREEAPI_SORT_BY",
			Value:  "keep%20one%3A%20mostLiked%20%7C%20mostViewed%20%7C%20latest%20%7C%20oldest",
		},
	)
}

// VideosResponse is the envelope of the public youtube videos endpoint.
type VideosResponse struct {
	StatusCode int  `json:"statusCode"`
	Success    bool `json:"success"`
	Data       *struct {
		Page       int               `json:"page"`
		Limit      int               `json:"limit"`
		TotalPages int               `json:"totalPages"`
		TotalItems int               `json:"totalItems"`
		Data       []json.RawMessage `json:"data"`
	} `json:"data"`
	Message string `json:"message"`
}

type VideoItem struct {
	Kind  string           `json:"kind"`
	Items *models.RawVideo `json:"items"`
}

type Api struct {
	url   string
	cl    *http.Client
	page  int
	limit int
	query string
	sort  string
}

func New(c *cli.Context, cl *http.Client) *Api {
	protocol := "http"
	if c.BoolT(secureFlag) {
		protocol = "https"
	}
	u := fmt.Sprintf("%v://%v:%v", protocol, c.String(hostFlag), c.Int(portFlag))
	log.Infof("freeapi endpoint %v", u)
	return NewWithURL(u, cl, c.Int(pageFlag), c.Int(limitFlag), c.String(queryFlag), c.String(sortByFlag))
}

func NewWithURL(u string, cl *http.Client, page int, limit int, query string, sort string) *Api {
	return &Api{
		url:   u,
		cl:    cl,
		page:  page,
		limit: limit,
		query: query,
		sort:  sort,
	}
}

// Videos fetches one page of videos. Entries that have no items object or
// fail to decode are returned as nil so callers can account for them.
func (api *Api) Videos(ctx context.Context) ([]*models.RawVideo, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", api.url+videosPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	q := req.URL.Query()
	q.Set("page", strconv.Itoa(api.page))
	q.Set("limit", strconv.Itoa(api.limit))
	if api.query != "" {
		q.Set("query", api.query)
	}
	if api.sort != "" {
		q.Set("sortBy", api.sort)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	log.WithField("size", humanize.Bytes(uint64(len(body)))).Debug("got freeapi videos response")

	var raw VideosResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	if raw.Data == nil {
		return nil, errors.New("no data in response")
	}

	res := make([]*models.RawVideo, 0, len(raw.Data.Data))
	for i, d := range raw.Data.Data {
		var item VideoItem
		if err := json.Unmarshal(d, &item); err != nil {
			log.WithError(err).WithField("index", i).Warn("failed to decode video record")
			res = append(res, nil)
			continue
		}
		res = append(res, item.Items)
	}
	return res, nil
}
