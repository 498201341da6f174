package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/webtor-io/video-feed/models"
)

const (
	fetchQueryFlag = "query"
	fetchJSONFlag  = "json"
)

func makeFetchCMD() cli.Command {
	fetchCMD := cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Fetches videos once and prints them",
		Action:  fetch,
	}
	configureFetch(&fetchCMD)
	return fetchCMD
}

func configureFetch(c *cli.Command) {
	c.Flags = append(c.Flags,
		cli.StringFlag{
			Name:  fetchQueryFlag + ", q",
			Usage: "only print videos whose title or channel contains query",
		},
		cli.BoolFlag{
			Name:  fetchJSONFlag,
			Usage: "print videos as json",
		},
	)
	c.Flags = configureFetcher(c.Flags)
}

func fetch(c *cli.Context) error {
	f, err := makeFetcher(c, http.DefaultClient)
	if err != nil {
		return err
	}
	l := f.Fetch(context.Background()).Filter(c.String(fetchQueryFlag))
	if c.Bool(fetchJSONFlag) {
		return printJSON(os.Stdout, l)
	}
	return printTable(os.Stdout, l)
}

func printJSON(out io.Writer, l *models.VideoList) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l.Videos); err != nil {
		return errors.Wrap(err, "failed to encode videos")
	}
	return nil
}

func printTable(out io.Writer, l *models.VideoList) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, v := range l.Videos {
		_, _ = fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			v.Duration, v.Title, v.ChannelName, v.Views, v.Likes, v.Comments, v.WatchURL)
	}
	if l.Skipped > 0 {
		_, _ = fmt.Fprintf(tw, "skipped %v malformed records\n", l.Skipped)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to print videos")
	}
	return nil
}
