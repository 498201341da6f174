package main

import (
	"net/http"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
	wa "github.com/webtor-io/video-feed/handlers/api"
	wi "github.com/webtor-io/video-feed/handlers/index"
	wm "github.com/webtor-io/video-feed/handlers/metrics"
	"github.com/webtor-io/video-feed/services/template"
	"github.com/webtor-io/video-feed/services/videos"
	w "github.com/webtor-io/video-feed/services/web"
	"github.com/webtor-io/video-feed/templates"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = cs.RegisterPprofFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = wi.RegisterFlags(c.Flags)
	c.Flags = videos.RegisterStoreFlags(c.Flags)
	c.Flags = configureFetcher(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting template renderer
	re := multitemplate.NewRenderer()

	// Setting TemplateManager
	tm := template.NewManager(re, templates.FS)

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Pprof
	pprof := cs.NewPprof(c)
	if pprof != nil {
		servers = append(servers, pprof)
		defer pprof.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.HTMLRender = re

	// Setting Web
	web, err := w.New(c, r)
	if err != nil {
		return err
	}
	servers = append(servers, web)
	defer web.Close()

	// Setting Fetcher
	f, err := makeFetcher(c, cl)
	if err != nil {
		return err
	}

	// Setting Store, loads videos once it starts serving
	st := videos.NewStore(c, f)
	servers = append(servers, st)
	defer st.Close()

	// Setting IndexHandler
	wi.RegisterHandler(c, r, tm, st)

	// Setting ApiHandler
	wa.RegisterHandler(r, st)

	// Setting MetricsHandler
	wm.RegisterHandler(r)

	// Render templates
	err = tm.Init()
	if err != nil {
		return err
	}

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
