package videos

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_feed_fetch_total",
		Help: "Total number of upstream video fetches by status",
	}, []string{"status"})
	skippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_feed_skipped_records_total",
		Help: "Total number of malformed video records skipped",
	})
	loadedVideos = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "video_feed_loaded_videos",
		Help: "Number of videos in the current snapshot",
	})
)
