package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"trends-dashboard/cmd/trendctl/app"
	"trends-dashboard/internal/api/relatedqueries"
	"trends-dashboard/internal/api/searchvolume"
	"trends-dashboard/internal/cache"
	"trends-dashboard/internal/trends"
)

func main() {
	opts, err := app.Parse(os.Args)
	if err != nil {
		fmt.Print(opts.Usage(err))
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := trends.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid trends configuration")
	}
	c, err := cache.NewCache()
	if err != nil {
		log.WithError(err).Fatal("unable to init cache")
	}
	defer c.Clear()

	client := trends.NewClient(*cfg)
	reporter := app.NewReporter(
		searchvolume.NewSearchVolumeService(c, client, nil, zap.NewNop()),
		relatedqueries.NewRelatedQueriesService(c, client, zap.NewNop()),
		os.Stdout,
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := reporter.Run(ctx, opts, cfg.Geo); err != nil {
		log.WithError(err).Error("trendctl failed")
		stop()
		c.Clear()
		os.Exit(1)
	}
}
