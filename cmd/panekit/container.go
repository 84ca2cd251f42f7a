package main

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/panekit/panekit/internal/config"
	"github.com/panekit/panekit/pkg/app"
	"github.com/panekit/panekit/pkg/service"
	"github.com/panekit/panekit/pkg/webcontainer"
)

// buildContainer translates panekit.json into a web container.
func buildContainer(cfg *config.Config, logger *slog.Logger, root func() []app.Component) (*webcontainer.Container, error) {
	wc := webcontainer.DefaultConfig()
	wc.ServicePath = cfg.Services.Path
	wc.SyncPath = cfg.Sync.Path
	wc.MetricsPath = cfg.Metrics.Path
	wc.MetricsNamespace = cfg.Metrics.Namespace
	wc.Versioned = cfg.Services.Versioned
	wc.CacheMaxAge = cfg.CacheMaxAge()
	wc.ReadTimeout = cfg.ReadTimeout()
	wc.WriteTimeout = cfg.WriteTimeout()
	wc.Logger = logger.With("component", "webcontainer")
	wc.Root = root

	if len(cfg.S3.Libraries) > 0 {
		src := service.NewS3Source(newS3Client(cfg.S3), cfg.S3.Bucket, cfg.S3.Prefix)
		for _, lib := range cfg.S3.Libraries {
			wc.Services = append(wc.Services, service.ForResource(lib.ID, lib.Location, src))
			wc.Libraries = append(wc.Libraries, lib.ID)
		}
	}

	return webcontainer.New(wc)
}

// newS3Client creates an anonymous client for public library buckets.
func newS3Client(cfg config.S3Config) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.AnonymousCredentials{},
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}
