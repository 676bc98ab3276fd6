package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/scribekit/config"
	"github.com/skillsenselab/scribekit/diarization"
	"github.com/skillsenselab/scribekit/jobs"
	"github.com/skillsenselab/scribekit/logger"
	"github.com/skillsenselab/scribekit/observability"
	"github.com/skillsenselab/scribekit/pipeline"
	"github.com/skillsenselab/scribekit/server"
	"github.com/skillsenselab/scribekit/server/endpoint"
	"github.com/skillsenselab/scribekit/server/middleware"
	"github.com/skillsenselab/scribekit/sse"
	"github.com/skillsenselab/scribekit/transcription"
)

// ServeCmd runs the transcription HTTP service.
type ServeCmd struct {
	DataDir string `help:"Directory for uploads and transcript outputs." default:"./data" type:"path"`
}

func (s *ServeCmd) Run(cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}

	log := logger.Get("scribekit")
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownObs, err := initObservability(ctx, cfg)
	if err != nil {
		return err
	}
	defer shutdownObs()

	transcriber, err := buildTranscriber(ctx, cfg)
	if err != nil {
		return err
	}
	diarizer, err := buildDiarizer(ctx, cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.DataDir, 0o755); err != nil {
		return err
	}

	hub := sse.NewHub()
	go hub.Run()
	defer hub.Stop()

	runner := pipeline.NewRunner(transcriber, diarizer)
	store := jobs.NewStore()
	opts := pipelineOptions(cfg)
	if opts.WorkDir == "" {
		opts.WorkDir = filepath.Join(s.DataDir, "work")
	}
	manager := jobs.NewManager(store, runner, hub, s.DataDir, opts)

	srv := server.New(cfg.Server, log)
	srv.ApplyDefaults(cfg.Name, healthChecker(transcriber, diarizer))

	handler := jobs.NewHandler(manager, hub, s.DataDir)
	var uploadMiddleware []gin.HandlerFunc
	if cfg.Server.UploadsPerMinute > 0 {
		uploadMiddleware = append(uploadMiddleware, middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerMinute: cfg.Server.UploadsPerMinute,
		}))
	}
	handler.RegisterRoutes(srv.GinEngine(), uploadMiddleware...)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	log.Info("scribekit ready", logger.Fields(
		"addr", srv.Addr(),
		"transcriber", transcriber.Name(),
		"diarizer", diarizer.Name(),
	))

	<-ctx.Done()
	log.Info("shutdown signal received")

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(stopCtx)
}

// healthChecker reports backend availability for /health and /ready.
func healthChecker(transcriber transcription.Provider, diarizer diarization.Provider) endpoint.HealthChecker {
	return func(ctx context.Context) []endpoint.ComponentHealth {
		return []endpoint.ComponentHealth{
			availability("transcriber:"+transcriber.Name(), transcriber.IsAvailable(ctx)),
			availability("diarizer:"+diarizer.Name(), diarizer.IsAvailable(ctx)),
		}
	}
}

func availability(name string, available bool) endpoint.ComponentHealth {
	if available {
		return endpoint.ComponentHealth{Name: name, Status: "healthy"}
	}
	return endpoint.ComponentHealth{Name: name, Status: "unavailable", Message: "backend not reachable"}
}

// initObservability starts OTLP tracing and metrics export when enabled.
// The returned func flushes and shuts both down.
func initObservability(ctx context.Context, cfg *config.Config) (func(), error) {
	if !cfg.Observability.Enabled {
		return func() {}, nil
	}

	tp, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    cfg.Name,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Observability.Endpoint,
		Insecure:       cfg.Observability.Insecure,
		SampleRate:     cfg.Observability.SampleRate,
	})
	if err != nil {
		return nil, err
	}

	mp, err := observability.InitMeter(ctx, &observability.MeterConfig{
		ServiceName:    cfg.Name,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Observability.Endpoint,
		Insecure:       cfg.Observability.Insecure,
	})
	if err != nil {
		return nil, err
	}

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(shutdownCtx)
		_ = mp.Shutdown(shutdownCtx)
	}, nil
}
