package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobquest/internal/catalog"
	"jobquest/internal/llm"
	"jobquest/internal/logger"
	"jobquest/internal/metrics"
	"jobquest/internal/questions"
	"jobquest/internal/service"
	"jobquest/internal/transport/rest"
	"jobquest/internal/transport/ws"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().String("port", "", "listen port (overrides http.port)")
	opts.v.BindPFlag("http.port", cmd.Flags().Lookup("port"))
	return cmd
}

func serve(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	resultCache, closeCache := openCache(ctx, cfg, log)
	defer closeCache()

	gen, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("init LLM client: %w", err)
	}
	if cfg.LLM.IsEnabled() {
		log.Info("LLM enabled", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.ModelName()), zap.Duration("timeout", cfg.LLM.Timeout))
	} else {
		log.Warn("LLM API key not set, free-text evaluation uses the heuristic fallback")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		return err
	}

	bank := questions.NewBank()
	authSvc := service.NewAuthService(cfg.Auth)
	submissionSvc := service.NewSubmissionService(
		bank,
		service.NewEvaluatorService(gen, cfg.LLM.Timeout, log, m),
		service.NewProfileService(gen, cfg.LLM.Timeout, log, m),
		service.NewMatcherService(catalog.Default(), cfg.Matcher.TopN),
		repo,
		log,
		m,
	)
	resultsSvc := service.NewResultsService(repo, resultCache, log, m)

	wsHub := ws.NewHub(log)
	submissionSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		Bank:              bank,
		AuthService:       authSvc,
		SubmissionService: submissionSvc,
		ResultsService:    resultsSvc,
		WSHub:             wsHub,
		Logger:            log,
		Metrics:           m,
		MetricsHandler:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wsHub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		log.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.Store.Backend),
			zap.Bool("cache", resultCache != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}
