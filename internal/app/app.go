package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-insights/external/fpl"
	"github.com/riskibarqy/fpl-insights/internal/config"
	"github.com/riskibarqy/fpl-insights/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-insights/internal/platform/cache"
	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
	"github.com/riskibarqy/fpl-insights/internal/scheduler"
	"github.com/riskibarqy/fpl-insights/internal/usecase"
)

// App owns the HTTP server and the background catalog refresher.
type App struct {
	Server    *http.Server
	refresher *scheduler.CatalogRefresher
	logger    *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	fplClient := fpl.NewClient(fpl.ClientConfig{
		BaseURL:   cfg.FPLBaseURL,
		UserAgent: cfg.FPLUserAgent,
		Timeout:   cfg.FPLTimeout,
		Logger:    logger.Named("fpl"),
		CircuitBreaker: cfg.FPLCircuitBreaker(),
	})

	// Reference data never expires on its own; the refresher or the internal
	// route clears it.
	catalogSvc := usecase.NewCatalogService(fplClient, cache.NewStore(0, cache.WithLoadTimeout(cfg.FPLTimeout)), logger.Named("catalog"))
	enrichmentSvc := usecase.NewEnrichmentService(fplClient, catalogSvc)
	managerSvc := usecase.NewManagerService(fplClient, catalogSvc)
	analyticsSvc := usecase.NewAnalyticsService(catalogSvc)
	cohortSvc := usecase.NewCohortService(fplClient, catalogSvc, logger.Named("cohort"), usecase.CohortConfig{
		Concurrency: cfg.CohortConcurrency,
		MaxManagers: cfg.CohortMaxManagers,
	})
	adviceSvc := usecase.NewAdviceService(fplClient, catalogSvc, cfg.FormConcurrency)

	handler := httpapi.NewHandler(
		catalogSvc,
		enrichmentSvc,
		managerSvc,
		analyticsSvc,
		cohortSvc,
		adviceSvc,
		fplClient,
		logger.Named("httpapi"),
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	out := &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}

	if cfg.CatalogRefreshCron != "" {
		refresher, err := scheduler.NewCatalogRefresher(catalogSvc, cfg.CatalogRefreshCron, logger.Named("scheduler"))
		if err != nil {
			return nil, fmt.Errorf("build catalog refresher: %w", err)
		}
		out.refresher = refresher
	} else {
		logger.Info("catalog refresher disabled", "reason", "CATALOG_REFRESH_CRON empty")
	}

	return out, nil
}

// Start launches the background refresher and serves HTTP until the server
// is shut down. Errors other than http.ErrServerClosed are sent on the
// returned channel.
func (a *App) Start() <-chan error {
	if a.refresher != nil {
		a.refresher.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		a.logger.Info("http server starting", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if a.refresher != nil {
		if err := a.refresher.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop catalog refresher: %w", err))
		}
	}
	a.logger.Info("http server stopped")
	return errors.Join(errs...)
}
