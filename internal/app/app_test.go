package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/fpl-insights/internal/config"
	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                 config.EnvDev,
		HTTPAddr:               "127.0.0.1:0",
		CORSAllowedOrigins:     []string{"*"},
		FPLBaseURL:             "http://127.0.0.1:1",
		FPLCircuitEnabled:      true,
		FPLCircuitFailureCount: 5,
	}
}

func TestNew_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := New(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty HTTP addr")
	}
}

func TestNew_RejectsBadRefreshSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogRefreshCron = "not a schedule"
	if _, err := New(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for invalid refresh schedule")
	}
}

func TestNew_ServesHealth(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogRefreshCron = "@hourly"

	a, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	if a.refresher == nil {
		t.Fatalf("expected refresher to be configured")
	}

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status got=%d want=%d", rec.Code, http.StatusOK)
	}

	if err := a.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
