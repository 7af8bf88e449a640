package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
	"github.com/riskibarqy/fpl-insights/internal/platform/resilience"
	"github.com/riskibarqy/fpl-insights/internal/usecase"
)

// UpstreamHealth reports the state of the upstream FPL circuit breaker.
type UpstreamHealth interface {
	Breaker() resilience.BreakerSnapshot
}

type Handler struct {
	catalogService    *usecase.CatalogService
	enrichmentService *usecase.EnrichmentService
	managerService    *usecase.ManagerService
	analyticsService  *usecase.AnalyticsService
	cohortService     *usecase.CohortService
	adviceService     *usecase.AdviceService
	upstream          UpstreamHealth
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	catalogService *usecase.CatalogService,
	enrichmentService *usecase.EnrichmentService,
	managerService *usecase.ManagerService,
	analyticsService *usecase.AnalyticsService,
	cohortService *usecase.CohortService,
	adviceService *usecase.AdviceService,
	upstream UpstreamHealth,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService:    catalogService,
		enrichmentService: enrichmentService,
		managerService:    managerService,
		analyticsService:  analyticsService,
		cohortService:     cohortService,
		adviceService:     adviceService,
		upstream:          upstream,
		logger:            logger,
		validator:         validator.New(),
	}
}

type healthDTO struct {
	Status   string                      `json:"status"`
	Upstream *resilience.BreakerSnapshot `json:"upstream,omitempty"`
}

// Healthz always answers 200; an open upstream breaker only marks the
// service as degraded.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	out := healthDTO{Status: "ok"}
	if h.upstream != nil {
		snapshot := h.upstream.Breaker()
		out.Upstream = &snapshot
		if snapshot.State == resilience.CircuitStateOpen {
			out.Status = "degraded"
		}
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshCatalog")
	defer span.End()

	var req catalogRefreshRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	removed := h.catalogService.Invalidate(ctx)
	if req.Warm {
		if _, err := h.catalogService.Index(ctx); err != nil {
			h.logger.WarnContext(ctx, "catalog warm-up failed", "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"invalidated": removed,
		"warmed":      req.Warm,
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
