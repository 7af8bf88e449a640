package fpl

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-insights/internal/domain/catalog"
	"github.com/riskibarqy/fpl-insights/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insights/internal/domain/league"
	"github.com/riskibarqy/fpl-insights/internal/domain/live"
	"github.com/riskibarqy/fpl-insights/internal/domain/manager"
	"github.com/riskibarqy/fpl-insights/internal/domain/player"
	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
	"github.com/riskibarqy/fpl-insights/internal/platform/resilience"
	"github.com/riskibarqy/fpl-insights/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	defaultBaseURL   = "https://fantasy.premierleague.com/api"
	defaultUserAgent = "fpl-insights/1.0"
	maxBodyBytes     = 16 << 20
)

var errFPLTransient = crerr.New("fpl transient failure")

var fplTracer = otel.Tracer("fpl-insights/external/fpl")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches raw FPL resources. Every call is a single GET with no
// retry and no caching; concurrent identical GETs share one request.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	userAgent      string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.Gateway = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                userAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxConnsPerHost:     64,
			MaxIdleConnDuration: 30 * time.Second,
			MaxResponseBodySize: maxBodyBytes,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		userAgent:      userAgent,
		timeout:        timeout,
		logger:         logger.Named("fpl"),
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

// Breaker exposes the upstream breaker state for health reporting.
func (c *Client) Breaker() resilience.BreakerSnapshot {
	return c.breaker.Snapshot()
}

func (c *Client) FetchBootstrap(ctx context.Context) (catalog.Snapshot, error) {
	var envelope bootstrapEnvelope
	if err := c.getJSON(ctx, "bootstrap", "/bootstrap-static/", &envelope); err != nil {
		return catalog.Snapshot{}, fmt.Errorf("fetch bootstrap: %w", err)
	}
	return envelope.toSnapshot(), nil
}

func (c *Client) FetchFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	var items []fixtureItem
	if err := c.getJSON(ctx, "fixtures", "/fixtures/", &items); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) FetchEntry(ctx context.Context, managerID int) (manager.Entry, error) {
	if managerID <= 0 {
		return manager.Entry{}, fmt.Errorf("%w: manager id must be greater than zero", usecase.ErrInvalidInput)
	}
	var item entryItem
	if err := c.getJSON(ctx, "entry", buildPath("entry", managerID), &item); err != nil {
		return manager.Entry{}, fmt.Errorf("fetch entry manager_id=%d: %w", managerID, err)
	}
	return item.toDomain(), nil
}

func (c *Client) FetchEntryHistory(ctx context.Context, managerID int) (manager.History, error) {
	if managerID <= 0 {
		return manager.History{}, fmt.Errorf("%w: manager id must be greater than zero", usecase.ErrInvalidInput)
	}
	var envelope historyEnvelope
	if err := c.getJSON(ctx, "entry_history", buildPath("entry", managerID, "history"), &envelope); err != nil {
		return manager.History{}, fmt.Errorf("fetch entry history manager_id=%d: %w", managerID, err)
	}
	return envelope.toDomain(), nil
}

func (c *Client) FetchEntryPicks(ctx context.Context, managerID, gameweek int) (manager.Picks, error) {
	if managerID <= 0 || gameweek <= 0 {
		return manager.Picks{}, fmt.Errorf("%w: manager id and gameweek must be greater than zero", usecase.ErrInvalidInput)
	}
	var envelope picksEnvelope
	if err := c.getJSON(ctx, "entry_picks", buildPath("entry", managerID, "event", gameweek, "picks"), &envelope); err != nil {
		return manager.Picks{}, fmt.Errorf("fetch picks manager_id=%d gw=%d: %w", managerID, gameweek, err)
	}
	return envelope.toDomain(), nil
}

func (c *Client) FetchEntryTransfers(ctx context.Context, managerID int) ([]manager.Transfer, error) {
	if managerID <= 0 {
		return nil, fmt.Errorf("%w: manager id must be greater than zero", usecase.ErrInvalidInput)
	}
	var items []transferItem
	if err := c.getJSON(ctx, "entry_transfers", buildPath("entry", managerID, "transfers"), &items); err != nil {
		return nil, fmt.Errorf("fetch transfers manager_id=%d: %w", managerID, err)
	}
	out := make([]manager.Transfer, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) FetchLive(ctx context.Context, gameweek int) ([]live.Stat, error) {
	if gameweek <= 0 {
		return nil, fmt.Errorf("%w: gameweek must be greater than zero", usecase.ErrInvalidInput)
	}
	var envelope liveEnvelope
	if err := c.getJSON(ctx, "live", buildPath("event", gameweek, "live"), &envelope); err != nil {
		return nil, fmt.Errorf("fetch live gw=%d: %w", gameweek, err)
	}
	return envelope.toDomain(), nil
}

func (c *Client) FetchClassicStandings(ctx context.Context, leagueID, page int) (league.StandingsPage, error) {
	if leagueID <= 0 {
		return league.StandingsPage{}, fmt.Errorf("%w: league id must be greater than zero", usecase.ErrInvalidInput)
	}
	if page < 1 {
		page = 1
	}
	path := buildPath("leagues-classic", leagueID, "standings") + "?page_standings=" + strconv.Itoa(page)
	var envelope standingsEnvelope
	if err := c.getJSON(ctx, "league_standings", path, &envelope); err != nil {
		return league.StandingsPage{}, fmt.Errorf("fetch standings league_id=%d page=%d: %w", leagueID, page, err)
	}
	return envelope.toDomain(leagueID, page), nil
}

func (c *Client) FetchElementSummary(ctx context.Context, playerID int) ([]player.GameweekHistory, error) {
	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be greater than zero", usecase.ErrInvalidInput)
	}
	var envelope elementSummaryEnvelope
	if err := c.getJSON(ctx, "element_summary", buildPath("element-summary", playerID), &envelope); err != nil {
		return nil, fmt.Errorf("fetch element summary player_id=%d: %w", playerID, err)
	}
	return envelope.toDomain(), nil
}

func (c *Client) getJSON(ctx context.Context, resource, path string, target any) error {
	ctx, span := fplTracer.Start(ctx, "fpl.GET "+resource)
	defer span.End()
	span.SetAttributes(
		attribute.String("fpl.resource", resource),
		attribute.String("fpl.path", path),
	)

	fullURL := c.buildURL(path)
	out, err, shared := c.flight.Do(fullURL, func() (any, error) {
		// Callers sharing the flight share one breaker slot, so Allow and
		// Record pair up exactly once per upstream request.
		if c.circuitEnabled {
			if err := c.breaker.Allow(); err != nil {
				c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "resource", resource, "state", c.breaker.State())
				return nil, fmt.Errorf("%w: fpl api is temporarily unavailable: %w", usecase.ErrDependencyUnavailable, err)
			}
		}

		// The leader leaving must not fail the followers.
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		raw, reqErr := c.execute(flightCtx, fullURL)
		if c.circuitEnabled {
			c.breaker.Record(reqErr, isTransientFailure)
		}
		return raw, reqErr
	})
	span.SetAttributes(attribute.Bool("fpl.shared", shared))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("%w: unexpected response payload type %T", usecase.ErrDependencyUnavailable, out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		span.SetStatus(codes.Error, "decode failed")
		return fmt.Errorf("%w: decode %s payload: %w", usecase.ErrDependencyUnavailable, resource, err)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.SetUserAgent(c.userAgent)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	started := time.Now()
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "duration_ms", time.Since(started).Milliseconds(), "error", err)
		return nil, fmt.Errorf("%w: %w: %w", usecase.ErrDependencyUnavailable, errFPLTransient, crerr.Wrapf(err, "GET %s", fullURL))
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	c.logger.DebugContext(ctx, "fpl request", "url", fullURL, "status", status, "bytes", len(body), "duration_ms", time.Since(started).Milliseconds())

	switch {
	case status >= 200 && status < 300:
		return body, nil
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: upstream returned 404 for %s", usecase.ErrNotFound, fullURL)
	case isRetryableStatus(status):
		cause := crerr.Newf("upstream status=%d body=%s", status, abbreviateBody(body))
		return nil, fmt.Errorf("%w: %w: %w", usecase.ErrDependencyUnavailable, errFPLTransient, cause)
	default:
		return nil, fmt.Errorf("%w: upstream status=%d body=%s", usecase.ErrDependencyUnavailable, status, abbreviateBody(body))
	}
}

func (c *Client) buildURL(path string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(path)
	return buf.String()
}

// buildPath renders segments as "/a/1/b/" with the trailing slash the FPL
// API expects.
func buildPath(segments ...any) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, segment := range segments {
		_ = buf.WriteByte('/')
		switch v := segment.(type) {
		case int:
			_, _ = buf.WriteString(strconv.Itoa(v))
		case string:
			_, _ = buf.WriteString(v)
		default:
			_, _ = buf.WriteString(fmt.Sprint(v))
		}
	}
	_ = buf.WriteByte('/')
	return buf.String()
}

func isTransientFailure(err error) bool {
	return err != nil && stderrors.Is(err, errFPLTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
