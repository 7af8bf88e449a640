package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

// Invalidator drops cached reference data.
type Invalidator interface {
	Invalidate(ctx context.Context) int
}

// CatalogRefresher periodically invalidates the catalog cache so the next
// request reloads the bootstrap snapshot and fixture list.
type CatalogRefresher struct {
	cron    *cron.Cron
	target  Invalidator
	logger  *logging.Logger
	spec    string
	entryID cron.EntryID
}

func NewCatalogRefresher(target Invalidator, spec string, logger *logging.Logger) (*CatalogRefresher, error) {
	if target == nil {
		return nil, fmt.Errorf("catalog refresher target is required")
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("catalog refresh schedule is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	adapter := cronLogger{logger: logger.Named("cron")}
	r := &CatalogRefresher{
		cron: cron.New(
			cron.WithLogger(adapter),
			cron.WithChain(cron.Recover(adapter), cron.SkipIfStillRunning(adapter)),
		),
		target: target,
		logger: logger,
		spec:   spec,
	}

	entryID, err := r.cron.AddFunc(spec, func() { r.RunOnce(context.Background()) })
	if err != nil {
		return nil, fmt.Errorf("schedule catalog refresh %q: %w", spec, err)
	}
	r.entryID = entryID
	return r, nil
}

func (r *CatalogRefresher) Start() {
	r.cron.Start()
	r.logger.Info("catalog refresh scheduled", "schedule", r.spec, "next_run", r.NextRun())
}

// Stop waits for a running refresh to finish or ctx to expire.
func (r *CatalogRefresher) Stop(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *CatalogRefresher) RunOnce(ctx context.Context) {
	removed := r.target.Invalidate(ctx)
	r.logger.InfoContext(ctx, "catalog refresh executed", "entries", removed)
}

func (r *CatalogRefresher) NextRun() time.Time {
	entry := r.cron.Entry(r.entryID)
	if entry.Schedule == nil {
		return time.Time{}
	}
	return entry.Schedule.Next(time.Now())
}

type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
