package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-insights/internal/domain/catalog"
	"github.com/riskibarqy/fpl-insights/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insights/internal/platform/cache"
	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
)

const (
	catalogCachePrefix = "fpl:"
	catalogIndexKey    = catalogCachePrefix + "bootstrap"
	fixturesKey        = catalogCachePrefix + "fixtures"
)

// CatalogService memoizes the bootstrap snapshot and the fixture list. Both
// stay cached until Invalidate is called; concurrent cold loads share one
// upstream request.
type CatalogService struct {
	gateway Gateway
	store   *cache.Store
	logger  *logging.Logger
}

func NewCatalogService(gateway Gateway, store *cache.Store, logger *logging.Logger) *CatalogService {
	if store == nil {
		store = cache.NewStore(0)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CatalogService{
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// Index returns the lookup index over the cached snapshot, loading it on
// first use.
func (s *CatalogService) Index(ctx context.Context) (*catalog.Index, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Index")
	defer span.End()

	idx, err := cache.Load(ctx, s.store, catalogIndexKey, func(ctx context.Context) (*catalog.Index, error) {
		snapshot, err := s.gateway.FetchBootstrap(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range snapshot.Players {
			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("%w: bootstrap: %v", ErrDependencyUnavailable, err)
			}
		}
		for _, t := range snapshot.Teams {
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("%w: bootstrap: %v", ErrDependencyUnavailable, err)
			}
		}
		s.logger.InfoContext(ctx, "catalog snapshot loaded",
			"players", len(snapshot.Players),
			"teams", len(snapshot.Teams),
			"events", len(snapshot.Events),
		)
		return catalog.NewIndex(snapshot), nil
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return idx, nil
}

// Fixtures returns the cached season fixture list in upstream order.
func (s *CatalogService) Fixtures(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Fixtures")
	defer span.End()

	items, err := cache.Load(ctx, s.store, fixturesKey, func(ctx context.Context) ([]fixture.Fixture, error) {
		items, err := s.gateway.FetchFixtures(ctx)
		if err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "fixture list loaded", "fixtures", len(items))
		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}
	return items, nil
}

// Invalidate drops the snapshot and fixture list; the next access refetches.
func (s *CatalogService) Invalidate(ctx context.Context) int {
	removed := s.store.DeletePrefix(ctx, catalogCachePrefix)
	s.logger.InfoContext(ctx, "catalog cache invalidated", "entries", removed)
	return removed
}
