package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-insights/internal/domain/catalog"
	usecasemock "github.com/riskibarqy/fpl-insights/internal/mocks/usecase"
	"github.com/riskibarqy/fpl-insights/internal/platform/cache"
	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_ConcurrentColdStartFetchesOnce(t *testing.T) {
	t.Parallel()

	gateway := usecasemock.NewGateway(t)
	gateway.
		On("FetchBootstrap", mock.Anything).
		Run(func(mock.Arguments) { time.Sleep(20 * time.Millisecond) }).
		Return(testSnapshot(), nil).
		Once()
	service := NewCatalogService(gateway, cache.NewStore(0), logging.NewNop())

	const callers = 16
	indexes := make([]*catalog.Index, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			indexes[i], errs[i] = service.Index(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if indexes[i] != indexes[0] {
			t.Fatalf("caller %d observed a different snapshot", i)
		}
	}
}

func TestCatalogService_FailureIsNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gateway := usecasemock.NewGateway(t)
	gateway.
		On("FetchBootstrap", mock.Anything).
		Return(catalog.Snapshot{}, errors.New("dependency unavailable: boom")).
		Once()
	gateway.
		On("FetchBootstrap", mock.Anything).
		Return(testSnapshot(), nil).
		Once()
	service := NewCatalogService(gateway, cache.NewStore(0), logging.NewNop())

	if _, err := service.Index(ctx); err == nil {
		t.Fatalf("expected first load to fail")
	}
	idx, err := service.Index(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got := len(idx.Players()); got != 7 {
		t.Fatalf("unexpected player count: got=%d want=7", got)
	}
}

func TestCatalogService_PropagatesDependencyUnavailable(t *testing.T) {
	t.Parallel()

	gateway := usecasemock.NewGateway(t)
	gateway.
		On("FetchFixtures", mock.Anything).
		Return(nil, ErrDependencyUnavailable).
		Once()
	service := NewCatalogService(gateway, cache.NewStore(0), logging.NewNop())

	_, err := service.Fixtures(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got=%v", err)
	}
}

func TestCatalogService_InvalidateForcesRefetch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gateway := usecasemock.NewGateway(t)
	gateway.On("FetchBootstrap", mock.Anything).Return(testSnapshot(), nil).Twice()
	gateway.On("FetchFixtures", mock.Anything).Return(testFixtures(), nil).Twice()
	service := NewCatalogService(gateway, cache.NewStore(0), logging.NewNop())

	for i := 0; i < 3; i++ {
		if _, err := service.Index(ctx); err != nil {
			t.Fatalf("index: %v", err)
		}
		if _, err := service.Fixtures(ctx); err != nil {
			t.Fatalf("fixtures: %v", err)
		}
	}

	if removed := service.Invalidate(ctx); removed != 2 {
		t.Fatalf("unexpected removed entries: got=%d want=2", removed)
	}

	if _, err := service.Index(ctx); err != nil {
		t.Fatalf("index after invalidate: %v", err)
	}
	fixtures, err := service.Fixtures(ctx)
	if err != nil {
		t.Fatalf("fixtures after invalidate: %v", err)
	}
	if len(fixtures) != 4 {
		t.Fatalf("unexpected fixture count: got=%d want=4", len(fixtures))
	}
}

func TestCatalogService_RejectsNegativeCost(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.Players[0].NowCost = -1

	gateway := usecasemock.NewGateway(t)
	gateway.On("FetchBootstrap", mock.Anything).Return(snapshot, nil).Once()
	service := NewCatalogService(gateway, cache.NewStore(0), logging.NewNop())

	if _, err := service.Index(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got=%v", err)
	}
}

func TestCatalogService_RejectsNamelessTeam(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.Teams[1].Name = ""

	gateway := usecasemock.NewGateway(t)
	gateway.On("FetchBootstrap", mock.Anything).Return(snapshot, nil).Once()
	service := NewCatalogService(gateway, cache.NewStore(0), logging.NewNop())

	if _, err := service.Index(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got=%v", err)
	}
}
