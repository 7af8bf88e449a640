package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-insights/internal/domain/manager"
	usecasemock "github.com/riskibarqy/fpl-insights/internal/mocks/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newManagerForTest(t *testing.T) (*ManagerService, *usecasemock.Gateway) {
	t.Helper()

	gateway := usecasemock.NewGateway(t)
	return NewManagerService(gateway, newTestCatalog(gateway)), gateway
}

func TestManagerService_InfoNotFound(t *testing.T) {
	t.Parallel()

	service, gateway := newManagerForTest(t)
	gateway.On("FetchEntry", mock.Anything, 77).Return(manager.Entry{}, ErrNotFound).Once()

	_, err := service.Info(context.Background(), 77)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestManagerService_SquadResolvesPicks(t *testing.T) {
	t.Parallel()

	service, gateway := newManagerForTest(t)
	gateway.On("FetchEntryPicks", mock.Anything, 42, 10).Return(squadOf(9, 7), nil).Once()

	got, err := service.Squad(context.Background(), 42, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 9, got[0].ID)
	assert.Equal(t, 7, got[1].ID)
}

func TestManagerService_TransfersFiltersGameweek(t *testing.T) {
	t.Parallel()

	service, gateway := newManagerForTest(t)
	gateway.On("FetchEntryTransfers", mock.Anything, 42).Return([]manager.Transfer{
		{ElementIn: 8, ElementOut: 11, Event: 9},
		{ElementIn: 10, ElementOut: 7, Event: 10},
	}, nil).Once()

	got, err := service.Transfers(context.Background(), 42, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dan Green", got[0].In.Name)
	assert.Equal(t, "Alice Smith", got[0].Out.Name)
}

func TestManagerService_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	service, _ := newManagerForTest(t)
	ctx := context.Background()

	_, err := service.History(ctx, -1)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = service.Picks(ctx, 42, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
