package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-insights/internal/domain/live"
	usecasemock "github.com/riskibarqy/fpl-insights/internal/mocks/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEnrichmentForTest(t *testing.T) (*EnrichmentService, *usecasemock.Gateway) {
	t.Helper()

	gateway := usecasemock.NewGateway(t)
	return NewEnrichmentService(gateway, newTestCatalog(gateway)), gateway
}

func TestEnrichmentService_PlayerLookups(t *testing.T) {
	t.Parallel()

	service, _ := newEnrichmentForTest(t)
	ctx := context.Background()

	got, err := service.Player(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Carla Smithers", got.Name)
	assert.Equal(t, "FWD", got.Position)

	_, err = service.Player(ctx, 404)
	assert.True(t, errors.Is(err, ErrNotFound))

	found, err := service.SearchPlayers(ctx, "SMITH")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, 7, found[0].ID)
	assert.Equal(t, 9, found[1].ID)

	_, err = service.SearchPlayers(ctx, "  ")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEnrichmentService_TeamLookups(t *testing.T) {
	t.Parallel()

	service, _ := newEnrichmentForTest(t)
	ctx := context.Background()

	summary, err := service.TeamSummary(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, TeamSummary{ID: 5, Name: "Blues", ShortName: "BLU", Strength: 250}, summary)

	_, err = service.TeamSummary(ctx, 99)
	assert.True(t, errors.Is(err, ErrNotFound))

	byID, err := service.PlayersByTeam(ctx, 3)
	require.NoError(t, err)
	require.Len(t, byID, 2)

	byName, err := service.PlayersByTeamName(ctx, "reds")
	require.NoError(t, err)
	assert.Equal(t, byID, byName)

	_, err = service.PlayersByTeamName(ctx, "Purples")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEnrichmentService_TeamFixturesUsesCachedList(t *testing.T) {
	t.Parallel()

	service, gateway := newEnrichmentForTest(t)
	gateway.On("FetchFixtures", mock.Anything).Return(testFixtures(), nil).Once()
	ctx := context.Background()

	first, err := service.TeamFixtures(ctx, 3)
	require.NoError(t, err)
	second, err := service.TeamFixtures(ctx, 9)
	require.NoError(t, err)

	assert.Len(t, first, 3)
	assert.Len(t, second, 2)
}

func TestEnrichmentService_LiveScoresAreFetchedEveryCall(t *testing.T) {
	t.Parallel()

	service, gateway := newEnrichmentForTest(t)
	gateway.On("FetchLive", mock.Anything, 10).Return([]live.Stat{{PlayerID: 7, TotalPoints: 3}}, nil).Twice()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := service.LiveScores(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
	}

	_, err := service.LiveScores(ctx, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEnrichmentService_RecentForm(t *testing.T) {
	t.Parallel()

	service, gateway := newEnrichmentForTest(t)
	gateway.On("FetchElementSummary", mock.Anything, 8).Return(historyOf(1, 2, 3, 4, 5, 7), nil).Once()
	gateway.On("FetchElementSummary", mock.Anything, 9).Return(historyOf(), nil).Once()
	ctx := context.Background()

	got, err := service.RecentForm(ctx, 8, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 7}, got.Points)
	assert.Equal(t, 5.33, got.Average)

	empty, err := service.RecentForm(ctx, 9, 5)
	require.NoError(t, err)
	assert.Empty(t, empty.Points)
	assert.Equal(t, 0.0, empty.Average)

	_, err = service.RecentForm(ctx, 8, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
