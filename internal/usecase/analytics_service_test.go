package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/riskibarqy/fpl-insights/internal/domain/fixture"
	usecasemock "github.com/riskibarqy/fpl-insights/internal/mocks/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsForTest(t *testing.T) (*AnalyticsService, *usecasemock.Gateway) {
	t.Helper()

	gateway := usecasemock.NewGateway(t)
	return NewAnalyticsService(newTestCatalog(gateway)), gateway
}

func TestAnalyticsService_TopPlayers(t *testing.T) {
	t.Parallel()

	service, _ := newAnalyticsForTest(t)
	ctx := context.Background()

	for _, limit := range []int{1, 3, 7, 50} {
		got, err := service.TopPlayers(ctx, limit)
		if err != nil {
			t.Fatalf("top players limit=%d: %v", limit, err)
		}
		want := limit
		if want > 7 {
			want = 7
		}
		if len(got) != want {
			t.Fatalf("unexpected length: got=%d want=%d", len(got), want)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Points > got[i-1].Points {
				t.Fatalf("not sorted at %d: %d > %d", i, got[i].Points, got[i-1].Points)
			}
		}
	}

	got, err := service.TopPlayers(ctx, 7)
	require.NoError(t, err)
	ids := make([]int, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	// Alice, Eve and Gus tie on 80 points and keep catalog order.
	assert.Equal(t, []int{8, 9, 10, 7, 11, 13, 12}, ids)
}

func TestAnalyticsService_TopPlayersRejectsNonPositiveLimit(t *testing.T) {
	t.Parallel()

	service, _ := newAnalyticsForTest(t)
	for _, limit := range []int{0, -3} {
		if _, err := service.TopPlayers(context.Background(), limit); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for limit=%d, got=%v", limit, err)
		}
	}
}

func TestAnalyticsService_TopPlayersByPosition(t *testing.T) {
	t.Parallel()

	service, _ := newAnalyticsForTest(t)
	ctx := context.Background()

	got, err := service.TopPlayersByPosition(ctx, "def", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 10, got[0].ID)
	assert.Equal(t, 7, got[1].ID)
	assert.Equal(t, 11, got[2].ID)
	for _, p := range got {
		assert.Equal(t, "DEF", p.Position)
	}

	unknown, err := service.TopPlayersByPosition(ctx, "SWEEPER", 3)
	require.NoError(t, err)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestAnalyticsService_TopValuePicks(t *testing.T) {
	t.Parallel()

	service, _ := newAnalyticsForTest(t)

	got, err := service.TopValuePicks(context.Background(), 10, DefaultValueMinMinutes)
	require.NoError(t, err)

	ids := make([]int, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
		if p.ID == 11 || p.ID == 12 {
			t.Fatalf("player %d must be excluded", p.ID)
		}
		want := math.Round(float64(p.Points)/(p.Price*10)*100) / 100
		if p.PPM != want {
			t.Fatalf("unexpected ppm for %d: got=%v want=%v", p.ID, p.PPM, want)
		}
	}
	assert.Equal(t, []int{10, 13, 9, 8, 7}, ids)
	assert.Equal(t, 2.0, got[0].PPM)
	assert.Equal(t, 1.45, got[4].PPM)

	limited, err := service.TopValuePicks(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, 10, limited[0].ID)

	_, err = service.TopValuePicks(context.Background(), 5, -1)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestDifficultyForStrength_IsTotal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		strength int
		bucket   int
		label    string
	}{
		{strength: 0, bucket: 1, label: DifficultyEasy},
		{strength: 1, bucket: 1, label: DifficultyEasy},
		{strength: 99, bucket: 1, label: DifficultyEasy},
		{strength: 250, bucket: 2, label: DifficultyEasy},
		{strength: 300, bucket: 3, label: DifficultyMedium},
		{strength: 450, bucket: 4, label: DifficultyHard},
		{strength: 500, bucket: 5, label: DifficultyHard},
		{strength: 1350, bucket: 5, label: DifficultyHard},
	}
	for _, tc := range cases {
		bucket, label := DifficultyForStrength(tc.strength)
		if bucket != tc.bucket || label != tc.label {
			t.Fatalf("strength=%d: got=(%d,%s) want=(%d,%s)", tc.strength, bucket, label, tc.bucket, tc.label)
		}
	}
	for strength := 1; strength <= 600; strength++ {
		if _, label := DifficultyForStrength(strength); label == "" {
			t.Fatalf("strength=%d produced an unmapped bucket", strength)
		}
	}
}

func TestAnalyticsService_FixtureDifficultyUsesUpstreamOrder(t *testing.T) {
	t.Parallel()

	service, gateway := newAnalyticsForTest(t)
	gateway.On("FetchFixtures", mock.Anything).Return(testFixtures(), nil).Once()

	got, err := service.FixtureDifficulty(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Blues", got[0].Opponent)
	assert.Equal(t, DifficultyEasy, got[0].Difficulty)
	assert.True(t, got[0].Home)
	assert.Equal(t, "Greens", got[1].Opponent)
	assert.Equal(t, 1, got[1].Bucket)
	assert.Equal(t, 11, *got[1].Gameweek)
	assert.False(t, got[1].Home)

	all, err := service.FixtureDifficulty(context.Background(), 5, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, DifficultyHard, all[0].Difficulty)
	assert.Nil(t, all[2].Gameweek)
}

func TestAnalyticsService_FixtureDifficultyDoesNotSortByGameweek(t *testing.T) {
	t.Parallel()

	service, gateway := newAnalyticsForTest(t)
	rescheduled := []fixture.Fixture{
		{ID: 1, Event: intPtr(12), TeamH: 3, TeamA: 9},
		{ID: 2, Event: intPtr(10), TeamH: 5, TeamA: 3},
	}
	gateway.On("FetchFixtures", mock.Anything).Return(rescheduled, nil).Once()

	got, err := service.FixtureDifficulty(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 12, *got[0].Gameweek)
	assert.Equal(t, 10, *got[1].Gameweek)
}

func TestAnalyticsService_FixtureDifficultyValidation(t *testing.T) {
	t.Parallel()

	service, _ := newAnalyticsForTest(t)

	_, err := service.FixtureDifficulty(context.Background(), 3, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = service.FixtureDifficulty(context.Background(), 99, 5)
	assert.True(t, errors.Is(err, ErrNotFound))
}
