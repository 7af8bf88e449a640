package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-insights/internal/domain/catalog"
	"github.com/riskibarqy/fpl-insights/internal/domain/live"
	"github.com/riskibarqy/fpl-insights/internal/domain/manager"
	"github.com/riskibarqy/fpl-insights/internal/domain/player"
	"github.com/riskibarqy/fpl-insights/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichPlayer_ResolvesCatalogReferences(t *testing.T) {
	t.Parallel()

	got, err := EnrichPlayer(testIndex(), 7)
	if err != nil {
		t.Fatalf("enrich player: %v", err)
	}
	want := DisplayPlayer{ID: 7, Name: "Alice Smith", Team: "Reds", Position: "DEF", Price: 5.5}
	if got != want {
		t.Fatalf("unexpected player: got=%+v want=%+v", got, want)
	}

	again, err := EnrichPlayer(testIndex(), 7)
	if err != nil {
		t.Fatalf("enrich player again: %v", err)
	}
	if again != got {
		t.Fatalf("enrich player is not deterministic: got=%+v want=%+v", again, got)
	}
}

func TestEnrichPlayer_UnknownIDFails(t *testing.T) {
	t.Parallel()

	got, err := EnrichPlayer(testIndex(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
	if got != (DisplayPlayer{}) {
		t.Fatalf("expected zero record on failure, got=%+v", got)
	}
}

func TestEnrichPlayer_MissingTeamFails(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.Teams = []team.Team{{ID: 5, Name: "Blues"}}
	idx := catalog.NewIndex(snapshot)

	if _, err := EnrichPlayer(idx, 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing team, got=%v", err)
	}
}

func TestEnrichPlayerList_PreservesOrderAndAddsPoints(t *testing.T) {
	t.Parallel()

	idx := testIndex()
	players := make([]player.Player, 0, 3)
	for _, id := range []int{9, 7, 8} {
		p, ok := idx.Player(id)
		require.True(t, ok)
		players = append(players, p)
	}

	list, err := EnrichPlayerList(idx, players)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 9, list[0].ID)
	assert.Equal(t, 120, list[0].Points)
	assert.Equal(t, 7, list[1].ID)
	assert.Equal(t, 8, list[2].ID)
}

func TestEnrichPlayerList_KeepsEachRecordIntact(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.Players = append(snapshot.Players,
		player.Player{ID: 7, FirstName: "Alicia", SecondName: "Later", TeamID: 5, PositionTypeID: 3, NowCost: 60, TotalPoints: 12},
	)
	idx := catalog.NewIndex(snapshot)

	list, err := EnrichPlayerList(idx, []player.Player{snapshot.Players[0], snapshot.Players[len(snapshot.Players)-1]})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alice Smith", list[0].Name)
	assert.Equal(t, "Reds", list[0].Team)
	assert.Equal(t, 80, list[0].Points)
	assert.Equal(t, "Alicia Later", list[1].Name)
	assert.Equal(t, "Blues", list[1].Team)
	assert.Equal(t, 12, list[1].Points)
}

func TestResolvePicks_PreservesCountAndOrder(t *testing.T) {
	t.Parallel()

	picks := []manager.Pick{
		{Element: 8, Position: 1, Multiplier: 2, IsCaptain: true},
		{Element: 7, Position: 2, Multiplier: 1, IsViceCaptain: true},
		{Element: 9, Position: 12, Multiplier: 0},
	}

	squad, err := ResolvePicks(testIndex(), picks)
	if err != nil {
		t.Fatalf("resolve picks: %v", err)
	}
	if len(squad) != len(picks) {
		t.Fatalf("unexpected squad size: got=%d want=%d", len(squad), len(picks))
	}
	for i := range picks {
		if squad[i].ID != picks[i].Element {
			t.Fatalf("unexpected order at %d: got=%d want=%d", i, squad[i].ID, picks[i].Element)
		}
	}
	assert.True(t, squad[0].IsCaptain)
	assert.Equal(t, 2, squad[0].Multiplier)
	assert.True(t, squad[1].IsViceCaptain)
	assert.Equal(t, 0, squad[2].Multiplier)
}

func TestResolvePicks_UnknownPlayerFails(t *testing.T) {
	t.Parallel()

	_, err := ResolvePicks(testIndex(), []manager.Pick{{Element: 7}, {Element: 404}})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestEnrichFixturesForTeam_FiltersByTeam(t *testing.T) {
	t.Parallel()

	idx := testIndex()
	fixtures := testFixtures()[:1]

	got, err := EnrichFixturesForTeam(idx, fixtures, 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 10, *got[0].Gameweek)
	assert.Equal(t, "Reds", got[0].Home)
	assert.Equal(t, "Blues", got[0].Away)
	assert.Nil(t, got[0].HomeScore)
	assert.Nil(t, got[0].AwayScore)
	assert.Equal(t, "2024-11-02T15:00", got[0].Kickoff)
	assert.False(t, got[0].Finished)

	empty, err := EnrichFixturesForTeam(idx, fixtures, 9)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)

	_, err = EnrichFixturesForTeam(idx, fixtures, 99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEnrichFixturesForTeam_KeepsUpstreamOrderAndScores(t *testing.T) {
	t.Parallel()

	got, err := EnrichFixturesForTeam(testIndex(), testFixtures(), 5)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, 10, *got[0].Gameweek)
	assert.Equal(t, 12, *got[1].Gameweek)
	require.NotNil(t, got[1].HomeScore)
	assert.Equal(t, 2, *got[1].HomeScore)
	assert.True(t, got[1].Finished)
	assert.Nil(t, got[2].Gameweek)
	assert.Equal(t, "", got[2].Kickoff)
}

func TestEnrichLiveScores_StableSortByPoints(t *testing.T) {
	t.Parallel()

	stats := []live.Stat{
		{PlayerID: 7, TotalPoints: 6, Minutes: 90},
		{PlayerID: 8, TotalPoints: 10, Minutes: 90, GoalsScored: 1, Bonus: 3},
		{PlayerID: 9, TotalPoints: 6, Minutes: 60},
		{PlayerID: 10, TotalPoints: 2, Minutes: 90},
	}

	got, err := EnrichLiveScores(testIndex(), stats)
	require.NoError(t, err)
	require.Len(t, got, 4)

	ids := []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []int{8, 7, 9, 10}, ids)
	assert.Equal(t, 3, got[0].Bonus)
	assert.Equal(t, "Bob Jones", got[0].Name)
}

func TestEnrichLiveScores_UnknownPlayerFails(t *testing.T) {
	t.Parallel()

	_, err := EnrichLiveScores(testIndex(), []live.Stat{{PlayerID: 404}})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEnrichManagerInfo_FlattensProfile(t *testing.T) {
	t.Parallel()

	entry := manager.Entry{
		ID:                   42,
		Name:                 "Route One",
		PlayerFirstName:      "Sam",
		PlayerLastName:       "Lee",
		FavouriteTeam:        intPtr(3),
		SummaryOverallPoints: 612,
		SummaryOverallRank:   10234,
		CurrentEvent:         10,
		LastDeadlineBank:     15,
		LastDeadlineValue:    1023,
		Leagues: []manager.LeagueRef{
			{ID: 314, Name: "Overall", EntryRank: 10234, EntryLastRank: 11000},
		},
	}

	got, err := EnrichManagerInfo(testIndex(), entry)
	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", got.Manager)
	assert.Equal(t, "Reds", got.FavouriteTeam)
	assert.Equal(t, 1.5, got.Bank)
	assert.Equal(t, 102.3, got.TeamValue)
	require.Len(t, got.ClassicLeagues, 1)
	assert.Equal(t, 10234, got.ClassicLeagues[0].Rank)

	entry.FavouriteTeam = nil
	got, err = EnrichManagerInfo(testIndex(), entry)
	require.NoError(t, err)
	assert.Equal(t, "", got.FavouriteTeam)
}

func TestEnrichManagerHistory_NormalizesMoneyAndDates(t *testing.T) {
	t.Parallel()

	history := manager.History{
		Current: []manager.EntryHistory{
			{Event: 1, Points: 65, TotalPoints: 65, OverallRank: 500000, PercentileRank: 5, Bank: 5, Value: 1000, PointsOnBench: 4},
		},
		Past: []manager.SeasonHistory{{SeasonName: "2023/24", TotalPoints: 2301, Rank: 45000}},
		Chips: []manager.ChipUsage{
			{Name: manager.ChipWildcard, Time: "2024-09-14T09:31:12.512345Z", Event: 4},
			{Name: manager.ChipBenchBoost, Time: "not-a-timestamp", Event: 9},
		},
	}

	got := EnrichManagerHistory(history)
	require.Len(t, got.Current, 1)
	assert.Equal(t, 0.5, got.Current[0].Bank)
	assert.Equal(t, 100.0, got.Current[0].Value)
	assert.Equal(t, 5, got.Current[0].PercentileRank)
	require.Len(t, got.Past, 1)
	assert.Equal(t, "2023/24", got.Past[0].Season)
	require.Len(t, got.Chips, 2)
	assert.Equal(t, "2024-09-14", got.Chips[0].Date)
	assert.Equal(t, "not-a-time", got.Chips[1].Date)
}

func TestEnrichManagerPicks_ReshapesSummary(t *testing.T) {
	t.Parallel()

	picks := manager.Picks{
		ActiveChip:   manager.ChipTripleCap,
		EntryHistory: manager.EntryHistory{Event: 10, Points: 88, Bank: 12, Value: 1015, EventTransfers: 1},
		Picks:        []manager.Pick{{Element: 8, Position: 1, Multiplier: 3, IsCaptain: true}},
	}

	got := EnrichManagerPicks(picks)
	assert.Equal(t, "3xc", got.ActiveChip)
	assert.Equal(t, 1.2, got.EntryHistory.Bank)
	assert.Equal(t, 101.5, got.EntryHistory.Value)
	require.Len(t, got.Picks, 1)
	assert.Equal(t, 3, got.Picks[0].Multiplier)
}

func TestEnrichTransfers_ResolvesBothSides(t *testing.T) {
	t.Parallel()

	transfers := []manager.Transfer{
		{ElementIn: 8, ElementInCost: 101, ElementOut: 11, ElementOutCost: 49, Event: 10, Time: "2024-11-01T18:02:11.123Z"},
	}

	got, err := EnrichTransfers(testIndex(), transfers)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bob Jones", got[0].In.Name)
	assert.Equal(t, "Eve Brown", got[0].Out.Name)
	assert.Equal(t, 10.1, got[0].InCost)
	assert.Equal(t, 4.9, got[0].OutCost)
	assert.Equal(t, "2024-11-01T18:02", got[0].Time)
}
