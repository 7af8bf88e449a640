package catalog

import (
	"testing"

	"github.com/riskibarqy/fpl-insights/internal/domain/player"
	"github.com/riskibarqy/fpl-insights/internal/domain/team"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Players: []player.Player{
			{ID: 7, FirstName: "Alice", SecondName: "Smith", TeamID: 3, PositionTypeID: 2, NowCost: 55},
			{ID: 8, FirstName: "Bob", SecondName: "Jones", TeamID: 5, PositionTypeID: 3, NowCost: 80},
			{ID: 9, FirstName: "Carla", SecondName: "Smithers", TeamID: 3, PositionTypeID: 4, NowCost: 70},
		},
		Teams: []team.Team{
			{ID: 3, Name: "Reds", Strength: 420},
			{ID: 5, Name: "Blues", Strength: 250},
		},
		PositionTypes: []player.PositionType{
			{ID: 1, ShortName: player.PositionGoalkeeper},
			{ID: 2, ShortName: player.PositionDefender},
			{ID: 3, ShortName: player.PositionMidfielder},
			{ID: 4, ShortName: player.PositionForward},
		},
	}
}

func TestIndex_PositionIDForCode_IsCaseInsensitive(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testSnapshot())
	for _, code := range []string{"def", "DEF", " Def "} {
		id, ok := idx.PositionIDForCode(code)
		if !ok || id != 2 {
			t.Fatalf("PositionIDForCode(%q) = %d,%v want 2,true", code, id, ok)
		}
	}

	if _, ok := idx.PositionIDForCode("GOALIE"); ok {
		t.Fatalf("expected unknown code to report not found")
	}
}

func TestIndex_Lookups(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testSnapshot())
	if p, ok := idx.Player(7); !ok || p.FullName() != "Alice Smith" {
		t.Fatalf("unexpected player lookup: %+v %v", p, ok)
	}
	if _, ok := idx.Player(99); ok {
		t.Fatalf("expected missing player")
	}
	if got := len(idx.PlayersByID()); got != 3 {
		t.Fatalf("unexpected players map size: %d", got)
	}
	if tm, ok := idx.TeamsByID()[5]; !ok || tm.Name != "Blues" {
		t.Fatalf("unexpected team lookup: %+v", tm)
	}
	if id, ok := idx.TeamIDForName("reds"); !ok || id != 3 {
		t.Fatalf("unexpected team name lookup: %d %v", id, ok)
	}
}

func TestIndex_SearchPlayers(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testSnapshot())
	got := idx.SearchPlayers("smith")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got=%d", len(got))
	}
	if got[0].ID != 7 || got[1].ID != 9 {
		t.Fatalf("expected catalog order, got=%d,%d", got[0].ID, got[1].ID)
	}

	byTeam := idx.PlayersByTeam(3)
	if len(byTeam) != 2 {
		t.Fatalf("expected 2 players for team 3, got=%d", len(byTeam))
	}
}

func TestIndex_PositionIDForCode_FoldsUpstreamGoalkeeperCode(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.PositionTypes[0].ShortName = player.NormalizePosition("GKP")
	idx := NewIndex(snapshot)

	for _, code := range []string{"GK", "gk", "GKP", "gkp"} {
		id, ok := idx.PositionIDForCode(code)
		if !ok || id != 1 {
			t.Fatalf("PositionIDForCode(%q) = %d,%v want 1,true", code, id, ok)
		}
	}
	if got := snapshot.PositionTypes[0].ShortName; got != player.PositionGoalkeeper {
		t.Fatalf("unexpected short name: got=%s want=%s", got, player.PositionGoalkeeper)
	}
}
