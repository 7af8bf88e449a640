package fixture

// Fixture is a single Premier League match. Event is nil while the match is
// unscheduled; scores stay nil until the match has been played.
type Fixture struct {
	ID          int
	Event       *int
	TeamH       int
	TeamA       int
	TeamHScore  *int
	TeamAScore  *int
	KickoffTime string
	Started     bool
	Finished    bool
}

// Involves reports whether the team plays home or away in the fixture.
func (f Fixture) Involves(teamID int) bool {
	return f.TeamH == teamID || f.TeamA == teamID
}

// Opponent returns the other side of the fixture for teamID.
func (f Fixture) Opponent(teamID int) int {
	if f.TeamH == teamID {
		return f.TeamA
	}
	return f.TeamH
}

func (f Fixture) Gameweek() int {
	if f.Event == nil {
		return 0
	}
	return *f.Event
}

// FilterByTeam keeps fixtures involving teamID in their original order.
func FilterByTeam(items []Fixture, teamID int) []Fixture {
	out := make([]Fixture, 0, 38)
	for _, item := range items {
		if item.Involves(teamID) {
			out = append(out, item)
		}
	}
	return out
}
