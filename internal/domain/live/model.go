package live

// Stat is a player's live statistics for one gameweek.
type Stat struct {
	PlayerID        int
	Minutes         int
	GoalsScored     int
	Assists         int
	Bonus           int
	BPS             int
	ICTIndex        string
	ExpectedGoals   string
	ExpectedAssists string
	TotalPoints     int
	InDreamteam     bool
}

// PointsByPlayer indexes total points by player id.
func PointsByPlayer(stats []Stat) map[int]int {
	out := make(map[int]int, len(stats))
	for _, s := range stats {
		out[s.PlayerID] = s.TotalPoints
	}
	return out
}
