package league

// Standing is one row in a classic league table.
type Standing struct {
	Entry      int
	EntryName  string
	PlayerName string
	Rank       int
	LastRank   int
	Total      int
	EventTotal int
}

// StandingsPage is one page of classic league standings.
type StandingsPage struct {
	LeagueID   int
	LeagueName string
	Page       int
	HasNext    bool
	Results    []Standing
}
