package manager

// Chip names as used by the upstream API.
const (
	ChipWildcard     = "wildcard"
	ChipFreeHit      = "freehit"
	ChipBenchBoost   = "bboost"
	ChipTripleCap    = "3xc"
	ChipAssistantMgr = "manager"
)

// Entry is a fantasy manager's squad profile. It is not a real-world club.
type Entry struct {
	ID                   int
	Name                 string
	PlayerFirstName      string
	PlayerLastName       string
	PlayerRegionName     string
	FavouriteTeam        *int
	StartedEvent         int
	CurrentEvent         int
	SummaryOverallPoints int
	SummaryOverallRank   int
	SummaryEventPoints   int
	SummaryEventRank     int
	LastDeadlineBank     int
	LastDeadlineValue    int
	Leagues              []LeagueRef
}

// LeagueRef is a classic league the manager belongs to.
type LeagueRef struct {
	ID            int
	Name          string
	EntryRank     int
	EntryLastRank int
}

// Pick is one player in a manager's squad for a gameweek.
// Multiplier 0 means benched, 2 captain, 3 triple captain.
type Pick struct {
	Element       int
	Position      int
	Multiplier    int
	IsCaptain     bool
	IsViceCaptain bool
}

// EntryHistory is a manager's summary for one gameweek. Bank and Value are
// in tenths of a million.
type EntryHistory struct {
	Event              int
	Points             int
	TotalPoints        int
	Rank               int
	RankSort           int
	OverallRank        int
	PercentileRank     int
	Bank               int
	Value              int
	EventTransfers     int
	EventTransfersCost int
	PointsOnBench      int
}

// Picks is the manager's squad for a gameweek.
type Picks struct {
	ActiveChip   string
	EntryHistory EntryHistory
	Picks        []Pick
}

// SeasonHistory is a manager's finish in a previous season.
type SeasonHistory struct {
	SeasonName  string
	TotalPoints int
	Rank        int
}

// ChipUsage records a chip played in a gameweek.
type ChipUsage struct {
	Name  string
	Time  string
	Event int
}

// History is the season-long record of a manager.
type History struct {
	Current []EntryHistory
	Past    []SeasonHistory
	Chips   []ChipUsage
}

// Transfer is one transfer made by a manager.
type Transfer struct {
	ElementIn      int
	ElementInCost  int
	ElementOut     int
	ElementOutCost int
	Entry          int
	Event          int
	Time           string
}
