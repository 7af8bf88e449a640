package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/riskibarqy/fpl-insights/internal/domain/catalog"
	"github.com/riskibarqy/fpl-insights/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insights/internal/domain/live"
	"github.com/riskibarqy/fpl-insights/internal/domain/manager"
	"github.com/riskibarqy/fpl-insights/internal/domain/player"
	"github.com/riskibarqy/fpl-insights/internal/domain/team"
)

// DisplayPlayer is a player resolved against the catalog.
type DisplayPlayer struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Position string  `json:"position"`
	Price    float64 `json:"price"`
}

type RankedPlayer struct {
	DisplayPlayer
	Points int `json:"points"`
}

type SquadEntry struct {
	DisplayPlayer
	Multiplier    int  `json:"multiplier"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
}

type DisplayFixture struct {
	Gameweek  *int   `json:"gw"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeScore *int   `json:"h_score"`
	AwayScore *int   `json:"a_score"`
	Kickoff   string `json:"ko"`
	Finished  bool   `json:"finished"`
}

type LiveEntry struct {
	DisplayPlayer
	Points          int    `json:"points"`
	Minutes         int    `json:"minutes"`
	Goals           int    `json:"goals"`
	Assists         int    `json:"assists"`
	Bonus           int    `json:"bonus"`
	BPS             int    `json:"bps"`
	ICTIndex        string `json:"ict_index"`
	ExpectedGoals   string `json:"xg"`
	ExpectedAssists string `json:"xa"`
	InDreamteam     bool   `json:"in_dreamteam"`
}

type TeamSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Strength  int    `json:"strength"`
}

type ManagerLeague struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Rank     int    `json:"rank"`
	LastRank int    `json:"last_rank"`
}

type ManagerInfo struct {
	ID              int             `json:"id"`
	TeamName        string          `json:"team_name"`
	Manager         string          `json:"manager"`
	Region          string          `json:"region"`
	FavouriteTeam   string          `json:"favourite_team"`
	StartedEvent    int             `json:"started_event"`
	CurrentEvent    int             `json:"current_event"`
	OverallPoints   int             `json:"overall_points"`
	OverallRank     int             `json:"overall_rank"`
	GameweekPoints  int             `json:"gameweek_points"`
	GameweekRank    int             `json:"gameweek_rank"`
	Bank            float64         `json:"bank"`
	TeamValue       float64         `json:"team_value"`
	ClassicLeagues  []ManagerLeague `json:"classic_leagues"`
}

// GameweekSummary is a manager's gameweek row with money in millions.
type GameweekSummary struct {
	Gameweek       int     `json:"gw"`
	Points         int     `json:"points"`
	TotalPoints    int     `json:"total_points"`
	Rank           int     `json:"rank"`
	OverallRank    int     `json:"overall_rank"`
	PercentileRank int     `json:"percentile_rank"`
	Bank           float64 `json:"bank"`
	Value          float64 `json:"value"`
	Transfers      int     `json:"transfers"`
	TransfersCost  int     `json:"transfers_cost"`
	PointsOnBench  int     `json:"points_on_bench"`
}

type PastSeason struct {
	Season      string `json:"season"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank"`
}

type ChipPlay struct {
	Name     string `json:"name"`
	Gameweek int    `json:"gw"`
	Date     string `json:"date"`
}

type ManagerHistory struct {
	Current []GameweekSummary `json:"current"`
	Past    []PastSeason      `json:"past"`
	Chips   []ChipPlay        `json:"chips"`
}

type PickView struct {
	Element       int  `json:"element"`
	Position      int  `json:"position"`
	Multiplier    int  `json:"multiplier"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
}

type ManagerPicks struct {
	ActiveChip   string          `json:"active_chip"`
	EntryHistory GameweekSummary `json:"entry_history"`
	Picks        []PickView      `json:"picks"`
}

type DisplayTransfer struct {
	Gameweek int           `json:"gw"`
	Time     string        `json:"time"`
	In       DisplayPlayer `json:"in"`
	Out      DisplayPlayer `json:"out"`
	InCost   float64       `json:"in_cost"`
	OutCost  float64       `json:"out_cost"`
}

// EnrichPlayer resolves the player's team, position and price. Any missing
// reference fails with ErrNotFound.
func EnrichPlayer(idx *catalog.Index, playerID int) (DisplayPlayer, error) {
	p, ok := idx.Player(playerID)
	if !ok {
		return DisplayPlayer{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return displayPlayer(idx, p)
}

func displayPlayer(idx *catalog.Index, p player.Player) (DisplayPlayer, error) {
	t, ok := idx.Team(p.TeamID)
	if !ok {
		return DisplayPlayer{}, fmt.Errorf("%w: team=%d for player=%d", ErrNotFound, p.TeamID, p.ID)
	}
	pos, ok := idx.Position(p.PositionTypeID)
	if !ok {
		return DisplayPlayer{}, fmt.Errorf("%w: position=%d for player=%d", ErrNotFound, p.PositionTypeID, p.ID)
	}
	return DisplayPlayer{
		ID:       p.ID,
		Name:     p.FullName(),
		Team:     t.Name,
		Position: string(pos.ShortName),
		Price:    p.Price(),
	}, nil
}

// EnrichPlayerList enriches players in order and attaches season points.
func EnrichPlayerList(idx *catalog.Index, players []player.Player) ([]RankedPlayer, error) {
	out := make([]RankedPlayer, 0, len(players))
	for _, p := range players {
		item, err := displayPlayer(idx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, RankedPlayer{DisplayPlayer: item, Points: p.TotalPoints})
	}
	return out, nil
}

// ResolvePicks enriches a squad keeping pick order.
func ResolvePicks(idx *catalog.Index, picks []manager.Pick) ([]SquadEntry, error) {
	out := make([]SquadEntry, 0, len(picks))
	for _, pick := range picks {
		item, err := EnrichPlayer(idx, pick.Element)
		if err != nil {
			return nil, err
		}
		out = append(out, SquadEntry{
			DisplayPlayer: item,
			Multiplier:    pick.Multiplier,
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
		})
	}
	return out, nil
}

// EnrichFixturesForTeam keeps the team's fixtures in upstream order. An
// unknown team fails; a known team without fixtures yields an empty list.
func EnrichFixturesForTeam(idx *catalog.Index, fixtures []fixture.Fixture, teamID int) ([]DisplayFixture, error) {
	if _, ok := idx.Team(teamID); !ok {
		return nil, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	items := fixture.FilterByTeam(fixtures, teamID)
	out := make([]DisplayFixture, 0, len(items))
	for _, f := range items {
		home, err := teamName(idx, f.TeamH)
		if err != nil {
			return nil, err
		}
		away, err := teamName(idx, f.TeamA)
		if err != nil {
			return nil, err
		}
		out = append(out, DisplayFixture{
			Gameweek:  f.Event,
			Home:      home,
			Away:      away,
			HomeScore: f.TeamHScore,
			AwayScore: f.TeamAScore,
			Kickoff:   formatKickoff(f.KickoffTime),
			Finished:  f.Finished,
		})
	}
	return out, nil
}

// EnrichLiveScores joins live stats with the catalog, highest points first.
// Equal points keep their upstream order.
func EnrichLiveScores(idx *catalog.Index, stats []live.Stat) ([]LiveEntry, error) {
	out := make([]LiveEntry, 0, len(stats))
	for _, s := range stats {
		item, err := EnrichPlayer(idx, s.PlayerID)
		if err != nil {
			return nil, err
		}
		out = append(out, LiveEntry{
			DisplayPlayer:   item,
			Points:          s.TotalPoints,
			Minutes:         s.Minutes,
			Goals:           s.GoalsScored,
			Assists:         s.Assists,
			Bonus:           s.Bonus,
			BPS:             s.BPS,
			ICTIndex:        s.ICTIndex,
			ExpectedGoals:   s.ExpectedGoals,
			ExpectedAssists: s.ExpectedAssists,
			InDreamteam:     s.InDreamteam,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out, nil
}

// EnrichManagerInfo flattens an entry. A null favourite team renders empty.
func EnrichManagerInfo(idx *catalog.Index, entry manager.Entry) (ManagerInfo, error) {
	favourite := ""
	if entry.FavouriteTeam != nil {
		name, err := teamName(idx, *entry.FavouriteTeam)
		if err != nil {
			return ManagerInfo{}, err
		}
		favourite = name
	}

	leagues := make([]ManagerLeague, 0, len(entry.Leagues))
	for _, l := range entry.Leagues {
		leagues = append(leagues, ManagerLeague{
			ID:       l.ID,
			Name:     l.Name,
			Rank:     l.EntryRank,
			LastRank: l.EntryLastRank,
		})
	}

	return ManagerInfo{
		ID:             entry.ID,
		TeamName:       entry.Name,
		Manager:        joinName(entry.PlayerFirstName, entry.PlayerLastName),
		Region:         entry.PlayerRegionName,
		FavouriteTeam:  favourite,
		StartedEvent:   entry.StartedEvent,
		CurrentEvent:   entry.CurrentEvent,
		OverallPoints:  entry.SummaryOverallPoints,
		OverallRank:    entry.SummaryOverallRank,
		GameweekPoints: entry.SummaryEventPoints,
		GameweekRank:   entry.SummaryEventRank,
		Bank:           tenths(entry.LastDeadlineBank),
		TeamValue:      tenths(entry.LastDeadlineValue),
		ClassicLeagues: leagues,
	}, nil
}

func EnrichManagerHistory(history manager.History) ManagerHistory {
	out := ManagerHistory{
		Current: make([]GameweekSummary, 0, len(history.Current)),
		Past:    make([]PastSeason, 0, len(history.Past)),
		Chips:   make([]ChipPlay, 0, len(history.Chips)),
	}
	for _, row := range history.Current {
		out.Current = append(out.Current, summarizeGameweek(row))
	}
	for _, season := range history.Past {
		out.Past = append(out.Past, PastSeason{
			Season:      season.SeasonName,
			TotalPoints: season.TotalPoints,
			Rank:        season.Rank,
		})
	}
	for _, chip := range history.Chips {
		out.Chips = append(out.Chips, ChipPlay{
			Name:     chip.Name,
			Gameweek: chip.Event,
			Date:     dateOnly(chip.Time),
		})
	}
	return out
}

func EnrichManagerPicks(picks manager.Picks) ManagerPicks {
	out := ManagerPicks{
		ActiveChip:   picks.ActiveChip,
		EntryHistory: summarizeGameweek(picks.EntryHistory),
		Picks:        make([]PickView, 0, len(picks.Picks)),
	}
	for _, p := range picks.Picks {
		out.Picks = append(out.Picks, PickView(p))
	}
	return out
}

// EnrichTransfers resolves both sides of each transfer.
func EnrichTransfers(idx *catalog.Index, transfers []manager.Transfer) ([]DisplayTransfer, error) {
	out := make([]DisplayTransfer, 0, len(transfers))
	for _, t := range transfers {
		in, err := EnrichPlayer(idx, t.ElementIn)
		if err != nil {
			return nil, err
		}
		outPlayer, err := EnrichPlayer(idx, t.ElementOut)
		if err != nil {
			return nil, err
		}
		out = append(out, DisplayTransfer{
			Gameweek: t.Event,
			Time:     formatKickoff(t.Time),
			In:       in,
			Out:      outPlayer,
			InCost:   tenths(t.ElementInCost),
			OutCost:  tenths(t.ElementOutCost),
		})
	}
	return out, nil
}

func summarizeTeam(t team.Team) TeamSummary {
	return TeamSummary{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		Strength:  t.Strength,
	}
}

func summarizeGameweek(row manager.EntryHistory) GameweekSummary {
	return GameweekSummary{
		Gameweek:       row.Event,
		Points:         row.Points,
		TotalPoints:    row.TotalPoints,
		Rank:           row.Rank,
		OverallRank:    row.OverallRank,
		PercentileRank: row.PercentileRank,
		Bank:           tenths(row.Bank),
		Value:          tenths(row.Value),
		Transfers:      row.EventTransfers,
		TransfersCost:  row.EventTransfersCost,
		PointsOnBench:  row.PointsOnBench,
	}
}

func teamName(idx *catalog.Index, teamID int) (string, error) {
	t, ok := idx.Team(teamID)
	if !ok {
		return "", fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return t.Name, nil
}

// formatKickoff trims an ISO timestamp to YYYY-MM-DDTHH:MM.
func formatKickoff(raw string) string {
	if len(raw) <= 16 {
		return raw
	}
	return raw[:16]
}

func dateOnly(raw string) string {
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts.UTC().Format(time.DateOnly)
	}
	if len(raw) >= 10 {
		return raw[:10]
	}
	return raw
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

func tenths(v int) float64 {
	return float64(v) / 10.0
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
