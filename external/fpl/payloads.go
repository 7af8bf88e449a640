package fpl

import (
	"strings"

	"github.com/riskibarqy/fpl-insights/internal/domain/catalog"
	"github.com/riskibarqy/fpl-insights/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insights/internal/domain/league"
	"github.com/riskibarqy/fpl-insights/internal/domain/live"
	"github.com/riskibarqy/fpl-insights/internal/domain/manager"
	"github.com/riskibarqy/fpl-insights/internal/domain/player"
	"github.com/riskibarqy/fpl-insights/internal/domain/team"
)

type bootstrapEnvelope struct {
	Elements     []elementItem     `json:"elements"`
	Teams        []teamItem        `json:"teams"`
	ElementTypes []elementTypeItem `json:"element_types"`
	Events       []eventItem       `json:"events"`
}

type elementItem struct {
	ID                int    `json:"id"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	WebName           string `json:"web_name"`
	Team              int    `json:"team"`
	ElementType       int    `json:"element_type"`
	NowCost           int    `json:"now_cost"`
	TotalPoints       int    `json:"total_points"`
	Minutes           int    `json:"minutes"`
	GoalsScored       int    `json:"goals_scored"`
	Assists           int    `json:"assists"`
	SelectedByPercent string `json:"selected_by_percent"`
	Form              string `json:"form"`
}

type teamItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Strength  int    `json:"strength"`
}

type elementTypeItem struct {
	ID                int    `json:"id"`
	SingularName      string `json:"singular_name"`
	SingularNameShort string `json:"singular_name_short"`
}

type eventItem struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	DeadlineTime *string `json:"deadline_time"`
	IsPrevious   bool    `json:"is_previous"`
	IsCurrent    bool    `json:"is_current"`
	IsNext       bool    `json:"is_next"`
	Finished     bool    `json:"finished"`
}

type fixtureItem struct {
	ID          int     `json:"id"`
	Event       *int    `json:"event"`
	TeamH       int     `json:"team_h"`
	TeamA       int     `json:"team_a"`
	TeamHScore  *int    `json:"team_h_score"`
	TeamAScore  *int    `json:"team_a_score"`
	KickoffTime *string `json:"kickoff_time"`
	Started     *bool   `json:"started"`
	Finished    bool    `json:"finished"`
}

type entryItem struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	PlayerFirstName      string `json:"player_first_name"`
	PlayerLastName       string `json:"player_last_name"`
	PlayerRegionName     string `json:"player_region_name"`
	FavouriteTeam        *int   `json:"favourite_team"`
	StartedEvent         int    `json:"started_event"`
	CurrentEvent         *int   `json:"current_event"`
	SummaryOverallPoints *int   `json:"summary_overall_points"`
	SummaryOverallRank   *int   `json:"summary_overall_rank"`
	SummaryEventPoints   *int   `json:"summary_event_points"`
	SummaryEventRank     *int   `json:"summary_event_rank"`
	LastDeadlineBank     *int   `json:"last_deadline_bank"`
	LastDeadlineValue    *int   `json:"last_deadline_value"`
	Leagues              struct {
		Classic []classicLeagueItem `json:"classic"`
	} `json:"leagues"`
}

type classicLeagueItem struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	EntryRank     *int   `json:"entry_rank"`
	EntryLastRank *int   `json:"entry_last_rank"`
}

type entryHistoryItem struct {
	Event              int  `json:"event"`
	Points             int  `json:"points"`
	TotalPoints        int  `json:"total_points"`
	Rank               *int `json:"rank"`
	RankSort           *int `json:"rank_sort"`
	OverallRank        *int `json:"overall_rank"`
	PercentileRank     *int `json:"percentile_rank"`
	Bank               int  `json:"bank"`
	Value              int  `json:"value"`
	EventTransfers     int  `json:"event_transfers"`
	EventTransfersCost int  `json:"event_transfers_cost"`
	PointsOnBench      int  `json:"points_on_bench"`
}

type historyEnvelope struct {
	Current []entryHistoryItem `json:"current"`
	Past    []struct {
		SeasonName  string `json:"season_name"`
		TotalPoints int    `json:"total_points"`
		Rank        int    `json:"rank"`
	} `json:"past"`
	Chips []struct {
		Name  string `json:"name"`
		Time  string `json:"time"`
		Event int    `json:"event"`
	} `json:"chips"`
}

type picksEnvelope struct {
	ActiveChip   *string          `json:"active_chip"`
	EntryHistory entryHistoryItem `json:"entry_history"`
	Picks        []struct {
		Element       int  `json:"element"`
		Position      int  `json:"position"`
		Multiplier    int  `json:"multiplier"`
		IsCaptain     bool `json:"is_captain"`
		IsViceCaptain bool `json:"is_vice_captain"`
	} `json:"picks"`
}

type transferItem struct {
	ElementIn      int    `json:"element_in"`
	ElementInCost  int    `json:"element_in_cost"`
	ElementOut     int    `json:"element_out"`
	ElementOutCost int    `json:"element_out_cost"`
	Entry          int    `json:"entry"`
	Event          int    `json:"event"`
	Time           string `json:"time"`
}

type liveEnvelope struct {
	Elements []struct {
		ID    int `json:"id"`
		Stats struct {
			Minutes         int    `json:"minutes"`
			GoalsScored     int    `json:"goals_scored"`
			Assists         int    `json:"assists"`
			Bonus           int    `json:"bonus"`
			BPS             int    `json:"bps"`
			ICTIndex        string `json:"ict_index"`
			ExpectedGoals   string `json:"expected_goals"`
			ExpectedAssists string `json:"expected_assists"`
			TotalPoints     int    `json:"total_points"`
			InDreamteam     bool   `json:"in_dreamteam"`
		} `json:"stats"`
	} `json:"elements"`
}

type standingsEnvelope struct {
	League struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"league"`
	Standings struct {
		HasNext bool `json:"has_next"`
		Page    int  `json:"page"`
		Results []struct {
			Entry      int    `json:"entry"`
			EntryName  string `json:"entry_name"`
			PlayerName string `json:"player_name"`
			Rank       int    `json:"rank"`
			LastRank   int    `json:"last_rank"`
			Total      int    `json:"total"`
			EventTotal int    `json:"event_total"`
		} `json:"results"`
	} `json:"standings"`
}

type elementSummaryEnvelope struct {
	History []struct {
		Round       int `json:"round"`
		Fixture     int `json:"fixture"`
		TotalPoints int `json:"total_points"`
		Minutes     int `json:"minutes"`
	} `json:"history"`
}

func (b bootstrapEnvelope) toSnapshot() catalog.Snapshot {
	out := catalog.Snapshot{
		Players:       make([]player.Player, 0, len(b.Elements)),
		Teams:         make([]team.Team, 0, len(b.Teams)),
		PositionTypes: make([]player.PositionType, 0, len(b.ElementTypes)),
		Events:        make([]catalog.Event, 0, len(b.Events)),
	}
	for _, e := range b.Elements {
		out.Players = append(out.Players, player.Player{
			ID:                e.ID,
			FirstName:         strings.TrimSpace(e.FirstName),
			SecondName:        strings.TrimSpace(e.SecondName),
			WebName:           strings.TrimSpace(e.WebName),
			TeamID:            e.Team,
			PositionTypeID:    e.ElementType,
			NowCost:           e.NowCost,
			TotalPoints:       e.TotalPoints,
			Minutes:           e.Minutes,
			GoalsScored:       e.GoalsScored,
			Assists:           e.Assists,
			SelectedByPercent: e.SelectedByPercent,
			Form:              e.Form,
		})
	}
	for _, t := range b.Teams {
		out.Teams = append(out.Teams, team.Team{
			ID:        t.ID,
			Name:      strings.TrimSpace(t.Name),
			ShortName: strings.TrimSpace(t.ShortName),
			Strength:  t.Strength,
		})
	}
	for _, et := range b.ElementTypes {
		out.PositionTypes = append(out.PositionTypes, player.PositionType{
			ID:           et.ID,
			ShortName:    player.NormalizePosition(et.SingularNameShort),
			SingularName: et.SingularName,
		})
	}
	for _, ev := range b.Events {
		out.Events = append(out.Events, catalog.Event{
			ID:           ev.ID,
			Name:         ev.Name,
			DeadlineTime: stringValue(ev.DeadlineTime),
			IsPrevious:   ev.IsPrevious,
			IsCurrent:    ev.IsCurrent,
			IsNext:       ev.IsNext,
			Finished:     ev.Finished,
		})
	}
	return out
}

func (f fixtureItem) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:          f.ID,
		Event:       f.Event,
		TeamH:       f.TeamH,
		TeamA:       f.TeamA,
		TeamHScore:  f.TeamHScore,
		TeamAScore:  f.TeamAScore,
		KickoffTime: stringValue(f.KickoffTime),
		Started:     f.Started != nil && *f.Started,
		Finished:    f.Finished,
	}
}

func (e entryItem) toDomain() manager.Entry {
	out := manager.Entry{
		ID:                   e.ID,
		Name:                 e.Name,
		PlayerFirstName:      e.PlayerFirstName,
		PlayerLastName:       e.PlayerLastName,
		PlayerRegionName:     e.PlayerRegionName,
		FavouriteTeam:        e.FavouriteTeam,
		StartedEvent:         e.StartedEvent,
		CurrentEvent:         intValue(e.CurrentEvent),
		SummaryOverallPoints: intValue(e.SummaryOverallPoints),
		SummaryOverallRank:   intValue(e.SummaryOverallRank),
		SummaryEventPoints:   intValue(e.SummaryEventPoints),
		SummaryEventRank:     intValue(e.SummaryEventRank),
		LastDeadlineBank:     intValue(e.LastDeadlineBank),
		LastDeadlineValue:    intValue(e.LastDeadlineValue),
		Leagues:              make([]manager.LeagueRef, 0, len(e.Leagues.Classic)),
	}
	for _, l := range e.Leagues.Classic {
		out.Leagues = append(out.Leagues, manager.LeagueRef{
			ID:            l.ID,
			Name:          l.Name,
			EntryRank:     intValue(l.EntryRank),
			EntryLastRank: intValue(l.EntryLastRank),
		})
	}
	return out
}

func (h entryHistoryItem) toDomain() manager.EntryHistory {
	return manager.EntryHistory{
		Event:              h.Event,
		Points:             h.Points,
		TotalPoints:        h.TotalPoints,
		Rank:               intValue(h.Rank),
		RankSort:           intValue(h.RankSort),
		OverallRank:        intValue(h.OverallRank),
		PercentileRank:     intValue(h.PercentileRank),
		Bank:               h.Bank,
		Value:              h.Value,
		EventTransfers:     h.EventTransfers,
		EventTransfersCost: h.EventTransfersCost,
		PointsOnBench:      h.PointsOnBench,
	}
}

func (h historyEnvelope) toDomain() manager.History {
	out := manager.History{
		Current: make([]manager.EntryHistory, 0, len(h.Current)),
		Past:    make([]manager.SeasonHistory, 0, len(h.Past)),
		Chips:   make([]manager.ChipUsage, 0, len(h.Chips)),
	}
	for _, c := range h.Current {
		out.Current = append(out.Current, c.toDomain())
	}
	for _, p := range h.Past {
		out.Past = append(out.Past, manager.SeasonHistory{SeasonName: p.SeasonName, TotalPoints: p.TotalPoints, Rank: p.Rank})
	}
	for _, c := range h.Chips {
		out.Chips = append(out.Chips, manager.ChipUsage{Name: c.Name, Time: c.Time, Event: c.Event})
	}
	return out
}

func (p picksEnvelope) toDomain() manager.Picks {
	out := manager.Picks{
		ActiveChip:   stringValue(p.ActiveChip),
		EntryHistory: p.EntryHistory.toDomain(),
		Picks:        make([]manager.Pick, 0, len(p.Picks)),
	}
	for _, item := range p.Picks {
		out.Picks = append(out.Picks, manager.Pick{
			Element:       item.Element,
			Position:      item.Position,
			Multiplier:    item.Multiplier,
			IsCaptain:     item.IsCaptain,
			IsViceCaptain: item.IsViceCaptain,
		})
	}
	return out
}

func (t transferItem) toDomain() manager.Transfer {
	return manager.Transfer{
		ElementIn:      t.ElementIn,
		ElementInCost:  t.ElementInCost,
		ElementOut:     t.ElementOut,
		ElementOutCost: t.ElementOutCost,
		Entry:          t.Entry,
		Event:          t.Event,
		Time:           t.Time,
	}
}

func (l liveEnvelope) toDomain() []live.Stat {
	out := make([]live.Stat, 0, len(l.Elements))
	for _, e := range l.Elements {
		out = append(out, live.Stat{
			PlayerID:        e.ID,
			Minutes:         e.Stats.Minutes,
			GoalsScored:     e.Stats.GoalsScored,
			Assists:         e.Stats.Assists,
			Bonus:           e.Stats.Bonus,
			BPS:             e.Stats.BPS,
			ICTIndex:        e.Stats.ICTIndex,
			ExpectedGoals:   e.Stats.ExpectedGoals,
			ExpectedAssists: e.Stats.ExpectedAssists,
			TotalPoints:     e.Stats.TotalPoints,
			InDreamteam:     e.Stats.InDreamteam,
		})
	}
	return out
}

func (s standingsEnvelope) toDomain(leagueID, page int) league.StandingsPage {
	out := league.StandingsPage{
		LeagueID:   leagueID,
		LeagueName: s.League.Name,
		Page:       page,
		HasNext:    s.Standings.HasNext,
		Results:    make([]league.Standing, 0, len(s.Standings.Results)),
	}
	if s.League.ID > 0 {
		out.LeagueID = s.League.ID
	}
	if s.Standings.Page > 0 {
		out.Page = s.Standings.Page
	}
	for _, r := range s.Standings.Results {
		out.Results = append(out.Results, league.Standing{
			Entry:      r.Entry,
			EntryName:  r.EntryName,
			PlayerName: r.PlayerName,
			Rank:       r.Rank,
			LastRank:   r.LastRank,
			Total:      r.Total,
			EventTotal: r.EventTotal,
		})
	}
	return out
}

func (e elementSummaryEnvelope) toDomain() []player.GameweekHistory {
	out := make([]player.GameweekHistory, 0, len(e.History))
	for _, h := range e.History {
		out = append(out, player.GameweekHistory{
			Round:       h.Round,
			Fixture:     h.Fixture,
			TotalPoints: h.TotalPoints,
			Minutes:     h.Minutes,
		})
	}
	return out
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
