package catalog

import (
	"github.com/riskibarqy/fpl-insights/internal/domain/player"
	"github.com/riskibarqy/fpl-insights/internal/domain/team"
)

// Event is a season gameweek as listed in the bootstrap payload.
type Event struct {
	ID           int
	Name         string
	DeadlineTime string
	IsPrevious   bool
	IsCurrent    bool
	IsNext       bool
	Finished     bool
}

// Snapshot is the bootstrap payload. It is always replaced as a whole.
type Snapshot struct {
	Players       []player.Player
	Teams         []team.Team
	PositionTypes []player.PositionType
	Events        []Event
}

// CurrentEvent returns the gameweek flagged as current, falling back to the
// next one when the season has not started yet.
func (s Snapshot) CurrentEvent() (Event, bool) {
	var next *Event
	for i := range s.Events {
		if s.Events[i].IsCurrent {
			return s.Events[i], true
		}
		if s.Events[i].IsNext && next == nil {
			next = &s.Events[i]
		}
	}
	if next != nil {
		return *next, true
	}
	return Event{}, false
}
