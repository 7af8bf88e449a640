package player

import (
	"fmt"
	"strings"
)

// Position is the short code of an FPL element type.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// positionAliases maps upstream spellings onto the canonical codes.
var positionAliases = map[string]Position{
	"GKP": PositionGoalkeeper,
}

// NormalizePosition upper-cases and trims a position code and folds the
// upstream "GKP" spelling into GK.
func NormalizePosition(raw string) Position {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if alias, ok := positionAliases[code]; ok {
		return alias
	}
	return Position(code)
}

// PositionType is an element type from the bootstrap payload.
type PositionType struct {
	ID           int
	ShortName    Position
	SingularName string
}

// Player is an FPL element. NowCost is expressed in tenths of a million.
type Player struct {
	ID                int
	FirstName         string
	SecondName        string
	WebName           string
	TeamID            int
	PositionTypeID    int
	NowCost           int
	TotalPoints       int
	Minutes           int
	GoalsScored       int
	Assists           int
	SelectedByPercent string
	Form              string
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.SecondName)
}

// Price returns NowCost in millions.
func (p Player) Price() float64 {
	return float64(p.NowCost) / 10.0
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.NowCost < 0 {
		return fmt.Errorf("player %d cost must not be negative", p.ID)
	}
	return nil
}

// GameweekHistory is one row of a player's per-gameweek history.
type GameweekHistory struct {
	Round       int
	Fixture     int
	TotalPoints int
	Minutes     int
}
