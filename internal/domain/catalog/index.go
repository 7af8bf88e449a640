package catalog

import (
	"strings"

	"github.com/riskibarqy/fpl-insights/internal/domain/player"
	"github.com/riskibarqy/fpl-insights/internal/domain/team"
)

// Index holds O(1) lookups derived from one Snapshot. It is immutable after
// construction and safe for concurrent readers.
type Index struct {
	snapshot      Snapshot
	players       map[int]player.Player
	teams         map[int]team.Team
	positions     map[int]player.PositionType
	positionCodes map[player.Position]int
	teamNames     map[string]int
}

func NewIndex(snapshot Snapshot) *Index {
	idx := &Index{
		snapshot:      snapshot,
		players:       make(map[int]player.Player, len(snapshot.Players)),
		teams:         make(map[int]team.Team, len(snapshot.Teams)),
		positions:     make(map[int]player.PositionType, len(snapshot.PositionTypes)),
		positionCodes: make(map[player.Position]int, len(snapshot.PositionTypes)),
		teamNames:     make(map[string]int, len(snapshot.Teams)),
	}
	for _, p := range snapshot.Players {
		idx.players[p.ID] = p
	}
	for _, t := range snapshot.Teams {
		idx.teams[t.ID] = t
		idx.teamNames[strings.ToLower(strings.TrimSpace(t.Name))] = t.ID
	}
	for _, pos := range snapshot.PositionTypes {
		idx.positions[pos.ID] = pos
		idx.positionCodes[player.NormalizePosition(string(pos.ShortName))] = pos.ID
	}
	return idx
}

func (i *Index) Snapshot() Snapshot {
	return i.snapshot
}

// Players returns the catalog players in upstream order.
func (i *Index) Players() []player.Player {
	return i.snapshot.Players
}

func (i *Index) Player(id int) (player.Player, bool) {
	p, ok := i.players[id]
	return p, ok
}

func (i *Index) Team(id int) (team.Team, bool) {
	t, ok := i.teams[id]
	return t, ok
}

func (i *Index) Position(id int) (player.PositionType, bool) {
	p, ok := i.positions[id]
	return p, ok
}

func (i *Index) PlayersByID() map[int]player.Player {
	return i.players
}

func (i *Index) TeamsByID() map[int]team.Team {
	return i.teams
}

func (i *Index) PositionsByID() map[int]player.PositionType {
	return i.positions
}

// PositionIDForCode resolves GK/DEF/MID/FWD case-insensitively. Unknown codes
// report false rather than failing.
func (i *Index) PositionIDForCode(code string) (int, bool) {
	id, ok := i.positionCodes[player.NormalizePosition(code)]
	return id, ok
}

// TeamIDForName resolves a full club name case-insensitively.
func (i *Index) TeamIDForName(name string) (int, bool) {
	id, ok := i.teamNames[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// SearchPlayers does a case-insensitive substring match on the full name.
func (i *Index) SearchPlayers(query string) []player.Player {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]player.Player, 0, 8)
	for _, p := range i.snapshot.Players {
		if strings.Contains(strings.ToLower(p.FullName()), needle) {
			out = append(out, p)
		}
	}
	return out
}

// PlayersByTeam returns the team's players in catalog order.
func (i *Index) PlayersByTeam(teamID int) []player.Player {
	out := make([]player.Player, 0, 32)
	for _, p := range i.snapshot.Players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}
