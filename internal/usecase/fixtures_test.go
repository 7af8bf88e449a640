package usecase

import (
	"github.com/riskibarqy/fpl-insights/internal/domain/catalog"
	"github.com/riskibarqy/fpl-insights/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insights/internal/domain/player"
	"github.com/riskibarqy/fpl-insights/internal/domain/team"
	usecasemock "github.com/riskibarqy/fpl-insights/internal/mocks/usecase"
	"github.com/riskibarqy/fpl-insights/internal/platform/cache"
	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func testSnapshot() catalog.Snapshot {
	return catalog.Snapshot{
		Players: []player.Player{
			{ID: 7, FirstName: "Alice", SecondName: "Smith", TeamID: 3, PositionTypeID: 2, NowCost: 55, TotalPoints: 80, Minutes: 1800},
			{ID: 8, FirstName: "Bob", SecondName: "Jones", TeamID: 5, PositionTypeID: 3, NowCost: 100, TotalPoints: 150, Minutes: 2500},
			{ID: 9, FirstName: "Carla", SecondName: "Smithers", TeamID: 3, PositionTypeID: 4, NowCost: 75, TotalPoints: 120, Minutes: 2000},
			{ID: 10, FirstName: "Dan", SecondName: "Green", TeamID: 9, PositionTypeID: 2, NowCost: 45, TotalPoints: 90, Minutes: 2000},
			{ID: 11, FirstName: "Eve", SecondName: "Brown", TeamID: 5, PositionTypeID: 2, NowCost: 50, TotalPoints: 80, Minutes: 500},
			{ID: 12, FirstName: "Finn", SecondName: "Free", TeamID: 9, PositionTypeID: 2, NowCost: 0, TotalPoints: 0, Minutes: 1000},
			{ID: 13, FirstName: "Gus", SecondName: "Keeper", TeamID: 5, PositionTypeID: 1, NowCost: 40, TotalPoints: 80, Minutes: 2700},
		},
		Teams: []team.Team{
			{ID: 3, Name: "Reds", ShortName: "RED", Strength: 400},
			{ID: 5, Name: "Blues", ShortName: "BLU", Strength: 250},
			{ID: 9, Name: "Greens", ShortName: "GRN", Strength: 50},
		},
		PositionTypes: []player.PositionType{
			{ID: 1, ShortName: player.PositionGoalkeeper, SingularName: "Goalkeeper"},
			{ID: 2, ShortName: player.PositionDefender, SingularName: "Defender"},
			{ID: 3, ShortName: player.PositionMidfielder, SingularName: "Midfielder"},
			{ID: 4, ShortName: player.PositionForward, SingularName: "Forward"},
		},
		Events: []catalog.Event{
			{ID: 10, Name: "Gameweek 10", IsCurrent: true},
		},
	}
}

func testIndex() *catalog.Index {
	return catalog.NewIndex(testSnapshot())
}

func intPtr(v int) *int {
	return &v
}

func testFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{ID: 100, Event: intPtr(10), TeamH: 3, TeamA: 5, KickoffTime: "2024-11-02T15:00:00Z", Finished: false},
		{ID: 101, Event: intPtr(12), TeamH: 5, TeamA: 9, TeamHScore: intPtr(2), TeamAScore: intPtr(1), KickoffTime: "2024-11-09T17:30:00Z", Finished: true},
		{ID: 102, Event: intPtr(11), TeamH: 9, TeamA: 3, KickoffTime: "2024-11-23T12:30:00Z"},
		{ID: 103, Event: nil, TeamH: 5, TeamA: 3},
	}
}

// newTestCatalog wires a catalog whose bootstrap is served by gateway. Tests
// that fail validation never reach the catalog, so the fetch is optional; the
// cache keeps it to one call when it does happen.
func newTestCatalog(gateway *usecasemock.Gateway) *CatalogService {
	gateway.On("FetchBootstrap", mock.Anything).Return(testSnapshot(), nil).Maybe()
	return NewCatalogService(gateway, cache.NewStore(0), logging.NewNop())
}
