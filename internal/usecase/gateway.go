package usecase

import (
	"context"

	"github.com/riskibarqy/fpl-insights/internal/domain/catalog"
	"github.com/riskibarqy/fpl-insights/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insights/internal/domain/league"
	"github.com/riskibarqy/fpl-insights/internal/domain/live"
	"github.com/riskibarqy/fpl-insights/internal/domain/manager"
	"github.com/riskibarqy/fpl-insights/internal/domain/player"
)

// Gateway is the upstream FPL API. Implementations make exactly one attempt
// per call, never cache, and wrap transport failures in
// ErrDependencyUnavailable and unknown resources in ErrNotFound.
type Gateway interface {
	FetchBootstrap(ctx context.Context) (catalog.Snapshot, error)
	FetchFixtures(ctx context.Context) ([]fixture.Fixture, error)
	FetchEntry(ctx context.Context, managerID int) (manager.Entry, error)
	FetchEntryHistory(ctx context.Context, managerID int) (manager.History, error)
	FetchEntryPicks(ctx context.Context, managerID, gameweek int) (manager.Picks, error)
	FetchEntryTransfers(ctx context.Context, managerID int) ([]manager.Transfer, error)
	FetchLive(ctx context.Context, gameweek int) ([]live.Stat, error)
	FetchClassicStandings(ctx context.Context, leagueID, page int) (league.StandingsPage, error)
	FetchElementSummary(ctx context.Context, playerID int) ([]player.GameweekHistory, error)
}
