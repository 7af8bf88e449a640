package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-insights/internal/domain/player"
)

const defaultFormLookback = 5

// PlayerForm is the mean of a player's most recent gameweek points.
type PlayerForm struct {
	Player   DisplayPlayer `json:"player"`
	Lookback int           `json:"lookback"`
	Points   []int         `json:"points"`
	Average  float64       `json:"average"`
}

type EnrichmentService struct {
	gateway Gateway
	catalog *CatalogService
}

func NewEnrichmentService(gateway Gateway, catalog *CatalogService) *EnrichmentService {
	return &EnrichmentService{
		gateway: gateway,
		catalog: catalog,
	}
}

func (s *EnrichmentService) Player(ctx context.Context, playerID int) (DisplayPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.Player")
	defer span.End()

	if playerID <= 0 {
		return DisplayPlayer{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return DisplayPlayer{}, err
	}
	return EnrichPlayer(idx, playerID)
}

// SearchPlayers matches the query against full names, case-insensitively.
func (s *EnrichmentService) SearchPlayers(ctx context.Context, query string) ([]RankedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.SearchPlayers")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	return EnrichPlayerList(idx, idx.SearchPlayers(query))
}

func (s *EnrichmentService) PlayersByTeam(ctx context.Context, teamID int) ([]RankedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.PlayersByTeam")
	defer span.End()

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := idx.Team(teamID); !ok {
		return nil, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return EnrichPlayerList(idx, idx.PlayersByTeam(teamID))
}

// PlayersByTeamName resolves a full club name, ignoring case.
func (s *EnrichmentService) PlayersByTeamName(ctx context.Context, name string) ([]RankedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.PlayersByTeamName")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	teamID, ok := idx.TeamIDForName(name)
	if !ok {
		return nil, fmt.Errorf("%w: team=%q", ErrNotFound, name)
	}
	return EnrichPlayerList(idx, idx.PlayersByTeam(teamID))
}

func (s *EnrichmentService) TeamSummary(ctx context.Context, teamID int) (TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.TeamSummary")
	defer span.End()

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return TeamSummary{}, err
	}
	t, ok := idx.Team(teamID)
	if !ok {
		return TeamSummary{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return summarizeTeam(t), nil
}

func (s *EnrichmentService) TeamFixtures(ctx context.Context, teamID int) ([]DisplayFixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.TeamFixtures")
	defer span.End()

	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	fixtures, err := s.catalog.Fixtures(ctx)
	if err != nil {
		return nil, err
	}
	return EnrichFixturesForTeam(idx, fixtures, teamID)
}

func (s *EnrichmentService) LiveScores(ctx context.Context, gameweek int) ([]LiveEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.LiveScores")
	defer span.End()

	if gameweek <= 0 {
		return nil, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.gateway.FetchLive(ctx, gameweek)
	if err != nil {
		return nil, fmt.Errorf("fetch live scores: %w", err)
	}
	return EnrichLiveScores(idx, stats)
}

// RecentForm averages the player's last lookback gameweeks.
func (s *EnrichmentService) RecentForm(ctx context.Context, playerID, lookback int) (PlayerForm, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.RecentForm")
	defer span.End()

	if lookback <= 0 {
		return PlayerForm{}, fmt.Errorf("%w: lookback must be greater than zero", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return PlayerForm{}, err
	}
	display, err := EnrichPlayer(idx, playerID)
	if err != nil {
		return PlayerForm{}, err
	}

	history, err := s.gateway.FetchElementSummary(ctx, playerID)
	if err != nil {
		return PlayerForm{}, fmt.Errorf("fetch player history: %w", err)
	}
	points := trailingPoints(history, lookback)
	return PlayerForm{
		Player:   display,
		Lookback: lookback,
		Points:   points,
		Average:  averagePoints(points),
	}, nil
}

func trailingPoints(history []player.GameweekHistory, lookback int) []int {
	if lookback > len(history) {
		lookback = len(history)
	}
	tail := history[len(history)-lookback:]
	out := make([]int, 0, len(tail))
	for _, h := range tail {
		out = append(out, h.TotalPoints)
	}
	return out
}

// averagePoints is the mean rounded to 2dp; no appearances averages 0.
func averagePoints(points []int) float64 {
	if len(points) == 0 {
		return 0
	}
	total := 0
	for _, p := range points {
		total += p
	}
	return roundTo(float64(total)/float64(len(points)), 2)
}
