package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fpl-insights/internal/domain/catalog"
	"github.com/riskibarqy/fpl-insights/internal/domain/player"
)

const (
	DefaultValueMinMinutes = 900
	transferCandidatePool  = 30
)

// Fixture difficulty labels.
const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MED"
	DifficultyHard   = "HARD"
)

var difficultyByBucket = map[int]string{
	1: DifficultyEasy,
	2: DifficultyEasy,
	3: DifficultyMedium,
	4: DifficultyHard,
	5: DifficultyHard,
}

// ValuePick is a player ranked by points per cost unit. PPM is computed on
// the raw tenths cost.
type ValuePick struct {
	RankedPlayer
	PPM float64 `json:"ppm"`
}

type FixtureRating struct {
	Gameweek   *int   `json:"gw"`
	Opponent   string `json:"opponent"`
	Home       bool   `json:"home"`
	Bucket     int    `json:"bucket"`
	Difficulty string `json:"fdr"`
}

// AnalyticsService ranks and classifies catalog data.
type AnalyticsService struct {
	catalog *CatalogService
}

func NewAnalyticsService(catalog *CatalogService) *AnalyticsService {
	return &AnalyticsService{catalog: catalog}
}

// TopPlayers ranks every player by season points. Ties keep catalog order.
func (s *AnalyticsService) TopPlayers(ctx context.Context, limit int) ([]RankedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TopPlayers")
	defer span.End()

	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	return EnrichPlayerList(idx, rankByPoints(idx.Players(), limit))
}

// TopPlayersByPosition returns an empty list for an unknown position code.
func (s *AnalyticsService) TopPlayersByPosition(ctx context.Context, code string, limit int) ([]RankedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TopPlayersByPosition")
	defer span.End()

	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	positionID, ok := idx.PositionIDForCode(code)
	if !ok {
		return []RankedPlayer{}, nil
	}

	filtered := make([]player.Player, 0, 128)
	for _, p := range idx.Players() {
		if p.PositionTypeID == positionID {
			filtered = append(filtered, p)
		}
	}
	return EnrichPlayerList(idx, rankByPoints(filtered, limit))
}

func (s *AnalyticsService) TopValuePicks(ctx context.Context, limit, minMinutes int) ([]ValuePick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TopValuePicks")
	defer span.End()

	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1", ErrInvalidInput)
	}
	if minMinutes < 0 {
		return nil, fmt.Errorf("%w: min minutes must not be negative", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	return rankByValue(idx, limit, minMinutes)
}

// FixtureDifficulty rates the team's next fixtures in upstream list order,
// which is not always chronological.
func (s *AnalyticsService) FixtureDifficulty(ctx context.Context, teamID, nextN int) ([]FixtureRating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.FixtureDifficulty")
	defer span.End()

	if nextN < 1 {
		return nil, fmt.Errorf("%w: next must be at least 1", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := idx.Team(teamID); !ok {
		return nil, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	fixtures, err := s.catalog.Fixtures(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]FixtureRating, 0, nextN)
	for _, f := range fixtures {
		if len(out) == nextN {
			break
		}
		if !f.Involves(teamID) {
			continue
		}
		opponent, ok := idx.Team(f.Opponent(teamID))
		if !ok {
			return nil, fmt.Errorf("%w: team=%d", ErrNotFound, f.Opponent(teamID))
		}
		bucket, label := DifficultyForStrength(opponent.Strength)
		out = append(out, FixtureRating{
			Gameweek:   f.Event,
			Opponent:   opponent.Name,
			Home:       f.TeamH == teamID,
			Bucket:     bucket,
			Difficulty: label,
		})
	}
	return out, nil
}

// DifficultyForStrength buckets strength/100 into 1..5. A zero bucket is
// treated as 1 and anything above 5 as 5.
func DifficultyForStrength(strength int) (int, string) {
	bucket := strength / 100
	if bucket < 1 {
		bucket = 1
	}
	if bucket > 5 {
		bucket = 5
	}
	return bucket, difficultyByBucket[bucket]
}

func rankByPoints(players []player.Player, limit int) []player.Player {
	ranked := make([]player.Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPoints > ranked[j].TotalPoints
	})
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

func rankByValue(idx *catalog.Index, limit, minMinutes int) ([]ValuePick, error) {
	eligible := make([]player.Player, 0, 256)
	for _, p := range idx.Players() {
		if p.Minutes >= minMinutes && p.NowCost > 0 {
			eligible = append(eligible, p)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return pointsPerCost(eligible[i]) > pointsPerCost(eligible[j])
	})
	if limit < len(eligible) {
		eligible = eligible[:limit]
	}

	out := make([]ValuePick, 0, len(eligible))
	for _, p := range eligible {
		display, err := displayPlayer(idx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, ValuePick{
			RankedPlayer: RankedPlayer{DisplayPlayer: display, Points: p.TotalPoints},
			PPM:          roundTo(pointsPerCost(p), 2),
		})
	}
	return out, nil
}

func pointsPerCost(p player.Player) float64 {
	return float64(p.TotalPoints) / float64(p.NowCost)
}
