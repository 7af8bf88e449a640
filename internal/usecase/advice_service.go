package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/riskibarqy/fpl-insights/internal/domain/live"
	"github.com/sourcegraph/conc/pool"
)

const (
	underperformingForm    = 3.0
	maxTransferSuggestions = 3
	defaultFormConcurrency = 5
)

type CaptainSuggestion struct {
	DisplayPlayer
	LivePoints int `json:"live_points"`
}

type SellCandidate struct {
	DisplayPlayer
	Form float64 `json:"form"`
}

type TransferMove struct {
	Sell SellCandidate `json:"sell"`
	Buy  ValuePick     `json:"buy"`
}

type TransferPlan struct {
	Budget float64        `json:"budget"`
	Moves  []TransferMove `json:"moves"`
}

// AdviceService produces captain and transfer suggestions for one manager.
type AdviceService struct {
	gateway         Gateway
	catalog         *CatalogService
	formConcurrency int
}

func NewAdviceService(gateway Gateway, catalog *CatalogService, formConcurrency int) *AdviceService {
	if formConcurrency <= 0 {
		formConcurrency = defaultFormConcurrency
	}
	return &AdviceService{
		gateway:         gateway,
		catalog:         catalog,
		formConcurrency: formConcurrency,
	}
}

// SuggestCaptain picks the squad member with the most live points. Players
// missing from the live feed count as zero; the first maximum wins.
func (s *AdviceService) SuggestCaptain(ctx context.Context, managerID, gameweek int) (CaptainSuggestion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdviceService.SuggestCaptain")
	defer span.End()

	if err := validateManagerGameweek(managerID, gameweek); err != nil {
		return CaptainSuggestion{}, err
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return CaptainSuggestion{}, err
	}
	picks, err := s.gateway.FetchEntryPicks(ctx, managerID, gameweek)
	if err != nil {
		return CaptainSuggestion{}, fmt.Errorf("fetch manager picks: %w", err)
	}
	if len(picks.Picks) == 0 {
		return CaptainSuggestion{}, fmt.Errorf("%w: no picks for manager=%d gw=%d", ErrNotFound, managerID, gameweek)
	}
	stats, err := s.gateway.FetchLive(ctx, gameweek)
	if err != nil {
		return CaptainSuggestion{}, fmt.Errorf("fetch live scores: %w", err)
	}

	points := live.PointsByPlayer(stats)
	best := picks.Picks[0]
	for _, pick := range picks.Picks[1:] {
		if points[pick.Element] > points[best.Element] {
			best = pick
		}
	}

	display, err := EnrichPlayer(idx, best.Element)
	if err != nil {
		return CaptainSuggestion{}, err
	}
	return CaptainSuggestion{DisplayPlayer: display, LivePoints: points[best.Element]}, nil
}

// SuggestTransfers pairs squad members averaging under 3 points over their
// last 5 gameweeks with the first affordable value pick of the same
// position. Underperformers without a match are skipped.
func (s *AdviceService) SuggestTransfers(ctx context.Context, managerID, gameweek int, extraBudget float64) (TransferPlan, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdviceService.SuggestTransfers")
	defer span.End()

	if err := validateManagerGameweek(managerID, gameweek); err != nil {
		return TransferPlan{}, err
	}
	if extraBudget < 0 || math.IsNaN(extraBudget) || math.IsInf(extraBudget, 0) {
		return TransferPlan{}, fmt.Errorf("%w: budget must be a non-negative number", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return TransferPlan{}, err
	}
	picks, err := s.gateway.FetchEntryPicks(ctx, managerID, gameweek)
	if err != nil {
		return TransferPlan{}, fmt.Errorf("fetch manager picks: %w", err)
	}
	squad, err := ResolvePicks(idx, picks.Picks)
	if err != nil {
		return TransferPlan{}, err
	}

	forms, err := s.squadForm(ctx, squad)
	if err != nil {
		return TransferPlan{}, err
	}
	candidates, err := rankByValue(idx, transferCandidatePool, DefaultValueMinMinutes)
	if err != nil {
		return TransferPlan{}, err
	}

	// Money is compared in tenths to avoid float drift.
	budgetTenths := picks.EntryHistory.Bank + int(math.Round(extraBudget*10))
	owned := make(map[int]struct{}, len(squad))
	for _, member := range squad {
		owned[member.ID] = struct{}{}
	}

	moves := make([]TransferMove, 0, maxTransferSuggestions)
	for i, member := range squad {
		if len(moves) == maxTransferSuggestions {
			break
		}
		if forms[i] >= underperformingForm {
			continue
		}
		for _, candidate := range candidates {
			if _, taken := owned[candidate.ID]; taken {
				continue
			}
			if candidate.Position != member.Position {
				continue
			}
			if priceTenths(candidate.Price) > priceTenths(member.Price)+budgetTenths {
				continue
			}
			moves = append(moves, TransferMove{
				Sell: SellCandidate{DisplayPlayer: member.DisplayPlayer, Form: forms[i]},
				Buy:  candidate,
			})
			owned[candidate.ID] = struct{}{}
			break
		}
	}

	return TransferPlan{Budget: tenths(budgetTenths), Moves: moves}, nil
}

// squadForm fetches trailing form for every squad member concurrently.
func (s *AdviceService) squadForm(ctx context.Context, squad []SquadEntry) ([]float64, error) {
	forms := make([]float64, len(squad))
	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(s.formConcurrency)
	for i, member := range squad {
		i, playerID := i, member.ID
		p.Go(func(ctx context.Context) error {
			history, err := s.gateway.FetchElementSummary(ctx, playerID)
			if err != nil {
				return fmt.Errorf("fetch player history player=%d: %w", playerID, err)
			}
			forms[i] = averagePoints(trailingPoints(history, defaultFormLookback))
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return forms, nil
}

func priceTenths(price float64) int {
	return int(math.Round(price * 10))
}
