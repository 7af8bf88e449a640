package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fpl-insights/internal/domain/manager"
	"github.com/riskibarqy/fpl-insights/internal/platform/logging"
)

const (
	defaultCohortConcurrency = 8
	defaultCohortMaxManagers = 50
	templateSquadSize        = 15
)

type CohortConfig struct {
	Concurrency int
	MaxManagers int
}

// CohortFailure records a manager skipped during cohort aggregation.
type CohortFailure struct {
	ManagerID int    `json:"manager_id"`
	Reason    string `json:"reason"`
}

type OwnershipEntry struct {
	DisplayPlayer
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

type OwnershipReport struct {
	Gameweek   int              `json:"gw"`
	CohortSize int              `json:"cohort_size"`
	Players    []OwnershipEntry `json:"players"`
	Failures   []CohortFailure  `json:"failures"`
}

type ChipCount struct {
	Key      string `json:"key"`
	Chip     string `json:"chip"`
	Gameweek int    `json:"gw"`
	Count    int    `json:"count"`
}

type ChipReport struct {
	CohortSize int             `json:"cohort_size"`
	Chips      []ChipCount     `json:"chips"`
	Failures   []CohortFailure `json:"failures"`
}

type TemplatePick struct {
	DisplayPlayer
	SelectedBy int `json:"selected_by"`
}

type TemplateReport struct {
	LeagueID int             `json:"league_id"`
	Gameweek int             `json:"gw"`
	Managers []int           `json:"managers"`
	Players  []TemplatePick  `json:"players"`
	Failures []CohortFailure `json:"failures"`
}

// CohortService aggregates picks and chips across a set of managers. A
// manager whose fetch fails is reported in Failures and skipped.
type CohortService struct {
	gateway     Gateway
	catalog     *CatalogService
	logger      *logging.Logger
	concurrency int
	maxManagers int
}

func NewCohortService(gateway Gateway, catalog *CatalogService, logger *logging.Logger, cfg CohortConfig) *CohortService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultCohortConcurrency
	}
	if cfg.MaxManagers <= 0 {
		cfg.MaxManagers = defaultCohortMaxManagers
	}
	return &CohortService{
		gateway:     gateway,
		catalog:     catalog,
		logger:      logger,
		concurrency: cfg.Concurrency,
		maxManagers: cfg.MaxManagers,
	}
}

// OwnershipTrend reports how often each player appears across the cohort's
// picks. Percentages use the requested cohort size, failures included.
func (s *CohortService) OwnershipTrend(ctx context.Context, managerIDs []int, gameweek int) (OwnershipReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CohortService.OwnershipTrend")
	defer span.End()

	if err := s.validateCohort(managerIDs); err != nil {
		return OwnershipReport{}, err
	}
	if gameweek <= 0 {
		return OwnershipReport{}, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return OwnershipReport{}, err
	}

	outcomes, err := s.fetchPicks(ctx, managerIDs, gameweek)
	if err != nil {
		return OwnershipReport{}, err
	}
	squads, failures := splitOutcomes(ctx, s.logger, "ownership_trend", outcomes)

	tally := tallyPicks(squads)
	players := make([]OwnershipEntry, 0, len(tally))
	for _, row := range tally {
		display, err := EnrichPlayer(idx, row.key)
		if err != nil {
			return OwnershipReport{}, err
		}
		players = append(players, OwnershipEntry{
			DisplayPlayer: display,
			Count:         row.count,
			Pct:           roundTo(float64(row.count)*100/float64(len(managerIDs)), 1),
		})
	}

	return OwnershipReport{
		Gameweek:   gameweek,
		CohortSize: len(managerIDs),
		Players:    players,
		Failures:   failures,
	}, nil
}

// ChipUsageSummary counts chip activations keyed by chip and gameweek.
func (s *CohortService) ChipUsageSummary(ctx context.Context, managerIDs []int) (ChipReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CohortService.ChipUsageSummary")
	defer span.End()

	if err := s.validateCohort(managerIDs); err != nil {
		return ChipReport{}, err
	}

	outcomes, err := fanOut(ctx, s.concurrency, managerIDs, s.gateway.FetchEntryHistory)
	if err != nil {
		return ChipReport{}, err
	}
	histories, failures := splitOutcomes(ctx, s.logger, "chip_usage", outcomes)

	counts := make(map[string]*ChipCount)
	order := make([]string, 0, 16)
	for _, history := range histories {
		for _, chip := range history.Chips {
			key := fmt.Sprintf("%s_GW%d", chip.Name, chip.Event)
			row, ok := counts[key]
			if !ok {
				row = &ChipCount{Key: key, Chip: chip.Name, Gameweek: chip.Event}
				counts[key] = row
				order = append(order, key)
			}
			row.Count++
		}
	}

	chips := make([]ChipCount, 0, len(order))
	for _, key := range order {
		chips = append(chips, *counts[key])
	}
	sort.SliceStable(chips, func(i, j int) bool {
		return chips[i].Count > chips[j].Count
	})

	return ChipReport{
		CohortSize: len(managerIDs),
		Chips:      chips,
		Failures:   failures,
	}, nil
}

// TopManagerIDs pages through classic standings until topN entries are
// collected or the league runs out.
func (s *CohortService) TopManagerIDs(ctx context.Context, leagueID, topN int) ([]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CohortService.TopManagerIDs")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}
	if topN < 1 || topN > s.maxManagers {
		return nil, fmt.Errorf("%w: top_n must be between 1 and %d", ErrInvalidInput, s.maxManagers)
	}

	ids := make([]int, 0, topN)
	for page := 1; len(ids) < topN; page++ {
		standings, err := s.gateway.FetchClassicStandings(ctx, leagueID, page)
		if err != nil {
			return nil, fmt.Errorf("fetch standings page=%d: %w", page, err)
		}
		for _, row := range standings.Results {
			if len(ids) == topN {
				break
			}
			ids = append(ids, row.Entry)
		}
		if !standings.HasNext || len(standings.Results) == 0 {
			break
		}
	}
	return ids, nil
}

// TemplateTeam returns the most selected players among a league's top
// managers for the gameweek.
func (s *CohortService) TemplateTeam(ctx context.Context, leagueID, gameweek, topN int) (TemplateReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CohortService.TemplateTeam")
	defer span.End()

	if gameweek <= 0 {
		return TemplateReport{}, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}
	managerIDs, err := s.TopManagerIDs(ctx, leagueID, topN)
	if err != nil {
		return TemplateReport{}, err
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return TemplateReport{}, err
	}

	outcomes, err := s.fetchPicks(ctx, managerIDs, gameweek)
	if err != nil {
		return TemplateReport{}, err
	}
	squads, failures := splitOutcomes(ctx, s.logger, "template_team", outcomes)

	tally := tallyPicks(squads)
	if len(tally) > templateSquadSize {
		tally = tally[:templateSquadSize]
	}
	players := make([]TemplatePick, 0, len(tally))
	for _, row := range tally {
		display, err := EnrichPlayer(idx, row.key)
		if err != nil {
			return TemplateReport{}, err
		}
		players = append(players, TemplatePick{DisplayPlayer: display, SelectedBy: row.count})
	}

	return TemplateReport{
		LeagueID: leagueID,
		Gameweek: gameweek,
		Managers: managerIDs,
		Players:  players,
		Failures: failures,
	}, nil
}

func (s *CohortService) validateCohort(managerIDs []int) error {
	if len(managerIDs) == 0 {
		return fmt.Errorf("%w: at least one manager id is required", ErrInvalidInput)
	}
	if len(managerIDs) > s.maxManagers {
		return fmt.Errorf("%w: at most %d manager ids are allowed", ErrInvalidInput, s.maxManagers)
	}
	for _, id := range managerIDs {
		if id <= 0 {
			return fmt.Errorf("%w: manager id must be greater than zero, got %d", ErrInvalidInput, id)
		}
	}
	return nil
}

func (s *CohortService) fetchPicks(ctx context.Context, managerIDs []int, gameweek int) ([]cohortOutcome[manager.Picks], error) {
	return fanOut(ctx, s.concurrency, managerIDs, func(ctx context.Context, managerID int) (manager.Picks, error) {
		return s.gateway.FetchEntryPicks(ctx, managerID, gameweek)
	})
}

type cohortOutcome[T any] struct {
	managerID int
	value     T
	err       error
}

// fanOut runs fetch for every manager on a bounded ants pool. Outcomes are
// returned in input order.
func fanOut[T any](ctx context.Context, concurrency int, managerIDs []int, fetch func(context.Context, int) (T, error)) ([]cohortOutcome[T], error) {
	outcomes := make([]cohortOutcome[T], len(managerIDs))

	workerCount := concurrency
	if workerCount > len(managerIDs) {
		workerCount = len(managerIDs)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, managerID := range managerIDs {
		i, managerID := i, managerID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			value, fetchErr := fetch(ctx, managerID)
			outcomes[i] = cohortOutcome[T]{managerID: managerID, value: value, err: fetchErr}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	return outcomes, nil
}

func splitOutcomes[T any](ctx context.Context, logger *logging.Logger, operation string, outcomes []cohortOutcome[T]) ([]T, []CohortFailure) {
	values := make([]T, 0, len(outcomes))
	failures := make([]CohortFailure, 0)
	for _, outcome := range outcomes {
		if outcome.err != nil {
			logger.WarnContext(ctx, "cohort manager skipped",
				"operation", operation,
				"manager_id", outcome.managerID,
				"error", outcome.err,
			)
			failures = append(failures, CohortFailure{ManagerID: outcome.managerID, Reason: outcome.err.Error()})
			continue
		}
		values = append(values, outcome.value)
	}
	return values, failures
}

type pickCount struct {
	key   int
	count int
}

// tallyPicks counts player selections, most selected first. Equal counts
// keep first-seen order.
func tallyPicks(squads []manager.Picks) []pickCount {
	positions := make(map[int]int, 64)
	out := make([]pickCount, 0, 64)
	for _, squad := range squads {
		for _, pick := range squad.Picks {
			pos, ok := positions[pick.Element]
			if !ok {
				pos = len(out)
				positions[pick.Element] = pos
				out = append(out, pickCount{key: pick.Element})
			}
			out[pos].count++
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].count > out[j].count
	})
	return out
}
