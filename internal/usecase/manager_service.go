package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-insights/internal/domain/manager"
)

// ManagerService reshapes per-manager upstream data. Nothing here is cached.
type ManagerService struct {
	gateway Gateway
	catalog *CatalogService
}

func NewManagerService(gateway Gateway, catalog *CatalogService) *ManagerService {
	return &ManagerService{
		gateway: gateway,
		catalog: catalog,
	}
}

func (s *ManagerService) Info(ctx context.Context, managerID int) (ManagerInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Info")
	defer span.End()

	if err := validateManagerID(managerID); err != nil {
		return ManagerInfo{}, err
	}
	entry, err := s.gateway.FetchEntry(ctx, managerID)
	if err != nil {
		return ManagerInfo{}, fmt.Errorf("fetch manager info: %w", err)
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return ManagerInfo{}, err
	}
	return EnrichManagerInfo(idx, entry)
}

func (s *ManagerService) History(ctx context.Context, managerID int) (ManagerHistory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.History")
	defer span.End()

	if err := validateManagerID(managerID); err != nil {
		return ManagerHistory{}, err
	}
	history, err := s.gateway.FetchEntryHistory(ctx, managerID)
	if err != nil {
		return ManagerHistory{}, fmt.Errorf("fetch manager history: %w", err)
	}
	return EnrichManagerHistory(history), nil
}

func (s *ManagerService) Picks(ctx context.Context, managerID, gameweek int) (ManagerPicks, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Picks")
	defer span.End()

	if err := validateManagerGameweek(managerID, gameweek); err != nil {
		return ManagerPicks{}, err
	}
	picks, err := s.gateway.FetchEntryPicks(ctx, managerID, gameweek)
	if err != nil {
		return ManagerPicks{}, fmt.Errorf("fetch manager picks: %w", err)
	}
	return EnrichManagerPicks(picks), nil
}

// Squad returns the gameweek picks resolved against the catalog.
func (s *ManagerService) Squad(ctx context.Context, managerID, gameweek int) ([]SquadEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Squad")
	defer span.End()

	if err := validateManagerGameweek(managerID, gameweek); err != nil {
		return nil, err
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	picks, err := s.gateway.FetchEntryPicks(ctx, managerID, gameweek)
	if err != nil {
		return nil, fmt.Errorf("fetch manager picks: %w", err)
	}
	return ResolvePicks(idx, picks.Picks)
}

// Transfers lists the transfers made for one gameweek.
func (s *ManagerService) Transfers(ctx context.Context, managerID, gameweek int) ([]DisplayTransfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Transfers")
	defer span.End()

	if err := validateManagerGameweek(managerID, gameweek); err != nil {
		return nil, err
	}
	idx, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.gateway.FetchEntryTransfers(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("fetch manager transfers: %w", err)
	}

	filtered := make([]manager.Transfer, 0, len(items))
	for _, item := range items {
		if item.Event == gameweek {
			filtered = append(filtered, item)
		}
	}
	return EnrichTransfers(idx, filtered)
}

func validateManagerID(managerID int) error {
	if managerID <= 0 {
		return fmt.Errorf("%w: manager id must be greater than zero", ErrInvalidInput)
	}
	return nil
}

func validateManagerGameweek(managerID, gameweek int) error {
	if err := validateManagerID(managerID); err != nil {
		return err
	}
	if gameweek <= 0 {
		return fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}
	return nil
}
