package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/fpl-insights/internal/usecase"
)

const (
	defaultTopLimit     = 5
	defaultValueLimit   = 10
	defaultFDRNext      = 5
	defaultFormLookback = 5
	defaultTopManagers  = 5
	defaultExtraBudget  = 2.0
)

type topPlayersQuery struct {
	Limit int `validate:"min=1,max=50"`
}

type searchPlayersQuery struct {
	Name string `validate:"required,max=100"`
}

type valuePicksQuery struct {
	Limit      int `validate:"min=1,max=50"`
	MinMinutes int `validate:"min=0"`
}

type formQuery struct {
	Lookback int `validate:"min=1,max=38"`
}

type fixtureDifficultyQuery struct {
	Next int `validate:"min=1,max=38"`
}

type transferSuggestionQuery struct {
	Budget float64 `validate:"min=0"`
}

type ownershipQuery struct {
	TeamIDs  []int `validate:"required,min=1,dive,gt=0"`
	Gameweek int   `validate:"required,min=1"`
}

type chipUsageQuery struct {
	TeamIDs []int `validate:"required,min=1,dive,gt=0"`
}

type topManagersQuery struct {
	TopN int `validate:"min=1"`
}

type templateTeamQuery struct {
	Gameweek int `validate:"required,min=1"`
	TopN     int `validate:"min=1"`
}

type catalogRefreshRequest struct {
	Warm bool `json:"warm"`
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func queryFloat(r *http.Request, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

// queryIntList parses a comma separated id list such as team_ids=1,2,3.
// Blank items are ignored.
func queryIntList(r *http.Request, name string) ([]int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		value, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s contains non-integer %q", usecase.ErrInvalidInput, name, item)
		}
		out = append(out, value)
	}
	return out, nil
}
