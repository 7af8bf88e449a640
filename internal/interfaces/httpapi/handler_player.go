package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fpl-insights/internal/usecase"
)

func (h *Handler) TopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayers")
	defer span.End()

	limit, err := queryInt(r, "limit", defaultTopLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, topPlayersQuery{Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.analyticsService.TopPlayers(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "top players failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) TopPlayersByPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayersByPosition")
	defer span.End()

	position := strings.TrimSpace(r.PathValue("position"))
	limit, err := queryInt(r, "limit", defaultTopLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, topPlayersQuery{Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.analyticsService.TopPlayersByPosition(ctx, position, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "top players by position failed", "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if err := h.validateRequest(ctx, searchPlayersQuery{Name: name}); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.enrichmentService.SearchPlayers(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) TopValuePicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopValuePicks")
	defer span.End()

	limit, err := queryInt(r, "limit", defaultValueLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	minMinutes, err := queryInt(r, "min_minutes", usecase.DefaultValueMinMinutes)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, valuePicksQuery{Limit: limit, MinMinutes: minMinutes}); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.analyticsService.TopValuePicks(ctx, limit, minMinutes)
	if err != nil {
		h.logger.WarnContext(ctx, "value picks failed", "limit", limit, "min_minutes", minMinutes, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathInt(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.enrichmentService.Player(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetPlayerForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerForm")
	defer span.End()

	playerID, err := pathInt(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	lookback, err := queryInt(r, "lookback", defaultFormLookback)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, formQuery{Lookback: lookback}); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.enrichmentService.RecentForm(ctx, playerID, lookback)
	if err != nil {
		h.logger.WarnContext(ctx, "player form failed", "player_id", playerID, "lookback", lookback, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) LiveScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveScores")
	defer span.End()

	gameweek, err := pathInt(r, "gw")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.enrichmentService.LiveScores(ctx, gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "live scores failed", "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
