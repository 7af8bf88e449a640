package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathInt(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.enrichmentService.TeamSummary(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID, err := pathInt(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.enrichmentService.PlayersByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayersByTeamName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeamName")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	items, err := h.enrichmentService.PlayersByTeamName(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players by name failed", "team_name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamFixtures")
	defer span.End()

	teamID, err := pathInt(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.enrichmentService.TeamFixtures(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team fixtures failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) FixtureDifficulty(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FixtureDifficulty")
	defer span.End()

	teamID, err := pathInt(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	next, err := queryInt(r, "next", defaultFDRNext)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, fixtureDifficultyQuery{Next: next}); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.analyticsService.FixtureDifficulty(ctx, teamID, next)
	if err != nil {
		h.logger.WarnContext(ctx, "fixture difficulty failed", "team_id", teamID, "next", next, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
