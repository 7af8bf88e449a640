package httpapi

import "net/http"

func (h *Handler) OwnershipTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OwnershipTrend")
	defer span.End()

	teamIDs, err := queryIntList(r, "team_ids")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gameweek, err := queryInt(r, "gw", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, ownershipQuery{TeamIDs: teamIDs, Gameweek: gameweek}); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.cohortService.OwnershipTrend(ctx, teamIDs, gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "ownership trend failed", "cohort_size", len(teamIDs), "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) ChipUsage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChipUsage")
	defer span.End()

	teamIDs, err := queryIntList(r, "team_ids")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, chipUsageQuery{TeamIDs: teamIDs}); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.cohortService.ChipUsageSummary(ctx, teamIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "chip usage failed", "cohort_size", len(teamIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) TopManagers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopManagers")
	defer span.End()

	leagueID, err := pathInt(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	topN, err := queryInt(r, "top_n", defaultTopManagers)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, topManagersQuery{TopN: topN}); err != nil {
		writeError(ctx, w, err)
		return
	}

	ids, err := h.cohortService.TopManagerIDs(ctx, leagueID, topN)
	if err != nil {
		h.logger.WarnContext(ctx, "top managers failed", "league_id", leagueID, "top_n", topN, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"league_id":   leagueID,
		"manager_ids": ids,
	})
}

func (h *Handler) TemplateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TemplateTeam")
	defer span.End()

	leagueID, err := pathInt(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gameweek, err := queryInt(r, "gw", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	topN, err := queryInt(r, "top_n", defaultTopManagers)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, templateTeamQuery{Gameweek: gameweek, TopN: topN}); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.cohortService.TemplateTeam(ctx, leagueID, gameweek, topN)
	if err != nil {
		h.logger.WarnContext(ctx, "template team failed", "league_id", leagueID, "gameweek", gameweek, "top_n", topN, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
