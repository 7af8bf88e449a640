package httpapi

import "net/http"

func (h *Handler) GetManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManager")
	defer span.End()

	managerID, err := pathInt(r, "managerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.managerService.Info(ctx, managerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetManagerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerHistory")
	defer span.End()

	managerID, err := pathInt(r, "managerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.managerService.History(ctx, managerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager history failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetManagerPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerPicks")
	defer span.End()

	managerID, gameweek, err := managerGameweekPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.managerService.Picks(ctx, managerID, gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager picks failed", "manager_id", managerID, "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetManagerSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerSquad")
	defer span.End()

	managerID, gameweek, err := managerGameweekPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.managerService.Squad(ctx, managerID, gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager squad failed", "manager_id", managerID, "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListManagerTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListManagerTransfers")
	defer span.End()

	managerID, gameweek, err := managerGameweekPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.managerService.Transfers(ctx, managerID, gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "list manager transfers failed", "manager_id", managerID, "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SuggestCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SuggestCaptain")
	defer span.End()

	managerID, gameweek, err := managerGameweekPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.adviceService.SuggestCaptain(ctx, managerID, gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "suggest captain failed", "manager_id", managerID, "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) SuggestTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SuggestTransfers")
	defer span.End()

	managerID, gameweek, err := managerGameweekPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	budget, err := queryFloat(r, "budget", defaultExtraBudget)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, transferSuggestionQuery{Budget: budget}); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.adviceService.SuggestTransfers(ctx, managerID, gameweek, budget)
	if err != nil {
		h.logger.WarnContext(ctx, "suggest transfers failed", "manager_id", managerID, "gameweek", gameweek, "budget", budget, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func managerGameweekPath(r *http.Request) (int, int, error) {
	managerID, err := pathInt(r, "managerID")
	if err != nil {
		return 0, 0, err
	}
	gameweek, err := pathInt(r, "gw")
	if err != nil {
		return 0, 0, err
	}
	return managerID, gameweek, nil
}
