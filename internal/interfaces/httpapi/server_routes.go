package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/top", handler.TopPlayers)
	mux.HandleFunc("GET /v1/positions/{position}/top", handler.TopPlayersByPosition)
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/value", handler.TopValuePicks)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/form", handler.GetPlayerForm)
	mux.HandleFunc("GET /v1/gameweeks/{gw}/live", handler.LiveScores)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /v1/teams/by-name/{name}/players", handler.ListPlayersByTeamName)
	mux.HandleFunc("GET /v1/teams/{teamID}/fixtures", handler.ListTeamFixtures)
	mux.HandleFunc("GET /v1/teams/{teamID}/fdr", handler.FixtureDifficulty)
}

func registerManagerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/managers/{managerID}", handler.GetManager)
	mux.HandleFunc("GET /v1/managers/{managerID}/history", handler.GetManagerHistory)
	mux.HandleFunc("GET /v1/managers/{managerID}/gameweeks/{gw}/picks", handler.GetManagerPicks)
	mux.HandleFunc("GET /v1/managers/{managerID}/gameweeks/{gw}/squad", handler.GetManagerSquad)
	mux.HandleFunc("GET /v1/managers/{managerID}/gameweeks/{gw}/transfers", handler.ListManagerTransfers)
	mux.HandleFunc("GET /v1/managers/{managerID}/gameweeks/{gw}/captain", handler.SuggestCaptain)
	mux.HandleFunc("GET /v1/managers/{managerID}/gameweeks/{gw}/transfer-suggestions", handler.SuggestTransfers)
}

func registerCohortRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/cohorts/ownership", handler.OwnershipTrend)
	mux.HandleFunc("GET /v1/cohorts/chips", handler.ChipUsage)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/top-managers", handler.TopManagers)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/template", handler.TemplateTeam)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/catalog/refresh", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RefreshCatalog)))
}
