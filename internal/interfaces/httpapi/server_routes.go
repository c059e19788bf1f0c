package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

// registerScoreboardRoutes mounts the read API. leagueID "top" is accepted by
// matches and news only; the other routes answer 400 for it.
func registerScoreboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matches/{matchID}", handler.GetMatchDetail)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/leaders", handler.ListLeaders)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/news", handler.ListNews)
}
