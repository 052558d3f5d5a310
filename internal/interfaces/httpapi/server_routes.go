package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler, guard func(http.Handler) http.Handler) {
	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, guard(fn))
	}

	route("GET /v1/teams", handler.ListTeams)
	route("GET /v1/teams/{teamID}", handler.GetTeam)
	route("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	route("GET /v1/teams/{teamID}/matches", handler.ListTeamMatches)
	route("GET /v1/teams/{teamID}/matches/events", handler.ListTeamMatchesWithEvents)
	route("GET /v1/teams/{teamID}/competitions", handler.ListTeamCompetitions)
	route("GET /v1/teams/{teamID}/homepage", handler.GetTeamHomepage)

	route("GET /v1/players", handler.ListPlayers)
	route("GET /v1/players/search", handler.SearchPlayers)
	route("GET /v1/players/{playerID}", handler.GetPlayerDetail)

	route("GET /v1/competitions", handler.ListCompetitions)
	route("GET /v1/competitions/{competitionID}", handler.GetCompetition)
	route("GET /v1/competitions/{competitionID}/matches", handler.ListCompetitionMatches)
	route("GET /v1/competitions/{competitionID}/matches/events", handler.ListCompetitionMatchesWithEvents)

	route("GET /v1/matches", handler.ListMatches)
	route("GET /v1/matches/{matchID}", handler.GetMatch)
	route("GET /v1/matches/{matchID}/events", handler.ListMatchEvents)
	route("GET /v1/matches/{matchID}/details", handler.GetMatchDetails)
}
