package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	page := parsePageRequest(r, defaultTeamPageLimit)
	teams, err := h.teamService.List(ctx, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writePage(ctx, w, page, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := parseIDPath(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	found, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(found))
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID, err := parseIDPath(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page := parsePageRequest(r, defaultTeamPageLimit)
	players, err := h.teamService.ListPlayers(ctx, teamID, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writePage(ctx, w, page, items)
}

func (h *Handler) ListTeamMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMatches")
	defer span.End()

	teamID, err := parseIDPath(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDateQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page := parsePageRequest(r, defaultMatchPageLimit)
	views, err := h.teamService.ListMatches(ctx, teamID, match.ListFilter{Date: date}, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list team matches failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, page, matchViewsToDTOs(views))
}

func (h *Handler) ListTeamMatchesWithEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMatchesWithEvents")
	defer span.End()

	teamID, err := parseIDPath(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDateQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page := parsePageRequest(r, defaultMatchPageLimit)
	items, err := h.teamService.ListMatchesWithEvents(ctx, teamID, match.ListFilter{Date: date}, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list team matches with events failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, page, matchesWithEventsToDTOs(items))
}

func (h *Handler) ListTeamCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamCompetitions")
	defer span.End()

	teamID, err := parseIDPath(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonLabel := strings.TrimSpace(r.URL.Query().Get("season"))
	competitions, err := h.teamService.ListCompetitions(ctx, teamID, seasonLabel)
	if err != nil {
		h.logger.WarnContext(ctx, "list team competitions failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]competitionDTO, 0, len(competitions))
	for _, c := range competitions {
		items = append(items, competitionToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// latestMatchDTO always carries its events list, empty when the
// match produced no goal or corner events.
type latestMatchDTO struct {
	matchSummaryDTO
	Events []eventDTO `json:"events"`
}

type nextMatchDTO struct {
	matchSummaryDTO
	KickoffIn string `json:"kickoffIn"`
}

type homepageDTO struct {
	Latest       *latestMatchDTO  `json:"latest"`
	Next         *nextMatchDTO    `json:"next"`
	Competitions []competitionDTO `json:"competitions"`
}

func (h *Handler) GetTeamHomepage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHomepage")
	defer span.End()

	teamID, err := parseIDPath(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	homepage, err := h.teamService.GetHomepage(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team homepage failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, homepageToDTO(homepage))
}

func homepageToDTO(v usecase.Homepage) homepageDTO {
	out := homepageDTO{
		Competitions: make([]competitionDTO, 0, len(v.Competitions)),
	}
	if v.Latest != nil {
		out.Latest = &latestMatchDTO{
			matchSummaryDTO: matchSummaryToDTO(v.Latest.Summary, v.Latest.Status),
			Events:          eventsToDTOs(v.Latest.Events),
		}
	}
	if v.Next != nil {
		out.Next = &nextMatchDTO{
			matchSummaryDTO: matchSummaryToDTO(v.Next.Summary, v.Next.Status),
			KickoffIn:       v.Next.KickoffIn,
		}
	}
	for _, c := range v.Competitions {
		out.Competitions = append(out.Competitions, competitionToDTO(c))
	}
	return out
}
