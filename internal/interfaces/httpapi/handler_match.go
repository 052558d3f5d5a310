package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	competitionID, err := parseIDQuery(r, "competition_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := parseIDQuery(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDateQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := match.ListFilter{
		CompetitionID: competitionID,
		TeamID:        teamID,
		Date:          date,
	}

	page := parsePageRequest(r, defaultMatchPageLimit)
	views, err := h.matchService.List(ctx, filter, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, page, matchViewsToDTOs(views))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := parseIDPath(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.matchService.GetView(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchSummaryToDTO(view.Summary, view.Status))
}

type listMatchEventsRequest struct {
	EventType string `validate:"omitempty,oneof=goal yellow_card red_card corner"`
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	matchID, err := parseIDPath(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := parseIDQuery(r, "player_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := match.EventFilter{
		EventType: strings.TrimSpace(r.URL.Query().Get("event_type")),
		PlayerID:  playerID,
	}
	if err := h.validateRequest(ctx, listMatchEventsRequest{EventType: filter.EventType}); err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.matchService.ListEvents(ctx, matchID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list match events failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsToDTOs(events))
}

func (h *Handler) GetMatchDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetails")
	defer span.End()

	matchID, err := parseIDPath(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.matchService.GetDetails(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match details failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchWithEventsToDTO(details))
}
