package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/sports-catalog/internal/domain/competition"
	"github.com/riskibarqy/sports-catalog/internal/domain/match"
)

type listCompetitionsRequest struct {
	Type string `validate:"omitempty,oneof=league cup friendly"`
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	filter := competition.ListFilter{
		Type:   strings.TrimSpace(r.URL.Query().Get("type")),
		Season: strings.TrimSpace(r.URL.Query().Get("season")),
	}
	if err := h.validateRequest(ctx, listCompetitionsRequest{Type: filter.Type}); err != nil {
		writeError(ctx, w, err)
		return
	}

	page := parsePageRequest(r, defaultMatchPageLimit)
	competitions, err := h.competitionService.List(ctx, filter, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]competitionDTO, 0, len(competitions))
	for _, c := range competitions {
		items = append(items, competitionToDTO(c))
	}

	writePage(ctx, w, page, items)
}

func (h *Handler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetition")
	defer span.End()

	competitionID, err := parseIDPath(r, "competitionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	found, err := h.competitionService.Get(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get competition failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(found))
}

func (h *Handler) ListCompetitionMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitionMatches")
	defer span.End()

	competitionID, err := parseIDPath(r, "competitionID")
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
	views, err := h.competitionService.ListMatches(ctx, competitionID, match.ListFilter{Date: date}, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list competition matches failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, page, matchViewsToDTOs(views))
}

func (h *Handler) ListCompetitionMatchesWithEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitionMatchesWithEvents")
	defer span.End()

	competitionID, err := parseIDPath(r, "competitionID")
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
	items, err := h.competitionService.ListMatchesWithEvents(ctx, competitionID, match.ListFilter{Date: date}, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list competition matches with events failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, page, matchesWithEventsToDTOs(items))
}
