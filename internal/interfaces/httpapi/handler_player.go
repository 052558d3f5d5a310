package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/sports-catalog/internal/domain/player"
	"github.com/riskibarqy/sports-catalog/internal/usecase"
)

type playerDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DateOfBirth *string `json:"dateOfBirth"`
	Nationality string  `json:"nationality"`
	Position    string  `json:"position"`
	PhotoURL    *string `json:"photoUrl"`
}

func playerToDTO(v player.Player) playerDTO {
	var dob *string
	if v.DateOfBirth != nil {
		formatted := v.DateOfBirth.UTC().Format("2006-01-02")
		dob = &formatted
	}

	return playerDTO{
		ID:          v.ID,
		Name:        v.Name,
		DateOfBirth: dob,
		Nationality: v.Nationality,
		Position:    v.Position,
		PhotoURL:    v.PhotoURL,
	}
}

type playerStatsDTO struct {
	GoalsScored int `json:"goalsScored"`
	YellowCards int `json:"yellowCards"`
	RedCards    int `json:"redCards"`
}

type tenureDTO struct {
	TeamID    int64   `json:"teamId"`
	TeamName  string  `json:"teamName"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type formEventDTO struct {
	Type           string `json:"type"`
	Minute         int    `json:"minute"`
	PlayerID       int64  `json:"player_id"`
	AssistPlayerID *int64 `json:"assisting_player_id"`
}

type formEntryDTO struct {
	ID            int64          `json:"id"`
	Date          string         `json:"date"`
	CompetitionID int64          `json:"competitionId"`
	HomeTeamID    int64          `json:"homeTeamId"`
	AwayTeamID    int64          `json:"awayTeamId"`
	HomeTeamScore *int           `json:"homeTeamScore"`
	AwayTeamScore *int           `json:"awayTeamScore"`
	MatchVenue    *string        `json:"matchVenue"`
	TeamID        *int64         `json:"teamId"`
	TeamName      *string        `json:"teamName"`
	OpponentID    *int64         `json:"opponentId"`
	OpponentName  *string        `json:"opponentName"`
	Result        *string        `json:"result"`
	Events        []formEventDTO `json:"events"`
}

type playerDetailDTO struct {
	playerDTO
	Stats       playerStatsDTO `json:"stats"`
	History     []tenureDTO    `json:"history"`
	LastMatches []formEntryDTO `json:"last_matches"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	teamID, err := parseIDQuery(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	filter := player.ListFilter{
		TeamID:   teamID,
		Position: strings.TrimSpace(r.URL.Query().Get("position")),
	}

	page := parsePageRequest(r, defaultMatchPageLimit)
	players, err := h.playerService.List(ctx, filter, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writePage(ctx, w, page, items)
}

type searchPlayersRequest struct {
	Name string `validate:"required,min=1,max=100"`
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if err := h.validateRequest(ctx, searchPlayersRequest{Name: name}); err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.Search(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetail")
	defer span.End()

	playerID, err := parseIDPath(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.playerService.GetDetail(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player detail failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailToDTO(detail))
}

func playerDetailToDTO(v usecase.PlayerDetail) playerDetailDTO {
	history := make([]tenureDTO, 0, len(v.History))
	for _, tenure := range v.History {
		history = append(history, tenureToDTO(tenure))
	}

	lastMatches := make([]formEntryDTO, 0, len(v.LastMatches))
	for _, entry := range v.LastMatches {
		lastMatches = append(lastMatches, formEntryToDTO(entry))
	}

	return playerDetailDTO{
		playerDTO: playerToDTO(v.Player),
		Stats: playerStatsDTO{
			GoalsScored: v.Stats.GoalsScored,
			YellowCards: v.Stats.YellowCards,
			RedCards:    v.Stats.RedCards,
		},
		History:     history,
		LastMatches: lastMatches,
	}
}

func tenureToDTO(v player.Tenure) tenureDTO {
	var end *string
	if v.EndDate != nil {
		formatted := v.EndDate.UTC().Format("2006-01-02")
		end = &formatted
	}

	return tenureDTO{
		TeamID:    v.TeamID,
		TeamName:  v.TeamName,
		StartDate: v.StartDate.UTC().Format("2006-01-02"),
		EndDate:   end,
	}
}

func formEntryToDTO(v usecase.FormEntry) formEntryDTO {
	events := make([]formEventDTO, 0, len(v.Events))
	for _, e := range v.Events {
		events = append(events, formEventDTO{
			Type:           e.Type,
			Minute:         e.Minute,
			PlayerID:       e.PlayerID,
			AssistPlayerID: e.AssistPlayerID,
		})
	}

	return formEntryDTO{
		ID:            v.MatchID,
		Date:          v.Date.UTC().Format(time.RFC3339),
		CompetitionID: v.CompetitionID,
		HomeTeamID:    v.HomeTeamID,
		AwayTeamID:    v.AwayTeamID,
		HomeTeamScore: v.ScoreHome,
		AwayTeamScore: v.ScoreAway,
		MatchVenue:    v.Venue,
		TeamID:        v.TeamID,
		TeamName:      v.TeamName,
		OpponentID:    v.OpponentID,
		OpponentName:  v.OpponentName,
		Result:        v.Result,
		Events:        events,
	}
}
