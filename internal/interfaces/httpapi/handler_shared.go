package httpapi

import (
	"time"

	"github.com/riskibarqy/sports-catalog/internal/domain/competition"
	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/domain/team"
	"github.com/riskibarqy/sports-catalog/internal/usecase"
)

type teamDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"shortName"`
	LogoURL   *string `json:"logoUrl"`
	Country   string  `json:"country"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		ShortName: v.ShortName,
		LogoURL:   v.LogoURL,
		Country:   v.Country,
	}
}

type competitionDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Season string `json:"season"`
}

func competitionToDTO(v competition.Competition) competitionDTO {
	return competitionDTO{
		ID:     v.ID,
		Name:   v.Name,
		Type:   v.Type,
		Season: v.Season,
	}
}

type scoreDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type matchTeamDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"shortName"`
	LogoURL   *string `json:"logoUrl"`
	Country   string  `json:"country"`
}

type matchSummaryDTO struct {
	ID          int64          `json:"id"`
	Date        string         `json:"date"`
	Venue       *string        `json:"venue"`
	Status      string         `json:"status"`
	Score       *scoreDTO      `json:"score"`
	Competition competitionDTO `json:"competition"`
	HomeTeam    matchTeamDTO   `json:"home_team"`
	AwayTeam    matchTeamDTO   `json:"away_team"`
}

func matchSummaryToDTO(v match.Summary, status string) matchSummaryDTO {
	var score *scoreDTO
	if v.Played() {
		score = &scoreDTO{Home: *v.ScoreHome, Away: *v.ScoreAway}
	}

	return matchSummaryDTO{
		ID:     v.ID,
		Date:   v.Date.UTC().Format(time.RFC3339),
		Venue:  v.Venue,
		Status: status,
		Score:  score,
		Competition: competitionDTO{
			ID:     v.CompetitionID,
			Name:   v.CompetitionName,
			Type:   v.CompetitionType,
			Season: v.CompetitionSeason,
		},
		HomeTeam: matchTeamDTO{
			ID:        v.HomeTeamID,
			Name:      v.HomeTeamName,
			ShortName: v.HomeTeamShort,
			LogoURL:   v.HomeTeamLogoURL,
			Country:   v.HomeTeamCountry,
		},
		AwayTeam: matchTeamDTO{
			ID:        v.AwayTeamID,
			Name:      v.AwayTeamName,
			ShortName: v.AwayTeamShort,
			LogoURL:   v.AwayTeamLogoURL,
			Country:   v.AwayTeamCountry,
		},
	}
}

type eventPlayerDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type eventAssistDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type eventDTO struct {
	ID     int64           `json:"id"`
	Type   string          `json:"type"`
	Minute int             `json:"minute"`
	Player eventPlayerDTO  `json:"player"`
	Assist *eventAssistDTO `json:"assist"`
}

func eventToDTO(v match.Event) eventDTO {
	var assist *eventAssistDTO
	if v.AssistPlayerID != nil {
		assist = &eventAssistDTO{ID: *v.AssistPlayerID}
		if v.AssistPlayerName != nil {
			assist.Name = *v.AssistPlayerName
		}
	}

	return eventDTO{
		ID:     v.ID,
		Type:   v.Type,
		Minute: v.Minute,
		Player: eventPlayerDTO{
			ID:       v.PlayerID,
			Name:     v.PlayerName,
			Position: v.PlayerPosition,
		},
		Assist: assist,
	}
}

func eventsToDTOs(events []match.Event) []eventDTO {
	out := make([]eventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, eventToDTO(e))
	}
	return out
}

// groupedEventKeys maps an event kind to its response key. Only the
// kinds an endpoint requested appear in its events object.
var groupedEventKeys = map[string]string{
	match.EventGoal:       "goals",
	match.EventYellowCard: "yellow_cards",
	match.EventRedCard:    "red_cards",
	match.EventCorner:     "corners",
}

func groupedEventsToDTO(grouped match.GroupedEvents) map[string][]eventDTO {
	out := make(map[string][]eventDTO, len(grouped))
	for kind, events := range grouped {
		key, ok := groupedEventKeys[kind]
		if !ok {
			key = kind
		}
		out[key] = eventsToDTOs(events)
	}
	return out
}

type matchWithEventsDTO struct {
	matchSummaryDTO
	Events map[string][]eventDTO `json:"events"`
}

func matchWithEventsToDTO(v usecase.MatchWithEvents) matchWithEventsDTO {
	return matchWithEventsDTO{
		matchSummaryDTO: matchSummaryToDTO(v.Summary, v.Status),
		Events:          groupedEventsToDTO(v.Events),
	}
}

func matchViewsToDTOs(views []usecase.MatchView) []matchSummaryDTO {
	out := make([]matchSummaryDTO, 0, len(views))
	for _, view := range views {
		out = append(out, matchSummaryToDTO(view.Summary, view.Status))
	}
	return out
}

func matchesWithEventsToDTOs(items []usecase.MatchWithEvents) []matchWithEventsDTO {
	out := make([]matchWithEventsDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchWithEventsToDTO(item))
	}
	return out
}
