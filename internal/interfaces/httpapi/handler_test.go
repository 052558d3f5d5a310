package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sports-catalog/internal/platform/id"
	"github.com/riskibarqy/sports-catalog/internal/platform/logging"
	"github.com/riskibarqy/sports-catalog/internal/usecase"
)

func newTestRouter(t *testing.T, secret string) http.Handler {
	t.Helper()

	clock := clockwork.NewFakeClockAt(memory.SeedNow)
	matches := memory.SeedMatches()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedTenures(), memory.SeedEvents(), matches)
	matchRepo := memory.NewMatchRepository(matches, memory.SeedEvents())
	competitionRepo := memory.NewCompetitionRepository(memory.SeedCompetitions(), matches)

	handler := NewHandler(
		usecase.NewTeamService(teamRepo, playerRepo, matchRepo, competitionRepo, clock),
		usecase.NewPlayerService(playerRepo, teamRepo),
		usecase.NewCompetitionService(competitionRepo, matchRepo, clock),
		usecase.NewMatchService(matchRepo, clock),
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), id.NewRandomGenerator(), clock, RouterConfig{
		AppSecret:       secret,
		SignatureWindow: 240 * time.Second,
	})
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := sonic.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, "")

	rec := get(t, router, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestRouter_ListTeams(t *testing.T) {
	router := newTestRouter(t, "")

	rec := get(t, router, "/v1/teams")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var body struct {
		Page  int       `json:"page"`
		Limit int       `json:"limit"`
		Data  []teamDTO `json:"data"`
	}
	decode(t, rec, &body)
	if body.Page != 1 || body.Limit != defaultTeamPageLimit {
		t.Fatalf("unexpected page coordinates: page=%d limit=%d", body.Page, body.Limit)
	}
	if len(body.Data) != 4 {
		t.Fatalf("unexpected team count: %d", len(body.Data))
	}
	if body.Data[0].Name != "Arsenal" {
		t.Fatalf("teams should be ordered by name, got %s first", body.Data[0].Name)
	}
}

func TestRouter_ListTeams_PaginationFallbacks(t *testing.T) {
	router := newTestRouter(t, "")

	rec := get(t, router, "/v1/teams?page=abc&limit=-3")
	var body struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
	}
	decode(t, rec, &body)
	if body.Page != 1 || body.Limit != defaultTeamPageLimit {
		t.Fatalf("non-numeric params should fall back to defaults, got page=%d limit=%d", body.Page, body.Limit)
	}
}

func TestRouter_GetTeam_NotFound(t *testing.T) {
	router := newTestRouter(t, "")

	rec := get(t, router, "/v1/teams/999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestRouter_TeamHomepage(t *testing.T) {
	router := newTestRouter(t, "")

	rec := get(t, router, "/v1/teams/1/homepage")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var body struct {
		Data struct {
			Latest *struct {
				ID     int64      `json:"id"`
				Status string     `json:"status"`
				Events []eventDTO `json:"events"`
			} `json:"latest"`
			Next *struct {
				ID        int64  `json:"id"`
				Status    string `json:"status"`
				KickoffIn string `json:"kickoffIn"`
			} `json:"next"`
			Competitions []competitionDTO `json:"competitions"`
		} `json:"data"`
	}
	decode(t, rec, &body)

	if body.Data.Latest == nil || body.Data.Latest.ID != memory.MatchIDLondonDerby {
		t.Fatalf("unexpected latest: %+v", body.Data.Latest)
	}
	if body.Data.Latest.Status != "FT" {
		t.Fatalf("unexpected latest status: %s", body.Data.Latest.Status)
	}
	if body.Data.Next == nil || body.Data.Next.KickoffIn != "7d 5h" {
		t.Fatalf("unexpected next: %+v", body.Data.Next)
	}
	if len(body.Data.Competitions) != 2 {
		t.Fatalf("unexpected competitions: %+v", body.Data.Competitions)
	}
}

func TestRouter_MatchDetails(t *testing.T) {
	router := newTestRouter(t, "")

	rec := get(t, router, "/v1/matches/"+strconv.FormatInt(memory.MatchIDLondonDerby, 10)+"/details")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var body struct {
		Data struct {
			Status string                `json:"status"`
			Score  *scoreDTO             `json:"score"`
			Events map[string][]eventDTO `json:"events"`
		} `json:"data"`
	}
	decode(t, rec, &body)

	if body.Data.Status != "FT" {
		t.Fatalf("unexpected status: %s", body.Data.Status)
	}
	if body.Data.Score == nil || body.Data.Score.Home != 2 || body.Data.Score.Away != 1 {
		t.Fatalf("unexpected score: %+v", body.Data.Score)
	}
	if len(body.Data.Events["goals"]) != 3 {
		t.Fatalf("unexpected goals: %d", len(body.Data.Events["goals"]))
	}
	if got, ok := body.Data.Events["red_cards"]; !ok || got == nil {
		t.Fatal("red_cards partition must be present even when empty")
	}
	if _, ok := body.Data.Events["corners"]; ok {
		t.Fatal("corners do not belong on match details")
	}

	goal := body.Data.Events["goals"][0]
	if goal.Player.Name != "Bukayo Saka" || goal.Assist == nil || goal.Assist.Name != "Martin Odegaard" {
		t.Fatalf("unexpected first goal: %+v", goal)
	}
}

func TestRouter_MatchSummaryTeamKeys(t *testing.T) {
	router := newTestRouter(t, "")

	rec := get(t, router, "/v1/matches/"+strconv.FormatInt(memory.MatchIDLondonDerby, 10))
	raw := rec.Body.String()
	if !strings.Contains(raw, `"home_team"`) || !strings.Contains(raw, `"away_team"`) {
		t.Fatalf("match summary should use home_team/away_team keys: %s", raw)
	}
	if strings.Contains(raw, `"homeTeam"`) || strings.Contains(raw, `"awayTeam"`) {
		t.Fatalf("unexpected camelCase team keys: %s", raw)
	}
}

func TestHomepageToDTO_LatestWithoutEventsKeepsEmptyList(t *testing.T) {
	home, away := 1, 0
	v := usecase.Homepage{
		Latest: &usecase.HomeMatch{
			Summary: match.Summary{
				Match: match.Match{
					ID:        55,
					Date:      time.Date(2025, 11, 2, 15, 0, 0, 0, time.UTC),
					ScoreHome: &home,
					ScoreAway: &away,
				},
			},
			Status: match.StatusFT,
		},
	}

	out, err := sonic.Marshal(homepageToDTO(v))
	if err != nil {
		t.Fatalf("marshal homepage: %v", err)
	}
	if !strings.Contains(string(out), `"events":[]`) {
		t.Fatalf("latest without events should still carry an empty list: %s", out)
	}
}

func TestRouter_PlayerSearchRequiresName(t *testing.T) {
	router := newTestRouter(t, "")

	if rec := get(t, router, "/v1/players/search"); rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if rec := get(t, router, "/v1/players/search?name=saka"); rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestRouter_PlayerDetail(t *testing.T) {
	router := newTestRouter(t, "")

	rec := get(t, router, "/v1/players/"+strconv.FormatInt(memory.PlayerIDSaka, 10))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var body struct {
		Data struct {
			Name        string         `json:"name"`
			Stats       playerStatsDTO `json:"stats"`
			History     []tenureDTO    `json:"history"`
			LastMatches []formEntryDTO `json:"last_matches"`
		} `json:"data"`
	}
	decode(t, rec, &body)

	if body.Data.Stats.GoalsScored != 8 {
		t.Fatalf("unexpected goals: %d", body.Data.Stats.GoalsScored)
	}
	if len(body.Data.LastMatches) != 5 {
		t.Fatalf("unexpected form length: %d", len(body.Data.LastMatches))
	}

	derby := body.Data.LastMatches[0]
	if derby.ID != memory.MatchIDLondonDerby {
		t.Fatalf("unexpected first form match: %d", derby.ID)
	}
	if derby.HomeTeamScore == nil || *derby.HomeTeamScore != 2 {
		t.Fatalf("unexpected home score: %v", derby.HomeTeamScore)
	}
	if derby.AwayTeamScore == nil || *derby.AwayTeamScore != 1 {
		t.Fatalf("unexpected away score: %v", derby.AwayTeamScore)
	}
	if derby.MatchVenue == nil || *derby.MatchVenue != "Emirates Stadium" {
		t.Fatalf("unexpected venue: %v", derby.MatchVenue)
	}
	if derby.Result == nil || *derby.Result != "2-1" {
		t.Fatalf("unexpected first result: %v", derby.Result)
	}
}

func TestFormEntryToDTO_ScoresKeptWhenResultUnresolved(t *testing.T) {
	home, away := 3, 1
	entry := usecase.FormEntry{
		MatchID:   77,
		Date:      time.Date(2025, 10, 1, 15, 0, 0, 0, time.UTC),
		ScoreHome: &home,
		ScoreAway: &away,
	}

	dto := formEntryToDTO(entry)
	if dto.Result != nil {
		t.Fatalf("result should stay null without a covering tenure, got %v", dto.Result)
	}
	if dto.HomeTeamScore == nil || *dto.HomeTeamScore != 3 {
		t.Fatalf("unexpected home score: %v", dto.HomeTeamScore)
	}
	if dto.AwayTeamScore == nil || *dto.AwayTeamScore != 1 {
		t.Fatalf("unexpected away score: %v", dto.AwayTeamScore)
	}
}

func TestRouter_SignatureGate(t *testing.T) {
	router := newTestRouter(t, testSecret)

	t.Run("healthz stays open", func(t *testing.T) {
		if rec := get(t, router, "/healthz"); rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", rec.Code)
		}
	})

	t.Run("unsigned request rejected", func(t *testing.T) {
		if rec := get(t, router, "/v1/teams"); rec.Code != http.StatusUnauthorized {
			t.Fatalf("unexpected status: %d", rec.Code)
		}
	})

	t.Run("signed request accepted", func(t *testing.T) {
		timestamp := strconv.FormatInt(memory.SeedNow.Unix(), 10)
		req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
		req.Header.Set(headerAppTimestamp, timestamp)
		req.Header.Set(headerAppSignature, computeAppSignature(testSecret, timestamp))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", rec.Code)
		}
	})
}
