package memory

import (
	"time"

	"github.com/riskibarqy/sports-catalog/internal/domain/competition"
	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/domain/player"
	"github.com/riskibarqy/sports-catalog/internal/domain/team"
)

const (
	TeamIDArsenal   int64 = 1
	TeamIDChelsea   int64 = 2
	TeamIDLiverpool int64 = 3
	TeamIDEverton   int64 = 4

	CompetitionIDPremierLeague     int64 = 1
	CompetitionIDFACup             int64 = 2
	CompetitionIDPremierLeaguePrev int64 = 3

	PlayerIDSaka     int64 = 10
	PlayerIDOdegaard int64 = 11
	PlayerIDPalmer   int64 = 12
	PlayerIDSalah    int64 = 13
	PlayerIDJackson  int64 = 14
)

// SeedNow is the reference instant the seeded matches are laid out around:
// everything before it is played, MatchIDNextDerby is in the future.
var SeedNow = time.Date(2025, 12, 13, 12, 0, 0, 0, time.UTC)

const (
	MatchIDLondonDerby int64 = 101
	MatchIDNextDerby   int64 = 102
	MatchIDAnfieldDraw int64 = 103
	MatchIDCupTie      int64 = 104
	MatchIDLastSeason  int64 = 105
	MatchIDBridgeLoss  int64 = 106
	MatchIDMerseyside  int64 = 107
	MatchIDHomeDraw    int64 = 108
	MatchIDAwayWin     int64 = 109
	MatchIDHomeWin     int64 = 110
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDArsenal, Name: "Arsenal", ShortName: "ARS", LogoURL: strPtr("https://cdn.example.com/logos/arsenal.png"), Country: "England"},
		{ID: TeamIDChelsea, Name: "Chelsea", ShortName: "CHE", LogoURL: strPtr("https://cdn.example.com/logos/chelsea.png"), Country: "England"},
		{ID: TeamIDLiverpool, Name: "Liverpool", ShortName: "LIV", Country: "England"},
		{ID: TeamIDEverton, Name: "Everton", ShortName: "EVE", Country: "England"},
	}
}

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{ID: CompetitionIDPremierLeague, Name: "Premier League", Type: competition.TypeLeague, Season: "2025/26"},
		{ID: CompetitionIDFACup, Name: "FA Cup", Type: competition.TypeCup, Season: "2025/26"},
		{ID: CompetitionIDPremierLeaguePrev, Name: "Premier League", Type: competition.TypeLeague, Season: "2024/25"},
	}
}

func SeedMatches() []match.Summary {
	return []match.Summary{
		seedMatch(MatchIDLondonDerby, CompetitionIDPremierLeague, time.Date(2025, 12, 10, 20, 0, 0, 0, time.UTC), "Emirates Stadium", TeamIDArsenal, TeamIDChelsea, intPtr(2), intPtr(1)),
		seedMatch(MatchIDNextDerby, CompetitionIDPremierLeague, time.Date(2025, 12, 20, 17, 30, 0, 0, time.UTC), "Stamford Bridge", TeamIDChelsea, TeamIDArsenal, nil, nil),
		seedMatch(MatchIDAnfieldDraw, CompetitionIDPremierLeague, time.Date(2025, 11, 30, 16, 0, 0, 0, time.UTC), "Anfield", TeamIDLiverpool, TeamIDArsenal, intPtr(1), intPtr(1)),
		seedMatch(MatchIDCupTie, CompetitionIDFACup, time.Date(2025, 9, 15, 19, 45, 0, 0, time.UTC), "Emirates Stadium", TeamIDArsenal, TeamIDEverton, intPtr(3), intPtr(0)),
		seedMatch(MatchIDLastSeason, CompetitionIDPremierLeaguePrev, time.Date(2025, 5, 1, 15, 0, 0, 0, time.UTC), "Goodison Park", TeamIDEverton, TeamIDArsenal, intPtr(0), intPtr(2)),
		seedMatch(MatchIDBridgeLoss, CompetitionIDPremierLeague, time.Date(2025, 10, 5, 14, 0, 0, 0, time.UTC), "Stamford Bridge", TeamIDChelsea, TeamIDLiverpool, intPtr(1), intPtr(2)),
		seedMatch(MatchIDMerseyside, CompetitionIDPremierLeague, time.Date(2025, 8, 20, 20, 0, 0, 0, time.UTC), "Anfield", TeamIDLiverpool, TeamIDEverton, intPtr(2), intPtr(0)),
		seedMatch(MatchIDHomeDraw, CompetitionIDPremierLeague, time.Date(2025, 11, 15, 17, 30, 0, 0, time.UTC), "Emirates Stadium", TeamIDArsenal, TeamIDLiverpool, intPtr(2), intPtr(2)),
		seedMatch(MatchIDAwayWin, CompetitionIDPremierLeague, time.Date(2025, 10, 25, 15, 0, 0, 0, time.UTC), "Goodison Park", TeamIDEverton, TeamIDArsenal, intPtr(1), intPtr(3)),
		seedMatch(MatchIDHomeWin, CompetitionIDPremierLeague, time.Date(2025, 9, 28, 16, 30, 0, 0, time.UTC), "Emirates Stadium", TeamIDArsenal, TeamIDChelsea, intPtr(1), intPtr(0)),
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: PlayerIDSaka, Name: "Bukayo Saka", DateOfBirth: datePtr(2001, 9, 5), Nationality: "England", Position: "RW", PhotoURL: strPtr("https://cdn.example.com/players/saka.png")},
		{ID: PlayerIDOdegaard, Name: "Martin Odegaard", DateOfBirth: datePtr(1998, 12, 17), Nationality: "Norway", Position: "AM"},
		{ID: PlayerIDPalmer, Name: "Cole Palmer", DateOfBirth: datePtr(2002, 5, 6), Nationality: "England", Position: "AM"},
		{ID: PlayerIDSalah, Name: "Mohamed Salah", DateOfBirth: datePtr(1992, 6, 15), Nationality: "Egypt", Position: "RW"},
		{ID: PlayerIDJackson, Name: "Nicolas Jackson", DateOfBirth: datePtr(2001, 6, 20), Nationality: "Senegal", Position: "ST"},
	}
}

func SeedTenures() []player.Tenure {
	return []player.Tenure{
		{PlayerID: PlayerIDSaka, TeamID: TeamIDArsenal, TeamName: "Arsenal", StartDate: time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC)},
		{PlayerID: PlayerIDOdegaard, TeamID: TeamIDArsenal, TeamName: "Arsenal", StartDate: time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC)},
		{PlayerID: PlayerIDPalmer, TeamID: TeamIDChelsea, TeamName: "Chelsea", StartDate: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)},
		{PlayerID: PlayerIDSalah, TeamID: TeamIDLiverpool, TeamName: "Liverpool", StartDate: time.Date(2017, 7, 1, 0, 0, 0, 0, time.UTC)},
		{PlayerID: PlayerIDJackson, TeamID: TeamIDEverton, TeamName: "Everton", StartDate: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), EndDate: datePtr(2025, 6, 30)},
		{PlayerID: PlayerIDJackson, TeamID: TeamIDChelsea, TeamName: "Chelsea", StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func SeedEvents() []match.Event {
	return []match.Event{
		{ID: 1001, MatchID: MatchIDLondonDerby, Type: match.EventGoal, Minute: 12, PlayerID: PlayerIDSaka, PlayerName: "Bukayo Saka", PlayerPosition: "RW", AssistPlayerID: int64Ptr(PlayerIDOdegaard), AssistPlayerName: strPtr("Martin Odegaard")},
		{ID: 1002, MatchID: MatchIDLondonDerby, Type: match.EventCorner, Minute: 27, PlayerID: PlayerIDOdegaard, PlayerName: "Martin Odegaard", PlayerPosition: "AM"},
		{ID: 1003, MatchID: MatchIDLondonDerby, Type: match.EventYellowCard, Minute: 34, PlayerID: PlayerIDPalmer, PlayerName: "Cole Palmer", PlayerPosition: "AM"},
		{ID: 1004, MatchID: MatchIDLondonDerby, Type: match.EventGoal, Minute: 58, PlayerID: PlayerIDSaka, PlayerName: "Bukayo Saka", PlayerPosition: "RW"},
		{ID: 1005, MatchID: MatchIDLondonDerby, Type: match.EventGoal, Minute: 71, PlayerID: PlayerIDPalmer, PlayerName: "Cole Palmer", PlayerPosition: "AM"},

		{ID: 1006, MatchID: MatchIDAnfieldDraw, Type: match.EventGoal, Minute: 22, PlayerID: PlayerIDSalah, PlayerName: "Mohamed Salah", PlayerPosition: "RW"},
		{ID: 1007, MatchID: MatchIDAnfieldDraw, Type: match.EventGoal, Minute: 64, PlayerID: PlayerIDSaka, PlayerName: "Bukayo Saka", PlayerPosition: "RW", AssistPlayerID: int64Ptr(PlayerIDOdegaard), AssistPlayerName: strPtr("Martin Odegaard")},

		{ID: 1008, MatchID: MatchIDCupTie, Type: match.EventGoal, Minute: 9, PlayerID: PlayerIDSaka, PlayerName: "Bukayo Saka", PlayerPosition: "RW"},
		{ID: 1009, MatchID: MatchIDCupTie, Type: match.EventGoal, Minute: 45, PlayerID: PlayerIDOdegaard, PlayerName: "Martin Odegaard", PlayerPosition: "AM", AssistPlayerID: int64Ptr(PlayerIDSaka), AssistPlayerName: strPtr("Bukayo Saka")},

		{ID: 1010, MatchID: MatchIDLastSeason, Type: match.EventGoal, Minute: 18, PlayerID: PlayerIDSaka, PlayerName: "Bukayo Saka", PlayerPosition: "RW"},

		{ID: 1011, MatchID: MatchIDBridgeLoss, Type: match.EventGoal, Minute: 40, PlayerID: PlayerIDSalah, PlayerName: "Mohamed Salah", PlayerPosition: "RW"},
		{ID: 1012, MatchID: MatchIDBridgeLoss, Type: match.EventRedCard, Minute: 77, PlayerID: PlayerIDJackson, PlayerName: "Nicolas Jackson", PlayerPosition: "ST"},

		{ID: 1013, MatchID: MatchIDMerseyside, Type: match.EventGoal, Minute: 31, PlayerID: PlayerIDSalah, PlayerName: "Mohamed Salah", PlayerPosition: "RW"},

		{ID: 1014, MatchID: MatchIDHomeDraw, Type: match.EventGoal, Minute: 15, PlayerID: PlayerIDSaka, PlayerName: "Bukayo Saka", PlayerPosition: "RW"},
		{ID: 1015, MatchID: MatchIDHomeDraw, Type: match.EventGoal, Minute: 50, PlayerID: PlayerIDSalah, PlayerName: "Mohamed Salah", PlayerPosition: "RW"},

		{ID: 1016, MatchID: MatchIDAwayWin, Type: match.EventGoal, Minute: 25, PlayerID: PlayerIDSaka, PlayerName: "Bukayo Saka", PlayerPosition: "RW"},
		{ID: 1017, MatchID: MatchIDAwayWin, Type: match.EventYellowCard, Minute: 68, PlayerID: PlayerIDSaka, PlayerName: "Bukayo Saka", PlayerPosition: "RW"},

		{ID: 1018, MatchID: MatchIDHomeWin, Type: match.EventGoal, Minute: 82, PlayerID: PlayerIDSaka, PlayerName: "Bukayo Saka", PlayerPosition: "RW"},
	}
}

func seedMatch(id, competitionID int64, date time.Time, venue string, homeID, awayID int64, scoreHome, scoreAway *int) match.Summary {
	teams := make(map[int64]team.Team, 4)
	for _, t := range SeedTeams() {
		teams[t.ID] = t
	}
	comps := make(map[int64]competition.Competition, 3)
	for _, c := range SeedCompetitions() {
		comps[c.ID] = c
	}

	home, away, comp := teams[homeID], teams[awayID], comps[competitionID]
	return match.Summary{
		Match: match.Match{
			ID:            id,
			CompetitionID: competitionID,
			Date:          date,
			Venue:         strPtr(venue),
			HomeTeamID:    homeID,
			AwayTeamID:    awayID,
			ScoreHome:     scoreHome,
			ScoreAway:     scoreAway,
		},
		CompetitionName:   comp.Name,
		CompetitionType:   comp.Type,
		CompetitionSeason: comp.Season,
		HomeTeamName:      home.Name,
		HomeTeamShort:     home.ShortName,
		HomeTeamLogoURL:   home.LogoURL,
		HomeTeamCountry:   home.Country,
		AwayTeamName:      away.Name,
		AwayTeamShort:     away.ShortName,
		AwayTeamLogoURL:   away.LogoURL,
		AwayTeamCountry:   away.Country,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func int64Ptr(n int64) *int64 { return &n }

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
