package app

import (
	"context"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/sports-catalog/internal/config"
	"github.com/riskibarqy/sports-catalog/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/sports-catalog/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/sports-catalog/internal/platform/id"
	"github.com/riskibarqy/sports-catalog/internal/platform/logging"
	"github.com/riskibarqy/sports-catalog/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, crerr.Wrap(err, "open database")
	}

	clock := clockwork.NewRealClock()

	teamRepo := postgres.NewTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	competitionRepo := postgres.NewCompetitionRepository(db)

	handler := httpapi.NewHandler(
		usecase.NewTeamService(teamRepo, playerRepo, matchRepo, competitionRepo, clock),
		usecase.NewPlayerService(playerRepo, teamRepo),
		usecase.NewCompetitionService(competitionRepo, matchRepo, clock),
		usecase.NewMatchService(matchRepo, clock),
		logger,
	)

	router := httpapi.NewRouter(handler, logger, idgen.NewRandomGenerator(), clock, httpapi.RouterConfig{
		AppSecret:          cfg.AppSecret,
		SignatureWindow:    cfg.AppSignatureWindow,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, crerr.New("http server addr cannot be empty")
	}

	return server, db.Close, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "connect postgres")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "ping postgres")
	}

	return db, nil
}
