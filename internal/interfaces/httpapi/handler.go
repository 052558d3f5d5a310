package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/sports-catalog/internal/platform/logging"
	"github.com/riskibarqy/sports-catalog/internal/usecase"
)

// Default page sizes per listing family. Teams and rosters page wider
// than the match-heavy listings.
const (
	defaultTeamPageLimit  = 20
	defaultMatchPageLimit = 10
)

type Handler struct {
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	competitionService *usecase.CompetitionService
	matchService       *usecase.MatchService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	competitionService *usecase.CompetitionService,
	matchService *usecase.MatchService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:        teamService,
		playerService:      playerService,
		competitionService: competitionService,
		matchService:       matchService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// parsePageRequest reads page/limit query params. Non-numeric or
// sub-1 values silently fall back to the endpoint defaults.
func parsePageRequest(r *http.Request, defaultLimit int) usecase.PageRequest {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return usecase.NewPageRequest(page, limit, defaultLimit)
}

func parseIDPath(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func parseIDQuery(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// parseDateQuery reads an optional date=YYYY-MM-DD filter.
func parseDateQuery(r *http.Request) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be formatted YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return &parsed, nil
}
