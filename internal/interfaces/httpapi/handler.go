package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

type Handler struct {
	leagueService   *usecase.LeagueService
	matchService    *usecase.MatchService
	standingService *usecase.StandingService
	leaderService   *usecase.LeaderService
	newsService     *usecase.NewsService
	logger          *logging.Logger
	validator       *validator.Validate
	now             func() time.Time
}

func NewHandler(
	leagueService *usecase.LeagueService,
	matchService *usecase.MatchService,
	standingService *usecase.StandingService,
	leaderService *usecase.LeaderService,
	newsService *usecase.NewsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:   leagueService,
		matchService:    matchService,
		standingService: standingService,
		leaderService:   leaderService,
		newsService:     newsService,
		logger:          logger,
		validator:       validator.New(),
		now:             time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

type matchesQuery struct {
	Date     string `validate:"omitempty,datetime=2006-01-02"`
	Timezone string `validate:"omitempty,timezone"`
}

// ListMatches serves one calendar day. date defaults to today and tz to UTC;
// the day boundaries are taken in tz.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches", leagueAttr(leagueID))
	defer span.End()

	query := matchesQuery{
		Date:     strings.TrimSpace(r.URL.Query().Get("date")),
		Timezone: strings.TrimSpace(r.URL.Query().Get("tz")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := h.resolveDate(query)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	schedule, err := h.matchService.GetMatches(ctx, leagueID, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "league_id", leagueID, "date", query.Date, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, scheduleToDTO(schedule))
}

func (h *Handler) resolveDate(query matchesQuery) (time.Time, error) {
	loc := time.UTC
	if query.Timezone != "" {
		loaded, err := time.LoadLocation(query.Timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: unknown timezone %q", usecase.ErrInvalidInput, query.Timezone)
		}
		loc = loaded
	}

	if query.Date == "" {
		return h.now().In(loc), nil
	}
	date, err := time.ParseInLocation(time.DateOnly, query.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return date, nil
}

// GetMatchDetail answers with null data when the upstream has no summary for
// the match.
func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	matchID := strings.TrimSpace(r.PathValue("matchID"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail", leagueAttr(leagueID))
	defer span.End()

	detail, err := h.matchService.GetMatchDetail(ctx, leagueID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match detail failed", "league_id", leagueID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if detail == nil {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(detail))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings", leagueAttr(leagueID))
	defer span.End()

	entries, err := h.standingService.GetStandings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, standingToDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLeaders(w http.ResponseWriter, r *http.Request) {
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaders", leagueAttr(leagueID))
	defer span.End()

	categories, err := h.leaderService.GetPlayerLeaders(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list leaders failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderCategoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, leaderCategoryToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

type newsQuery struct {
	MatchID string `validate:"omitempty,max=64,alphanum"`
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews", leagueAttr(leagueID))
	defer span.End()

	query := newsQuery{MatchID: strings.TrimSpace(r.URL.Query().Get("match_id"))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	articles, err := h.newsService.GetNews(ctx, leagueID, query.MatchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list news failed", "league_id", leagueID, "match_id", query.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]articleDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, articleToDTO(a))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
