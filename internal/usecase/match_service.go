package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/match"
	"github.com/riskibarqy/scoreboard/internal/platform/cache"
	"github.com/riskibarqy/scoreboard/internal/platform/dateutil"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const defaultRecordLookupTimeout = 3 * time.Second

type MatchServiceConfig struct {
	TopLeagues          []string
	RecordLookupTimeout time.Duration
}

type MatchService struct {
	leagueRepo    league.Repository
	provider      SportsDataProvider
	records       *cache.Store[string]
	pool          *ants.Pool
	topLeagues    []string
	recordTimeout time.Duration
	logger        *logging.Logger
}

// NewMatchService wires the scoreboard aggregator. pool and records may be nil:
// lookups then run on plain goroutines and are not cached.
func NewMatchService(
	leagueRepo league.Repository,
	provider SportsDataProvider,
	pool *ants.Pool,
	records *cache.Store[string],
	cfg MatchServiceConfig,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.RecordLookupTimeout
	if timeout <= 0 {
		timeout = defaultRecordLookupTimeout
	}

	return &MatchService{
		leagueRepo:    leagueRepo,
		provider:      provider,
		records:       records,
		pool:          pool,
		topLeagues:    append([]string(nil), cfg.TopLeagues...),
		recordTimeout: timeout,
		logger:        logger,
	}
}

// GetMatches returns the matches starting on date's calendar day in date's
// location. Upstream failures degrade to an empty schedule.
func (s *MatchService) GetMatches(ctx context.Context, leagueID string, date time.Time) (match.Schedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatches", leagueAttr(leagueID), attribute.String("scoreboard.date", date.Format(time.DateOnly)))
	defer span.End()

	if date.IsZero() {
		return match.Schedule{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if isTopLeague(leagueID) {
		return s.getTopMatches(ctx, date), nil
	}

	lg, err := resolveLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return match.Schedule{}, err
	}
	return s.getLeagueMatches(ctx, lg, date), nil
}

// getLeagueMatches fetches the previous and requested day together; a failing
// or panicking day contributes nothing.
func (s *MatchService) getLeagueMatches(ctx context.Context, lg league.League, date time.Time) match.Schedule {
	days := []time.Time{dateutil.PreviousDay(date), date}
	schedules, recovered := fanOut(days, func(day *time.Time) match.Schedule {
		return s.fetchScoreboard(ctx, lg, dateutil.LeagueQueryDate(*day, lg.Timezone))
	})
	if recovered != nil {
		s.logger.ErrorContext(ctx, "league matches fan-out panicked", "league_id", lg.ID, "panic", recovered.String())
		return match.Schedule{Matches: []match.Match{}, Calendar: []match.CalendarEntry{}}
	}
	return mergeDay(schedules, date)
}

func (s *MatchService) getTopMatches(ctx context.Context, date time.Time) match.Schedule {
	leagues := resolveRoster(ctx, s.leagueRepo, s.topLeagues, s.logger)

	perLeague, recovered := fanOut(leagues, func(lg *league.League) match.Schedule {
		return s.getLeagueMatches(ctx, *lg, date)
	})
	if recovered != nil {
		s.logger.ErrorContext(ctx, "top matches fan-out panicked", "date", date.Format(time.DateOnly), "panic", recovered.String())
		return match.Schedule{Matches: []match.Match{}, Calendar: []match.CalendarEntry{}}
	}

	return mergeTop(perLeague)
}

// fetchScoreboard absorbs upstream failures and panics so one bad day never
// fails its sibling.
func (s *MatchService) fetchScoreboard(ctx context.Context, lg league.League, queryDate string) (schedule match.Schedule) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.ErrorContext(ctx, "scoreboard fetch panicked", "league_id", lg.ID, "query_date", queryDate, "panic", rec)
			schedule = match.Schedule{}
		}
	}()

	schedule, err := s.provider.FetchScoreboard(ctx, lg, queryDate)
	if err != nil {
		s.logger.WarnContext(ctx, "scoreboard fetch failed", "league_id", lg.ID, "query_date", queryDate, "error", err)
		return match.Schedule{}
	}
	return schedule
}

// mergeDay unions schedules in order, keeps the last copy of each match id at
// its first position, drops matches outside date's calendar day and sorts by
// start time.
func mergeDay(schedules []match.Schedule, date time.Time) match.Schedule {
	index := make(map[string]int)
	merged := make([]match.Match, 0)
	calendar := make([]match.CalendarEntry, 0)

	for _, schedule := range schedules {
		calendar = append(calendar, schedule.Calendar...)
		for _, m := range schedule.Matches {
			if pos, ok := index[m.ID]; ok {
				merged[pos] = m
				continue
			}
			index[m.ID] = len(merged)
			merged = append(merged, m)
		}
	}

	matches := make([]match.Match, 0, len(merged))
	for _, m := range merged {
		if dateutil.SameCalendarDay(m.StartTime.In(date.Location()), date) {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].StartTime.Equal(matches[j].StartTime) {
			return matches[i].StartTime.Before(matches[j].StartTime)
		}
		return matches[i].ID < matches[j].ID
	})

	return match.Schedule{Matches: matches, Calendar: calendar}
}

// mergeTop flattens per-league schedules and puts live matches first.
func mergeTop(schedules []match.Schedule) match.Schedule {
	matches := make([]match.Match, 0)
	calendar := make([]match.CalendarEntry, 0)
	for _, schedule := range schedules {
		matches = append(matches, schedule.Matches...)
		calendar = append(calendar, schedule.Calendar...)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.IsLive() != b.IsLive() {
			return a.IsLive()
		}
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.ID < b.ID
	})

	return match.Schedule{Matches: matches, Calendar: calendar}
}

// GetMatchDetail returns nil without error when the upstream has no usable summary.
func (s *MatchService) GetMatchDetail(ctx context.Context, leagueID, matchID string) (*match.MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatchDetail", leagueAttr(leagueID), attribute.String("scoreboard.match_id", matchID))
	defer span.End()

	lg, err := resolveLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	detail, err := s.provider.FetchMatchDetail(ctx, lg, matchID)
	if err != nil {
		s.logger.WarnContext(ctx, "match summary fetch failed", "league_id", lg.ID, "match_id", matchID, "error", err)
		return nil, nil
	}
	if detail == nil {
		return nil, nil
	}

	if lg.Family == league.FamilyBasketball {
		s.backfillRecords(ctx, lg, detail)
	}
	return detail, nil
}

// backfillRecords fills blank team records from the team endpoint, both teams
// at once, bounded by the lookup timeout.
func (s *MatchService) backfillRecords(ctx context.Context, lg league.League, detail *match.MatchDetail) {
	teams := []*match.Team{&detail.Home, &detail.Away}
	found := make([]string, len(teams))

	lookupCtx, cancel := context.WithTimeout(ctx, s.recordTimeout)
	defer cancel()

	var workers sync.WaitGroup
	for i, team := range teams {
		if team.Record != "" || team.ID == "" {
			continue
		}

		teamID := team.ID
		task := func() {
			defer workers.Done()
			defer func() {
				if rec := recover(); rec != nil {
					s.logger.ErrorContext(ctx, "team record lookup panicked", "league_id", lg.ID, "team_id", teamID, "panic", rec)
				}
			}()
			found[i] = s.lookupTeamRecord(lookupCtx, lg, teamID)
		}

		workers.Add(1)
		if s.pool == nil {
			go task()
			continue
		}
		if err := s.pool.Submit(task); err != nil {
			s.logger.WarnContext(ctx, "record lookup pool rejected task, running inline", "team_id", teamID, "error", err)
			task()
		}
	}
	workers.Wait()

	for i, team := range teams {
		if team.Record == "" {
			team.Record = found[i]
		}
	}
}

func (s *MatchService) lookupTeamRecord(ctx context.Context, lg league.League, teamID string) string {
	load := func(ctx context.Context) (string, error) {
		return s.provider.FetchTeamRecord(ctx, lg, teamID)
	}

	var (
		record string
		err    error
	)
	if s.records != nil {
		record, err = s.records.GetOrLoad(ctx, lg.ID+":"+teamID, load)
	} else {
		record, err = load(ctx)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "team record lookup failed", "league_id", lg.ID, "team_id", teamID, "error", err)
		return ""
	}
	return record
}
