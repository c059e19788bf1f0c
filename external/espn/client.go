package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scoreboard/internal/domain/leader"
	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/match"
	"github.com/riskibarqy/scoreboard/internal/domain/news"
	"github.com/riskibarqy/scoreboard/internal/domain/standing"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/payload"
	"github.com/riskibarqy/scoreboard/internal/platform/resilience"
	"github.com/riskibarqy/scoreboard/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL   = "https://site.api.espn.com"
	defaultNewsLimit = 20
	maxResponseBytes = 8 << 20
)

var errESPNTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public ESPN site API. It never retries; a failed call is
// reported once and the caller decides how to degrade.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.Group[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

func (c *Client) FetchScoreboard(ctx context.Context, lg league.League, queryDate string) (match.Schedule, error) {
	query := url.Values{}
	if queryDate != "" {
		query.Set("dates", queryDate)
	}

	root, err := c.doJSON(ctx, sitePath(lg, "scoreboard"), query)
	if err != nil {
		return match.Schedule{}, fmt.Errorf("fetch scoreboard league=%s date=%s: %w", lg.ID, queryDate, err)
	}
	return parseScoreboard(root, lg), nil
}

// FetchMatchDetail returns nil without error when the summary carries no competition.
func (c *Client) FetchMatchDetail(ctx context.Context, lg league.League, matchID string) (*match.MatchDetail, error) {
	query := url.Values{}
	query.Set("event", matchID)

	root, err := c.doJSON(ctx, sitePath(lg, "summary"), query)
	if err != nil {
		return nil, fmt.Errorf("fetch summary league=%s event=%s: %w", lg.ID, matchID, err)
	}
	detail, ok := parseSummary(root, lg, matchID)
	if !ok {
		return nil, nil
	}
	return detail, nil
}

func (c *Client) FetchTeamRecord(ctx context.Context, lg league.League, teamID string) (string, error) {
	root, err := c.doJSON(ctx, sitePath(lg, "teams/"+url.PathEscape(teamID)), nil)
	if err != nil {
		return "", fmt.Errorf("fetch team league=%s team=%s: %w", lg.ID, teamID, err)
	}
	team := root.Map("team")
	return payload.FirstNonEmpty(
		recordFromItems(team.Map("record").Maps("items")),
		team.String("standingSummary"),
	), nil
}

func (c *Client) FetchStandings(ctx context.Context, lg league.League) ([]standing.Entry, error) {
	path := fmt.Sprintf("/apis/v2/sports/%s/%s/standings", lg.Sport, lg.Slug)
	root, err := c.doJSON(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch standings league=%s: %w", lg.ID, err)
	}
	return flattenStandings(root, lg.Family), nil
}

func (c *Client) FetchLeaders(ctx context.Context, lg league.League) ([]leader.Category, error) {
	path := fmt.Sprintf("/apis/site/v3/sports/%s/%s/leaders", lg.Sport, lg.Slug)
	if lg.Family == league.FamilySoccer {
		path = sitePath(lg, "statistics")
	}
	root, err := c.doJSON(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch leaders league=%s: %w", lg.ID, err)
	}
	return parseLeaders(root), nil
}

func (c *Client) FetchNews(ctx context.Context, lg league.League, matchID string, limit int) ([]news.Article, error) {
	if limit <= 0 {
		limit = defaultNewsLimit
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if matchID != "" {
		query.Set("event", matchID)
	}

	root, err := c.doJSON(ctx, sitePath(lg, "news"), query)
	if err != nil {
		return nil, fmt.Errorf("fetch news league=%s: %w", lg.ID, err)
	}
	return parseNews(root, lg.ID), nil
}

func sitePath(lg league.League, resource string) string {
	return fmt.Sprintf("/apis/site/v2/sports/%s/%s/%s", lg.Sport, lg.Slug, resource)
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values) (payload.Map, error) {
	fullURL := c.baseURL + path
	encoded := query.Encode()
	if encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err, _ := c.flight.Do(path+"?"+encoded, func() ([]byte, error) {
		var body []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isTransient)
		return body, execErr
	})
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "path", path, "state", string(c.breaker.State()))
		return nil, fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return nil, err
	}

	var decoded map[string]any
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, crerr.Wrapf(err, "decode espn payload path=%s", path)
	}
	return payload.Map(decoded), nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", err)
		return nil, crerr.Wrapf(errESPNTransient, "send request: %v", err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return nil, crerr.Wrapf(errESPNTransient, "read response body: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "espn request returned non-success status",
			"url", fullURL,
			"status", resp.StatusCode,
			"body", abbreviateBody(buf.B),
		)
		if isTransientStatus(resp.StatusCode) {
			return nil, crerr.Wrapf(errESPNTransient, "provider status=%d", resp.StatusCode)
		}
		return nil, crerr.Newf("provider status=%d", resp.StatusCode)
	}

	// The pooled buffer is reused after Put, so the caller gets its own copy.
	return append([]byte(nil), buf.B...), nil
}

func isTransient(err error) bool {
	return crerr.Is(err, errESPNTransient)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
