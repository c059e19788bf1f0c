package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	ShutdownTimeout            time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	SwaggerEnabled             bool
	LeagueCatalogPath          string
	// Empty top rosters fall back to the catalog file, then the built-in seed.
	TopMatchLeagues            []string
	TopNewsLeagues             []string
	NewsLimit                  int
	ESPNBaseURL                string
	ESPNTimeout                time.Duration
	ESPNCircuitEnabled         bool
	ESPNCircuitFailureCount    int
	ESPNCircuitOpenTimeout     time.Duration
	ESPNCircuitHalfOpenMaxReq  int
	TeamRecordCacheTTL         time.Duration
	TeamRecordWorkers          int
	TeamRecordTimeout          time.Duration
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	espnBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("ESPN_BASE_URL", "https://site.api.espn.com")), "/")
	if parsed, err := url.Parse(espnBaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("ESPN_BASE_URL must be an absolute URL, got %q", espnBaseURL)
	}
	espnTimeout, err := time.ParseDuration(getEnv("ESPN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_TIMEOUT: %w", err)
	}
	if espnTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_TIMEOUT must be > 0")
	}
	espnCircuitEnabled, err := strconv.ParseBool(getEnv("ESPN_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_ENABLED: %w", err)
	}
	espnCircuitFailureCount, err := getEnvAsInt("ESPN_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if espnCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	espnCircuitOpenTimeout, err := time.ParseDuration(getEnv("ESPN_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if espnCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	espnCircuitHalfOpenMaxReq, err := getEnvAsInt("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if espnCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	teamRecordCacheTTL, err := time.ParseDuration(getEnv("TEAM_RECORD_CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAM_RECORD_CACHE_TTL: %w", err)
	}
	if teamRecordCacheTTL < 0 {
		return Config{}, fmt.Errorf("TEAM_RECORD_CACHE_TTL must be >= 0")
	}
	teamRecordWorkers, err := getEnvAsInt("TEAM_RECORD_WORKERS", 16)
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAM_RECORD_WORKERS: %w", err)
	}
	if teamRecordWorkers < 1 {
		return Config{}, fmt.Errorf("TEAM_RECORD_WORKERS must be >= 1")
	}
	teamRecordTimeout, err := time.ParseDuration(getEnv("TEAM_RECORD_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAM_RECORD_TIMEOUT: %w", err)
	}
	if teamRecordTimeout <= 0 {
		return Config{}, fmt.Errorf("TEAM_RECORD_TIMEOUT must be > 0")
	}

	newsLimit, err := getEnvAsInt("NEWS_LIMIT", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse NEWS_LIMIT: %w", err)
	}
	if newsLimit < 1 || newsLimit > 100 {
		return Config{}, fmt.Errorf("NEWS_LIMIT must be between 1 and 100")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("APP_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "scoreboard-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		ShutdownTimeout:            shutdownTimeout,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		SwaggerEnabled:             swaggerEnabled,
		LeagueCatalogPath:          strings.TrimSpace(getEnv("LEAGUE_CATALOG_PATH", "")),
		TopMatchLeagues:            lowerAll(splitCSV(getEnv("TOP_MATCH_LEAGUES", ""))),
		TopNewsLeagues:             lowerAll(splitCSV(getEnv("TOP_NEWS_LEAGUES", ""))),
		NewsLimit:                  newsLimit,
		ESPNBaseURL:                espnBaseURL,
		ESPNTimeout:                espnTimeout,
		ESPNCircuitEnabled:         espnCircuitEnabled,
		ESPNCircuitFailureCount:    espnCircuitFailureCount,
		ESPNCircuitOpenTimeout:     espnCircuitOpenTimeout,
		ESPNCircuitHalfOpenMaxReq:  espnCircuitHalfOpenMaxReq,
		TeamRecordCacheTTL:         teamRecordCacheTTL,
		TeamRecordWorkers:          teamRecordWorkers,
		TeamRecordTimeout:          teamRecordTimeout,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// lowerAll normalizes league ids so env values match catalog keys.
func lowerAll(items []string) []string {
	for i := range items {
		items[i] = strings.ToLower(items[i])
	}
	return items
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
