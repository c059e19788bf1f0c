package observability

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/scoreboard/internal/config"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "scoreboard-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNStaysOff(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  ", ServiceName: "scoreboard-api"}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestUptraceOptions(t *testing.T) {
	cfg := config.Config{UptraceDSN: "https://token@api.uptrace.dev", ServiceName: "scoreboard-api", ServiceVersion: "1.2.3", AppEnv: config.EnvProd}
	if got := len(uptraceOptions(cfg)); got != 5 {
		t.Fatalf("expected 5 uptrace options, got %d", got)
	}
}

func TestSetup_AllDisabled(t *testing.T) {
	shutdown, err := Setup(config.Config{ShutdownTimeout: time.Second}, logging.NewNop())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
