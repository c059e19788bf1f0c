package httpapi

import (
	"net/http"

	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

// NewRouter mounts every route behind tracing, access logging, CORS and panic
// recovery, outermost first.
func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerScoreboardRoutes(mux, handler)

	return chain(mux,
		requestTracing,
		requestLogging(logger),
		cors(corsAllowedOrigins),
		recoverPanic(logger),
	)
}
