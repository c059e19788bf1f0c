package usecase

import crerr "github.com/cockroachdb/errors"

// Sentinels callers match with errors.Is. Upstream outages are normally
// absorbed; ErrDependencyUnavailable surfaces only from the provider itself
// when its breaker is open.
var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)
