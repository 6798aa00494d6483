package conda

import (
	"context"
)

// ReportSource provides an abstraction over an environment manager's
// listing report for testability.
//
// The aggregation layer depends on this interface, not on conda itself, so
// alternative managers can be added as additional implementations without
// touching discovery.
type ReportSource interface {
	// Report invokes the manager and returns its raw environment listing.
	// It blocks until the manager exits. Launch failures and non-zero
	// exits both surface as a single error; callers are expected to treat
	// any error as "no externally-managed environments available".
	Report() (string, error)

	// WithContext returns a source bound to ctx. There is no built-in
	// timeout; a caller wanting bounded latency supplies a context with a
	// deadline here.
	WithContext(ctx context.Context) ReportSource
}
