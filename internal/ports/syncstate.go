package ports

import (
	"context"

	"github.com/scp-tools/billing-bridge/internal/domain"
)

// SyncStateStore persists the report of the most recent usage-sync run.
type SyncStateStore interface {
	Save(ctx context.Context, report domain.SyncReport) error

	// Last returns the most recent saved report, or domain.ErrNoSyncReport
	// when none exists.
	Last(ctx context.Context) (domain.SyncReport, error)
}

// UsageSyncRunner runs one usage synchronization pass without ever
// propagating an error; false means the run had at least one failure.
type UsageSyncRunner interface {
	RunAndLogErrors(ctx context.Context) bool
}
