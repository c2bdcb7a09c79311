package domain

import "time"

type ResourceID string

type PanelClientID string

// RemoteResource is the bridge's view of a server provisioned in the control
// panel. The panel owns the record; the bridge only reads it and issues
// commands against it.
type RemoteResource struct {
	ID        ResourceID
	Hostname  string
	PrimaryIP string
	Suspended bool
}

// ResourceUsage carries the panel's bandwidth counters in bits.
type ResourceUsage struct {
	UsedBits int64
	MaxBits  int64
}

// ActionResult reports how the panel answered a policy-guarded command.
// Deferred means the panel withheld the automated action for this resource
// and a human has to review it; it is not an error.
type ActionResult struct {
	Status ActionStatus
	Reason string
}

type ActionStatus string

const (
	ActionApplied  ActionStatus = "applied"
	ActionDeferred ActionStatus = "deferred"
)

func (r ActionResult) Deferred() bool {
	return r.Status == ActionDeferred
}

// SyncReport is the outcome of one usage-sync run. Failures never abort the
// run; they accumulate here and only flip the overall flag.
type SyncReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Processed  int
	Failures   []SyncFailure
}

type SyncFailure struct {
	BillingID string
	Error     string
}

func (r SyncReport) OK() bool {
	return len(r.Failures) == 0
}
