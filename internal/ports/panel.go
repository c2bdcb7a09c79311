package ports

import (
	"context"

	"github.com/scp-tools/billing-bridge/internal/domain"
)

// PanelClient is the command/read view of the control panel API.
//
// Every method fails with domain.ErrUnlinkedHost before touching the
// transport when the panel endpoint or credential is not configured, and
// with *domain.RemoteAPIError on any transport or panel-side failure.
type PanelClient interface {
	// EnsureClient resolves the billing client's counterpart on the panel,
	// creating it when it does not exist yet.
	EnsureClient(ctx context.Context, account domain.Account) (domain.PanelClientID, error)

	// FindResource looks up the server linked to the billing id. Returns
	// domain.ErrNoResourceForAccount when the panel has none.
	FindResource(ctx context.Context, billingID string) (domain.RemoteResource, error)

	GrantAccess(ctx context.Context, resourceID domain.ResourceID, clientID domain.PanelClientID) error

	// SuspendSubClients asks the panel to suspend the server's sub-clients.
	// A deferred result means panel policy withheld the automated action;
	// that is a normal result, not an error.
	SuspendSubClients(ctx context.Context, resourceID domain.ResourceID, reason string) (domain.ActionResult, error)

	UnsuspendSubClients(ctx context.Context, resourceID domain.ResourceID) error

	// ResourceUsage fetches the server's bandwidth counters. A nil result
	// with nil error means the panel has no usage data for the server.
	ResourceUsage(ctx context.Context, resourceID domain.ResourceID) (*domain.ResourceUsage, error)
}
