package ports

import (
	"context"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/shopspring/decimal"
)

// BillingStore is the bridge's narrow window into the host's service table.
type BillingStore interface {
	// LinkedAccounts returns up to limit panel-linked accounts with billing
	// ids after the given one, ordered by billing id. An empty afterBillingID
	// starts from the first page.
	LinkedAccounts(ctx context.Context, afterBillingID string, limit int) ([]domain.Account, error)

	// UpdateUsage writes the bandwidth figures (in megabytes) for one
	// service row and stamps last_update server-side.
	UpdateUsage(ctx context.Context, billingID string, usedMB, limitMB decimal.Decimal) error

	// FillProductDetails refreshes the cached display fields on the service
	// row after provisioning.
	FillProductDetails(ctx context.Context, billingID, hostname, primaryIP string) error

	// WipeProductDetails clears the cached display fields on the service
	// row, the termination-path variant of the same columns.
	WipeProductDetails(ctx context.Context, billingID string) error
}
