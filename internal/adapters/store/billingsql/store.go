// Package billingsql is the bridge's narrow window into the billing host's
// service table. It touches only the panel linkage and the handful of
// columns the bridge owns: the bandwidth figures, their update stamp, and
// the cached product display fields.
package billingsql

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/scp-tools/billing-bridge/internal/ports"
	"github.com/shopspring/decimal"
)

type Store struct {
	db *sqlx.DB
}

var _ ports.BillingStore = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Open connects lazily; the DSN is only exercised on first use.
func Open(driver, dsn string) (*Store, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open billing database: %w", err)
	}

	return NewStore(db), nil
}

type serviceRow struct {
	BillingID string `db:"id"`
	ClientID  string `db:"client_id"`
	Hostname  string `db:"domain"`
	Status    string `db:"status"`
}

func (r serviceRow) toDomain() domain.Account {
	return domain.Account{
		BillingID: r.BillingID,
		ClientID:  r.ClientID,
		Hostname:  r.Hostname,
		Status:    r.Status,
	}
}

const linkedAccountsQuery = `
SELECT id, client_id, domain, status
FROM services
WHERE server <> 0 AND id > $1
ORDER BY id
LIMIT $2`

func (s *Store) LinkedAccounts(ctx context.Context, afterBillingID string, limit int) ([]domain.Account, error) {
	var rows []serviceRow
	if err := s.db.SelectContext(ctx, &rows, linkedAccountsQuery, afterBillingID, limit); err != nil {
		return nil, fmt.Errorf("select linked services: %w", err)
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, row.toDomain())
	}

	return accounts, nil
}

const updateUsageQuery = `
UPDATE services
SET bandwidth_used = $1, bandwidth_limit = $2, last_update = NOW()
WHERE id = $3`

// UpdateUsage writes the bandwidth figures for one service row. last_update
// is stamped server-side so overlapping writers stay last-writer-wins.
func (s *Store) UpdateUsage(ctx context.Context, billingID string, usedMB, limitMB decimal.Decimal) error {
	result, err := s.db.ExecContext(ctx, updateUsageQuery, usedMB, limitMB, billingID)
	if err != nil {
		return fmt.Errorf("update usage for service %s: %w", billingID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update usage for service %s: %w", billingID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update usage: no service row with id %s", billingID)
	}

	return nil
}

const fillProductDetailsQuery = `
UPDATE services
SET domain = $1, dedicated_ip = $2
WHERE id = $3`

func (s *Store) FillProductDetails(ctx context.Context, billingID, hostname, primaryIP string) error {
	if _, err := s.db.ExecContext(ctx, fillProductDetailsQuery, hostname, primaryIP, billingID); err != nil {
		return fmt.Errorf("fill product details for service %s: %w", billingID, err)
	}

	return nil
}

const wipeProductDetailsQuery = `
UPDATE services
SET domain = '', dedicated_ip = '', assigned_ips = ''
WHERE id = $1`

func (s *Store) WipeProductDetails(ctx context.Context, billingID string) error {
	if _, err := s.db.ExecContext(ctx, wipeProductDetailsQuery, billingID); err != nil {
		return fmt.Errorf("wipe product details for service %s: %w", billingID, err)
	}

	return nil
}
