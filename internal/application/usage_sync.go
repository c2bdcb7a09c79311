package application

import (
	"context"
	"fmt"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/scp-tools/billing-bridge/internal/ports"
)

const (
	defaultSyncPageSize = 100
	usagePrecision      = 3
)

// UsageSync pulls bandwidth counters from the control panel for every
// panel-linked billing account and writes them into the billing store.
// One account's failure never aborts the batch; it only flips the run's
// overall flag.
type UsageSync struct {
	panel    ports.PanelClient
	store    ports.BillingStore
	state    ports.SyncStateStore
	log      ports.ActivityLog
	clock    ports.Clock
	pageSize int
}

var _ ports.UsageSyncRunner = (*UsageSync)(nil)

// NewUsageSync wires a sync job. state may be nil when no run report should
// be persisted.
func NewUsageSync(panel ports.PanelClient, store ports.BillingStore, state ports.SyncStateStore, log ports.ActivityLog, clock ports.Clock) *UsageSync {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &UsageSync{
		panel:    panel,
		store:    store,
		state:    state,
		log:      log,
		clock:    clock,
		pageSize: defaultSyncPageSize,
	}
}

// Run walks every linked account once, in pages, and returns the per-run
// report. The error return is reserved for boundary failures (the account
// enumeration itself); per-account failures land in the report.
func (s *UsageSync) Run(ctx context.Context) (domain.SyncReport, error) {
	report := domain.SyncReport{StartedAt: s.clock.Now()}

	after := ""
	for {
		accounts, err := s.store.LinkedAccounts(ctx, after, s.pageSize)
		if err != nil {
			return report, fmt.Errorf("list linked accounts: %w", err)
		}
		if len(accounts) == 0 {
			break
		}

		for _, account := range accounts {
			if err := s.syncAccount(ctx, account); err != nil {
				s.log.Activity("Usage update failed for billing ID %s: %s", account.BillingID, err)
				report.Failures = append(report.Failures, domain.SyncFailure{
					BillingID: account.BillingID,
					Error:     err.Error(),
				})
			}
			report.Processed++
			after = account.BillingID
		}

		if len(accounts) < s.pageSize {
			break
		}
	}

	report.FinishedAt = s.clock.Now()
	s.log.Activity("Completed usage update")

	return report, nil
}

// RunAndLogErrors never propagates an error; boundary failures become a
// logged line and a false result. A completed run is recorded in the sync
// state store best-effort.
func (s *UsageSync) RunAndLogErrors(ctx context.Context) bool {
	report, err := s.Run(ctx)
	if err != nil {
		s.log.Activity("Error running usage update: %s", err)
		return false
	}

	if s.state != nil {
		if err := s.state.Save(ctx, report); err != nil {
			s.log.Activity("Failed to record usage update state: %s", err)
		}
	}

	return report.OK()
}

func (s *UsageSync) syncAccount(ctx context.Context, account domain.Account) error {
	resource, err := s.panel.FindResource(ctx, account.BillingID)
	if err != nil {
		return fmt.Errorf("find server: %w", err)
	}

	usage, err := s.panel.ResourceUsage(ctx, resource.ID)
	if err != nil {
		return fmt.Errorf("fetch server usage: %w", err)
	}

	// No usage data on the panel side means zeros, not a failure.
	var usedBits, maxBits int64
	if usage != nil {
		usedBits = usage.UsedBits
		maxBits = usage.MaxBits
	}

	err = s.store.UpdateUsage(ctx,
		account.BillingID,
		domain.BitsToMB(usedBits, usagePrecision),
		domain.BitsToMB(maxBits, usagePrecision),
	)
	if err != nil {
		return fmt.Errorf("update billing usage row: %w", err)
	}

	return nil
}
