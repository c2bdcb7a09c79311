package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/scp-tools/billing-bridge/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUsageSync(t *testing.T) (*UsageSync, *mocks.MockPanelClient, *mocks.MockBillingStore, *mocks.MockClock, *activityRecorder) {
	t.Helper()

	panel := mocks.NewMockPanelClient(t)
	store := mocks.NewMockBillingStore(t)
	clock := mocks.NewMockClock(t)
	log := &activityRecorder{}

	return NewUsageSync(panel, store, nil, log, clock), panel, store, clock, log
}

func expectAccountSynced(panel *mocks.MockPanelClient, store *mocks.MockBillingStore, billingID string, resourceID domain.ResourceID, usage *domain.ResourceUsage) {
	panel.EXPECT().FindResource(mockAnyContext(), billingID).Return(domain.RemoteResource{ID: resourceID}, nil)
	panel.EXPECT().ResourceUsage(mockAnyContext(), resourceID).Return(usage, nil)

	var usedBits, maxBits int64
	if usage != nil {
		usedBits = usage.UsedBits
		maxBits = usage.MaxBits
	}
	store.EXPECT().UpdateUsage(mockAnyContext(), billingID,
		domain.BitsToMB(usedBits, 3), domain.BitsToMB(maxBits, 3)).Return(nil)
}

func TestUsageSyncRunUpdatesEveryLinkedAccount(t *testing.T) {
	sync, panel, store, clock, log := newTestUsageSync(t)

	started := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(started).Once()
	clock.EXPECT().Now().Return(started.Add(time.Minute)).Once()

	store.EXPECT().LinkedAccounts(mockAnyContext(), "", 100).Return([]domain.Account{
		{BillingID: "11"},
		{BillingID: "12"},
	}, nil)

	expectAccountSynced(panel, store, "11", "srv-11", &domain.ResourceUsage{UsedBits: 3_000_000, MaxBits: 10 * domain.BitsPerMegabyte})
	expectAccountSynced(panel, store, "12", "srv-12", nil)

	report, err := sync.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, started, report.StartedAt)
	assert.Equal(t, started.Add(time.Minute), report.FinishedAt)

	lines := log.all()
	require.Len(t, lines, 1)
	assert.Equal(t, "Completed usage update", lines[0])
}

func TestUsageSyncRunContinuesPastAccountFailure(t *testing.T) {
	sync, panel, store, clock, log := newTestUsageSync(t)
	clock.EXPECT().Now().Return(time.Now())

	store.EXPECT().LinkedAccounts(mockAnyContext(), "", 100).Return([]domain.Account{
		{BillingID: "21"},
		{BillingID: "22"},
		{BillingID: "23"},
	}, nil)

	expectAccountSynced(panel, store, "21", "srv-21", nil)
	panel.EXPECT().FindResource(mockAnyContext(), "22").Return(domain.RemoteResource{ID: "srv-22"}, nil)
	panel.EXPECT().ResourceUsage(mockAnyContext(), domain.ResourceID("srv-22")).
		Return(nil, &domain.RemoteAPIError{Op: "fetch usage", StatusCode: 500, Message: "backend unavailable"})
	expectAccountSynced(panel, store, "23", "srv-23", nil)

	report, err := sync.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 3, report.Processed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "22", report.Failures[0].BillingID)
	assert.Contains(t, report.Failures[0].Error, "backend unavailable")

	lines := log.all()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "billing ID 22")
	assert.Equal(t, "Completed usage update", lines[1])
}

func TestUsageSyncRunPagesThroughLinkedAccounts(t *testing.T) {
	sync, panel, store, clock, _ := newTestUsageSync(t)
	sync.pageSize = 2
	clock.EXPECT().Now().Return(time.Now())

	store.EXPECT().LinkedAccounts(mockAnyContext(), "", 2).Return([]domain.Account{
		{BillingID: "31"},
		{BillingID: "32"},
	}, nil)
	store.EXPECT().LinkedAccounts(mockAnyContext(), "32", 2).Return([]domain.Account{
		{BillingID: "33"},
	}, nil)

	expectAccountSynced(panel, store, "31", "srv-31", nil)
	expectAccountSynced(panel, store, "32", "srv-32", nil)
	expectAccountSynced(panel, store, "33", "srv-33", nil)

	report, err := sync.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Processed)
	assert.True(t, report.OK())
}

func TestUsageSyncStoreWriteFailureIsIsolated(t *testing.T) {
	sync, panel, store, clock, _ := newTestUsageSync(t)
	clock.EXPECT().Now().Return(time.Now())

	store.EXPECT().LinkedAccounts(mockAnyContext(), "", 100).Return([]domain.Account{
		{BillingID: "41"},
		{BillingID: "42"},
	}, nil)

	panel.EXPECT().FindResource(mockAnyContext(), "41").Return(domain.RemoteResource{ID: "srv-41"}, nil)
	panel.EXPECT().ResourceUsage(mockAnyContext(), domain.ResourceID("srv-41")).Return(nil, nil)
	store.EXPECT().UpdateUsage(mockAnyContext(), "41", domain.BitsToMB(0, 3), domain.BitsToMB(0, 3)).
		Return(errors.New("deadlock detected"))

	expectAccountSynced(panel, store, "42", "srv-42", nil)

	report, err := sync.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "41", report.Failures[0].BillingID)
	assert.Equal(t, 2, report.Processed)
}

func TestUsageSyncRunAndLogErrorsBoundaryFailure(t *testing.T) {
	sync, _, store, clock, log := newTestUsageSync(t)
	clock.EXPECT().Now().Return(time.Now())

	store.EXPECT().LinkedAccounts(mockAnyContext(), "", 100).Return(nil, errors.New("connection refused"))

	ok := sync.RunAndLogErrors(context.Background())
	require.False(t, ok)

	lines := log.all()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Error running usage update")
	assert.Contains(t, lines[0], "connection refused")
}

func TestUsageSyncRunAndLogErrorsReportsAccountFailures(t *testing.T) {
	sync, panel, store, clock, _ := newTestUsageSync(t)
	clock.EXPECT().Now().Return(time.Now())

	store.EXPECT().LinkedAccounts(mockAnyContext(), "", 100).Return([]domain.Account{{BillingID: "51"}}, nil)
	panel.EXPECT().FindResource(mockAnyContext(), "51").Return(domain.RemoteResource{}, domain.ErrNoResourceForAccount)

	require.False(t, sync.RunAndLogErrors(context.Background()))
}

func TestUsageSyncRunAndLogErrorsPersistsReport(t *testing.T) {
	panel := mocks.NewMockPanelClient(t)
	store := mocks.NewMockBillingStore(t)
	state := mocks.NewMockSyncStateStore(t)
	clock := mocks.NewMockClock(t)
	log := &activityRecorder{}
	sync := NewUsageSync(panel, store, state, log, clock)

	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	store.EXPECT().LinkedAccounts(mockAnyContext(), "", 100).Return(nil, nil)
	state.EXPECT().Save(mockAnyContext(), domain.SyncReport{StartedAt: now, FinishedAt: now}).Return(nil)

	require.True(t, sync.RunAndLogErrors(context.Background()))
}

func TestUsageSyncStateSaveFailureOnlyLogs(t *testing.T) {
	panel := mocks.NewMockPanelClient(t)
	store := mocks.NewMockBillingStore(t)
	state := mocks.NewMockSyncStateStore(t)
	clock := mocks.NewMockClock(t)
	log := &activityRecorder{}
	sync := NewUsageSync(panel, store, state, log, clock)

	clock.EXPECT().Now().Return(time.Now())
	store.EXPECT().LinkedAccounts(mockAnyContext(), "", 100).Return(nil, nil)
	state.EXPECT().Save(mockAnyContext(), mock.AnythingOfType("domain.SyncReport")).Return(errors.New("disk full"))

	require.True(t, sync.RunAndLogErrors(context.Background()))
	assert.Contains(t, log.all()[len(log.all())-1], "record usage update state")
}
