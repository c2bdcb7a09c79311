package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/scp-tools/billing-bridge/internal/ports"
	"github.com/scp-tools/billing-bridge/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

type activityRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *activityRecorder) Activity(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *activityRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func newTestRouter(t *testing.T) (*Router, *mocks.MockPanelClient, *mocks.MockBillingStore, *mocks.MockTicketCreator, *mocks.MockUsageSyncRunner, *activityRecorder) {
	t.Helper()

	panel := mocks.NewMockPanelClient(t)
	store := mocks.NewMockBillingStore(t)
	tickets := mocks.NewMockTicketCreator(t)
	usage := mocks.NewMockUsageSyncRunner(t)
	log := &activityRecorder{}

	router := NewRouter(panel, store, tickets, usage, log, RouterConfig{
		TicketClientID: "owner-7",
		Brand:          "Example Billing",
	})

	return router, panel, store, tickets, usage, log
}

func TestRouterProvisionHappyPath(t *testing.T) {
	router, panel, store, _, _, _ := newTestRouter(t)

	account := domain.Account{BillingID: "101", ClientID: "55", Hostname: "node1.example.net"}
	resource := domain.RemoteResource{ID: "srv-9", Hostname: "node1.example.net", PrimaryIP: "198.51.100.7"}

	panel.EXPECT().EnsureClient(mockAnyContext(), account).Return(domain.PanelClientID("pc-3"), nil)
	panel.EXPECT().FindResource(mockAnyContext(), "101").Return(resource, nil)
	panel.EXPECT().GrantAccess(mockAnyContext(), domain.ResourceID("srv-9"), domain.PanelClientID("pc-3")).Return(nil)
	store.EXPECT().FillProductDetails(mockAnyContext(), "101", "node1.example.net", "198.51.100.7").Return(nil)

	outcome := router.Handle(context.Background(), domain.EventProvision, account)
	require.True(t, outcome.OK())
}

func TestRouterProvisionFailsLoudlyWithoutResource(t *testing.T) {
	router, panel, _, _, _, log := newTestRouter(t)

	account := domain.Account{BillingID: "101"}
	panel.EXPECT().EnsureClient(mockAnyContext(), account).Return(domain.PanelClientID("pc-3"), nil)
	panel.EXPECT().FindResource(mockAnyContext(), "101").Return(domain.RemoteResource{}, domain.ErrNoResourceForAccount)

	outcome := router.Handle(context.Background(), domain.EventProvision, account)
	require.False(t, outcome.OK())
	assert.Equal(t, domain.ErrNoResourceForAccount.Error(), outcome.String())

	lines := log.all()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "error during provision")
}

func TestRouterProvisionUnlinkedHostNeverGrantsAccess(t *testing.T) {
	router, panel, _, _, _, _ := newTestRouter(t)

	account := domain.Account{BillingID: "101"}
	panel.EXPECT().EnsureClient(mockAnyContext(), account).Return(domain.PanelClientID(""), domain.ErrUnlinkedHost)

	outcome := router.Handle(context.Background(), domain.EventProvision, account)
	require.False(t, outcome.OK())
	assert.Equal(t, domain.ErrUnlinkedHost.Error(), outcome.String())
}

func TestRouterProvisionProductDetailRefreshIsBestEffort(t *testing.T) {
	router, panel, store, _, _, log := newTestRouter(t)

	account := domain.Account{BillingID: "101"}
	resource := domain.RemoteResource{ID: "srv-9", Hostname: "node1.example.net", PrimaryIP: "198.51.100.7"}

	panel.EXPECT().EnsureClient(mockAnyContext(), account).Return(domain.PanelClientID("pc-3"), nil)
	panel.EXPECT().FindResource(mockAnyContext(), "101").Return(resource, nil)
	panel.EXPECT().GrantAccess(mockAnyContext(), domain.ResourceID("srv-9"), domain.PanelClientID("pc-3")).Return(nil)
	store.EXPECT().FillProductDetails(mockAnyContext(), "101", "node1.example.net", "198.51.100.7").Return(errors.New("row locked"))

	outcome := router.Handle(context.Background(), domain.EventProvision, account)
	require.True(t, outcome.OK())

	lines := log.all()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "refresh product details")
}

func TestRouterSuspendCreatesSuspensionTicket(t *testing.T) {
	router, panel, _, tickets, _, _ := newTestRouter(t)

	account := domain.Account{BillingID: "2048"}
	panel.EXPECT().FindResource(mockAnyContext(), "2048").Return(domain.RemoteResource{ID: "srv-1"}, nil)
	panel.EXPECT().SuspendSubClients(mockAnyContext(), domain.ResourceID("srv-1"), "See Example Billing").
		Return(domain.ActionResult{Status: domain.ActionApplied}, nil)
	tickets.EXPECT().Create(mockAnyContext(), ports.Ticket{
		ClientID: "owner-7",
		Subject:  "Server Suspension",
		Message:  "Server with billing ID 2048 has been suspended.",
	}).Return(nil)

	outcome := router.Handle(context.Background(), domain.EventSuspend, account)
	require.True(t, outcome.OK())
}

func TestRouterSuspendDeferredCreatesPendingTicket(t *testing.T) {
	router, panel, _, tickets, _, _ := newTestRouter(t)

	account := domain.Account{BillingID: "2048"}
	panel.EXPECT().FindResource(mockAnyContext(), "2048").Return(domain.RemoteResource{ID: "srv-1"}, nil)
	panel.EXPECT().SuspendSubClients(mockAnyContext(), domain.ResourceID("srv-1"), "See Example Billing").
		Return(domain.ActionResult{Status: domain.ActionDeferred, Reason: "auto suspend disabled"}, nil)
	tickets.EXPECT().Create(mockAnyContext(), mock.MatchedBy(func(ticket ports.Ticket) bool {
		return ticket.Subject == "Pending Server Suspension" && ticket.ClientID == "owner-7"
	})).Return(nil)

	outcome := router.Handle(context.Background(), domain.EventSuspend, account)
	require.True(t, outcome.OK())
}

func TestRouterSuspendTicketFailureIsTheOutcome(t *testing.T) {
	router, panel, _, tickets, _, log := newTestRouter(t)

	account := domain.Account{BillingID: "2048"}
	panel.EXPECT().FindResource(mockAnyContext(), "2048").Return(domain.RemoteResource{ID: "srv-1"}, nil)
	panel.EXPECT().SuspendSubClients(mockAnyContext(), domain.ResourceID("srv-1"), "See Example Billing").
		Return(domain.ActionResult{Status: domain.ActionApplied}, nil)
	ticketErr := fmt.Errorf("%w: host rejected the request", domain.ErrTicketCreation)
	tickets.EXPECT().Create(mockAnyContext(), mock.AnythingOfType("ports.Ticket")).Return(ticketErr)

	outcome := router.Handle(context.Background(), domain.EventSuspend, account)
	require.False(t, outcome.OK())
	assert.Equal(t, ticketErr.Error(), outcome.String())

	lines := log.all()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "error during suspend")
}

func TestRouterSuspendRemoteFailure(t *testing.T) {
	router, panel, _, _, _, _ := newTestRouter(t)

	account := domain.Account{BillingID: "2048"}
	panel.EXPECT().FindResource(mockAnyContext(), "2048").Return(domain.RemoteResource{ID: "srv-1"}, nil)
	panel.EXPECT().SuspendSubClients(mockAnyContext(), domain.ResourceID("srv-1"), "See Example Billing").
		Return(domain.ActionResult{}, &domain.RemoteAPIError{Op: "suspend server", StatusCode: 502, Message: "bad gateway"})

	outcome := router.Handle(context.Background(), domain.EventSuspend, account)
	require.False(t, outcome.OK())
	assert.Equal(t, "suspend server: bad gateway", outcome.String())
}

func TestRouterUnsuspendHappyPath(t *testing.T) {
	router, panel, _, _, _, _ := newTestRouter(t)

	account := domain.Account{BillingID: "2048"}
	panel.EXPECT().FindResource(mockAnyContext(), "2048").Return(domain.RemoteResource{ID: "srv-1"}, nil)
	panel.EXPECT().UnsuspendSubClients(mockAnyContext(), domain.ResourceID("srv-1")).Return(nil)

	outcome := router.Handle(context.Background(), domain.EventUnsuspend, account)
	require.True(t, outcome.OK())
}

func TestRouterUnsuspendFailureReturnsMessage(t *testing.T) {
	router, panel, _, _, _, log := newTestRouter(t)

	account := domain.Account{BillingID: "2048"}
	panel.EXPECT().FindResource(mockAnyContext(), "2048").Return(domain.RemoteResource{}, domain.ErrNoResourceForAccount)

	outcome := router.Handle(context.Background(), domain.EventUnsuspend, account)
	require.False(t, outcome.OK())
	assert.Equal(t, domain.ErrNoResourceForAccount.Error(), outcome.String())
	require.Len(t, log.all(), 1)
}

func TestRouterTerminateAlwaysUnavailable(t *testing.T) {
	// No expectations on any collaborator: terminate must never reach the
	// panel or the store.
	router, _, _, _, _, _ := newTestRouter(t)

	outcome := router.Handle(context.Background(), domain.EventTerminate, domain.Account{BillingID: "2048"})
	require.False(t, outcome.OK())
	assert.Equal(t, "Terminating servers is not yet available in this package.", outcome.String())
}

func TestRouterUsageSyncDelegates(t *testing.T) {
	router, _, _, _, usage, _ := newTestRouter(t)

	usage.EXPECT().RunAndLogErrors(mockAnyContext()).Return(true).Once()
	require.True(t, router.Handle(context.Background(), domain.EventUsageSync, domain.Account{}).OK())

	usage.EXPECT().RunAndLogErrors(mockAnyContext()).Return(false).Once()
	outcome := router.Handle(context.Background(), domain.EventUsageSync, domain.Account{})
	require.False(t, outcome.OK())
	assert.Equal(t, "Error running usage update", outcome.String())
}

func TestRouterUnrecognizedEvent(t *testing.T) {
	router, _, _, _, _, _ := newTestRouter(t)

	outcome := router.Handle(context.Background(), domain.LifecycleEvent("renew"), domain.Account{})
	require.False(t, outcome.OK())
	assert.Contains(t, outcome.String(), "unrecognized lifecycle event")
}
