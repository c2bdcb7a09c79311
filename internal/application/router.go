package application

import (
	"context"
	"fmt"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/scp-tools/billing-bridge/internal/ports"
)

const (
	terminateUnavailableMessage = "Terminating servers is not yet available in this package."
	usageUpdateFailedMessage    = "Error running usage update"

	suspensionSubject        = "Server Suspension"
	pendingSuspensionSubject = "Pending Server Suspension"
)

// RouterConfig carries the host-side settings the handlers need.
type RouterConfig struct {
	// TicketClientID is the host client that receives escalation tickets,
	// the configured owner of the service.
	TicketClientID string

	// Brand names the billing host in suspension reasons sent to the panel.
	Brand string
}

// Router routes billing-host lifecycle events to panel actions. Handlers are
// stateless; the panel is the source of truth for resource state. Every
// handler returns an outcome string and never lets an error escape.
type Router struct {
	panel   ports.PanelClient
	store   ports.BillingStore
	tickets ports.TicketCreator
	usage   ports.UsageSyncRunner
	log     ports.ActivityLog
	cfg     RouterConfig
}

func NewRouter(panel ports.PanelClient, store ports.BillingStore, tickets ports.TicketCreator, usage ports.UsageSyncRunner, log ports.ActivityLog, cfg RouterConfig) *Router {
	if cfg.Brand == "" {
		cfg.Brand = "the billing panel"
	}

	return &Router{
		panel:   panel,
		store:   store,
		tickets: tickets,
		usage:   usage,
		log:     log,
		cfg:     cfg,
	}
}

// Handle dispatches one lifecycle event for the given account and returns
// the outcome the host expects: the success token, or a failure message.
func (r *Router) Handle(ctx context.Context, event domain.LifecycleEvent, account domain.Account) (outcome domain.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Activity("error during %s: panic: %v", event, rec)
			outcome = domain.Failuref("panic during %s: %v", event, rec)
		}
	}()

	switch event {
	case domain.EventProvision:
		return r.provision(ctx, account)
	case domain.EventSuspend:
		return r.suspend(ctx, account)
	case domain.EventUnsuspend:
		return r.unsuspend(ctx, account)
	case domain.EventTerminate:
		return r.terminate()
	case domain.EventUsageSync:
		return r.usageSync(ctx)
	default:
		return domain.Failuref("unrecognized lifecycle event %q", event)
	}
}

func (r *Router) provision(ctx context.Context, account domain.Account) domain.Outcome {
	clientID, err := r.panel.EnsureClient(ctx, account)
	if err != nil {
		return r.fail(domain.EventProvision, err)
	}

	resource, err := r.panel.FindResource(ctx, account.BillingID)
	if err != nil {
		return r.fail(domain.EventProvision, err)
	}

	if err := r.panel.GrantAccess(ctx, resource.ID, clientID); err != nil {
		return r.fail(domain.EventProvision, err)
	}

	// Refreshing the cached display fields is best-effort; the access grant
	// already succeeded.
	if err := r.store.FillProductDetails(ctx, account.BillingID, resource.Hostname, resource.PrimaryIP); err != nil {
		r.log.Activity("failed to refresh product details for billing ID %s: %s", account.BillingID, err)
	}

	return domain.Success()
}

func (r *Router) suspend(ctx context.Context, account domain.Account) domain.Outcome {
	resource, err := r.panel.FindResource(ctx, account.BillingID)
	if err != nil {
		return r.fail(domain.EventSuspend, err)
	}

	result, err := r.panel.SuspendSubClients(ctx, resource.ID, "See "+r.cfg.Brand)
	if err != nil {
		return r.fail(domain.EventSuspend, err)
	}

	// A deferred result means panel policy withheld the automated
	// suspension; the event is still handled, but a human gets the pending
	// notice instead of the suspension record.
	ticket := r.suspensionTicket(account)
	if result.Deferred() {
		ticket = r.pendingSuspensionTicket(account)
	}
	if err := r.tickets.Create(ctx, ticket); err != nil {
		return r.fail(domain.EventSuspend, err)
	}

	return domain.Success()
}

func (r *Router) unsuspend(ctx context.Context, account domain.Account) domain.Outcome {
	resource, err := r.panel.FindResource(ctx, account.BillingID)
	if err != nil {
		return r.fail(domain.EventUnsuspend, err)
	}

	if err := r.panel.UnsuspendSubClients(ctx, resource.ID); err != nil {
		return r.fail(domain.EventUnsuspend, err)
	}

	return domain.Success()
}

// terminate never touches the panel. Automated deletion is disabled in this
// package; operators handle terminations manually.
func (r *Router) terminate() domain.Outcome {
	return domain.Failure(terminateUnavailableMessage)
}

func (r *Router) usageSync(ctx context.Context) domain.Outcome {
	if r.usage.RunAndLogErrors(ctx) {
		return domain.Success()
	}
	return domain.Failure(usageUpdateFailedMessage)
}

func (r *Router) fail(event domain.LifecycleEvent, err error) domain.Outcome {
	r.log.Activity("error during %s: %s", event, err)
	return domain.Failure(err.Error())
}

func (r *Router) suspensionTicket(account domain.Account) ports.Ticket {
	return ports.Ticket{
		ClientID: r.cfg.TicketClientID,
		Subject:  suspensionSubject,
		Message:  fmt.Sprintf("Server with billing ID %s has been suspended.", account.BillingID),
	}
}

func (r *Router) pendingSuspensionTicket(account domain.Account) ports.Ticket {
	return ports.Ticket{
		ClientID: r.cfg.TicketClientID,
		Subject:  pendingSuspensionSubject,
		Message: fmt.Sprintf(
			"This is a notice that the server with billing ID %s is pending suspension. "+
				"We will not suspend any services on your account automatically, "+
				"so this ticket will be manually reviewed before processing.",
			account.BillingID,
		),
	}
}
