package ports

import "context"

// Ticket is a human-reviewable escalation notice. Recipient is the host
// client configured as the service owner, not the Account itself.
type Ticket struct {
	ClientID string
	Subject  string
	Message  string
}

// TicketCreator opens tickets in the billing host. Failures wrap
// domain.ErrTicketCreation.
type TicketCreator interface {
	Create(ctx context.Context, ticket Ticket) error
}
