package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnlinkedHost means the panel endpoint or credential is not
	// configured for this host. Configuration error, never retried, and no
	// transport call may be attempted once it is raised.
	ErrUnlinkedHost = errors.New("host is not linked to the control panel (server = 0)")

	// ErrNoResourceForAccount means the panel has no server for the
	// account's billing id.
	ErrNoResourceForAccount = errors.New("no control panel server is linked to this account")

	// ErrTicketCreation means the billing host rejected an escalation
	// ticket. It propagates as a genuine failure outcome.
	ErrTicketCreation = errors.New("ticket creation failed")

	// ErrNoSyncReport means no usage-sync run has been recorded yet.
	ErrNoSyncReport = errors.New("no usage sync has been recorded")
)

// RemoteAPIError is any transport or panel-side failure from the control
// panel API: HTTP failure, malformed response, or a business-rule rejection.
type RemoteAPIError struct {
	Op         string
	StatusCode int
	Code       string
	Message    string
}

func (e *RemoteAPIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("control panel api returned status %d", e.StatusCode)
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}
