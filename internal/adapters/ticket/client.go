// Package ticket opens support tickets through the billing host's own API.
// Escalations ride the same credential the host hands out for its local
// API, so the adapter stays a single authenticated POST.
package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/scp-tools/billing-bridge/internal/ports"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	apiURL string
	apiKey string
	httpc  *http.Client
}

var _ ports.TicketCreator = (*Client)(nil)

func NewClient(apiURL, apiKey string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{apiURL: apiURL, apiKey: apiKey, httpc: httpc}
}

type openTicketRequest struct {
	Action   string `json:"action"`
	ClientID string `json:"client_id"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

type openTicketResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

// Create opens a ticket on the billing host. Any outcome other than an
// explicit success result is reported as domain.ErrTicketCreation so
// callers can treat the escalation itself as the failed step.
func (c *Client) Create(ctx context.Context, t ports.Ticket) error {
	payload, err := json.Marshal(openTicketRequest{
		Action:   "OpenTicket",
		ClientID: t.ClientID,
		Subject:  t.Subject,
		Message:  t.Message,
	})
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", domain.ErrTicketCreation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTicketCreation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTicketCreation, err)
	}
	defer resp.Body.Close()

	var body openTicketResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrTicketCreation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || body.Result != "success" {
		if body.Message != "" {
			return fmt.Errorf("%w: %s", domain.ErrTicketCreation, body.Message)
		}

		return fmt.Errorf("%w: billing api returned status %d", domain.ErrTicketCreation, resp.StatusCode)
	}

	return nil
}
