package panel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/scp-tools/billing-bridge/internal/ports"
)

const defaultTimeout = 30 * time.Second

// Panel error code signalling that policy withheld an automated suspension.
const codeAutoSuspendDisabled = "auto_suspend_disabled"

// Client is the authenticated HTTP wrapper around the control panel API.
// Each call is attempted exactly once; retry policy, if any, belongs to the
// caller.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

var _ ports.PanelClient = (*Client)(nil)

func NewClient(hostname, apiKey string, httpc *http.Client) (*Client, error) {
	base, err := BaseURL(hostname)
	if err != nil {
		return nil, err
	}

	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{baseURL: base, apiKey: apiKey, httpc: httpc}, nil
}

// Call performs one panel API request and returns the decoded data payload.
// It fails with domain.ErrUnlinkedHost before touching the transport when
// the endpoint or credential is missing, and with *domain.RemoteAPIError on
// any transport or panel-side failure.
func (c *Client) Call(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return nil, domain.ErrUnlinkedHost
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode panel request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+strings.TrimPrefix(path, "/"), reader)
	if err != nil {
		return nil, fmt.Errorf("build panel request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &domain.RemoteAPIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteAPIError{StatusCode: resp.StatusCode, Message: "read panel response: " + err.Error()}
	}

	var env envelope
	if len(data) > 0 {
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, &domain.RemoteAPIError{StatusCode: resp.StatusCode, Message: "malformed panel response"}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || env.Error != nil {
		apiErr := &domain.RemoteAPIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	return env.Data, nil
}

func (c *Client) EnsureClient(ctx context.Context, account domain.Account) (domain.PanelClientID, error) {
	// The panel resolves-or-creates by billing client id; the call is
	// idempotent.
	data, err := c.Call(ctx, http.MethodPost, "client", ensureClientRequest{
		BillingClientID: account.ClientID,
	})
	if err != nil {
		return "", opError("ensure client", err)
	}

	var payload clientPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", &domain.RemoteAPIError{Op: "ensure client", Message: "malformed client payload"}
	}
	if payload.ID == "" {
		return "", &domain.RemoteAPIError{Op: "ensure client", Message: "panel returned a client without an id"}
	}

	return domain.PanelClientID(payload.ID), nil
}

func (c *Client) FindResource(ctx context.Context, billingID string) (domain.RemoteResource, error) {
	data, err := c.Call(ctx, http.MethodGet, "server?billing_id="+url.QueryEscape(billingID), nil)
	if err != nil {
		return domain.RemoteResource{}, opError("find server", err)
	}

	var servers []serverPayload
	if err := json.Unmarshal(data, &servers); err != nil {
		return domain.RemoteResource{}, &domain.RemoteAPIError{Op: "find server", Message: "malformed server payload"}
	}
	if len(servers) == 0 {
		return domain.RemoteResource{}, domain.ErrNoResourceForAccount
	}

	return servers[0].toDomain(), nil
}

func (c *Client) GrantAccess(ctx context.Context, resourceID domain.ResourceID, clientID domain.PanelClientID) error {
	_, err := c.Call(ctx, http.MethodPost, "server/"+url.PathEscape(string(resourceID))+"/access", grantAccessRequest{
		ClientID: string(clientID),
	})
	if err != nil {
		return opError("grant access", err)
	}

	return nil
}

func (c *Client) SuspendSubClients(ctx context.Context, resourceID domain.ResourceID, reason string) (domain.ActionResult, error) {
	_, err := c.Call(ctx, http.MethodPost, "server/"+url.PathEscape(string(resourceID))+"/suspend", suspendRequest{
		Reason: reason,
	})
	if err != nil {
		// The auto-suspend-disabled answer is panel policy speaking, not a
		// failure: surface it as a deferred result.
		var apiErr *domain.RemoteAPIError
		if errors.As(err, &apiErr) && apiErr.Code == codeAutoSuspendDisabled {
			return domain.ActionResult{Status: domain.ActionDeferred, Reason: apiErr.Message}, nil
		}
		return domain.ActionResult{}, opError("suspend server", err)
	}

	return domain.ActionResult{Status: domain.ActionApplied}, nil
}

func (c *Client) UnsuspendSubClients(ctx context.Context, resourceID domain.ResourceID) error {
	_, err := c.Call(ctx, http.MethodPost, "server/"+url.PathEscape(string(resourceID))+"/unsuspend", nil)
	if err != nil {
		return opError("unsuspend server", err)
	}

	return nil
}

func (c *Client) ResourceUsage(ctx context.Context, resourceID domain.ResourceID) (*domain.ResourceUsage, error) {
	data, err := c.Call(ctx, http.MethodGet, "server/"+url.PathEscape(string(resourceID))+"/usage", nil)
	if err != nil {
		return nil, opError("fetch usage", err)
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var payload usagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &domain.RemoteAPIError{Op: "fetch usage", Message: "malformed usage payload"}
	}

	return &domain.ResourceUsage{UsedBits: payload.Used, MaxBits: payload.Max}, nil
}

func opError(op string, err error) error {
	var apiErr *domain.RemoteAPIError
	if errors.As(err, &apiErr) && apiErr.Op == "" {
		apiErr.Op = op
	}
	return err
}
