package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/scp-tools/billing-bridge/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSendsAuthenticatedOpenTicket(t *testing.T) {
	var got openTicketRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer billing-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"result":"success"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "billing-key", srv.Client())

	err := client.Create(context.Background(), ports.Ticket{
		ClientID: "owner-7",
		Subject:  "Server Suspension",
		Message:  "Server with billing ID 11 has been suspended.",
	})
	require.NoError(t, err)

	assert.Equal(t, "OpenTicket", got.Action)
	assert.Equal(t, "owner-7", got.ClientID)
	assert.Equal(t, "Server Suspension", got.Subject)
}

func TestCreateErrorResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"error","message":"Client ID Not Found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "billing-key", srv.Client())

	err := client.Create(context.Background(), ports.Ticket{ClientID: "missing"})
	require.ErrorIs(t, err, domain.ErrTicketCreation)
	assert.Contains(t, err.Error(), "Client ID Not Found")
}

func TestCreateHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "billing-key", srv.Client())

	err := client.Create(context.Background(), ports.Ticket{ClientID: "owner-7"})
	require.ErrorIs(t, err, domain.ErrTicketCreation)
	assert.Contains(t, err.Error(), "status 502")
}

func TestCreateUnreachableHost(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "billing-key", nil)

	err := client.Create(context.Background(), ports.Ticket{ClientID: "owner-7"})
	require.ErrorIs(t, err, domain.ErrTicketCreation)
}
