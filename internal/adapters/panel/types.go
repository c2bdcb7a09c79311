package panel

import (
	"encoding/json"

	"github.com/scp-tools/billing-bridge/internal/domain"
)

// Panel responses wrap either a data payload or an error object.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ensureClientRequest struct {
	BillingClientID string `json:"billing_client_id"`
}

type grantAccessRequest struct {
	ClientID string `json:"client_id"`
}

type suspendRequest struct {
	Reason string `json:"reason"`
}

type clientPayload struct {
	ID string `json:"id"`
}

type serverPayload struct {
	ID        string `json:"id"`
	Hostname  string `json:"hostname"`
	PrimaryIP string `json:"primary_ip"`
	Suspended bool   `json:"suspended"`
}

func (p serverPayload) toDomain() domain.RemoteResource {
	return domain.RemoteResource{
		ID:        domain.ResourceID(p.ID),
		Hostname:  p.Hostname,
		PrimaryIP: p.PrimaryIP,
		Suspended: p.Suspended,
	}
}

type usagePayload struct {
	Used int64 `json:"used"`
	Max  int64 `json:"max"`
}
