package domain

// Account is the read-side view of one billing service row. The bridge never
// creates or deletes these rows; it reads the panel linkage and writes the
// usage fields through the billing store.
type Account struct {
	BillingID string
	ClientID  string
	Hostname  string
	Status    string
}
