package gateway

import (
	"context"
	"net/http"
	"time"
)

// mobileMoney covers the two wallet operators. Both take the same
// {amount, phone} initiation payload, just against different endpoints.
type mobileMoney struct {
	name     string
	endpoint string
	currency string
	client   *http.Client
}

// NewMTN creates a client for the configured MTN Mobile Money endpoint.
func NewMTN(endpoint, currency string, timeout time.Duration) Client {
	return &mobileMoney{
		name:     "mtn",
		endpoint: endpoint,
		currency: currency,
		client:   newHTTPClient(timeout),
	}
}

// NewAirtel creates a client for the configured Airtel Money endpoint.
func NewAirtel(endpoint, currency string, timeout time.Duration) Client {
	return &mobileMoney{
		name:     "airtel",
		endpoint: endpoint,
		currency: currency,
		client:   newHTTPClient(timeout),
	}
}

func (m *mobileMoney) Name() string { return m.name }

type mobileMoneyRequest struct {
	TxRef    string `json:"tx_ref"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Phone    string `json:"phone"`
}

// Initiate pushes a charge request to the donor's wallet. The operator
// prompts the donor on their handset; we only learn the initiation outcome.
func (m *mobileMoney) Initiate(ctx context.Context, req Request) (*Response, error) {
	payload := mobileMoneyRequest{
		TxRef:    newReference(),
		Amount:   req.Amount,
		Currency: m.currency,
		Phone:    req.Phone,
	}

	resp, err := postJSON(ctx, m.client, m.name, m.endpoint, payload)
	if err != nil {
		return nil, err
	}
	if resp.Reference == "" {
		resp.Reference = payload.TxRef
	}
	return resp, nil
}
