package gateway

import (
	"context"
	"net/http"
	"time"
)

// Flutterwave is the card/bank aggregator. Checkout is email driven, so the
// initiation payload carries the donor's name and email rather than a wallet
// number.
type Flutterwave struct {
	endpoint string
	currency string
	client   *http.Client
}

// NewFlutterwave creates a client for the configured Flutterwave endpoint.
func NewFlutterwave(endpoint, currency string, timeout time.Duration) *Flutterwave {
	return &Flutterwave{
		endpoint: endpoint,
		currency: currency,
		client:   newHTTPClient(timeout),
	}
}

func (f *Flutterwave) Name() string { return "flutterwave" }

type flutterwaveRequest struct {
	TxRef    string `json:"tx_ref"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Initiate starts a hosted checkout for the donor.
func (f *Flutterwave) Initiate(ctx context.Context, req Request) (*Response, error) {
	payload := flutterwaveRequest{
		TxRef:    newReference(),
		Amount:   req.Amount,
		Currency: f.currency,
		Email:    req.Email,
		Name:     req.Name,
	}

	resp, err := postJSON(ctx, f.client, f.Name(), f.endpoint, payload)
	if err != nil {
		return nil, err
	}
	if resp.Reference == "" {
		resp.Reference = payload.TxRef
	}
	return resp, nil
}
