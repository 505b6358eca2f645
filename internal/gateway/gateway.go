package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Request carries the donor details a provider may need. Each provider sends
// only the subset its API asks for.
type Request struct {
	Amount int
	Name   string
	Email  string
	Phone  string
}

// Response is the normalized shape every provider reply is mapped onto.
// Reference and RedirectURL are the provider fields we pass through to the
// frontend when present.
type Response struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Reference   string `json:"reference,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// RejectedError is a well-formed provider-side rejection (insufficient funds,
// unknown wallet, ...). The message is the provider's own wording and is shown
// to the donor verbatim.
type RejectedError struct {
	Provider string
	Message  string
}

func (e *RejectedError) Error() string {
	return e.Provider + ": " + e.Message
}

// Client is the uniform contract over the three provider integrations. One
// call, one outbound POST; no retries, no caching.
type Client interface {
	Name() string
	Initiate(ctx context.Context, req Request) (*Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// newReference creates the unique tx_ref sent with every initiation.
func newReference() string {
	return "DONATION-" + uuid.NewString()
}

// postJSON issues the single POST a payment initiation consists of. Transport
// failures, non-2xx statuses and unparsable bodies all come back as plain
// errors; a decoded body with success=false becomes a *RejectedError.
func postJSON(ctx context.Context, client *http.Client, name, url string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: unexpected status %d", name, resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", name, err)
	}

	if !out.Success {
		return nil, &RejectedError{Provider: name, Message: out.Message}
	}
	return &out, nil
}
