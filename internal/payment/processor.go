package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/arnoldagaba/11th-President/internal/gateway"
	"github.com/arnoldagaba/11th-President/internal/ledger"
	"github.com/arnoldagaba/11th-President/internal/models"
)

var (
	// ErrBusy means another attempt is still in flight. One form, one
	// submission at a time.
	ErrBusy = errors.New("a payment is already being processed")

	// ErrUnknownMethod is a wiring bug or a forged request, not donor error.
	ErrUnknownMethod = errors.New("invalid payment method")
)

// Status is the readable half of error reporting: the frontend polls it for
// passive display while the ProcessPayment return value covers immediate
// handling. Both channels fire for the same failure.
type Status struct {
	IsProcessing bool   `json:"is_processing"`
	Error        string `json:"error,omitempty"`
}

// Processor runs one payment attempt at a time: dispatch to the selected
// provider, record the outcome, update the ledger on success.
type Processor struct {
	flutterwave gateway.Client
	mtn         gateway.Client
	airtel      gateway.Client
	ledger      *ledger.Ledger

	mu        sync.Mutex
	inFlight  bool
	lastError string
}

// New creates a processor over the three provider clients and the ledger it
// settles successful donations into.
func New(flutterwave, mtn, airtel gateway.Client, lg *ledger.Ledger) *Processor {
	return &Processor{
		flutterwave: flutterwave,
		mtn:         mtn,
		airtel:      airtel,
		ledger:      lg,
	}
}

// ProcessPayment runs a single attempt to completion. It trusts its inputs;
// amount, method and donor validation is the HTTP boundary's job. While an
// attempt is outstanding any further call fails fast with ErrBusy. The ledger
// only moves after the provider confirms success.
func (p *Processor) ProcessPayment(ctx context.Context, amount int, method models.PaymentMethod, donor models.DonorInfo) (*gateway.Response, error) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return nil, ErrBusy
	}
	p.inFlight = true
	p.lastError = ""
	p.mu.Unlock()

	resp, err := p.dispatch(ctx, amount, method, donor)
	if err != nil {
		log.Printf("Payment via %s failed: %v", method, err)
		p.finish(err.Error())
		return nil, err
	}

	if err := p.ledger.AddDonation(ctx, amount, method, donor); err != nil {
		log.Println("Failed to record donation:", err)
		p.finish(err.Error())
		return nil, fmt.Errorf("record donation: %w", err)
	}

	p.finish("")
	return resp, nil
}

func (p *Processor) dispatch(ctx context.Context, amount int, method models.PaymentMethod, donor models.DonorInfo) (*gateway.Response, error) {
	switch method {
	case models.MethodFlutterwave:
		return p.flutterwave.Initiate(ctx, gateway.Request{Amount: amount, Email: donor.Email, Name: donor.Name})
	case models.MethodMTN:
		return p.mtn.Initiate(ctx, gateway.Request{Amount: amount, Phone: donor.Phone})
	case models.MethodAirtel:
		return p.airtel.Initiate(ctx, gateway.Request{Amount: amount, Phone: donor.Phone})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

func (p *Processor) finish(errMsg string) {
	p.mu.Lock()
	p.inFlight = false
	p.lastError = errMsg
	p.mu.Unlock()
}

// Status reports whether an attempt is in flight and the last error, if any.
func (p *Processor) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Status{IsProcessing: p.inFlight, Error: p.lastError}
}
