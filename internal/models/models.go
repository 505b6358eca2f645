package models

import "time"

// PaymentMethod identifies which provider integration a donation goes through.
type PaymentMethod string

const (
	// MethodFlutterwave is the card/bank aggregator. Checkout is driven by the
	// donor's email address.
	MethodFlutterwave PaymentMethod = "flutterwave"
	// MethodMTN charges an MTN Mobile Money wallet via phone number.
	MethodMTN PaymentMethod = "mtn"
	// MethodAirtel charges an Airtel Money wallet via phone number.
	MethodAirtel PaymentMethod = "airtel"
)

// Valid reports whether m is one of the supported payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodFlutterwave, MethodMTN, MethodAirtel:
		return true
	}
	return false
}

// IsMobileMoney reports whether m charges a telecom-linked wallet, which means
// a valid local phone number is mandatory.
func (m PaymentMethod) IsMobileMoney() bool {
	return m == MethodMTN || m == MethodAirtel
}

// DonorInfo holds what the donation form collects about the donor. There is no
// uniqueness constraint; the same person may donate any number of times.
type DonorInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// DonationTier is a predefined amount + label option shown on the donate page.
type DonationTier struct {
	Amount int    `json:"amount"`
	Label  string `json:"label"`
}

// DonationTiers are the campaign's fixed donation options, amounts in UGX.
var DonationTiers = []DonationTier{
	{Amount: 10000, Label: "Basic"},
	{Amount: 50000, Label: "Silver"},
	{Amount: 100000, Label: "Gold"},
	{Amount: 500000, Label: "Platinum"},
}

// DonationRecord is a single completed donation, immutable once created.
type DonationRecord struct {
	Amount        int           `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Donor         DonorInfo     `json:"donor"`
	Timestamp     time.Time     `json:"timestamp"`
}
