package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/arnoldagaba/11th-President/internal/models"
)

// Ledger keeps the session-lifetime running total and history of completed
// donations. It is handed explicitly to whoever needs it; there is no
// package-level instance. All state lives in memory and is gone when the
// process exits.
type Ledger struct {
	mu        sync.Mutex
	total     int
	records   []models.DonationRecord
	isLoading bool
}

// Snapshot is a read-only copy of the ledger for presentation. Records are
// ordered oldest first.
type Snapshot struct {
	TotalDonations  int                     `json:"total_donations"`
	RecentDonations []models.DonationRecord `json:"recent_donations"`
	IsLoading       bool                    `json:"is_loading"`
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{records: []models.DonationRecord{}}
}

// AddDonation appends a completed donation and bumps the running total. The
// append and the increment happen in one critical section, so the total and
// the record count can never disagree. If the persistence step fails, neither
// changes.
func (l *Ledger) AddDonation(ctx context.Context, amount int, method models.PaymentMethod, donor models.DonorInfo) error {
	l.setLoading(true)
	defer l.setLoading(false)

	// Placeholder for a real persistence call. Context is already threaded
	// through so adding one later does not change any signature.
	if err := l.persist(ctx); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, models.DonationRecord{
		Amount:        amount,
		PaymentMethod: method,
		Donor:         donor,
		Timestamp:     time.Now(),
	})
	l.total += amount
	return nil
}

func (l *Ledger) persist(ctx context.Context) error {
	return ctx.Err()
}

func (l *Ledger) setLoading(loading bool) {
	l.mu.Lock()
	l.isLoading = loading
	l.mu.Unlock()
}

// Snapshot returns the total, the history and the loading flag as a
// defensive copy.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := make([]models.DonationRecord, len(l.records))
	copy(records, l.records)
	return Snapshot{
		TotalDonations:  l.total,
		RecentDonations: records,
		IsLoading:       l.isLoading,
	}
}
