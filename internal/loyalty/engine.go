// Package loyalty derives loyalty points from purchase history and runs
// the purchase workflow: points accrue at 10 per currency unit actually
// paid, redeem at 100 points per currency unit of discount.
package loyalty

import (
	"errors"
	"math"
	"time"

	"github.com/blackwell-systems/bookstorectl/internal/store"
	"github.com/google/uuid"
)

const (
	pointsPerUnit = 10   // points earned per currency unit spent
	redeemRate    = 100  // points per currency unit of discount
	goldThreshold = 1000 // points at which status flips to Gold
)

// ErrEmptySelection rejects a purchase with no books selected. Nothing
// is mutated when it is returned.
var ErrEmptySelection = errors.New("select at least one book to buy")

// Status is the customer's loyalty tier.
type Status string

const (
	StatusSilver Status = "Silver"
	StatusGold   Status = "Gold"
)

// StatusFor maps a point balance to its tier.
func StatusFor(points int) Status {
	if points >= goldThreshold {
		return StatusGold
	}
	return StatusSilver
}

// Receipt is the outcome of a purchase, for display. Points are derived
// from history on the next lookup; the receipt carries the totals as
// computed at purchase time.
type Receipt struct {
	RawTotal  float64
	Redeemed  float64
	FinalCost float64
	Earned    int
	Points    int
	Status    Status
}

// Engine runs purchases against customers of a store.
type Engine struct {
	st    *store.Store
	now   func() time.Time
	newID func() string
}

// New creates an engine over the given store.
func New(st *store.Store) *Engine {
	return &Engine{st: st, now: time.Now, newID: uuid.NewString}
}

// Points sums floor(unitPrice*10) over the customer's history. Records
// with quantity < 1 (possible only in legacy data files) contribute 0
// rather than dividing by zero. A customer with no history has 0.
func (e *Engine) Points(c *store.Customer) int {
	total := 0
	for _, p := range c.Purchases {
		total += int(math.Floor(p.UnitPrice() * pointsPerUnit))
	}
	return total
}

// Purchase buys the selected books for the customer, one copy per
// entry, optionally redeeming the point balance first. On success the
// purchase records are appended to the customer in place; persisting
// them is the caller's job (Save at shutdown). Book inventory counts
// are not decremented — quantity is a static field in this edition.
func (e *Engine) Purchase(c *store.Customer, selected []*store.Book, redeem bool) (*Receipt, error) {
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}

	rawTotal := 0.0
	for _, b := range selected {
		rawTotal += b.Price
	}

	points := e.Points(c)
	redeemed := 0.0
	finalCost := rawTotal
	if redeem && points > 0 {
		redeemed = math.Min(float64(points)/redeemRate, rawTotal)
		finalCost = math.Max(0, rawTotal-redeemed)
		points = 0
	}

	earned := int(math.Floor(finalCost * pointsPerUnit))
	points += earned

	// Build every record before appending any, so a rejected book
	// (legacy-decoded negative price) leaves the history untouched.
	date := e.now().Format(time.UnixDate)
	records := make([]store.Purchase, 0, len(selected))
	for _, b := range selected {
		p, err := store.NewPurchase(e.newID(), b.ID, b.Title, 1, b.Price, date)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	for _, p := range records {
		c.AddPurchase(p)
	}

	return &Receipt{
		RawTotal:  rawTotal,
		Redeemed:  redeemed,
		FinalCost: finalCost,
		Earned:    earned,
		Points:    points,
		Status:    StatusFor(points),
	}, nil
}
