// Package stats aggregates sales figures from purchase history for the
// owner's statistics screen.
package stats

import (
	"sort"

	"github.com/blackwell-systems/bookstorectl/internal/store"
)

// BookSales is one row of the top-selling-books ranking, keyed by book
// id with the title snapshot from the purchase records.
type BookSales struct {
	BookID  string  `json:"book_id"`
	Title   string  `json:"title"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

// CustomerSpend is one row of the top-customers ranking.
type CustomerSpend struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	Username   string  `json:"username"`
	Purchases  int     `json:"purchases"`
	Spent      float64 `json:"spent"`
}

// Summary is a read-only aggregation over all customers' histories.
type Summary struct {
	TotalRevenue float64         `json:"total_revenue"`
	UnitsSold    int             `json:"units_sold"`
	TopBooks     []BookSales     `json:"top_books"`
	TopCustomers []CustomerSpend `json:"top_customers"`
}

// Compute builds the summary. Rankings sort by units/spend descending,
// ties broken by title or username for stable output.
func Compute(customers []*store.Customer) *Summary {
	sum := &Summary{}
	books := map[string]*BookSales{}

	for _, c := range customers {
		spend := CustomerSpend{CustomerID: c.ID, Name: c.Name, Username: c.Username}
		for _, p := range c.Purchases {
			sum.TotalRevenue += p.TotalPrice
			sum.UnitsSold += p.Quantity
			spend.Purchases++
			spend.Spent += p.TotalPrice

			bs := books[p.BookID]
			if bs == nil {
				bs = &BookSales{BookID: p.BookID, Title: p.BookTitle}
				books[p.BookID] = bs
			}
			bs.Units += p.Quantity
			bs.Revenue += p.TotalPrice
		}
		if spend.Purchases > 0 {
			sum.TopCustomers = append(sum.TopCustomers, spend)
		}
	}

	for _, bs := range books {
		sum.TopBooks = append(sum.TopBooks, *bs)
	}
	sort.Slice(sum.TopBooks, func(i, j int) bool {
		a, b := sum.TopBooks[i], sum.TopBooks[j]
		if a.Units != b.Units {
			return a.Units > b.Units
		}
		return a.Title < b.Title
	})
	sort.Slice(sum.TopCustomers, func(i, j int) bool {
		a, b := sum.TopCustomers[i], sum.TopCustomers[j]
		if a.Spent != b.Spent {
			return a.Spent > b.Spent
		}
		return a.Username < b.Username
	})
	return sum
}
