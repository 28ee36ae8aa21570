package stats_test

import (
	"testing"

	"github.com/blackwell-systems/bookstorectl/internal/stats"
	"github.com/blackwell-systems/bookstorectl/internal/store"
)

func sampleCustomers() []*store.Customer {
	alice := &store.Customer{ID: "c1", Username: "alice", Name: "Alice"}
	alice.AddPurchase(store.Purchase{ID: "p1", BookID: "b1", BookTitle: "Dune", Quantity: 1, TotalPrice: 12.50, Date: "d"})
	alice.AddPurchase(store.Purchase{ID: "p2", BookID: "b2", BookTitle: "Neuromancer", Quantity: 2, TotalPrice: 19.50, Date: "d"})

	bob := &store.Customer{ID: "c2", Username: "bob", Name: "Bob"}
	bob.AddPurchase(store.Purchase{ID: "p3", BookID: "b1", BookTitle: "Dune", Quantity: 1, TotalPrice: 12.50, Date: "d"})

	idle := &store.Customer{ID: "c3", Username: "carol", Name: "Carol"}
	return []*store.Customer{alice, bob, idle}
}

func TestCompute_Totals(t *testing.T) {
	sum := stats.Compute(sampleCustomers())
	if sum.TotalRevenue != 44.50 {
		t.Errorf("TotalRevenue = %v, want 44.50", sum.TotalRevenue)
	}
	if sum.UnitsSold != 4 {
		t.Errorf("UnitsSold = %d, want 4", sum.UnitsSold)
	}
}

func TestCompute_TopBooks(t *testing.T) {
	sum := stats.Compute(sampleCustomers())
	if len(sum.TopBooks) != 2 {
		t.Fatalf("expected 2 ranked books, got %d", len(sum.TopBooks))
	}
	// Dune and Neuromancer are tied at 2 units; title order breaks it.
	if sum.TopBooks[0].Title != "Dune" {
		t.Errorf("TopBooks[0] = %q, want Dune", sum.TopBooks[0].Title)
	}
	if sum.TopBooks[0].Revenue != 25.00 {
		t.Errorf("Dune revenue = %v, want 25.00", sum.TopBooks[0].Revenue)
	}
}

func TestCompute_TopCustomersExcludesIdle(t *testing.T) {
	sum := stats.Compute(sampleCustomers())
	if len(sum.TopCustomers) != 2 {
		t.Fatalf("expected 2 ranked customers, got %d", len(sum.TopCustomers))
	}
	if sum.TopCustomers[0].Username != "alice" {
		t.Errorf("TopCustomers[0] = %q, want alice", sum.TopCustomers[0].Username)
	}
	if sum.TopCustomers[0].Spent != 32.00 {
		t.Errorf("alice spent = %v, want 32.00", sum.TopCustomers[0].Spent)
	}
}

func TestCompute_Empty(t *testing.T) {
	sum := stats.Compute(nil)
	if sum.TotalRevenue != 0 || sum.UnitsSold != 0 {
		t.Errorf("empty input should produce zero totals: %+v", sum)
	}
	if len(sum.TopBooks) != 0 || len(sum.TopCustomers) != 0 {
		t.Error("empty input should produce empty rankings")
	}
}
