package store_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/bookstorectl/internal/store"
)

var sampleBooks = []byte(`b1,The Go Programming Language,Donovan,39.99,1
b2,Clean Code,Martin,25.50,3
`)

var sampleCustomers = []byte(`CUSTOMER:c1,alice,Alice Liddell
PASSWORD:rabbit,hole
PURCHASE:p1,b1,The Go Programming Language,1,39.99,Mon Jan 2 15:04:05 2026
PURCHASE:p2,b2,Clean Code,2,51.00,Mon Jan 2 15:04:05 2026
CUSTOMER:c2,bob,Bob
PASSWORD:hunter2
`)

func TestParseBooks_Valid(t *testing.T) {
	books := store.ParseBooks(sampleBooks)
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].ID != "b1" {
		t.Errorf("books[0].ID = %q, want %q", books[0].ID, "b1")
	}
	if books[0].Price != 39.99 {
		t.Errorf("books[0].Price = %v, want 39.99", books[0].Price)
	}
	if books[1].Quantity != 3 {
		t.Errorf("books[1].Quantity = %d, want 3", books[1].Quantity)
	}
}

func TestParseBooks_SkipsMalformedLines(t *testing.T) {
	data := []byte(strings.Join([]string{
		"b1,Good Book,Author,10.00,1",
		"b2,Only Four Fields,5.00,1",
		"b3,Bad Price,Author,cheap,1",
		"b4,Bad Quantity,Author,5.00,lots",
		"",
	}, "\n"))
	books := store.ParseBooks(data)
	if len(books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(books))
	}
	if books[0].ID != "b1" {
		t.Errorf("surviving book = %q, want %q", books[0].ID, "b1")
	}
}

func TestParseBooks_Empty(t *testing.T) {
	if books := store.ParseBooks(nil); len(books) != 0 {
		t.Errorf("expected 0 books, got %d", len(books))
	}
}

func TestMarshalBooks_RoundTrip(t *testing.T) {
	books := store.ParseBooks(sampleBooks)
	books2 := store.ParseBooks(store.MarshalBooks(books))
	if len(books2) != len(books) {
		t.Fatalf("round-trip length: got %d, want %d", len(books2), len(books))
	}
	for i := range books {
		if *books[i] != *books2[i] {
			t.Errorf("[%d] mismatch: %+v vs %+v", i, *books[i], *books2[i])
		}
	}
}

func TestMarshalBooks_TwoFractionalDigits(t *testing.T) {
	out := string(store.MarshalBooks([]*store.Book{
		{ID: "b1", Title: "T", Author: "A", Price: 5, Quantity: 1},
	}))
	want := "b1,T,A,5.00,1\n"
	if out != want {
		t.Errorf("MarshalBooks = %q, want %q", out, want)
	}
}

func TestParseCustomers_Blocks(t *testing.T) {
	customers := store.ParseCustomers(sampleCustomers)
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	alice := customers[0]
	if alice.Username != "alice" {
		t.Errorf("Username = %q, want %q", alice.Username, "alice")
	}
	// The PASSWORD: remainder is not split, so commas survive.
	if alice.Password != "rabbit,hole" {
		t.Errorf("Password = %q, want %q", alice.Password, "rabbit,hole")
	}
	if len(alice.Purchases) != 2 {
		t.Fatalf("expected 2 purchases, got %d", len(alice.Purchases))
	}
	if alice.Purchases[1].TotalPrice != 51.00 {
		t.Errorf("TotalPrice = %v, want 51.00", alice.Purchases[1].TotalPrice)
	}
	if got := customers[1].Purchases; len(got) != 0 {
		t.Errorf("bob should have no purchases, got %d", len(got))
	}
}

func TestParseCustomers_OrphanLinesIgnored(t *testing.T) {
	data := []byte("PURCHASE:p1,b1,Title,1,5.00,today\nPASSWORD:secret\n")
	if customers := store.ParseCustomers(data); len(customers) != 0 {
		t.Errorf("expected 0 customers, got %d", len(customers))
	}
}

func TestParseCustomers_MalformedHeaderKeepsBlockOpen(t *testing.T) {
	data := []byte(strings.Join([]string{
		"CUSTOMER:c1,alice,Alice",
		"CUSTOMER:not-enough-fields",
		"PURCHASE:p1,b1,Title,1,5.00,today",
		"",
	}, "\n"))
	customers := store.ParseCustomers(data)
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	if len(customers[0].Purchases) != 1 {
		t.Errorf("purchase should attach to the still-open block, got %d records", len(customers[0].Purchases))
	}
}

func TestParseCustomers_MalformedPurchaseSkipped(t *testing.T) {
	data := []byte(strings.Join([]string{
		"CUSTOMER:c1,alice,Alice",
		"PURCHASE:p1,b1,Title,one,5.00,today",
		"PURCHASE:p2,b1,Title,1,5.00",
		"PURCHASE:p3,b1,Title,1,5.00,today",
		"",
	}, "\n"))
	customers := store.ParseCustomers(data)
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	if got := len(customers[0].Purchases); got != 1 {
		t.Fatalf("expected 1 valid purchase, got %d", got)
	}
	if customers[0].Purchases[0].ID != "p3" {
		t.Errorf("surviving purchase = %q, want %q", customers[0].Purchases[0].ID, "p3")
	}
}

func TestMarshalCustomers_RoundTrip(t *testing.T) {
	customers := store.ParseCustomers(sampleCustomers)
	customers2 := store.ParseCustomers(store.MarshalCustomers(customers))
	if len(customers2) != len(customers) {
		t.Fatalf("round-trip length: got %d, want %d", len(customers2), len(customers))
	}
	for i := range customers {
		a, b := customers[i], customers2[i]
		if a.ID != b.ID || a.Username != b.Username || a.Password != b.Password || a.Name != b.Name {
			t.Errorf("[%d] customer mismatch: %+v vs %+v", i, a, b)
		}
		if len(a.Purchases) != len(b.Purchases) {
			t.Fatalf("[%d] purchase count: got %d, want %d", i, len(b.Purchases), len(a.Purchases))
		}
		for j := range a.Purchases {
			if a.Purchases[j] != b.Purchases[j] {
				t.Errorf("[%d][%d] purchase mismatch: %+v vs %+v", i, j, a.Purchases[j], b.Purchases[j])
			}
		}
	}
}

func TestLoadBooks_MissingFile(t *testing.T) {
	books, err := store.LoadBooks(filepath.Join(t.TempDir(), "nope", "books.txt"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected empty collection, got %d books", len(books))
	}
}

func TestSaveLoad_Files(t *testing.T) {
	dir := t.TempDir()
	booksPath := filepath.Join(dir, "data", "books.txt")
	customersPath := filepath.Join(dir, "data", "customers.txt")

	books := store.ParseBooks(sampleBooks)
	customers := store.ParseCustomers(sampleCustomers)

	if err := store.SaveBooks(booksPath, books); err != nil {
		t.Fatalf("SaveBooks: %v", err)
	}
	if err := store.SaveCustomers(customersPath, customers); err != nil {
		t.Fatalf("SaveCustomers: %v", err)
	}

	books2, err := store.LoadBooks(booksPath)
	if err != nil {
		t.Fatalf("LoadBooks: %v", err)
	}
	if len(books2) != 2 {
		t.Errorf("expected 2 books after reload, got %d", len(books2))
	}
	customers2, err := store.LoadCustomers(customersPath)
	if err != nil {
		t.Fatalf("LoadCustomers: %v", err)
	}
	if len(customers2) != 2 {
		t.Errorf("expected 2 customers after reload, got %d", len(customers2))
	}
}
