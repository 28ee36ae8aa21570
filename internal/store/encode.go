package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// MarshalBooks encodes books one per line in collection order. Prices
// always carry exactly two fractional digits, locale-independent.
func MarshalBooks(books []*Book) []byte {
	var buf bytes.Buffer
	for _, b := range books {
		fmt.Fprintf(&buf, "%s,%s,%s,%.2f,%d\n", b.ID, b.Title, b.Author, b.Price, b.Quantity)
	}
	return buf.Bytes()
}

// MarshalCustomers encodes each customer as its CUSTOMER: line, its
// PASSWORD: line, then one PURCHASE: line per record in history order.
func MarshalCustomers(customers []*Customer) []byte {
	var buf bytes.Buffer
	for _, c := range customers {
		fmt.Fprintf(&buf, "CUSTOMER:%s,%s,%s\n", c.ID, c.Username, c.Name)
		fmt.Fprintf(&buf, "PASSWORD:%s\n", c.Password)
		for _, p := range c.Purchases {
			fmt.Fprintf(&buf, "PURCHASE:%s,%s,%s,%d,%.2f,%s\n",
				p.ID, p.BookID, p.BookTitle, p.Quantity, p.TotalPrice, p.Date)
		}
	}
	return buf.Bytes()
}

// SaveBooks writes the encoded books file, creating the data directory
// if needed.
func SaveBooks(path string, books []*Book) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(path, MarshalBooks(books), 0644); err != nil {
		return fmt.Errorf("writing books file: %w", err)
	}
	return nil
}

// SaveCustomers writes the encoded customers file.
func SaveCustomers(path string, customers []*Customer) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(path, MarshalCustomers(customers), 0644); err != nil {
		return fmt.Errorf("writing customers file: %w", err)
	}
	return nil
}
