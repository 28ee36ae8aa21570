package store

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"
)

// The data files are plain line-oriented text, kept byte-compatible with
// the files written by earlier editions of the shop software. Fields are
// comma-separated with no escaping, so a title or username containing a
// comma corrupts its own record on the way back in. The encoders reject
// such fields up front (see validate.go); the decoders stay tolerant and
// simply skip anything malformed.

const fieldSep = ","

const (
	customerTag = "CUSTOMER:"
	passwordTag = "PASSWORD:"
	purchaseTag = "PURCHASE:"
)

// ParseBooks decodes the books file format: one `id,title,author,price,
// quantity` line per book. Malformed lines (wrong field count, bad
// numbers) are skipped; parsing never fails the whole input.
func ParseBooks(data []byte) []*Book {
	books := []*Book{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		parts := strings.Split(sc.Text(), fieldSep)
		if len(parts) != 5 {
			continue
		}
		price, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(parts[4])
		if err != nil {
			continue
		}
		books = append(books, &Book{
			ID:       parts[0],
			Title:    parts[1],
			Author:   parts[2],
			Price:    price,
			Quantity: quantity,
		})
	}
	return books
}

// ParseCustomers decodes the customers file format. A `CUSTOMER:` line
// opens a block; `PASSWORD:` and `PURCHASE:` lines attach to the open
// block; the block closes at the next `CUSTOMER:` line or end of input.
// Malformed lines are skipped without closing the open block, and
// `PASSWORD:`/`PURCHASE:` lines with no open block are dropped.
func ParseCustomers(data []byte) []*Customer {
	customers := []*Customer{}
	var current *Customer

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, customerTag):
			parts := strings.Split(line[len(customerTag):], fieldSep)
			if len(parts) != 3 {
				continue
			}
			if current != nil {
				customers = append(customers, current)
			}
			current = &Customer{
				ID:       parts[0],
				Username: parts[1],
				Name:     parts[2],
			}

		case strings.HasPrefix(line, passwordTag):
			if current == nil {
				continue
			}
			// The remainder is not split further, so the password may
			// contain commas.
			current.Password = line[len(passwordTag):]

		case strings.HasPrefix(line, purchaseTag):
			if current == nil {
				continue
			}
			parts := strings.Split(line[len(purchaseTag):], fieldSep)
			if len(parts) != 6 {
				continue
			}
			quantity, err := strconv.Atoi(parts[3])
			if err != nil {
				continue
			}
			total, err := strconv.ParseFloat(parts[4], 64)
			if err != nil {
				continue
			}
			current.AddPurchase(Purchase{
				ID:         parts[0],
				BookID:     parts[1],
				BookTitle:  parts[2],
				Quantity:   quantity,
				TotalPrice: total,
				Date:       parts[5],
			})
		}
	}
	if current != nil {
		customers = append(customers, current)
	}
	return customers
}

// LoadBooks reads and decodes the books file. A missing file yields an
// empty collection and no error; any other read failure also yields an
// empty collection, with the error returned for diagnostics only — the
// caller is expected to log it and carry on.
func LoadBooks(path string) ([]*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Book{}, nil
		}
		return []*Book{}, err
	}
	return ParseBooks(data), nil
}

// LoadCustomers reads and decodes the customers file with the same
// best-effort policy as LoadBooks.
func LoadCustomers(path string) ([]*Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Customer{}, nil
		}
		return []*Customer{}, err
	}
	return ParseCustomers(data), nil
}
