package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Store owns the in-memory book and customer collections and the
// current session user. It is built for one interactive session at a
// time: there is no locking and no transactional isolation, and every
// holder of the Store sees mutations immediately. Load replaces the
// collections from disk; Save flushes them back.
type Store struct {
	booksPath     string
	customersPath string

	books     []*Book
	customers []*Customer
	current   *User
}

// New creates an empty store backed by the two data files. Call Load to
// populate it.
func New(booksPath, customersPath string) *Store {
	return &Store{
		booksPath:     booksPath,
		customersPath: customersPath,
		books:         []*Book{},
		customers:     []*Customer{},
	}
}

// Load replaces both collections with the decoded contents of the
// backing files. Read failures degrade to empty collections; the joined
// error is returned for logging only and the store stays usable.
func (s *Store) Load() error {
	books, berr := LoadBooks(s.booksPath)
	customers, cerr := LoadCustomers(s.customersPath)
	s.books = books
	s.customers = customers
	return errors.Join(berr, cerr)
}

// Save writes both collections to disk. On failure the in-memory state
// is unaffected and the error is returned for the caller to log; a
// failed save is never fatal.
func (s *Store) Save() error {
	return errors.Join(
		SaveBooks(s.booksPath, s.books),
		SaveCustomers(s.customersPath, s.customers),
	)
}

// Books returns the books in collection order. The slice is a copy but
// the elements are the live records.
func (s *Store) Books() []*Book {
	out := make([]*Book, len(s.books))
	copy(out, s.books)
	return out
}

// Customers returns the customers in collection order. The slice is a
// copy but the elements are the live records.
func (s *Store) Customers() []*Customer {
	out := make([]*Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// AddBook creates a new book with quantity fixed at 1 (this edition's
// add-book rule). Titles are unique case-insensitively.
func (s *Store) AddBook(title, author string, price float64) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title: %w", ErrEmptyField)
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if err := checkField("title", title); err != nil {
		return nil, err
	}
	if err := checkField("author", author); err != nil {
		return nil, err
	}
	for _, b := range s.books {
		if strings.EqualFold(b.Title, title) {
			return nil, fmt.Errorf("%q: %w", title, ErrDuplicateTitle)
		}
	}
	b := &Book{
		ID:       uuid.NewString(),
		Title:    title,
		Author:   author,
		Price:    price,
		Quantity: 1,
	}
	s.books = append(s.books, b)
	return b, nil
}

// RemoveBook deletes a book by id. Reports whether a book was removed.
func (s *Store) RemoveBook(id string) bool {
	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return true
		}
	}
	return false
}

// SetBookPrice updates a book's unit price.
func (s *Store) SetBookPrice(id string, price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	b := s.BookByID(id)
	if b == nil {
		return fmt.Errorf("book %q not found", id)
	}
	b.Price = price
	return nil
}

// BookByID returns the book with the given id, or nil.
func (s *Store) BookByID(id string) *Book {
	for _, b := range s.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// AddCustomer registers a new customer. Usernames are unique (exact
// match); the password is stored as given — this edition keeps the
// plaintext credential files of its predecessors.
func (s *Store) AddCustomer(username, password, name string) (*Customer, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username: %w", ErrEmptyField)
	}
	if password == "" {
		return nil, fmt.Errorf("password: %w", ErrEmptyField)
	}
	if err := checkField("username", username); err != nil {
		return nil, err
	}
	if err := checkField("name", name); err != nil {
		return nil, err
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	for _, c := range s.customers {
		if c.Username == username {
			return nil, fmt.Errorf("%q: %w", username, ErrDuplicateUsername)
		}
	}
	c := &Customer{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
		Name:     name,
	}
	s.customers = append(s.customers, c)
	return c, nil
}

// RemoveCustomer deletes a customer and, with it, the customer's whole
// purchase history. Reports whether a customer was removed.
func (s *Store) RemoveCustomer(id string) bool {
	for i, c := range s.customers {
		if c.ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return true
		}
	}
	return false
}

// CustomerByUsername returns the first customer with the given
// username, or nil. Collection order decides ties.
func (s *Store) CustomerByUsername(username string) *Customer {
	for _, c := range s.customers {
		if c.Username == username {
			return c
		}
	}
	return nil
}

// CustomerByID returns the customer with the given id, or nil.
func (s *Store) CustomerByID(id string) *Customer {
	for _, c := range s.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CurrentUser returns the session's authenticated user, or nil.
func (s *Store) CurrentUser() *User {
	return s.current
}

// SetCurrentUser replaces the session user. Pass nil to clear it. The
// session user is never persisted.
func (s *Store) SetCurrentUser(u *User) {
	s.current = u
}
