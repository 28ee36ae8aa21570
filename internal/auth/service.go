// Package auth validates credentials against the store and tracks the
// session identity. Passwords are compared in plaintext; the data files
// have always stored them that way and this edition does not change the
// on-disk contract.
package auth

import (
	"github.com/blackwell-systems/bookstorectl/internal/store"
)

// Service authenticates users. The owner is not a stored customer: it
// is recognized by a reserved credential pair and never persisted.
type Service struct {
	store         *store.Store
	ownerUsername string
	ownerPassword string
}

// New creates an auth service over the given store with the reserved
// owner credential pair.
func New(st *store.Store, ownerUsername, ownerPassword string) *Service {
	return &Service{store: st, ownerUsername: ownerUsername, ownerPassword: ownerPassword}
}

// Authenticate checks the reserved owner pair first, then scans
// customers in collection order for an exact username+password match.
// First match wins. Returns nil if nothing matches; a failed
// authentication is not an error.
func (s *Service) Authenticate(username, password string) *store.User {
	if username == s.ownerUsername && password == s.ownerPassword {
		return &store.User{Username: username, Role: store.RoleOwner}
	}
	for _, c := range s.store.Customers() {
		if c.Username == username && c.Password == password {
			return &store.User{Username: username, Role: store.RoleCustomer}
		}
	}
	return nil
}

// Login authenticates and, on success, installs the user as the
// session identity. It has no other effect.
func (s *Service) Login(username, password string) *store.User {
	u := s.Authenticate(username, password)
	if u != nil {
		s.store.SetCurrentUser(u)
	}
	return u
}

// Logout clears the session identity.
func (s *Service) Logout() {
	s.store.SetCurrentUser(nil)
}

// CurrentUser returns the session identity, or nil.
func (s *Service) CurrentUser() *store.User {
	return s.store.CurrentUser()
}
