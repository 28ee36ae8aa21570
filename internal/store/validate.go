package store

import (
	"errors"
	"fmt"
	"strings"
)

// Domain validation failures surfaced to callers. None of these leave
// partial mutations behind.
var (
	ErrEmptyField        = errors.New("required field is empty")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrDuplicateTitle    = errors.New("a book with this title already exists")
	ErrDuplicateUsername = errors.New("a customer with this username already exists")
	ErrFieldSeparator    = errors.New("field may not contain a comma or newline")
)

// checkField rejects values that would corrupt the line format on the
// next save: the comma separator and line breaks. Existing files with
// such values still decode as far as the format allows; this only stops
// new records from being created unreadable.
func checkField(name, value string) error {
	if strings.ContainsAny(value, ",\n\r") {
		return fmt.Errorf("%s: %w", name, ErrFieldSeparator)
	}
	return nil
}

// checkPassword is looser than checkField: the PASSWORD: line is never
// split, so commas are fine and only line breaks would corrupt it.
func checkPassword(value string) error {
	if strings.ContainsAny(value, "\n\r") {
		return fmt.Errorf("password: %w", ErrFieldSeparator)
	}
	return nil
}
