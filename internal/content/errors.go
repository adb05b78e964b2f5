package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateID indicates two entries share an id.
	ErrDuplicateID = errors.New("duplicate entry id")

	// ErrInvalidCategory indicates a category outside the index's closed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrEmptyID indicates an entry was registered without an id.
	ErrEmptyID = errors.New("empty entry id")
)

// DuplicateIDError lists every id that collided during a Register call.
type DuplicateIDError struct {
	IDs []string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateID, strings.Join(e.IDs, ", "))
}

// Is reports whether target is ErrDuplicateID.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// CategoryError reports a category value that is not part of the enum.
// ID is set when the value came from a registered entry.
type CategoryError struct {
	ID       string
	Category string
}

func (e *CategoryError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %q", ErrInvalidCategory, e.Category)
	}
	return fmt.Sprintf("%s: %q (entry %s)", ErrInvalidCategory, e.Category, e.ID)
}

// Is reports whether target is ErrInvalidCategory.
func (e *CategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}
