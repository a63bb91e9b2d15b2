// Package refactor computes structural refactorings for a caret position in
// a syntax snapshot.
//
// Refactorings never change the snapshot they are given. They return an Edit
// describing the replacement, or an error wrapping ErrNotFound or
// ErrInapplicable when there is nothing to offer at the caret.
package refactor

import "errors"

var (
	// ErrNotFound reports that a required node, symbol or match is missing.
	ErrNotFound = errors.New("not found")
	// ErrInapplicable reports that a refactoring's precondition is not met.
	ErrInapplicable = errors.New("inapplicable")
)

// IsExpected reports whether err is a "nothing to do here" outcome rather
// than a failure.
func IsExpected(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInapplicable)
}
