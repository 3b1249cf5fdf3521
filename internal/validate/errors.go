// errors.go defines sentinel errors for line validation failures.
//
// Separated to centralise error definitions. Each error is one way a
// documents line can fail; ParseDocument wraps them with the offending
// value so messages stay useful while errors.Is() keeps working.

package validate

import "errors"

var (
	ErrNoTab     = errors.New("no tab separator")
	ErrInvalidID = errors.New("identifier is not a digit sequence")
	ErrEmptyText = errors.New("empty text")
)
