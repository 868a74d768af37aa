package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every concrete domain error wraps exactly one of them so
// callers can classify failures with errors.Is.
var (
	// ErrWrongType reports that an entity of the wrong kind was supplied.
	ErrWrongType = errors.New("wrong entity type")
	// ErrInvalidValue reports a violated numeric precondition.
	ErrInvalidValue = errors.New("invalid value")
)

var (
	ErrIncompatibleProducts = fmt.Errorf("%w: cannot combine items of different types", ErrWrongType)
	ErrNotProduct           = fmt.Errorf("%w: only Product or its variants may be added", ErrWrongType)

	ErrNegativeQuantity    = fmt.Errorf("%w: quantity must not be negative", ErrInvalidValue)
	ErrNonPositivePrice    = fmt.Errorf("%w: price must be positive", ErrInvalidValue)
	ErrNonFinitePrice      = fmt.Errorf("%w: price must be finite", ErrInvalidValue)
	ErrNonPositiveQuantity = fmt.Errorf("%w: order quantity must be positive", ErrInvalidValue)
	ErrInsufficientStock   = fmt.Errorf("%w: insufficient stock", ErrInvalidValue)
)
