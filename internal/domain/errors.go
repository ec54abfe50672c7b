package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNoSuchLine         = errors.New("no such cart line")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("cart is locked while checkout details are being collected")
)

// MissingSelectionError reports which option axis lacks a pick when a line is
// added.
type MissingSelectionError struct {
	Axis string
}

func (e *MissingSelectionError) Error() string {
	return "please select a " + strings.ToLower(e.Axis)
}

// MissingContactError reports the first missing contact field, in checkout
// priority order.
type MissingContactError struct {
	Field string
}

func (e *MissingContactError) Error() string {
	return "please enter your " + e.Field
}
