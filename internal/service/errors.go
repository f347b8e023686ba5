package service

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrClientNotFound is returned when a client name has no record
	ErrClientNotFound = errors.New("client not found")

	// ErrClientExists is returned when a client folder already exists at
	// the target (classification, payee, name) path
	ErrClientExists = errors.New("client already exists")

	// ErrIncorrectPassword is returned when the admin password gate fails
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrOfferNotFound is returned when a purchase order references an
	// offer that does not exist on disk
	ErrOfferNotFound = errors.New("offer not found")

	// ErrInvalidDateRange is returned when an intervention ends before it
	// starts
	ErrInvalidDateRange = errors.New("the end date must be after the start date")
)

// PayeeMismatchError reports that the payee selected for an operation does
// not match the payee stored on the client record. The operation aborts
// with no mutation.
type PayeeMismatchError struct {
	Client string
	Stored string
	Given  string
}

func (e *PayeeMismatchError) Error() string {
	return fmt.Sprintf("the client '%s' belongs to the payee '%s', not '%s'; please correct your selection",
		e.Client, e.Stored, e.Given)
}

// defaultYear is the year the historical layout was built around. It is
// passed to taxonomy creation (where it is unused in the path) and shown in
// the Date column of report rows.
const defaultYear = 2024
