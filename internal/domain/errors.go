package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert collides with an existing row
	ErrDuplicate = errors.New("duplicate record")

	// ErrConflict is returned when an operation loses a compare-and-set race
	ErrConflict = errors.New("conflicting concurrent update")

	// ErrIllegalTransition is returned when a negotiation or batch is moved
	// out of a state that does not allow the requested transition
	ErrIllegalTransition = errors.New("illegal state transition")

	// ErrInsufficientCredits is returned when a paid action exceeds the
	// driver's claimable CANDLE balance
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrValidation is returned when request input fails validation
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned when credentials are missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller may not act on the resource
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable is returned when an upstream dependency is unreachable
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrTimeout is returned when an upstream call exceeds its time budget
	ErrTimeout = errors.New("upstream timeout")

	// ErrUnresolvedRecipient is returned when an inbound address yields
	// neither a driver handle nor a load reference
	ErrUnresolvedRecipient = errors.New("unresolved recipient address")
)
