package papertrade

import "errors"

// Error kinds surfaced by trade validation. They are compared with
// errors.Is and wrapped with context where they occur.
var (
	// ErrInvalidAmount rejects a non-finite or non-positive amount before
	// any other check runs.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds rejects a buy whose cost exceeds the cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientHoldings rejects a sell larger than the held quantity.
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	// ErrFeedUnavailable marks a failed live tick; the previous prices are
	// retained and the error is never fatal.
	ErrFeedUnavailable = errors.New("price feed unavailable")
	// ErrNotActive rejects operations that need an initialized session.
	ErrNotActive = errors.New("session not active")
)
