package domain

import "errors"

var (
	// ErrDuplicateAccount is returned when creating an account whose id is already taken
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountNotFound is returned when an account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount is returned when the transfer amount is invalid
	ErrInvalidAmount = errors.New("invalid amount: must be positive")

	// ErrNegativeBalance is returned when an account would be created with a negative balance
	ErrNegativeBalance = errors.New("initial balance must be non-negative")

	// ErrSameAccount is returned when sender and recipient are the same
	ErrSameAccount = errors.New("sender and recipient must be different accounts")

	// ErrInsufficientFunds is returned when the sender doesn't have enough balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTimeout is returned when the caller's deadline expires before both
	// account guards could be acquired. A timed-out transfer has no effect.
	ErrTimeout = errors.New("timed out waiting for account guard")
)
