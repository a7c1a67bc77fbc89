package domain

import "errors"

// Domain errors
var (
	// Lookup errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")

	// Booking validation errors
	ErrInvalidStayRange = errors.New("check-out must be after check-in")
	ErrInvalidDateRange = errors.New("invalid availability date range")
	ErrDateInPast       = errors.New("from date cannot be in the past")

	// Cancellation errors
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrPastCheckIn      = errors.New("cannot cancel or preview refund after check-in time")

	// Ownership errors
	ErrBookingOwnership = errors.New("booking does not belong to this user")

	// Registration errors
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// Membership errors
	ErrInvalidMembershipLevel = errors.New("invalid membership level")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidStayRange) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrDateInPast) ||
		errors.Is(err, ErrInvalidMembershipLevel)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrAlreadyCancelled) ||
		errors.Is(err, ErrPastCheckIn) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrEmailTaken)
}
