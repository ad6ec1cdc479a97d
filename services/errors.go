package services

import "errors"

// Business-rule errors surfaced to the HTTP layer as alert messages.
// Infrastructure failures are returned as-is and mapped to a generic 500.
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountInactive     = errors.New("account is inactive or pending verification")
	ErrTooManyAttempts     = errors.New("too many login attempts, try again later")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrUserNotFound        = errors.New("user not found")
	ErrPackageInactive     = errors.New("investment package not found or inactive")
	ErrPackageInUse        = errors.New("package has active investments")
	ErrAmountOutOfRange    = errors.New("amount is outside the package limits")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount is below the minimum")
	ErrWithdrawalPending   = errors.New("a pending withdrawal already exists")
	ErrNotPending          = errors.New("transaction is not pending")
	ErrTicketNotFound      = errors.New("support ticket not found")
	ErrInvalidStatus       = errors.New("invalid status transition")
)
