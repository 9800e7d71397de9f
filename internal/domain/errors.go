package domain

import "errors"

// Shared business error taxonomy. Repos and services both return these so the
// handlers layer can map them to status codes in one place.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrStaffNotFound    = errors.New("staff not found")
	ErrReceiptNotFound  = errors.New("receipt not found")
	ErrSameAccount      = errors.New("sender and receiver accounts are the same")
	ErrInvalidAmount    = errors.New("amount must be a positive integer")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidKind      = errors.New("invalid account kind")
	ErrInvalidLabel     = errors.New("label is required")
	ErrInvalidName      = errors.New("staff name is required")
	ErrInvalidSalary    = errors.New("monthly salary must be a positive integer")
	ErrInvalidPeriod    = errors.New("month must be in 1..12")

	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrAccessDenied     = errors.New("account not found or not accessible")
	ErrPermissionDenied = errors.New("admin only")
	ErrOwnerAlreadySet  = errors.New("owner already set and locked")

	ErrBusinessNotRegistered = errors.New("business account is not registered")
	ErrPayrollAlreadyRun     = errors.New("payroll already executed for this business and month")
)
