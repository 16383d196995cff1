package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller presented no valid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller's role does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientFunds indicates that a coin debit would drive a balance negative.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidTransition indicates that a status change was attempted on a record
// that is no longer in the required state (e.g. approving an already-approved submission).
var ErrInvalidTransition = errors.New("invalid status transition")
