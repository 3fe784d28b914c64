package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Claim errors
var (
	ErrClaimNotFound     = errors.New("payment claim not found")
	ErrClaimAlreadyFinal = errors.New("payment claim already finalized")
)

// Card errors
var (
	ErrAccountNotVerified   = errors.New("account is not verified")
	ErrCardAlreadyGenerated = errors.New("card already generated for account")
)

// Password reset errors
var (
	ErrResetTokenInvalid = errors.New("reset token invalid")
	ErrResetTokenExpired = errors.New("reset token expired")
)

// Registration errors
var (
	ErrFeeLevelNotFound = errors.New("fee level not found")
)

// ErrDownstream marks a secondary effect that failed after the primary
// write succeeded (e.g. account activation after claim approval)
var ErrDownstream = errors.New("downstream effect failed")
