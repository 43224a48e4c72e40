package domain

import "errors"

var (
	// ErrNotFound indicates a referenced id is absent from the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates the operation requires a different
	// session state than the current one.
	ErrInvalidState = errors.New("invalid state")

	// ErrPolicyViolation indicates the operation is not permitted for
	// this session kind (e.g. starting a break directly).
	ErrPolicyViolation = errors.New("policy violation")

	// ErrQuotaExhausted indicates a pause card's daily quota is used up.
	ErrQuotaExhausted = errors.New("quota exhausted")

	// ErrValidation indicates malformed input.
	ErrValidation = errors.New("validation error")
)
