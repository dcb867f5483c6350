package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that the store rejected a write because a uniqueness
// constraint would be violated.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that an operation conflicts with the current state of
// the ledger: re-splitting an already split transaction, a chunk-sum mismatch,
// or a uniqueness violation that survived pre-filtering. The enclosing atomic
// operation is aborted entirely.
var ErrConflict = errors.New("operation conflicts with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
