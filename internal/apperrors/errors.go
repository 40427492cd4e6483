package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates the caller is not allowed to perform the operation.
// Mutation guards treat this as a silent no-op rather than a visible failure.
var ErrForbidden = errors.New("operation not permitted")

// ErrInvalidCredentials is the single generic login failure. It deliberately
// does not distinguish an unknown user ID from a wrong password.
var ErrInvalidCredentials = errors.New("invalid user ID or password")

// ErrAnalysisRunning indicates an analysis run is already outstanding and
// re-entrant triggering was refused.
var ErrAnalysisRunning = errors.New("analysis already in progress")
