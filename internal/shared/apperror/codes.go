package apperror

const (
	// Caller errors
	CodeInvalidInput  = "INVALID_INPUT"
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInvalidState  = "INVALID_STATE"
	CodeNotConverged  = "NOT_CONVERGED"

	// Internal errors
	CodeInternalError = "INTERNAL_ERROR"
)
