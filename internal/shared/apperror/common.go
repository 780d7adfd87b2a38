package apperror

var (
	ErrNotFound = New(
		CodeNotFound,
		"resource not found",
	)

	ErrInternal = New(
		CodeInternalError,
		"an unexpected error occurred",
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"the provided input is invalid",
	)
)

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required")
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid")
}
