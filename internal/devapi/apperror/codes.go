package apperror

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodeRateLimited = "RATE_LIMITED"
	CodeDatabase    = "DATABASE_ERROR"
	CodeInternal    = "INTERNAL_ERROR"
)
