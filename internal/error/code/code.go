package code

// HTTP status codes used by the error-code mapping.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request.
	StatusBadRequest = 400
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Resident error codes (101xxx).
const (
	// ErrResidentNotFound - 404: resident does not exist.
	ErrResidentNotFound int = iota + 101000
)

// Finance transaction error codes (102xxx).
const (
	// ErrTransactionNotFound - 404: finance transaction does not exist.
	ErrTransactionNotFound int = iota + 102000
)

// Budget error codes (103xxx).
const (
	// ErrBudgetNotFound - 404: budget does not exist.
	ErrBudgetNotFound int = iota + 103000
)

// Event error codes (104xxx).
const (
	// ErrEventNotFound - 404: event does not exist.
	ErrEventNotFound int = iota + 104000
)

// Asset error codes (105xxx).
const (
	// ErrAssetNotFound - 404: asset does not exist.
	ErrAssetNotFound int = iota + 105000
)

// Public service error codes (106xxx).
const (
	// ErrPublicServiceNotFound - 404: public service does not exist.
	ErrPublicServiceNotFound int = iota + 106000
)

// Database error codes (107xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
	// ErrMigrationFailed - 500: schema migration failed.
	ErrMigrationFailed
	// ErrConnectionFailed - 500: database connection failed.
	ErrConnectionFailed
)
