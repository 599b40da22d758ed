package code

// Error-code to message mapping
var codeMessageMap = map[int]string{
	// Generic error codes
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request body",
	ErrValidation:      "request validation failed",
	ErrTooManyRequests: "too many requests",

	// Resident error codes
	ErrResidentNotFound: "resident not found",

	// Finance transaction error codes
	ErrTransactionNotFound: "finance transaction not found",

	// Budget error codes
	ErrBudgetNotFound: "budget not found",

	// Event error codes
	ErrEventNotFound: "event not found",

	// Asset error codes
	ErrAssetNotFound: "asset not found",

	// Public service error codes
	ErrPublicServiceNotFound: "public service not found",

	// Database error codes
	ErrDatabase:         "database error",
	ErrRecordNotFound:   "record not found",
	ErrMigrationFailed:  "schema migration failed",
	ErrConnectionFailed: "database connection failed",
}

// Error-code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	// Resident error codes
	ErrResidentNotFound: StatusNotFound,

	// Finance transaction error codes
	ErrTransactionNotFound: StatusNotFound,

	// Budget error codes
	ErrBudgetNotFound: StatusNotFound,

	// Event error codes
	ErrEventNotFound: StatusNotFound,

	// Asset error codes
	ErrAssetNotFound: StatusNotFound,

	// Public service error codes
	ErrPublicServiceNotFound: StatusNotFound,

	// Database error codes
	ErrDatabase:         StatusInternalServerError,
	ErrRecordNotFound:   StatusNotFound,
	ErrMigrationFailed:  StatusInternalServerError,
	ErrConnectionFailed: StatusInternalServerError,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
