package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:          "success",
	ErrUnknown:          "unknown error",
	ErrBind:             "failed to bind request parameters",
	ErrValidation:       "request parameter validation failed",
	ErrTokenInvalid:     "invalid authentication token",
	ErrPermissionDenied: "insufficient permissions",
	ErrTooManyRequests:  "too many requests, slow down and retry",

	// User error codes
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "incorrect password",

	// Asset error codes
	ErrAssetNotFound:  "asset not found",
	ErrAssetCodeTaken: "asset code already in use",

	// Supplier and insurance error codes
	ErrSupplierNotFound:  "supplier not found",
	ErrInsuranceNotFound: "insurance policy not found",
	ErrPolicyNumberTaken: "policy number already in use",

	// Scan record error codes
	ErrScanNotFound: "scan record not found",

	// Database error codes
	ErrDatabase: "database error",

	// Scanner session error codes
	ErrScannerDeviceUnavailable: "no scanner station available",
	ErrScannerPermissionDenied:  "scanner station access refused",
	ErrScannerDeviceBusy:        "scanner station is already in use",
	ErrScannerLocationMissing:   "a scanning location must be set before scanning",
	ErrScanPersistenceFailure:   "failed to persist the scan",
	ErrNoPendingScan:            "no scan is staged for review",
	ErrSessionNotIdle:           "a scan session is already running",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// User error codes
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Asset error codes
	ErrAssetNotFound:  StatusNotFound,
	ErrAssetCodeTaken: StatusBadRequest,

	// Supplier and insurance error codes
	ErrSupplierNotFound:  StatusNotFound,
	ErrInsuranceNotFound: StatusNotFound,
	ErrPolicyNumberTaken: StatusBadRequest,

	// Scan record error codes
	ErrScanNotFound: StatusNotFound,

	// Database error codes
	ErrDatabase: StatusInternalServerError,

	// Scanner session error codes
	ErrScannerDeviceUnavailable: StatusServiceUnavailable,
	ErrScannerPermissionDenied:  StatusForbidden,
	ErrScannerDeviceBusy:        StatusConflict,
	ErrScannerLocationMissing:   StatusBadRequest,
	ErrScanPersistenceFailure:   StatusInternalServerError,
	ErrNoPendingScan:            StatusConflict,
	ErrSessionNotIdle:           StatusConflict,
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
