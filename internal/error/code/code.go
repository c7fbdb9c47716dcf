package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: not authenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: conflicting state.
	StatusConflict = 409
	// StatusTooManyRequests - 429: request rate exceeded.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: a required backend is unreachable.
	StatusServiceUnavailable = 503
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: failed to bind request parameters.
	ErrBind
	// ErrValidation - 400: request parameter validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: the role lacks the required permission.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: request rate exceeded.
	ErrTooManyRequests
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect password.
	ErrUserPasswordIncorrect
)

// Asset error codes (102xxx).
const (
	// ErrAssetNotFound - 404: asset not found.
	ErrAssetNotFound int = iota + 102000
	// ErrAssetCodeTaken - 400: asset code already in use.
	ErrAssetCodeTaken
)

// Supplier and insurance error codes (103xxx).
const (
	// ErrSupplierNotFound - 404: supplier not found.
	ErrSupplierNotFound int = iota + 103000
	// ErrInsuranceNotFound - 404: insurance policy not found.
	ErrInsuranceNotFound
	// ErrPolicyNumberTaken - 400: policy number already in use.
	ErrPolicyNumberTaken
)

// Scan record error codes (104xxx).
const (
	// ErrScanNotFound - 404: scan record not found.
	ErrScanNotFound int = iota + 104000
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
)

// Scanner session error codes (106xxx).
const (
	// ErrScannerDeviceUnavailable - 503: no scanner station available.
	ErrScannerDeviceUnavailable int = iota + 106000
	// ErrScannerPermissionDenied - 403: scanner station access refused.
	ErrScannerPermissionDenied
	// ErrScannerDeviceBusy - 409: scanner station already in use.
	ErrScannerDeviceBusy
	// ErrScannerLocationMissing - 400: scanning location not set.
	ErrScannerLocationMissing
	// ErrScanPersistenceFailure - 500: failed to persist the scan.
	ErrScanPersistenceFailure
	// ErrNoPendingScan - 409: no scan staged for review.
	ErrNoPendingScan
	// ErrSessionNotIdle - 409: a scan session is already running.
	ErrSessionNotIdle
)
