package services

import (
	"errors"
	"fmt"
)

// ScanErrorCategory classifies scanner failures so that no raw platform or
// network error ever reaches the operator.
type ScanErrorCategory string

const (
	// ScanErrDeviceUnavailable - no scanner station found or enumeration came back empty
	ScanErrDeviceUnavailable ScanErrorCategory = "device_unavailable"
	// ScanErrPermissionDenied - station access refused
	ScanErrPermissionDenied ScanErrorCategory = "permission_denied"
	// ScanErrDeviceBusy - station already bound to another session
	ScanErrDeviceBusy ScanErrorCategory = "device_busy"
	// ScanErrLocationMissing - session precondition failed, no state transition happened
	ScanErrLocationMissing ScanErrorCategory = "location_missing"
	// ScanErrPersistenceFailure - the confirmed scan could not be saved; the pending scan is kept
	ScanErrPersistenceFailure ScanErrorCategory = "persistence_failure"
	// ScanErrNoPendingScan - confirm or cancel called with nothing staged
	ScanErrNoPendingScan ScanErrorCategory = "no_pending_scan"
	// ScanErrSessionActive - start called while a session is running
	ScanErrSessionActive ScanErrorCategory = "session_active"
)

// ScanError is a categorized scanner failure
type ScanError struct {
	Category ScanErrorCategory
	Message  string
	Err      error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a categorized scanner error
func NewScanError(category ScanErrorCategory, message string, err error) *ScanError {
	return &ScanError{Category: category, Message: message, Err: err}
}

// AsScanError extracts the ScanError from an error chain
func AsScanError(err error) (*ScanError, bool) {
	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		return scanErr, true
	}
	return nil, false
}

// CategorizeCaptureError converts a capture provider failure into a
// ScanError. Anything unrecognized is treated as an unavailable device.
func CategorizeCaptureError(err error) *ScanError {
	switch {
	case errors.Is(err, ErrNoCaptureDevices):
		return NewScanError(ScanErrDeviceUnavailable, "no scanner station found, connect a station and retry", err)
	case errors.Is(err, ErrCapturePermissionDenied):
		return NewScanError(ScanErrPermissionDenied, "scanner station access refused, grant access and retry", err)
	case errors.Is(err, ErrCaptureDeviceBusy):
		return NewScanError(ScanErrDeviceBusy, "scanner station is in use by another session", err)
	default:
		return NewScanError(ScanErrDeviceUnavailable, "failed to start the scanner station", err)
	}
}
