package services

import (
	"errors"
	"strings"
)

// Sentinel errors returned by capture providers
var (
	ErrNoCaptureDevices        = errors.New("no capture devices available")
	ErrCapturePermissionDenied = errors.New("capture device access denied")
	ErrCaptureDeviceBusy       = errors.New("capture device busy")
)

// CaptureDevice describes one enumerable scanner station
type CaptureDevice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DecodeCallback receives the raw text decoded from an optical code
type DecodeCallback func(payload string)

// CaptureErrorCallback receives asynchronous capture faults
type CaptureErrorCallback func(err error)

// CaptureSession is an active binding to a capture device. Stop must release
// the device and must be safe to call exactly once on every exit path.
type CaptureSession interface {
	Stop() error
}

// InterfaceCaptureProvider is the capture device API consumed by the scan
// session: enumeration plus a start call that binds decode delivery.
type InterfaceCaptureProvider interface {
	ListDevices() ([]CaptureDevice, error)
	Start(deviceID string, onDecode DecodeCallback, onError CaptureErrorCallback) (CaptureSession, error)
}

// PickCaptureDevice selects the station to bind. An explicit id wins;
// otherwise a back-facing labeled device is preferred, then the first one.
func PickCaptureDevice(devices []CaptureDevice, preferredID string) (CaptureDevice, error) {
	if len(devices) == 0 {
		return CaptureDevice{}, ErrNoCaptureDevices
	}
	if preferredID != "" {
		for _, d := range devices {
			if d.ID == preferredID {
				return d, nil
			}
		}
		return CaptureDevice{}, ErrNoCaptureDevices
	}
	for _, d := range devices {
		if strings.Contains(strings.ToLower(d.Label), "back") {
			return d, nil
		}
	}
	return devices[0], nil
}
