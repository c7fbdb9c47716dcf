package services

import (
	"strings"
	"sync"
	"time"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
	"github.com/punura-itd/CIC-AGRI-IMS/utils"
)

// ScanSessionState is the state of the scan session machine
type ScanSessionState string

const (
	// SessionIdle - no capture device bound
	SessionIdle ScanSessionState = "idle"
	// SessionRequesting - acquiring a capture device
	SessionRequesting ScanSessionState = "requesting"
	// SessionScanning - capture device bound, waiting for a decode
	SessionScanning ScanSessionState = "scanning"
	// SessionPaused - a decode fired, the pending scan awaits operator review
	SessionPaused ScanSessionState = "paused"
)

// AssetLookup is the boundary the session uses to enrich scans. Lookup
// failures of any kind degrade to a scan without asset info.
type AssetLookup interface {
	GetAssetByCode(code string) (*models.Asset, error)
}

// PendingScanEdit carries the operator's edits when confirming a scan
type PendingScanEdit struct {
	Data         string `json:"qr_data" binding:"required"`
	Location     string `json:"location" binding:"required"`
	DeviceType   string `json:"device_type"`
	DeviceModel  string `json:"device_model"`
	DeviceSerial string `json:"device_serial"`
	DeviceStatus string `json:"device_status"`
	Notes        string `json:"notes"`
	UserID       uint   `json:"-"`
}

// InterfaceScanSessionService is the stateful controller binding a capture
// device to the resolver and the ledger.
type InterfaceScanSessionService interface {
	Start(location, deviceID string) error
	Stop() error
	State() ScanSessionState
	Location() string
	PendingScan() (models.ScanResult, bool)
	Confirm(edit PendingScanEdit) (*models.ScanResult, error)
	Cancel() error
}

// ScanSessionService drives the Idle -> Requesting -> Scanning -> Paused
// machine. The capture device is released on the first decode, so exactly one
// decode is live per code presentation; after the operator confirms, the
// session restarts itself after a short delay.
//
// Every state transition happens under the mutex. The stop of the capture
// device on decode completes before the state can reach Scanning again.
type ScanSessionService struct {
	provider InterfaceCaptureProvider
	resolver InterfaceCodeResolver
	store    InterfaceScanStoreService
	records  InterfaceScanRecordService
	lookup   AssetLookup

	restartDelay time.Duration

	mu       sync.Mutex
	state    ScanSessionState
	location string
	deviceID string
	capture  CaptureSession
	pending  *models.ScanResult
}

// NewScanSessionService creates a new scan session in the Idle state
func NewScanSessionService(
	provider InterfaceCaptureProvider,
	resolver InterfaceCodeResolver,
	store InterfaceScanStoreService,
	records InterfaceScanRecordService,
	lookup AssetLookup,
	cfg *config.Config,
) *ScanSessionService {
	return &ScanSessionService{
		provider:     provider,
		resolver:     resolver,
		store:        store,
		records:      records,
		lookup:       lookup,
		restartDelay: time.Duration(cfg.ScanRestartDelayMs) * time.Millisecond,
		state:        SessionIdle,
	}
}

// Start acquires a capture device and begins scanning. The location
// precondition is checked before any transition: an empty location is
// rejected and the session stays Idle. Acquisition failures are categorized
// and roll the session back to Idle.
func (s *ScanSessionService) Start(location, deviceID string) error {
	location = strings.TrimSpace(location)

	s.mu.Lock()
	if s.state != SessionIdle {
		s.mu.Unlock()
		return NewScanError(ScanErrSessionActive, "a scan session is already running", nil)
	}
	if location == "" {
		s.mu.Unlock()
		return NewScanError(ScanErrLocationMissing, "select or enter a location before scanning", nil)
	}
	s.state = SessionRequesting
	s.location = location
	s.mu.Unlock()

	capture, boundID, err := s.acquire(deviceID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = SessionIdle
		return err
	}

	// Stop raced in while we were acquiring; release and stay Idle.
	if s.state != SessionRequesting {
		s.mu.Unlock()
		if stopErr := capture.Stop(); stopErr != nil {
			config.Warning("failed to release capture device after cancelled start: %v", stopErr)
		}
		s.mu.Lock()
		return nil
	}

	s.capture = capture
	s.deviceID = boundID
	s.state = SessionScanning
	config.Info("scan session started: station=%s location=%s", boundID, location)
	return nil
}

// acquire enumerates stations and binds the decode callback
func (s *ScanSessionService) acquire(deviceID string) (CaptureSession, string, error) {
	devices, err := s.provider.ListDevices()
	if err != nil {
		return nil, "", CategorizeCaptureError(err)
	}

	device, err := PickCaptureDevice(devices, deviceID)
	if err != nil {
		return nil, "", CategorizeCaptureError(err)
	}

	capture, err := s.provider.Start(device.ID, s.handleDecode, s.handleCaptureError)
	if err != nil {
		return nil, "", CategorizeCaptureError(err)
	}
	return capture, device.ID, nil
}

// handleDecode is the one-shot decode callback. The capture device is stopped
// synchronously before the pending scan is staged, so no second decode can be
// delivered while the operator reviews this one.
func (s *ScanSessionService) handleDecode(payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionScanning {
		return
	}
	s.state = SessionPaused

	if s.capture != nil {
		if err := s.capture.Stop(); err != nil {
			config.Warning("failed to stop capture device after decode: %v", err)
		}
		s.capture = nil
	}

	resolved := s.resolver.ResolveCode(payload)
	deviceInfo := s.resolver.ExtractDeviceInfo(payload)

	// An empty resolved code is a failed resolution: the scan is still
	// staged for manual edit, only the asset enrichment is skipped.
	var assetInfo *models.Asset
	if resolved.Code != "" {
		asset, err := s.lookup.GetAssetByCode(resolved.Code)
		if err != nil {
			config.Warning("asset lookup failed for code %q: %v", resolved.Code, err)
		} else {
			assetInfo = asset
		}
	}

	s.pending = &models.ScanResult{
		Data:       payload,
		Timestamp:  time.Now(),
		ID:         utils.NewScanID(),
		Location:   s.location,
		DeviceInfo: deviceInfo,
		AssetInfo:  assetInfo,
		Resolved:   &resolved,
	}

	config.Info("scan decoded at %s: code=%q kind=%s asset_found=%t",
		s.location, resolved.Code, resolved.Kind, assetInfo != nil)
}

// handleCaptureError receives asynchronous capture faults. Frame-level decode
// errors are expected noise while a code is positioned, so they are logged
// and not surfaced.
func (s *ScanSessionService) handleCaptureError(err error) {
	config.Warning("capture device error: %v", err)
}

// Confirm applies the operator's edits to the pending scan, persists it and
// auto-restarts scanning after the restart delay. On persistence failure the
// pending scan is kept and the session stays Paused so the operator can
// retry.
func (s *ScanSessionService) Confirm(edit PendingScanEdit) (*models.ScanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionPaused || s.pending == nil {
		return nil, NewScanError(ScanErrNoPendingScan, "no scan is staged for review", nil)
	}
	if strings.TrimSpace(edit.Location) == "" {
		return nil, NewScanError(ScanErrLocationMissing, "the scan must be assigned a location", nil)
	}

	updated := *s.pending
	updated.Data = edit.Data
	updated.Location = strings.TrimSpace(edit.Location)
	if edit.DeviceType != "" {
		status := edit.DeviceStatus
		if status == "" {
			status = "Active"
		}
		updated.DeviceInfo = &models.DeviceInfo{
			Type:   edit.DeviceType,
			Model:  edit.DeviceModel,
			Serial: edit.DeviceSerial,
			Status: status,
		}
	} else {
		updated.DeviceInfo = nil
	}

	// Ledger first: Save replaces by id, so a retry after a record insert
	// failure overwrites the same entry instead of duplicating anything.
	if err := s.store.Save(updated); err != nil {
		return nil, NewScanError(ScanErrPersistenceFailure, "failed to persist the scan ledger", err)
	}

	record := &models.ScanRecord{
		ScanDate:     updated.Timestamp,
		ScanLocation: updated.Location,
		UserID:       edit.UserID,
	}
	if updated.AssetInfo != nil {
		assetID := updated.AssetInfo.ID
		record.AssetID = &assetID
	}
	if err := s.records.CreateScan(record); err != nil {
		return nil, NewScanError(ScanErrPersistenceFailure, "failed to save the scan record", err)
	}

	s.pending = nil
	s.state = SessionIdle

	// Auto-restart after a short delay so the operator can position the
	// next code. Start re-checks device availability itself.
	location := s.location
	time.AfterFunc(s.restartDelay, func() {
		if err := s.Start(location, ""); err != nil {
			config.Warning("scan session auto-restart failed: %v", err)
		}
	})

	return &updated, nil
}

// Cancel discards the pending scan and returns the session to Idle without
// restarting.
func (s *ScanSessionService) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionPaused || s.pending == nil {
		return NewScanError(ScanErrNoPendingScan, "no scan is staged for review", nil)
	}

	s.pending = nil
	s.state = SessionIdle
	config.Info("pending scan discarded by operator")
	return nil
}

// Stop releases the capture device and returns to Idle from any state. Any
// pending scan is discarded.
func (s *ScanSessionService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capture != nil {
		if err := s.capture.Stop(); err != nil {
			config.Warning("failed to stop capture device: %v", err)
		}
		s.capture = nil
	}
	s.pending = nil
	s.state = SessionIdle
	return nil
}

// State returns the current session state
func (s *ScanSessionService) State() ScanSessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Location returns the active scanning location
func (s *ScanSessionService) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// PendingScan returns the scan staged for review, if any
func (s *ScanSessionService) PendingScan() (models.ScanResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return models.ScanResult{}, false
	}
	return *s.pending, true
}
