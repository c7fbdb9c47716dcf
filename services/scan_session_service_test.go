package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// fakeCaptureSession records whether Stop was called
type fakeCaptureSession struct {
	mu      sync.Mutex
	stopped bool
}

func (f *fakeCaptureSession) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}

func (f *fakeCaptureSession) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// fakeCaptureProvider hands out fake sessions and keeps the decode callback so
// tests can drive decodes by hand.
type fakeCaptureProvider struct {
	mu       sync.Mutex
	devices  []CaptureDevice
	listErr  error
	startErr error

	sessions []*fakeCaptureSession
	onDecode DecodeCallback
	starts   int
}

func (f *fakeCaptureProvider) ListDevices() ([]CaptureDevice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.devices, nil
}

func (f *fakeCaptureProvider) Start(deviceID string, onDecode DecodeCallback, onError CaptureErrorCallback) (CaptureSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return nil, f.startErr
	}
	session := &fakeCaptureSession{}
	f.sessions = append(f.sessions, session)
	f.onDecode = onDecode
	f.starts++
	return session, nil
}

func (f *fakeCaptureProvider) decode(payload string) {
	f.mu.Lock()
	cb := f.onDecode
	f.mu.Unlock()
	cb(payload)
}

func (f *fakeCaptureProvider) startCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts
}

func (f *fakeCaptureProvider) lastSession() *fakeCaptureSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sessions) == 0 {
		return nil
	}
	return f.sessions[len(f.sessions)-1]
}

// fakeAssetLookup resolves asset codes from a fixed map
type fakeAssetLookup struct {
	assets map[string]*models.Asset
}

func (f *fakeAssetLookup) GetAssetByCode(code string) (*models.Asset, error) {
	if asset, ok := f.assets[code]; ok {
		return asset, nil
	}
	return nil, ErrAssetNotFound
}

// fakeScanRecords captures created scan records
type fakeScanRecords struct {
	mu        sync.Mutex
	createErr error
	created   []*models.ScanRecord
}

func (f *fakeScanRecords) CreateScan(record *models.ScanRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, record)
	return nil
}

func (f *fakeScanRecords) GetAllScans(query models.PaginationQuery) ([]models.ScanRecord, models.PaginationResult, error) {
	return nil, models.PaginationResult{}, nil
}

func (f *fakeScanRecords) GetScanByID(id uint) (*models.ScanRecord, error) {
	return nil, ErrScanRecordNotFound
}

func (f *fakeScanRecords) GetScansByAsset(assetID uint) ([]models.ScanRecord, error) {
	return nil, nil
}

func (f *fakeScanRecords) UpdateScan(id uint, updates map[string]interface{}) (*models.ScanRecord, error) {
	return nil, ErrScanRecordNotFound
}

func (f *fakeScanRecords) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func (f *fakeScanRecords) setCreateErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createErr = err
}

func sessionConfig(restartDelayMs int) *config.Config {
	return &config.Config{
		ScanLedgerKey:      "qrcode-scan-results",
		ScanLocationsKey:   "qrcode-locations",
		ScanRestartDelayMs: restartDelayMs,
	}
}

func newSessionFixture(restartDelayMs int) (*ScanSessionService, *fakeCaptureProvider, *fakeScanRecords, *ScanStoreService) {
	provider := &fakeCaptureProvider{
		devices: []CaptureDevice{{ID: "station-1", Label: "Dock scanner"}},
	}
	records := &fakeScanRecords{}
	store := NewScanStoreService(newFakeKV(), storeConfig())
	lookup := &fakeAssetLookup{assets: map[string]*models.Asset{
		"ASSET007": {Name: "Printer", AssetCode: "ASSET007"},
	}}
	session := NewScanSessionService(provider, NewCodeResolver(), store, records, lookup, sessionConfig(restartDelayMs))
	return session, provider, records, store
}

func TestStartRequiresLocation(t *testing.T) {
	session, provider, _, _ := newSessionFixture(0)

	err := session.Start("   ", "")
	require.Error(t, err)
	scanErr, ok := AsScanError(err)
	require.True(t, ok)
	assert.Equal(t, ScanErrLocationMissing, scanErr.Category)

	// Precondition failure means no transition and no device touched
	assert.Equal(t, SessionIdle, session.State())
	assert.Equal(t, 0, provider.startCount())
}

func TestStartTransitionsToScanning(t *testing.T) {
	session, provider, _, _ := newSessionFixture(0)

	require.NoError(t, session.Start("Warehouse", ""))
	assert.Equal(t, SessionScanning, session.State())
	assert.Equal(t, "Warehouse", session.Location())
	assert.Equal(t, 1, provider.startCount())
}

func TestStartWhileActiveFails(t *testing.T) {
	session, _, _, _ := newSessionFixture(0)

	require.NoError(t, session.Start("Warehouse", ""))

	err := session.Start("Warehouse", "")
	require.Error(t, err)
	scanErr, ok := AsScanError(err)
	require.True(t, ok)
	assert.Equal(t, ScanErrSessionActive, scanErr.Category)
}

func TestStartCategorizesAcquisitionFailures(t *testing.T) {
	session, provider, _, _ := newSessionFixture(0)
	provider.listErr = ErrNoCaptureDevices

	err := session.Start("Warehouse", "")
	require.Error(t, err)
	scanErr, ok := AsScanError(err)
	require.True(t, ok)
	assert.Equal(t, ScanErrDeviceUnavailable, scanErr.Category)
	assert.Equal(t, SessionIdle, session.State())

	provider.listErr = nil
	provider.startErr = ErrCaptureDeviceBusy

	err = session.Start("Warehouse", "")
	require.Error(t, err)
	scanErr, ok = AsScanError(err)
	require.True(t, ok)
	assert.Equal(t, ScanErrDeviceBusy, scanErr.Category)
	assert.Equal(t, SessionIdle, session.State())
}

func TestDecodePausesAndStopsCapture(t *testing.T) {
	session, provider, _, _ := newSessionFixture(0)

	require.NoError(t, session.Start("Warehouse", ""))
	provider.decode(`{"assetCode":"ASSET007"}`)

	assert.Equal(t, SessionPaused, session.State())
	assert.True(t, provider.lastSession().isStopped())

	pending, ok := session.PendingScan()
	require.True(t, ok)
	assert.Equal(t, `{"assetCode":"ASSET007"}`, pending.Data)
	assert.Equal(t, "Warehouse", pending.Location)
	require.NotNil(t, pending.Resolved)
	assert.Equal(t, "ASSET007", pending.Resolved.Code)
	require.NotNil(t, pending.AssetInfo)
	assert.Equal(t, "Printer", pending.AssetInfo.Name)
}

func TestDecodeWithUnknownCodeStillStages(t *testing.T) {
	session, provider, _, _ := newSessionFixture(0)

	require.NoError(t, session.Start("Warehouse", ""))
	provider.decode("UNKNOWN99")

	pending, ok := session.PendingScan()
	require.True(t, ok)
	assert.Nil(t, pending.AssetInfo)
	assert.Equal(t, "UNKNOWN99", pending.Data)
}

func TestSecondDecodeIsIgnoredWhilePaused(t *testing.T) {
	session, provider, _, _ := newSessionFixture(0)

	require.NoError(t, session.Start("Warehouse", ""))
	provider.decode("FIRST111")
	provider.decode("SECOND22")

	pending, ok := session.PendingScan()
	require.True(t, ok)
	assert.Equal(t, "FIRST111", pending.Data)
}

func TestConfirmPersistsAndRestarts(t *testing.T) {
	session, provider, records, store := newSessionFixture(5)

	require.NoError(t, session.Start("Warehouse", ""))
	provider.decode(`{"assetCode":"ASSET007"}`)

	saved, err := session.Confirm(PendingScanEdit{
		Data:     `{"assetCode":"ASSET007"}`,
		Location: "Office Floor 2",
		UserID:   7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Office Floor 2", saved.Location)

	assert.Equal(t, 1, records.createdCount())
	results := store.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Office Floor 2", results[0].Location)

	_, ok := session.PendingScan()
	assert.False(t, ok)

	// Auto-restart kicks in after the delay
	assert.Eventually(t, func() bool {
		return session.State() == SessionScanning
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, provider.startCount())
}

func TestConfirmWithoutPendingFails(t *testing.T) {
	session, _, _, _ := newSessionFixture(0)

	_, err := session.Confirm(PendingScanEdit{Data: "x", Location: "Warehouse"})
	require.Error(t, err)
	scanErr, ok := AsScanError(err)
	require.True(t, ok)
	assert.Equal(t, ScanErrNoPendingScan, scanErr.Category)
}

func TestConfirmKeepsPendingOnPersistenceFailure(t *testing.T) {
	session, provider, records, _ := newSessionFixture(0)
	records.setCreateErr(errors.New("database down"))

	require.NoError(t, session.Start("Warehouse", ""))
	provider.decode("ASSET007")

	_, err := session.Confirm(PendingScanEdit{Data: "ASSET007", Location: "Warehouse"})
	require.Error(t, err)
	scanErr, ok := AsScanError(err)
	require.True(t, ok)
	assert.Equal(t, ScanErrPersistenceFailure, scanErr.Category)

	// The operator can retry: the scan stays staged and no record row landed
	assert.Equal(t, SessionPaused, session.State())
	_, pending := session.PendingScan()
	assert.True(t, pending)
	assert.Equal(t, 0, records.createdCount())
}

func TestConfirmRetryDoesNotDuplicate(t *testing.T) {
	session, provider, records, store := newSessionFixture(0)
	records.setCreateErr(errors.New("database down"))

	require.NoError(t, session.Start("Warehouse", ""))
	provider.decode("ASSET007")

	edit := PendingScanEdit{Data: "ASSET007", Location: "Warehouse"}
	_, err := session.Confirm(edit)
	require.Error(t, err)

	records.setCreateErr(nil)
	_, err = session.Confirm(edit)
	require.NoError(t, err)

	// One scan, one record, one ledger entry, no matter how many retries
	assert.Equal(t, 1, records.createdCount())
	assert.Len(t, store.Results(), 1)
}

func TestConfirmAppliesDeviceEdits(t *testing.T) {
	session, provider, _, store := newSessionFixture(0)

	require.NoError(t, session.Start("Warehouse", ""))
	provider.decode("ASSET007")

	saved, err := session.Confirm(PendingScanEdit{
		Data:       "ASSET007",
		Location:   "Warehouse",
		DeviceType: "Laptop",
	})
	require.NoError(t, err)
	require.NotNil(t, saved.DeviceInfo)
	assert.Equal(t, "Laptop", saved.DeviceInfo.Type)
	assert.Equal(t, "Active", saved.DeviceInfo.Status)

	results := store.Results()
	require.Len(t, results, 1)
	require.NotNil(t, results[0].DeviceInfo)
}

func TestCancelDiscardsPending(t *testing.T) {
	session, provider, records, store := newSessionFixture(0)

	require.NoError(t, session.Start("Warehouse", ""))
	provider.decode("ASSET007")

	require.NoError(t, session.Cancel())
	assert.Equal(t, SessionIdle, session.State())
	_, ok := session.PendingScan()
	assert.False(t, ok)
	assert.Equal(t, 0, records.createdCount())
	assert.Empty(t, store.Results())

	// Cancel does not auto-restart
	assert.Equal(t, 1, provider.startCount())
}

func TestStopFromAnyState(t *testing.T) {
	session, provider, _, _ := newSessionFixture(0)

	// Idle
	require.NoError(t, session.Stop())
	assert.Equal(t, SessionIdle, session.State())

	// Scanning
	require.NoError(t, session.Start("Warehouse", ""))
	require.NoError(t, session.Stop())
	assert.Equal(t, SessionIdle, session.State())
	assert.True(t, provider.lastSession().isStopped())

	// Paused
	require.NoError(t, session.Start("Warehouse", ""))
	provider.decode("ASSET007")
	require.NoError(t, session.Stop())
	assert.Equal(t, SessionIdle, session.State())
	_, ok := session.PendingScan()
	assert.False(t, ok)
}

func TestPickCaptureDevice(t *testing.T) {
	devices := []CaptureDevice{
		{ID: "front", Label: "Front scanner"},
		{ID: "back", Label: "Back dock scanner"},
	}

	picked, err := PickCaptureDevice(devices, "front")
	require.NoError(t, err)
	assert.Equal(t, "front", picked.ID)

	picked, err = PickCaptureDevice(devices, "")
	require.NoError(t, err)
	assert.Equal(t, "back", picked.ID)

	_, err = PickCaptureDevice(devices, "missing")
	assert.ErrorIs(t, err, ErrNoCaptureDevices)

	_, err = PickCaptureDevice(nil, "")
	assert.ErrorIs(t, err, ErrNoCaptureDevices)
}
