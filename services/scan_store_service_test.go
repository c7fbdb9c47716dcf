package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// fakeKV is an in-memory InterfaceKVStorage for tests
type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) GetString(key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) SetString(key, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Remove(key string) error {
	delete(f.data, key)
	return nil
}

func storeConfig() *config.Config {
	return &config.Config{
		ScanLedgerKey:    "qrcode-scan-results",
		ScanLocationsKey: "qrcode-locations",
	}
}

func sampleScan(id, location string) models.ScanResult {
	return models.ScanResult{
		Data:      "ASSET-" + id,
		Timestamp: time.Now().Truncate(time.Millisecond),
		ID:        id,
		Location:  location,
	}
}

func TestSavePrependsNewestFirst(t *testing.T) {
	store := NewScanStoreService(newFakeKV(), storeConfig())

	require.NoError(t, store.Save(sampleScan("1", "Warehouse")))
	require.NoError(t, store.Save(sampleScan("2", "Warehouse")))
	require.NoError(t, store.Save(sampleScan("3", "Office Floor 1")))

	results := store.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "3", results[0].ID)
	assert.Equal(t, "2", results[1].ID)
	assert.Equal(t, "1", results[2].ID)
}

func TestSaveReplacesById(t *testing.T) {
	store := NewScanStoreService(newFakeKV(), storeConfig())

	require.NoError(t, store.Save(sampleScan("1", "Warehouse")))
	require.NoError(t, store.Save(sampleScan("2", "Warehouse")))

	edited := sampleScan("1", "Office Floor 2")
	edited.Data = "corrected"
	require.NoError(t, store.Save(edited))

	results := store.Results()
	require.Len(t, results, 2)
	// The edited entry keeps its position instead of moving to the head
	assert.Equal(t, "2", results[0].ID)
	assert.Equal(t, "1", results[1].ID)
	assert.Equal(t, "corrected", results[1].Data)
	assert.Equal(t, "Office Floor 2", results[1].Location)
}

func TestSaveRejectsEmptyLocation(t *testing.T) {
	store := NewScanStoreService(newFakeKV(), storeConfig())

	err := store.Save(sampleScan("1", ""))
	assert.Error(t, err)
	assert.Empty(t, store.Results())
}

func TestPersistRoundTrip(t *testing.T) {
	kv := newFakeKV()
	cfg := storeConfig()

	store := NewScanStoreService(kv, cfg)
	scan := sampleScan("42", "Warehouse")
	scan.DeviceInfo = &models.DeviceInfo{Type: "Laptop", Serial: "SN-1", Status: "Active"}
	require.NoError(t, store.Save(scan))

	// A new store over the same storage sees the same ledger
	reloaded := NewScanStoreService(kv, cfg)
	require.NoError(t, reloaded.LoadPersisted())

	results := reloaded.Results()
	require.Len(t, results, 1)
	assert.Equal(t, scan.Data, results[0].Data)
	assert.Equal(t, scan.ID, results[0].ID)
	assert.Equal(t, scan.Location, results[0].Location)
	assert.True(t, scan.Timestamp.Equal(results[0].Timestamp))
	require.NotNil(t, results[0].DeviceInfo)
	assert.Equal(t, "SN-1", results[0].DeviceInfo.Serial)
}

func TestLoadPersistedSkipsMalformedEntries(t *testing.T) {
	kv := newFakeKV()
	cfg := storeConfig()
	kv.data[cfg.ScanLedgerKey] = `[
		{"data":"good","timestamp":"2026-08-30T10:00:00Z","id":"1","location":"Warehouse"},
		{"data":"no id","timestamp":"2026-08-30T10:01:00Z","location":"Warehouse"},
		{"data":"bad ts","timestamp":"yesterday","id":"3","location":"Warehouse"}
	]`

	store := NewScanStoreService(kv, cfg)
	require.NoError(t, store.LoadPersisted())

	results := store.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].ID)
}

func TestClearAllKeepsLocations(t *testing.T) {
	kv := newFakeKV()
	store := NewScanStoreService(kv, storeConfig())

	require.NoError(t, store.Save(sampleScan("1", "Warehouse")))
	require.NoError(t, store.AddLocation("Dock 1"))

	require.NoError(t, store.ClearAll())

	assert.Empty(t, store.Results())
	assert.Contains(t, store.Locations(), "Dock 1")
	_, ok := kv.data[storeConfig().ScanLedgerKey]
	assert.False(t, ok)
}

func TestDefaultLocationsSeeded(t *testing.T) {
	store := NewScanStoreService(newFakeKV(), storeConfig())

	locations := store.Locations()
	assert.Equal(t, []string{"Office Floor 1", "Office Floor 2", "Warehouse", "Conference Room A"}, locations)
}

func TestAddLocationDedupesAndTrims(t *testing.T) {
	store := NewScanStoreService(newFakeKV(), storeConfig())

	require.NoError(t, store.AddLocation("  Dock 1  "))
	require.NoError(t, store.AddLocation("Dock 1"))
	assert.Error(t, store.AddLocation("   "))

	locations := store.Locations()
	count := 0
	for _, l := range locations {
		if l == "Dock 1" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResultsByLocation(t *testing.T) {
	store := NewScanStoreService(newFakeKV(), storeConfig())

	require.NoError(t, store.Save(sampleScan("1", "Warehouse")))
	require.NoError(t, store.Save(sampleScan("2", "Office Floor 1")))
	require.NoError(t, store.Save(sampleScan("3", "Warehouse")))

	warehouse := store.ResultsByLocation("Warehouse")
	require.Len(t, warehouse, 2)
	assert.Equal(t, "3", warehouse[0].ID)
	assert.Equal(t, "1", warehouse[1].ID)

	assert.Empty(t, store.ResultsByLocation("Nowhere"))
}

func TestReportCoversFullLedger(t *testing.T) {
	store := NewScanStoreService(newFakeKV(), storeConfig())

	require.NoError(t, store.Save(sampleScan("1", "Warehouse")))
	require.NoError(t, store.Save(sampleScan("2", "Warehouse")))

	report := store.Report()
	assert.Equal(t, 2, report.TotalScans)
	require.Len(t, report.Locations, 1)
	assert.Equal(t, "Warehouse", report.Locations[0].Location)
	assert.Equal(t, 2, report.Locations[0].Count)
	assert.Len(t, report.DetailedResults, 2)
	assert.False(t, report.GeneratedAt.IsZero())
}
