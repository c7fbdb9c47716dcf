package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

func statScan(id, location string, ts time.Time, device *models.DeviceInfo) models.ScanResult {
	return models.ScanResult{
		Data:       "payload-" + id,
		Timestamp:  ts,
		ID:         id,
		Location:   location,
		DeviceInfo: device,
	}
}

func TestComputeLocationStatsCountsAndOrder(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	results := []models.ScanResult{
		statScan("1", "Office Floor 1", base, nil),
		statScan("2", "Warehouse", base.Add(time.Minute), nil),
		statScan("3", "Warehouse", base.Add(2*time.Minute), nil),
		statScan("4", "Warehouse", base.Add(3*time.Minute), nil),
		statScan("5", "Office Floor 1", base.Add(4*time.Minute), nil),
	}

	stats := ComputeLocationStats(results)
	require.Len(t, stats, 2)

	// Highest scan count first
	assert.Equal(t, "Warehouse", stats[0].Location)
	assert.Equal(t, 3, stats[0].Count)
	assert.Equal(t, "Office Floor 1", stats[1].Location)
	assert.Equal(t, 2, stats[1].Count)
}

func TestComputeLocationStatsLastScan(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	latest := base.Add(time.Hour)
	results := []models.ScanResult{
		statScan("1", "Warehouse", latest, nil),
		statScan("2", "Warehouse", base, nil),
	}

	stats := ComputeLocationStats(results)
	require.Len(t, stats, 1)
	assert.True(t, stats[0].LastScan.Equal(latest))
}

func TestComputeLocationStatsDedupesDevicesBySerial(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	results := []models.ScanResult{
		statScan("1", "Warehouse", base, &models.DeviceInfo{Type: "Laptop", Serial: "SN-1"}),
		statScan("2", "Warehouse", base, &models.DeviceInfo{Type: "Laptop", Serial: "SN-1"}),
		statScan("3", "Warehouse", base, &models.DeviceInfo{Type: "Printer", Serial: "SN-2"}),
	}

	stats := ComputeLocationStats(results)
	require.Len(t, stats, 1)
	assert.Len(t, stats[0].DistinctDevices, 2)
}

func TestComputeLocationStatsKeepsSeriallessDevices(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	results := []models.ScanResult{
		statScan("1", "Warehouse", base, &models.DeviceInfo{Type: "Device"}),
		statScan("2", "Warehouse", base, &models.DeviceInfo{Type: "Device"}),
	}

	// Without serial numbers nothing proves these are the same device
	stats := ComputeLocationStats(results)
	require.Len(t, stats, 1)
	assert.Len(t, stats[0].DistinctDevices, 2)
}

func TestComputeLocationStatsEmpty(t *testing.T) {
	assert.Empty(t, ComputeLocationStats(nil))
	assert.Empty(t, ComputeLocationStats([]models.ScanResult{}))
}
