package services

import (
	"sort"

	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// ComputeLocationStats derives per-location counters from the scan ledger.
// It is a pure function over the full result set and is recomputed on every
// read; correctness of any future caching must match this recomputation.
//
// Devices are deduplicated by serial number; entries without a serial are
// kept individually since nothing proves they are the same device.
func ComputeLocationStats(results []models.ScanResult) []models.LocationStat {
	byLocation := make(map[string]*models.LocationStat)
	order := make([]string, 0)

	for _, result := range results {
		stat, ok := byLocation[result.Location]
		if !ok {
			stat = &models.LocationStat{
				Location:        result.Location,
				DistinctDevices: []models.DeviceInfo{},
				LastScan:        result.Timestamp,
			}
			byLocation[result.Location] = stat
			order = append(order, result.Location)
		}

		stat.Count++

		if result.DeviceInfo != nil {
			duplicate := false
			if result.DeviceInfo.Serial != "" {
				for _, d := range stat.DistinctDevices {
					if d.Serial == result.DeviceInfo.Serial {
						duplicate = true
						break
					}
				}
			}
			if !duplicate {
				stat.DistinctDevices = append(stat.DistinctDevices, *result.DeviceInfo)
			}
		}

		if result.Timestamp.After(stat.LastScan) {
			stat.LastScan = result.Timestamp
		}
	}

	stats := make([]models.LocationStat, 0, len(order))
	for _, location := range order {
		stats = append(stats, *byLocation[location])
	}

	// Sort by scan count descending; ties keep first-seen order
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return stats
}
