package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// defaultLocations seeds the saved-locations list on first run
var defaultLocations = []string{"Office Floor 1", "Office Floor 2", "Warehouse", "Conference Room A"}

// InterfaceScanStoreService owns the scan ledger: the ordered, newest-first
// collection of confirmed scan results, mirrored to durable KV storage on
// every mutation so no scan is lost on restart.
type InterfaceScanStoreService interface {
	Save(result models.ScanResult) error
	Results() []models.ScanResult
	ResultsByLocation(location string) []models.ScanResult
	ClearAll() error
	LoadPersisted() error
	LocationStats() []models.LocationStat
	Report() models.ScanReport
	Locations() []string
	AddLocation(location string) error
}

// ScanStoreService keeps the ledger in memory and writes through to the KV
// storage. All mutations go through the mutex; Results returns copies.
type ScanStoreService struct {
	storage      InterfaceKVStorage
	ledgerKey    string
	locationsKey string

	mu        sync.RWMutex
	results   []models.ScanResult
	locations []string
}

// NewScanStoreService creates a new scan store backed by the given storage
func NewScanStoreService(storage InterfaceKVStorage, cfg *config.Config) *ScanStoreService {
	return &ScanStoreService{
		storage:      storage,
		ledgerKey:    cfg.ScanLedgerKey,
		locationsKey: cfg.ScanLocationsKey,
		locations:    append([]string(nil), defaultLocations...),
	}
}

// Save appends a scan result to the ledger, or replaces the entry with the
// same id when the operator edited an existing scan. New entries go to the
// head so the ledger stays newest-first. The write-through to storage happens
// before Save returns.
func (s *ScanStoreService) Save(result models.ScanResult) error {
	if result.Location == "" {
		return fmt.Errorf("scan result %q has no location", result.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.results {
		if s.results[i].ID == result.ID {
			s.results[i] = result
			replaced = true
			break
		}
	}
	if !replaced {
		s.results = append([]models.ScanResult{result}, s.results...)
	}

	return s.persistLocked()
}

// Results returns a copy of the ledger, newest first
func (s *ScanStoreService) Results() []models.ScanResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ScanResult, len(s.results))
	copy(out, s.results)
	return out
}

// ResultsByLocation returns the ledger entries recorded at a location
func (s *ScanStoreService) ResultsByLocation(location string) []models.ScanResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ScanResult, 0)
	for _, r := range s.results {
		if r.Location == location {
			out = append(out, r)
		}
	}
	return out
}

// ClearAll empties the ledger and its durable storage. Irreversible; callers
// must require operator confirmation before invoking it.
func (s *ScanStoreService) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = nil
	return s.storage.Remove(s.ledgerKey)
}

// LoadPersisted rehydrates the ledger and saved locations from storage.
// Malformed entries are skipped one by one; a bad record never fails the
// whole load.
func (s *ScanStoreService) LoadPersisted() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.storage.GetString(s.ledgerKey)
	if err != nil {
		return fmt.Errorf("failed to load persisted scans: %w", err)
	}
	if ok {
		var entries []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			config.Warning("persisted scan ledger is not a JSON array, starting empty: %v", err)
		} else {
			results := make([]models.ScanResult, 0, len(entries))
			for _, entry := range entries {
				var stored models.StoredScanResult
				if err := json.Unmarshal(entry, &stored); err != nil {
					config.Warning("skipping malformed persisted scan: %v", err)
					continue
				}
				result, err := stored.ToScanResult()
				if err != nil {
					config.Warning("skipping malformed persisted scan: %v", err)
					continue
				}
				results = append(results, result)
			}
			s.results = results
		}
	}

	rawLocations, ok, err := s.storage.GetString(s.locationsKey)
	if err != nil {
		return fmt.Errorf("failed to load saved locations: %w", err)
	}
	if ok {
		var locations []string
		if err := json.Unmarshal([]byte(rawLocations), &locations); err != nil {
			config.Warning("saved locations list is malformed, keeping defaults: %v", err)
		} else {
			s.locations = locations
		}
	}

	return nil
}

// LocationStats recomputes the per-location view from the current ledger
func (s *ScanStoreService) LocationStats() []models.LocationStat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ComputeLocationStats(s.results)
}

// Report builds the JSON scan report from the current ledger
func (s *ScanStoreService) Report() models.ScanReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	detailed := make([]models.ScanResult, len(s.results))
	copy(detailed, s.results)

	return models.ScanReport{
		GeneratedAt:     time.Now(),
		TotalScans:      len(s.results),
		Locations:       ComputeLocationStats(s.results),
		DetailedResults: detailed,
	}
}

// Locations returns the saved scanning locations
func (s *ScanStoreService) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.locations))
	copy(out, s.locations)
	return out
}

// AddLocation appends a new location to the saved list and persists it.
// Duplicates and blank names are ignored.
func (s *ScanStoreService) AddLocation(location string) error {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return fmt.Errorf("location must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.locations {
		if l == trimmed {
			return nil
		}
	}
	s.locations = append(s.locations, trimmed)

	data, err := json.Marshal(s.locations)
	if err != nil {
		return err
	}
	return s.storage.SetString(s.locationsKey, string(data))
}

// persistLocked serializes the ledger in its durable form and writes it
// through to storage. Callers must hold the mutex.
func (s *ScanStoreService) persistLocked() error {
	stored := make([]models.StoredScanResult, 0, len(s.results))
	for _, r := range s.results {
		stored = append(stored, r.ToStored())
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to serialize scan ledger: %w", err)
	}
	if err := s.storage.SetString(s.ledgerKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist scan ledger: %w", err)
	}
	return nil
}
