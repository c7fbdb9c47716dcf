package models

import (
	"fmt"
	"time"
)

// ResolvedCodeKind tags how a resolved code was obtained from the raw payload
type ResolvedCodeKind string

const (
	// ResolvedStructured - the payload was a JSON object carrying an asset code field
	ResolvedStructured ResolvedCodeKind = "structured"
	// ResolvedPattern - an alphanumeric token was matched inside the payload
	ResolvedPattern ResolvedCodeKind = "pattern"
	// ResolvedRaw - the payload itself is used verbatim
	ResolvedRaw ResolvedCodeKind = "raw"
)

// ResolvedCode is the outcome of the payload resolution chain. An empty Code
// means resolution failed; callers must skip asset lookup in that case.
type ResolvedCode struct {
	Kind ResolvedCodeKind `json:"kind"`
	Code string           `json:"code"`
}

// DeviceInfo is best-effort metadata extracted from a scanned payload. It is
// advisory only and never authoritative over a recognized asset.
type DeviceInfo struct {
	Type   string `json:"type"`
	Model  string `json:"model,omitempty"`
	Serial string `json:"serial,omitempty"`
	Status string `json:"status,omitempty"`
}

// ScanResult is one decoded scan event in the ledger. Location is never empty
// for a persisted result. Once saved it only changes through an explicit
// replace-by-id.
type ScanResult struct {
	Data       string      `json:"data"`
	Timestamp  time.Time   `json:"timestamp"`
	ID         string      `json:"id"`
	Location   string      `json:"location"`
	DeviceInfo *DeviceInfo `json:"deviceInfo,omitempty"`

	// Enrichment, kept in memory only
	AssetInfo *Asset        `json:"assetInfo,omitempty"`
	Resolved  *ResolvedCode `json:"resolved,omitempty"`
}

// StoredScanResult is the durable form of a ScanResult. Timestamps are
// encoded as ISO-8601 strings; enrichment fields are not persisted.
type StoredScanResult struct {
	Data       string      `json:"data"`
	Timestamp  string      `json:"timestamp"`
	ID         string      `json:"id"`
	Location   string      `json:"location"`
	DeviceInfo *DeviceInfo `json:"deviceInfo,omitempty"`
}

// ToStored converts a ScanResult to its durable form
func (r ScanResult) ToStored() StoredScanResult {
	return StoredScanResult{
		Data:       r.Data,
		Timestamp:  r.Timestamp.Format(time.RFC3339Nano),
		ID:         r.ID,
		Location:   r.Location,
		DeviceInfo: r.DeviceInfo,
	}
}

// ToScanResult decodes the durable form back into a ScanResult. It rejects
// entries that would violate the ledger invariants.
func (s StoredScanResult) ToScanResult() (ScanResult, error) {
	if s.ID == "" {
		return ScanResult{}, fmt.Errorf("stored scan result has no id")
	}
	if s.Location == "" {
		return ScanResult{}, fmt.Errorf("stored scan result %q has no location", s.ID)
	}
	ts, err := time.Parse(time.RFC3339Nano, s.Timestamp)
	if err != nil {
		return ScanResult{}, fmt.Errorf("stored scan result %q has a bad timestamp: %w", s.ID, err)
	}
	return ScanResult{
		Data:       s.Data,
		Timestamp:  ts,
		ID:         s.ID,
		Location:   s.Location,
		DeviceInfo: s.DeviceInfo,
	}, nil
}

// LocationStat is a derived per-location view of the ledger. It is recomputed
// on demand and never persisted.
type LocationStat struct {
	Location        string       `json:"location"`
	Count           int          `json:"count"`
	DistinctDevices []DeviceInfo `json:"distinctDevices"`
	LastScan        time.Time    `json:"lastScan"`
}

// ScanReport is the JSON report produced from the ledger
type ScanReport struct {
	GeneratedAt     time.Time      `json:"generatedAt"`
	TotalScans      int            `json:"totalScans"`
	Locations       []LocationStat `json:"locations"`
	DetailedResults []ScanResult   `json:"detailedResults"`
}
