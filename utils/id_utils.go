package utils

import (
	"strconv"
	"sync"
	"time"
)

var (
	scanIDMu   sync.Mutex
	lastScanID int64
)

// NewScanID returns a time-based identifier for a scan event. Millisecond
// timestamps are monotonic enough for ordering and display; the counter
// guards against two decodes landing in the same millisecond.
func NewScanID() string {
	scanIDMu.Lock()
	defer scanIDMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastScanID {
		id = lastScanID + 1
	}
	lastScanID = id
	return strconv.FormatInt(id, 10)
}
