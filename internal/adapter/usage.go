package adapter

import (
	"math"
)

// Usage reports how much of the assumed storage ceiling is in use.
// UsedBytes sums key and value lengths across the whole namespace.
type Usage struct {
	UsedBytes      int64   `json:"usedBytes"`
	TotalBytes     int64   `json:"totalBytes"`
	AvailableBytes int64   `json:"availableBytes"`
	Percentage     float64 `json:"percentage"`
}

// Usage computes the current usage report. When the backend cannot be
// enumerated the report is all zeros rather than an error.
func (a *Adapter) Usage() Usage {
	keys, err := a.store.Keys()
	if err != nil {
		return Usage{}
	}

	var used int64
	for _, key := range keys {
		value, ok, err := a.store.Get(key)
		if err != nil {
			return Usage{}
		}
		if ok {
			used += int64(len(key) + len(value))
		}
	}

	available := a.quota - used
	if available < 0 {
		available = 0
	}
	pct := float64(used) / float64(a.quota) * 100
	return Usage{
		UsedBytes:      used,
		TotalBytes:     a.quota,
		AvailableBytes: available,
		Percentage:     math.Round(pct*100) / 100,
	}
}
