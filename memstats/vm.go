package memstats

import (
	"fmt"

	"github.com/c9s/goprocinfo/linux"
)

const procMemInfo = "/proc/meminfo"

// meminfo values are reported in kB.
const kib = 1024

// VMStats is the physical-memory breakdown, all values in bytes.
type VMStats struct {
	Total       uint64 `json:"total"`
	Free        uint64 `json:"free"`
	Available   uint64 `json:"available"`
	Active      uint64 `json:"active"`
	Inactive    uint64 `json:"inactive"`
	Buffers     uint64 `json:"buffers"`
	Cached      uint64 `json:"cached"`
	SwapCached  uint64 `json:"swap_cached"`
	Slab        uint64 `json:"slab"`
	Unevictable uint64 `json:"unevictable"`
	Anonymous   uint64 `json:"anonymous"`
	Mapped      uint64 `json:"mapped"`
	Shared      uint64 `json:"shared"`
	Dirty       uint64 `json:"dirty"`
	Writeback   uint64 `json:"writeback"`
}

var _ Gatherer = (*VM)(nil)

type VM struct {
	// MemInfoPath overrides the meminfo location. Empty means /proc/meminfo.
	MemInfoPath string
}

func (v *VM) Gather() (interface{}, error) {
	return v.Read()
}

func (v *VM) Read() (*VMStats, error) {
	path := v.MemInfoPath
	if path == "" {
		path = procMemInfo
	}

	stats, err := linux.ReadMemInfo(path)
	if err != nil {
		return nil, fmt.Errorf("memstats: failed to read proc meminfo: %w", err)
	}

	return &VMStats{
		Total:       stats.MemTotal * kib,
		Free:        stats.MemFree * kib,
		Available:   stats.MemAvailable * kib,
		Active:      stats.Active * kib,
		Inactive:    stats.Inactive * kib,
		Buffers:     stats.Buffers * kib,
		Cached:      stats.Cached * kib,
		SwapCached:  stats.SwapCached * kib,
		Slab:        stats.Slab * kib,
		Unevictable: stats.Unevictable * kib,
		Anonymous:   stats.AnonPages * kib,
		Mapped:      stats.Mapped * kib,
		Shared:      stats.Shmem * kib,
		Dirty:       stats.Dirty * kib,
		Writeback:   stats.Writeback * kib,
	}, nil
}
