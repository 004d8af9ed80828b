package memstats

import (
	"fmt"

	"github.com/c9s/goprocinfo/linux"
)

// SwapStats is the swap usage, all values in bytes.
type SwapStats struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
	Free  uint64 `json:"free"`
}

var _ Gatherer = (*Swap)(nil)

type Swap struct {
	// MemInfoPath overrides the meminfo location. Empty means /proc/meminfo.
	MemInfoPath string
}

func (s *Swap) Gather() (interface{}, error) {
	return s.Read()
}

func (s *Swap) Read() (*SwapStats, error) {
	path := s.MemInfoPath
	if path == "" {
		path = procMemInfo
	}

	stats, err := linux.ReadMemInfo(path)
	if err != nil {
		return nil, fmt.Errorf("memstats: failed to read proc meminfo: %w", err)
	}

	total := stats.SwapTotal * kib
	free := stats.SwapFree * kib
	var used uint64
	if free < total {
		used = total - free
	}

	return &SwapStats{
		Total: total,
		Used:  used,
		Free:  free,
	}, nil
}
