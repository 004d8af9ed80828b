package memstats

import (
	"errors"
	"fmt"

	"github.com/vmtools/memstat/probe"
)

// LevelStats is the kernel's free-memory level.
type LevelStats struct {
	FreePercent uint64 `json:"free_percent"`
}

var _ Gatherer = (*Level)(nil)

type Level struct {
	Prober probe.Prober
}

func (l *Level) Gather() (interface{}, error) {
	if l.Prober == nil {
		return nil, errors.New("memstats: no prober configured")
	}

	percent, err := l.Prober.FreeMemoryPercent()
	if err != nil {
		return nil, fmt.Errorf("memstats: failed to query free memory level: %w", err)
	}

	return &LevelStats{
		FreePercent: percent,
	}, nil
}
