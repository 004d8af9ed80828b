package probe

import (
	"errors"
	"fmt"

	"github.com/c9s/goprocinfo/linux"
	"golang.org/x/sys/unix"
)

const procMemInfo = "/proc/meminfo"

var _ Prober = (*Kernel)(nil)

// Kernel asks the running kernel for the free memory level. It prefers
// /proc/meminfo and falls back to sysinfo(2) when /proc is not mounted.
type Kernel struct {
	// MemInfoPath overrides the meminfo location. Empty means /proc/meminfo.
	MemInfoPath string
}

func New() *Kernel {
	return &Kernel{}
}

func (k *Kernel) FreeMemoryPercent() (uint64, error) {
	path := k.MemInfoPath
	if path == "" {
		path = procMemInfo
	}

	stats, err := linux.ReadMemInfo(path)
	if err != nil {
		return sysinfoPercent()
	}

	return percentFromMemInfo(stats)
}

func percentFromMemInfo(stats *linux.MemInfo) (uint64, error) {
	if stats.MemTotal == 0 {
		return 0, errors.New("probe: meminfo reports zero total memory")
	}

	avail := stats.MemAvailable
	if avail == 0 {
		// MemAvailable is missing on kernels before 3.14.
		avail = stats.MemFree + stats.Buffers + stats.Cached
		if stats.Shmem < avail {
			avail -= stats.Shmem
		}
	}

	return avail * 100 / stats.MemTotal, nil
}

func sysinfoPercent() (uint64, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, fmt.Errorf("probe: sysinfo failed: %w", err)
	}

	total := uint64(si.Totalram) * uint64(si.Unit)
	if total == 0 {
		return 0, errors.New("probe: sysinfo reports zero total memory")
	}
	free := (uint64(si.Freeram) + uint64(si.Bufferram)) * uint64(si.Unit)

	return free * 100 / total, nil
}
