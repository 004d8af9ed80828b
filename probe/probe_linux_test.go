package probe

import (
	"testing"

	"github.com/c9s/goprocinfo/linux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentFromMemInfo(t *testing.T) {
	tests := []struct {
		name  string
		stats linux.MemInfo
		want  uint64
	}{
		{
			name:  "half available",
			stats: linux.MemInfo{MemTotal: 8000000, MemAvailable: 4000000},
			want:  50,
		},
		{
			name:  "nothing available",
			stats: linux.MemInfo{MemTotal: 8000000, MemFree: 0},
			want:  0,
		},
		{
			name:  "everything available",
			stats: linux.MemInfo{MemTotal: 8000000, MemAvailable: 8000000},
			want:  100,
		},
		{
			name: "old kernel without MemAvailable",
			stats: linux.MemInfo{
				MemTotal: 8000000,
				MemFree:  1000000,
				Buffers:  200000,
				Cached:   1800000,
				Shmem:    100000,
			},
			// MemFree + Buffers + Cached - Shmem = 2900000.
			want: 36,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := percentFromMemInfo(&tt.stats)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPercentFromMemInfoZeroTotal(t *testing.T) {
	_, err := percentFromMemInfo(&linux.MemInfo{})
	assert.Error(t, err)
}

func TestKernelFreeMemoryPercentFromFile(t *testing.T) {
	k := &Kernel{MemInfoPath: "testdata/meminfo"}

	level, err := k.FreeMemoryPercent()
	require.NoError(t, err)
	assert.Equal(t, uint64(50), level)
}

func TestKernelFreeMemoryPercentLive(t *testing.T) {
	level, err := New().FreeMemoryPercent()
	require.NoError(t, err)
	assert.LessOrEqual(t, level, uint64(100))
}

func TestSysinfoPercent(t *testing.T) {
	level, err := sysinfoPercent()
	require.NoError(t, err)
	assert.LessOrEqual(t, level, uint64(100))
}
