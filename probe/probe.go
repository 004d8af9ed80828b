// Package probe queries the kernel for its view of how much memory is
// free. The platform-specific query lives behind Prober so everything
// above it can be tested against a stub.
package probe

// Prober reports the kernel's estimate of free memory as an integer
// percentage of total memory. The value is passed through as the kernel
// reports it, without clamping or interpretation.
type Prober interface {
	FreeMemoryPercent() (uint64, error)
}
