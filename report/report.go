// Package report renders a gathered memory snapshot as a human-readable
// text report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vmtools/memstat/memstats"
)

// Size column layout: the longest size is xxxx.xx.
const (
	sizeWidth = 7
	sizeDec   = 2
)

// Data is everything one report needs. Pressure may be nil when the
// kernel has no PSI support.
type Data struct {
	VM          *memstats.VMStats
	Swap        *memstats.SwapStats
	Pressure    *memstats.PressureStats
	FreePercent uint64
}

func Write(w io.Writer, d *Data) error {
	if _, err := io.WriteString(w, Render(d)); err != nil {
		return fmt.Errorf("report: failed to write report: %w", err)
	}

	return nil
}

func Render(d *Data) string {
	var b strings.Builder

	writePhysical(&b, d.VM)
	b.WriteString("\n")
	writeSwap(&b, d.Swap)
	b.WriteString("\n")
	writeAdditional(&b, d)

	return b.String()
}

func writePhysical(b *strings.Builder, vm *memstats.VMStats) {
	const labelWidth = 12

	dashes := rule("Breakdown of physical memory:", labelWidth)
	b.WriteString("Breakdown of physical memory:\n")
	b.WriteString(dashes)

	writeSize(b, labelWidth, "Active", vm.Active)
	writeSize(b, labelWidth, "Inactive", vm.Inactive)
	writeSize(b, labelWidth, "Free", vm.Free)
	writeSize(b, labelWidth, "Buffers", vm.Buffers)
	fmt.Fprintf(b, "%*s:%s (Swap cached:%s)\n", labelWidth, "Cached", prettySize(vm.Cached), prettySize(vm.SwapCached))
	writeSize(b, labelWidth, "Slab", vm.Slab)
	writeSize(b, labelWidth, "Unevictable", vm.Unevictable)

	b.WriteString(dashes)
	writeSize(b, labelWidth, "Total", vm.Total)
}

func writeSwap(b *strings.Builder, swap *memstats.SwapStats) {
	const labelWidth = 5

	dashes := rule("Swap usage:", labelWidth)
	b.WriteString("Swap usage:\n")
	b.WriteString(dashes)

	writeSize(b, labelWidth, "Used", swap.Used)
	writeSize(b, labelWidth, "Free", swap.Free)

	b.WriteString(dashes)
	writeSize(b, labelWidth, "Total", swap.Total)
}

func writeAdditional(b *strings.Builder, d *Data) {
	const labelWidth = 25

	b.WriteString("Additional stats:\n")
	b.WriteString(rule("Additional stats:", labelWidth))

	vm := d.VM
	writeSize(b, labelWidth, "Application memory", vm.Anonymous)
	writeSize(b, labelWidth, "Cached files", vm.Cached+vm.Buffers)
	writeSize(b, labelWidth, "Shared memory", vm.Shared)
	writeSize(b, labelWidth, "Dirty pages", vm.Dirty+vm.Writeback)
	fmt.Fprintf(b, "%*s:%s (%d %%)\n", labelWidth, "Available memory", prettySize(vm.Available), d.FreePercent)

	var pressure uint64
	if d.FreePercent < 100 {
		pressure = 100 - d.FreePercent
	}
	if d.Pressure != nil {
		fmt.Fprintf(b, "%*s:%*d %% (some avg10 %.2f, full avg10 %.2f)\n",
			labelWidth, "Memory pressure", sizeWidth, pressure, d.Pressure.Some.Avg10, d.Pressure.Full.Avg10)
	} else {
		fmt.Fprintf(b, "%*s:%*d %% (psi unavailable)\n", labelWidth, "Memory pressure", sizeWidth, pressure)
	}
}

// rule covers the wider of the heading and the label + size columns;
// the 4 accounts for ':' and ' GB'.
func rule(heading string, labelWidth int) string {
	n := labelWidth + sizeWidth + 4
	if len(heading) > n {
		n = len(heading)
	}

	return strings.Repeat("-", n) + "\n"
}

func writeSize(b *strings.Builder, labelWidth int, label string, size uint64) {
	fmt.Fprintf(b, "%*s:%s\n", labelWidth, label, prettySize(size))
}

func prettySize(size uint64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)

	switch {
	case size >= gb:
		return fmt.Sprintf("%*.*f GB", sizeWidth, sizeDec, float64(size)/gb)
	case size >= mb:
		return fmt.Sprintf("%*.*f MB", sizeWidth, sizeDec, float64(size)/mb)
	case size >= kb:
		return fmt.Sprintf("%*.*f KB", sizeWidth, sizeDec, float64(size)/kb)
	}

	return fmt.Sprintf("%*d B", sizeWidth, size)
}
