// Command vmmetrics asks the kernel for its free memory level and prints
// it as a percentage.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vmtools/memstat/probe"
)

func main() {
	os.Exit(run(probe.New(), os.Stdout, os.Stderr))
}

func run(p probe.Prober, stdout, stderr io.Writer) int {
	level, err := p.FreeMemoryPercent()
	if err != nil {
		fmt.Fprintf(stderr, "free memory query failed: %s\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Free memory percent: %d\n", level)

	return 0
}
