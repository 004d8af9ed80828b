// Command memstat prints a one-shot report of the memory subsystem:
// physical-memory breakdown, swap usage and memory pressure.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/vmtools/memstat/memstats"
	"github.com/vmtools/memstat/probe"
	"github.com/vmtools/memstat/report"
)

func main() {
	jsonOut := flag.Bool("json", false, "dump the gathered metrics as JSON")
	flag.Parse()

	if err := run(*jsonOut, os.Stdout); err != nil {
		log.Fatalf("memstat failed: %s", err)
	}
}

func run(jsonOut bool, w io.Writer) error {
	if jsonOut {
		reg := &memstats.Registry{}
		reg.Register("vm", &memstats.VM{})
		reg.Register("swap", &memstats.Swap{})
		reg.Register("pressure", &memstats.Pressure{})
		reg.Register("level", &memstats.Level{Prober: probe.New()})

		return reg.DumpJSON(w)
	}

	vm, err := (&memstats.VM{}).Read()
	if err != nil {
		return err
	}

	swap, err := (&memstats.Swap{}).Read()
	if err != nil {
		return err
	}

	level, err := probe.New().FreeMemoryPercent()
	if err != nil {
		return err
	}

	// PSI is optional; kernels built without it just lose this line.
	pressure, err := (&memstats.Pressure{}).Read()
	if err != nil {
		pressure = nil
	}

	return report.Write(w, &report.Data{
		VM:          vm,
		Swap:        swap,
		Pressure:    pressure,
		FreePercent: level,
	})
}
