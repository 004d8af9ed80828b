package memstats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const procPressureMemory = "/proc/pressure/memory"

// PressureLine is one line of PSI output: running averages of the share
// of time tasks were stalled on memory, and the total stall time in
// microseconds.
type PressureLine struct {
	Avg10  float64 `json:"avg10"`
	Avg60  float64 `json:"avg60"`
	Avg300 float64 `json:"avg300"`
	Total  uint64  `json:"total"`
}

// PressureStats is the kernel's memory PSI: "some" counts time when at
// least one task stalled, "full" when all non-idle tasks stalled at once.
type PressureStats struct {
	Some PressureLine `json:"some"`
	Full PressureLine `json:"full"`
}

var _ Gatherer = (*Pressure)(nil)

type Pressure struct {
	// Path overrides the PSI location. Empty means /proc/pressure/memory.
	Path string
}

func (p *Pressure) Gather() (interface{}, error) {
	return p.Read()
}

func (p *Pressure) Read() (*PressureStats, error) {
	path := p.Path
	if path == "" {
		path = procPressureMemory
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("memstats: failed to read memory pressure: %w", err)
	}
	defer f.Close()

	return parsePressure(f)
}

func parsePressure(r io.Reader) (*PressureStats, error) {
	var stats PressureStats
	seen := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 5 {
			return nil, fmt.Errorf("memstats: malformed pressure line: %q", text)
		}

		var line *PressureLine
		switch fields[0] {
		case "some":
			line = &stats.Some
		case "full":
			line = &stats.Full
		default:
			return nil, fmt.Errorf("memstats: unknown pressure line: %q", text)
		}

		if err := parsePressureFields(fields[1:], line); err != nil {
			return nil, fmt.Errorf("memstats: malformed pressure line %q: %w", text, err)
		}
		seen++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("memstats: failed to read memory pressure: %w", err)
	}
	if seen == 0 {
		return nil, errors.New("memstats: empty pressure file")
	}

	return &stats, nil
}

func parsePressureFields(fields []string, line *PressureLine) error {
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("missing '=' in %q", field)
		}

		switch key {
		case "total":
			n, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return err
			}
			line.Total = n
		case "avg10", "avg60", "avg300":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			switch key {
			case "avg10":
				line.Avg10 = f
			case "avg60":
				line.Avg60 = f
			case "avg300":
				line.Avg300 = f
			}
		default:
			return fmt.Errorf("unknown field %q", key)
		}
	}

	return nil
}
