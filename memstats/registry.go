// Package memstats gathers one-shot snapshots of the Linux memory
// subsystem: the meminfo breakdown, swap usage, PSI memory pressure and
// the kernel's free-memory level.
package memstats

import (
	"encoding/json"
	"fmt"
	"io"
)

// Gatherer reads one group of memory metrics from the kernel.
type Gatherer interface {
	Gather() (interface{}, error)
}

type JSONError struct {
	Err error
}

func (e JSONError) MarshalJSON() ([]byte, error) {
	if e.Err == nil {
		return []byte("null"), nil
	}

	s := e.Err.Error()

	return json.Marshal(s)
}

type Result struct {
	Success interface{} `json:"success"`
	Error   JSONError   `json:"error"`
}

func (r Result) Err() error {
	return r.Error.Err
}

// Registry holds named gatherers and runs each exactly once per Collect.
type Registry struct {
	names     []string
	gatherers map[string]Gatherer
}

func (r *Registry) Register(name string, gatherer Gatherer) {
	if r.gatherers == nil {
		r.gatherers = make(map[string]Gatherer)
	}

	if _, ok := r.gatherers[name]; ok {
		panic(fmt.Errorf("memstats: gatherer with name '%s' already registered", name))
	}

	r.gatherers[name] = gatherer
	r.names = append(r.names, name)
}

func (r *Registry) Collect() map[string]Result {
	results := make(map[string]Result, len(r.gatherers))

	for _, name := range r.names {
		res, err := r.gatherers[name].Gather()
		if err != nil {
			results[name] = Result{
				Error: JSONError{
					Err: err,
				},
			}
		} else {
			results[name] = Result{
				Success: res,
			}
		}
	}

	return results
}

func (r *Registry) DumpJSON(w io.Writer) error {
	result := struct {
		Gatherers map[string]Result `json:"gatherers"`
	}{
		Gatherers: r.Collect(),
	}

	if err := json.NewEncoder(w).Encode(&result); err != nil {
		return fmt.Errorf("memstats: failed to encode json: %w", err)
	}

	return nil
}
