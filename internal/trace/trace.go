// Package trace implements the demo harness that plays a small YAML
// trace of job arrivals through a sched.Dispatcher exactly the way the
// out-of-scope simulator would: by calling the public §6 surface
// (NewJob / JobFinished / QuantumExpired / the Avg* accessors) plus the
// read-only CoreJob accessor, and deriving completion and quantum-expiry
// events itself, since nothing in the dispatcher's contract tells a
// caller those times in advance.
package trace

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Arrival is one job-arrival row of a trace file.
type Arrival struct {
	ID       int `yaml:"id"`
	Time     int `yaml:"time"`
	Length   int `yaml:"length"`
	Priority int `yaml:"priority"`
}

// File is the on-disk shape of a trace: just a list of arrivals. The
// simulator proper never goes through this format — it is purely a
// convenience for local smoke-testing via cmd/coretrace.
type File struct {
	Arrivals []Arrival `yaml:"arrivals"`
}

// Load reads a trace file from path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	return f, nil
}
