package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors the YAML a caller hands to the demo harness to stand up
// a Dispatcher: how many cores, which policy, and (RR only) the quantum
// length the simulator is expected to use between quantum_expired calls.
type Config struct {
	Cores   int    `yaml:"cores"`
	Policy  string `yaml:"policy"`
	Quantum int    `yaml:"quantum"`
}

// defaultConfig mirrors the original config's defaults-on-missing-file
// convention: a single core, FCFS, quantum 2.
func defaultConfig() Config {
	return Config{
		Cores:   1,
		Policy:  "FCFS",
		Quantum: 2,
	}
}

// LoadConfig reads YAML and overrides defaults; empty path = defaults only.
// A missing or unparsable file is not an error here — it falls back to
// defaults, exactly as the original Load does.
func LoadConfig(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Cores <= 0 {
		cfg.Cores = 1
	}
	if cfg.Quantum <= 0 {
		cfg.Quantum = 2
	}
	if cfg.Policy == "" {
		cfg.Policy = "FCFS"
	}

	return cfg
}

// ParsePolicy resolves the configured policy name, falling back to FCFS
// on an unrecognised name rather than failing the whole config load.
func (c Config) ParsePolicy() Policy {
	p, err := ParsePolicy(c.Policy)
	if err != nil {
		return FCFS
	}
	return p
}
