package internal

import (
	"fmt"
	"strconv"
)

// ScanConfig - scan parameters handed over by the hook runner.
// Immutable once validated; shared read-only by all workers.
type ScanConfig struct {
	IgnoreCase  bool
	Multiline   bool
	Negate      bool
	Concurrency int
	Pattern     string
}

// Validate checks invariants.
func (c *ScanConfig) Validate() error {
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be a positive integer, got %d", c.Concurrency)
	}
	return nil
}

// ParseBit parses the runner's "0"/"1" flag scalars.
func ParseBit(name, s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("%s must be 0 or 1, got %q", name, s)
}

// ParseConcurrency parses the worker count scalar.
func ParseConcurrency(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("concurrency must be an integer, got %q", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("concurrency must be positive, got %d", n)
	}
	return n, nil
}
