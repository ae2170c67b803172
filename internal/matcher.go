package internal

import (
	"fmt"
	"regexp"
)

// CompilePattern builds the shared matcher from the raw pattern and flags.
// Case-insensitivity is a regexp flag so it also covers classes and
// alternations; multiline combines dot-matches-newline with line anchors.
// The compiled regexp is safe for concurrent use, one instance serves
// every worker.
func CompilePattern(cfg ScanConfig) (*regexp.Regexp, error) {
	expr := cfg.Pattern
	if cfg.Multiline {
		expr = "(?ms)" + expr
	}
	if cfg.IgnoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", cfg.Pattern, err)
	}
	return re, nil
}
