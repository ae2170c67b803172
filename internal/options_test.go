package internal

import "testing"

func TestParseBit(t *testing.T) {
	if v, err := ParseBit("negate", "0"); err != nil || v {
		t.Errorf("ParseBit(0) = %v, %v", v, err)
	}
	if v, err := ParseBit("negate", "1"); err != nil || !v {
		t.Errorf("ParseBit(1) = %v, %v", v, err)
	}
	for _, bad := range []string{"", "2", "true", "01"} {
		if _, err := ParseBit("negate", bad); err == nil {
			t.Errorf("ParseBit(%q): expected error", bad)
		}
	}
}

func TestParseConcurrency(t *testing.T) {
	if n, err := ParseConcurrency("4"); err != nil || n != 4 {
		t.Errorf("ParseConcurrency(4) = %d, %v", n, err)
	}
	for _, bad := range []string{"0", "-1", "x", ""} {
		if _, err := ParseConcurrency(bad); err == nil {
			t.Errorf("ParseConcurrency(%q): expected error", bad)
		}
	}
}

func TestScanConfig_Validate(t *testing.T) {
	cfg := ScanConfig{Concurrency: 1, Pattern: "x"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	cfg.Concurrency = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-positive concurrency")
	}
}
