package config

import (
	"io"
	"testing"
	"time"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOILBENCH_REYNOLDS", "3e6")
	t.Setenv("FOILBENCH_AIRFOILS", "naca0015,naca23012")
	t.Setenv("FOILBENCH_CASE_TIMEOUT", "45s")
	t.Setenv("FOILBENCH_WORKERS", "8")
	t.Setenv("FOILBENCH_QUIET", "yes")

	cfg, err := ParseConfig("foilbench", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Reynolds != 3e6 {
		t.Errorf("Reynolds = %g, want 3e6", cfg.Reynolds)
	}
	if len(cfg.Airfoils) != 2 || cfg.Airfoils[0] != "naca0015" {
		t.Errorf("Airfoils = %v, want [naca0015 naca23012]", cfg.Airfoils)
	}
	if cfg.CaseTimeout != 45*time.Second {
		t.Errorf("CaseTimeout = %v, want 45s", cfg.CaseTimeout)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if !cfg.Quiet {
		t.Error("expected FOILBENCH_QUIET=yes to set Quiet")
	}
}

// TestEnvOverridesFlagPrecedence verifies that an explicitly set flag wins
// over its environment variable, including the short-form alias.
func TestEnvOverridesFlagPrecedence(t *testing.T) {
	t.Setenv("FOILBENCH_REYNOLDS", "3e6")
	t.Setenv("FOILBENCH_QUIET", "true")

	cfg, err := ParseConfig("foilbench", []string{"-reynolds", "2e5", "-quiet=false"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Reynolds != 2e5 {
		t.Errorf("Reynolds = %g, want flag value 2e5", cfg.Reynolds)
	}
	if cfg.Quiet {
		t.Error("explicit -quiet=false should beat the environment")
	}
}

func TestEnvOverridesIgnoreMalformed(t *testing.T) {
	t.Setenv("FOILBENCH_REYNOLDS", "not-a-number")
	t.Setenv("FOILBENCH_WORKERS", "many")
	t.Setenv("FOILBENCH_TIMEOUT", "soon")

	cfg, err := ParseConfig("foilbench", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Reynolds != DefaultReynolds {
		t.Errorf("Reynolds = %g, want default after malformed override", cfg.Reynolds)
	}
	if cfg.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want default after malformed override", cfg.Workers)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default after malformed override", cfg.Timeout)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}
