package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromString_Empty(t *testing.T) {
	result, err := LoadFromString("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Config != DefaultConfig() {
		t.Errorf("empty config must yield defaults, got %+v", result.Config)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestLoadFromString_PartialOverride(t *testing.T) {
	result, err := LoadFromString(`
[api]
base_url = "https://router.internal:9443"

[display]
history_capacity = 25
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := result.Config
	if cfg.API.BaseURL != "https://router.internal:9443" {
		t.Errorf("base_url not applied: %q", cfg.API.BaseURL)
	}
	if cfg.Display.HistoryCapacity != 25 {
		t.Errorf("history_capacity not applied: %d", cfg.Display.HistoryCapacity)
	}
	// Untouched keys keep their defaults.
	if cfg.Display.WindowDays != DefaultConfig().Display.WindowDays {
		t.Errorf("window_days should keep default, got %d", cfg.Display.WindowDays)
	}
	if cfg.API.TimeoutMS != DefaultConfig().API.TimeoutMS {
		t.Errorf("timeout_ms should keep default, got %d", cfg.API.TimeoutMS)
	}
}

func TestLoadFromString_UnknownKeyWarns(t *testing.T) {
	result, err := LoadFromString(`
[display]
history_capacity = 5

[telemetry]
endpoint = "nope"
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for the unknown [telemetry] section")
	}
	if !strings.Contains(result.Warnings[0], "telemetry") {
		t.Errorf("warning should name the unknown key, got %q", result.Warnings[0])
	}
}

func TestLoadFromString_Validation(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"zero history capacity", "[display]\nhistory_capacity = 0"},
		{"negative window", "[display]\nwindow_days = -1"},
		{"empty base url", `[api]` + "\n" + `base_url = "  "`},
		{"zero retention", "[storage]\nretention_days = 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadFromString(tc.toml); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	result, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if result.Config != DefaultConfig() {
		t.Error("missing file must yield defaults")
	}
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[display]\nexecutions_limit = 250\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	result, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Config.Display.ExecutionsLimit != 250 {
		t.Errorf("expected executions_limit=250, got %d", result.Config.Display.ExecutionsLimit)
	}
}
