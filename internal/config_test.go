package internal

import (
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 3000}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 3000 should pass: %v", err)
	}
	if got := cfg.Address(); got != ":3000" {
		t.Errorf("address = %q, want :3000", got)
	}
}

func TestContentConfig_RequiredDirs(t *testing.T) {
	cfg := ContentConfig{
		DataDir:    "./data",
		StateDir:   "./state",
		SiteDir:    "./public",
		OutputPath: "./public/index.html",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("complete content config should pass: %v", err)
	}

	// Template path stays optional; the embedded template covers it.
	cfg.TemplatePath = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty template path should pass: %v", err)
	}

	cfg.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing data dir should fail validation")
	}
}

func TestJournalConfig_RequiredPath(t *testing.T) {
	cfg := JournalConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("missing journal path should fail validation")
	}
}

func TestFullConfig_ContentValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Content.OutputPath = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch content error")
	}
}
