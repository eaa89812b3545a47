//go:build !wasm

package config

import (
	"testing"
	"time"

	"github.com/vcrobe/siteheader/header"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Source != header.DefaultSource {
		t.Errorf("Expected source %q, got %q", header.DefaultSource, cfg.Source)
	}
	if cfg.PlaceholderID != header.PlaceholderID {
		t.Errorf("Expected placeholder %q, got %q", header.PlaceholderID, cfg.PlaceholderID)
	}
	if cfg.Breakpoint != header.DefaultBreakpoint {
		t.Errorf("Expected breakpoint %d, got %d", header.DefaultBreakpoint, cfg.Breakpoint)
	}
	if cfg.Fallback {
		t.Error("Expected fallback off by default")
	}
	if cfg.Brand != header.DefaultBrand {
		t.Errorf("Expected brand %q, got %q", header.DefaultBrand, cfg.Brand)
	}
	if cfg.FetchTimeout != 0 {
		t.Errorf("Expected no fetch timeout, got %s", cfg.FetchTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SITEHEADER_SOURCE", "partials/header.html")
	t.Setenv("SITEHEADER_BREAKPOINT", "1024")
	t.Setenv("SITEHEADER_FALLBACK", "true")
	t.Setenv("SITEHEADER_FETCH_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Source != "partials/header.html" {
		t.Errorf("Expected overridden source, got %q", cfg.Source)
	}
	if cfg.Breakpoint != 1024 {
		t.Errorf("Expected breakpoint 1024, got %d", cfg.Breakpoint)
	}
	if !cfg.Fallback {
		t.Error("Expected fallback on")
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %s", cfg.FetchTimeout)
	}

	l := cfg.Loader(nil)
	if l.Source != cfg.Source || l.Timeout != cfg.FetchTimeout || !l.Fallback {
		t.Errorf("Loader does not reflect config: %+v", l)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SITEHEADER_BREAKPOINT", "wide")
	if _, err := Load(); err == nil {
		t.Error("Expected an error for a non-numeric breakpoint")
	}

	t.Setenv("SITEHEADER_BREAKPOINT", "0")
	if _, err := Load(); err == nil {
		t.Error("Expected an error for a zero breakpoint")
	}
}
