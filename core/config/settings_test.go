package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.jsonc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing settings file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "nope.jsonc"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if s != Defaults() {
			t.Errorf("expected defaults, got %+v", s)
		}
	})

	t.Run("Comments and trailing commas are tolerated", func(t *testing.T) {
		path := writeSettings(t, `{
			// external IP lookup
			"stun_server": "stun.example.org:3478",
			"window_width": 900, // wide
			"window_height": 600, // trailing comma next
		}`)

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if s.STUNServer != "stun.example.org:3478" {
			t.Errorf("stun_server not applied: %+v", s)
		}
		if s.WindowWidth != 900 || s.WindowHeight != 600 {
			t.Errorf("window size not applied: %+v", s)
		}
	})

	t.Run("Absent fields keep defaults", func(t *testing.T) {
		path := writeSettings(t, `{"log_level": "verbose"}`)

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if s.LogLevel != "verbose" {
			t.Errorf("log_level not applied: %+v", s)
		}
		if s.SocksProbe != Defaults().SocksProbe {
			t.Errorf("absent field should keep its default: %+v", s)
		}
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		path := writeSettings(t, `{"stun_server": `)
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})
}
