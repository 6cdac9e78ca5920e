package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.MaxResults != 24 {
		t.Errorf("expected max_results 24, got %d", cfg.Server.MaxResults)
	}
	if cfg.Server.DefaultTolerance != 3 || cfg.Server.DefaultLengthTolerance != 2 {
		t.Errorf("unexpected server tolerances: %+v", cfg.Server)
	}
	if cfg.Dict.Path != "" || cfg.Dict.AllowShorter {
		t.Errorf("unexpected dict defaults: %+v", cfg.Dict)
	}
	if cfg.CLI.DefaultLimit != 10 {
		t.Errorf("expected cli default_limit 10, got %d", cfg.CLI.DefaultLimit)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[server]
max_results = 8
default_tolerance = 2

[dict]
path = "/usr/share/dict/words"
allow_shorter = true

[cli]
default_limit = 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.MaxResults != 8 || cfg.Server.DefaultTolerance != 2 {
		t.Errorf("server section not applied: %+v", cfg.Server)
	}
	if cfg.Dict.Path != "/usr/share/dict/words" || !cfg.Dict.AllowShorter {
		t.Errorf("dict section not applied: %+v", cfg.Dict)
	}
	if cfg.CLI.DefaultLimit != 5 {
		t.Errorf("cli section not applied: %+v", cfg.CLI)
	}
	// fields absent from the file keep their defaults
	if cfg.Server.DefaultLengthTolerance != 2 {
		t.Errorf("missing field should keep default, got %d", cfg.Server.DefaultLengthTolerance)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if cfg.Server.MaxResults != DefaultConfig().Server.MaxResults {
		t.Errorf("fresh config should carry defaults, got %+v", cfg.Server)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	// a second init reads the file it just wrote
	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("re-init failed: %v", err)
	}
	if again.Server.MaxResults != cfg.Server.MaxResults {
		t.Errorf("reloaded config diverged: %+v vs %+v", again.Server, cfg.Server)
	}
}

// a config with wrongly typed values still yields a usable config: keys
// with the right type are kept, the rest falls back to defaults
func TestPartialParseRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[server]
max_results = 12

[dict]
path = 12345
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load should recover, got error: %v", err)
	}
	if cfg.Server.MaxResults != 12 {
		t.Errorf("valid server value should survive, got %d", cfg.Server.MaxResults)
	}
	if cfg.Dict.Path != "" {
		t.Errorf("mistyped dict.path should fall back to default, got %q", cfg.Dict.Path)
	}
	if cfg.CLI.DefaultLimit != 10 {
		t.Errorf("untouched sections should keep defaults, got %+v", cfg.CLI)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Server.MaxResults = 42
	cfg.Dict.AllowShorter = true
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Server.MaxResults != 42 || !loaded.Dict.AllowShorter {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
