package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// clearSources isolates a test from the real environment and any config
// file of the developer running the suite.
func clearSources(t *testing.T) {
	t.Helper()
	t.Setenv("URL", "")
	t.Setenv("TOKEN", "")
	t.Setenv("OUT_DIR", "")
	t.Setenv("MEMO_QUERY", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearSources(t)
	t.Setenv("URL", "https://memos.example.com")
	t.Setenv("TOKEN", "secret")

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://memos.example.com" || cfg.Token != "secret" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.OutDir != DefaultOutDir {
		t.Errorf("expected default out dir, got %s", cfg.OutDir)
	}
	if cfg.MemoQuery != DefaultMemoQuery {
		t.Errorf("expected default memo query, got %s", cfg.MemoQuery)
	}
}

func TestLoadMissingURL(t *testing.T) {
	clearSources(t)
	t.Setenv("TOKEN", "secret")

	_, err := Load(Overrides{})
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingError, got %v", err)
	}
	if missing.Key != "URL" {
		t.Errorf("expected missing URL, got %s", missing.Key)
	}
}

func TestLoadMissingToken(t *testing.T) {
	clearSources(t)
	t.Setenv("URL", "https://memos.example.com")

	_, err := Load(Overrides{})
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingError, got %v", err)
	}
	if missing.Key != "TOKEN" {
		t.Errorf("expected missing TOKEN, got %s", missing.Key)
	}
}

func TestLoadFlagOverridesEnvironment(t *testing.T) {
	clearSources(t)
	t.Setenv("URL", "https://env.example.com")
	t.Setenv("TOKEN", "env-token")
	t.Setenv("OUT_DIR", "env-out")

	cfg, err := Load(Overrides{URL: "https://flag.example.com", OutDir: "flag-out"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://flag.example.com" {
		t.Errorf("expected flag URL to win, got %s", cfg.BaseURL)
	}
	if cfg.OutDir != "flag-out" {
		t.Errorf("expected flag out dir to win, got %s", cfg.OutDir)
	}
	if cfg.Token != "env-token" {
		t.Errorf("expected env token, got %s", cfg.Token)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	clearSources(t)

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "memomd")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	contents := `{"memos": {"url": "https://file.example.com", "token": "file-token"}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://file.example.com" || cfg.Token != "file-token" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadEnvironmentOverridesConfigFile(t *testing.T) {
	clearSources(t)

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "memomd")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	contents := `{"memos": {"url": "https://file.example.com", "token": "file-token"}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("URL", "https://env.example.com")

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("expected env URL to win, got %s", cfg.BaseURL)
	}
	if cfg.Token != "file-token" {
		t.Errorf("expected file token, got %s", cfg.Token)
	}
}
