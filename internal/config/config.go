package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultOutDir    = "out"
	DefaultMemoQuery = "/api/v1/memo?creatorId=1"
)

// MissingError reports a required setting that was supplied nowhere.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required setting %s: pass the flag, set the %s environment variable, or add it to the config file", e.Key, e.Key)
}

type Config struct {
	BaseURL   string
	Token     string
	OutDir    string
	MemoQuery string
}

// Overrides carries flag values; an empty field means "not set".
type Overrides struct {
	URL       string
	Token     string
	OutDir    string
	MemoQuery string
}

type fileCredentials struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

type fileConfig struct {
	Memos fileCredentials `json:"memos"`
}

// Load resolves each setting as flag, then environment, then config file,
// then default. URL and TOKEN have no default and must come from somewhere.
func Load(overrides Overrides) (*Config, error) {
	creds := loadFileCredentials()

	cfg := &Config{
		BaseURL:   resolve(overrides.URL, "URL", creds.URL),
		Token:     resolve(overrides.Token, "TOKEN", creds.Token),
		OutDir:    resolve(overrides.OutDir, "OUT_DIR", DefaultOutDir),
		MemoQuery: resolve(overrides.MemoQuery, "MEMO_QUERY", DefaultMemoQuery),
	}

	if cfg.BaseURL == "" {
		return nil, &MissingError{Key: "URL"}
	}
	if cfg.Token == "" {
		return nil, &MissingError{Key: "TOKEN"}
	}

	return cfg, nil
}

func resolve(override, envKey, fallback string) string {
	if override != "" {
		return override
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}

// loadFileCredentials reads the optional config file. A missing or
// malformed file is treated as empty; required settings are enforced by
// Load after all sources are consulted.
func loadFileCredentials() fileCredentials {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return fileCredentials{}
	}

	configPath := filepath.Join(configDir, "memomd", "config.json")

	file, err := os.Open(configPath)
	if err != nil {
		return fileCredentials{}
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil && info.Mode().Perm() > 0o600 {
		fmt.Fprintf(os.Stderr, "Warning: config file %s has overly permissive permissions (%o), consider chmod 600\n", configPath, info.Mode().Perm())
	}

	var config fileConfig
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config file %s: %v\n", configPath, err)
		return fileCredentials{}
	}

	return config.Memos
}
