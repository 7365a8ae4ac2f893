package ticktick

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Config holds the OAuth credentials cmd/tt keeps between runs.
type Config struct {
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
	ExpiresAt    int64  `yaml:"expires_at"`
}

// ConfigPath is where credentials live, under the user's configuration directory.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	return filepath.Join(dir, "ticktick-cli", "config.yaml"), nil
}

// LoadConfig reads stored credentials. A missing file is not an error; it yields a nil config, meaning
// not authenticated.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(b, &config); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &config, nil
}

// SaveConfig writes credentials atomically, with owner-only permissions since the file holds tokens.
func SaveConfig(path string, config *Config) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(b)); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// ClearConfig removes stored credentials; clearing when none exist is not an error.
func ClearConfig(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
