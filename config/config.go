// Package config loads the run configuration and the Reddit credentials.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the run configuration for one collection batch.
type Config struct {
	Topics          []string `yaml:"topics"`
	Subreddits      []string `yaml:"subreddits"`
	PostLimit       int      `yaml:"post_limit"`
	DataDir         string   `yaml:"data_dir"`
	CredentialsFile string   `yaml:"credentials_file"`
}

// Default returns the built-in run configuration.
func Default() Config {
	return Config{
		Topics: []string{
			"Xbox Game Pass",
			"PlayStation Plus (PSN)",
			"Nintendo Switch Online",
		},
		Subreddits:      []string{"gaming", "xboxone", "PS5", "NintendoSwitch", "playstation"},
		PostLimit:       100,
		DataDir:         "data",
		CredentialsFile: "credentials.txt",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("[Config] failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("[Config] failed to parse %s: %w", path, err)
	}

	if cfg.PostLimit <= 0 {
		return Config{}, fmt.Errorf("[Config] post_limit must be positive in %s", path)
	}
	if len(cfg.Subreddits) == 0 {
		return Config{}, fmt.Errorf("[Config] at least one subreddit is required in %s", path)
	}

	return cfg, nil
}

// Credentials holds the four Reddit script-app secrets.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}

// LoadCredentials reads the credentials file: one value per line, in order
// client id, client secret, username, password. Only the first four lines
// are used.
func LoadCredentials(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("[Config] failed to read credentials file %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	if len(lines) < 4 {
		return Credentials{}, fmt.Errorf("[Config] credentials file %s must have 4 lines: client id, client secret, username, password", path)
	}

	creds := Credentials{
		ClientID:     lines[0],
		ClientSecret: lines[1],
		Username:     lines[2],
		Password:     lines[3],
	}
	if creds.ClientID == "" || creds.ClientSecret == "" || creds.Username == "" || creds.Password == "" {
		return Credentials{}, fmt.Errorf("[Config] credentials file %s has empty values", path)
	}

	return creds, nil
}
