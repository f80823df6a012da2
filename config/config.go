// Package config loads and saves the CLI's persisted defaults: the
// knobs hide/reveal fall back to when a flag is omitted. Grounded on
// wqim-centi's config/config.go, trimmed to this project's domain and
// stripped of its at-rest encryption — nothing in Defaults is a secret.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"stegocore/internal/cryptoprim"
)

/*
 * Defaults holds the knobs hide/reveal fall back to when a caller's
 * options don't override them.
 */
type Defaults struct {
	PBKDF2Iterations     uint32   `yaml:"pbkdf2_iterations"`
	Depth                int      `yaml:"default_depth"`
	UseAlpha             bool     `yaml:"default_use_alpha"`
	Compress             bool     `yaml:"default_compress"`
	EmojiTheme           string   `yaml:"default_emoji_theme"`
	CustomEmojiGraphemes []string `yaml:"custom_emoji_graphemes"`
	LogLevel             string   `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults a fresh install starts
// from, before any config file is loaded.
func DefaultConfig() Defaults {
	return Defaults{
		PBKDF2Iterations: cryptoprim.DefaultIterations,
		Depth:            2,
		UseAlpha:         false,
		Compress:         true,
		EmojiTheme:       "mixed",
		LogLevel:         "info",
	}
}

// Load reads filename as YAML, merging it over DefaultConfig so an
// incomplete file still yields a usable Defaults.
func Load(filename string) (*Defaults, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	conf := DefaultConfig()
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Save writes c to filename as YAML.
func Save(filename string, c *Defaults) error {
	data, err := yaml.Marshal(*c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}
