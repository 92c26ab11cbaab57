// Package config handles configuration loading and validation for folio.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jarospm/folio/internal/core/contact"
	"github.com/jarospm/folio/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Theme    string         `yaml:"theme"`
	Projects ProjectsConfig `yaml:"projects"`
	Footer   FooterConfig   `yaml:"footer"`
	Contact  ContactConfig  `yaml:"contact"`
	Dir      string         `yaml:"-"` // directory of the loaded config file, set by Load
}

// ProjectsConfig controls where the projects showcase reads its catalog.
type ProjectsConfig struct {
	// Sources are doublestar glob patterns of YAML catalog files. Relative
	// patterns resolve against the config directory. Empty means the
	// built-in catalog.
	Sources []string `yaml:"sources"`
	// Watch reloads the showcase when a source file changes.
	Watch bool `yaml:"watch"`
}

// FooterConfig points at the markdown fragment shown under every view.
type FooterConfig struct {
	Path string `yaml:"path"` // empty uses the built-in footer
}

// ContactConfig customizes the contact form.
type ContactConfig struct {
	Greeting string   `yaml:"greeting"` // success template, receives .FirstName
	Subjects []string `yaml:"subjects"` // options offered by the subject field
}

// DefaultSubjects are offered when the config does not list any.
var DefaultSubjects = []string{
	"General inquiry",
	"Project collaboration",
	"Job opportunity",
	"Other",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Contact: ContactConfig{
			Greeting: contact.DefaultGreeting,
			Subjects: append([]string(nil), DefaultSubjects...),
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		cfg.Dir = filepath.Dir(configPath)

		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Contact.Greeting == "" {
		c.Contact.Greeting = defaults.Contact.Greeting
	}
	if len(c.Contact.Subjects) == 0 {
		c.Contact.Subjects = defaults.Contact.Subjects
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	seen := make(map[string]bool, len(c.Contact.Subjects))
	for i, s := range c.Contact.Subjects {
		if contact.Trim(s) == "" {
			return fmt.Errorf("contact.subjects[%d] cannot be empty", i)
		}
		if seen[s] {
			return fmt.Errorf("contact.subjects has duplicate entry %q", s)
		}
		seen[s] = true
	}

	return nil
}

// ResolvePath returns p unchanged when absolute, otherwise joined to the
// config directory.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// ProjectSources returns the configured catalog patterns with relative
// patterns resolved against the config directory.
func (c *Config) ProjectSources() []string {
	out := make([]string, 0, len(c.Projects.Sources))
	for _, s := range c.Projects.Sources {
		out = append(out, c.ResolvePath(s))
	}
	return out
}

// FooterPath returns the resolved footer fragment path, or empty for the
// built-in footer.
func (c *Config) FooterPath() string {
	return c.ResolvePath(c.Footer.Path)
}
