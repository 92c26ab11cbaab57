package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/jarospm/folio/internal/core/contact"
	"github.com/jarospm/folio/pkg/tmpl"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including template syntax, glob patterns, and file accessibility. The
// configPath argument specifies the config file location to validate (empty
// string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateGreeting(),
		c.validateSources(),
		criterio.Run("footer.path", c.FooterPath(), fileExistsOrEmpty),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for i, pattern := range c.ProjectSources() {
		if !doublestar.ValidatePattern(pattern) {
			continue // reported by ValidateDeep
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err == nil && len(matches) == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Projects",
				Item:     fmt.Sprintf("sources[%d]", i),
				Message:  fmt.Sprintf("pattern %q matches no files", c.Projects.Sources[i]),
			})
		}
	}

	if c.Projects.Watch && len(c.Projects.Sources) == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Projects",
			Message:  "watch is enabled but the built-in catalog is in use",
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateGreeting() error {
	if err := tmpl.Check(c.Contact.Greeting, contact.GreetingData{}); err != nil {
		return criterio.NewFieldErrors("contact.greeting", fmt.Errorf("template error: %w", err))
	}
	return nil
}

func (c *Config) validateSources() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.ProjectSources() {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("projects.sources[%d]", i), fmt.Errorf("invalid glob %q", c.Projects.Sources[i]))
		}
	}
	return errs.ToError()
}

func fileExistsOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}
