package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Dir = t.TempDir()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Dir, "footer.md"), []byte("# hi"), 0o644))
	cfg.Footer.Path = "footer.md"
	cfg.Projects.Sources = []string{"projects/*.yaml"}

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_InvalidGreeting(t *testing.T) {
	cfg := validConfig(t)
	cfg.Contact.Greeting = "Hi {{ .LastName }}"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "contact.greeting", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "template error")
}

func TestValidateDeep_InvalidGlob(t *testing.T) {
	cfg := validConfig(t)
	cfg.Projects.Sources = []string{"projects/[a-.yaml"}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "projects.sources[0]", fieldErrs[0].Field)
}

func TestValidateDeep_MissingFooter(t *testing.T) {
	cfg := validConfig(t)
	cfg.Footer.Path = "nope.md"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "footer.path", fieldErrs[0].Field)
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(cfg.Dir)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	cfg.Projects.Sources = []string{"projects/*.yaml"}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "sources[0]", warnings[0].Item)

	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Dir, "projects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Dir, "projects", "a.yaml"), []byte("projects: []"), 0o644))
	assert.Empty(t, cfg.Warnings())

	cfg.Projects.Sources = nil
	cfg.Projects.Watch = true
	warnings = cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "built-in catalog")
}
