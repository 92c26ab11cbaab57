package partial

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultWhenPathEmpty(t *testing.T) {
	got, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
	assert.Contains(t, got, "GitHub")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footer.md")
	require.NoError(t, os.WriteFile(path, []byte("custom footer"), 0o644))

	got, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "custom footer", got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
	assert.ErrorContains(t, err, "load partial")
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRender(t *testing.T) {
	out, err := Render("hello **world**", 40)
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "hello world")

	out, err = Render("   \n", 40)
	require.NoError(t, err)
	assert.Empty(t, out)
}
