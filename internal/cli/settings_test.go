package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/labelquant/internal/hcl"
	"github.com/specialistvlad/labelquant/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_MergesHCLFromDirectory validates that settings are discovered in
// a directory, merged in file order, and layered under explicit flags.
func TestParse_MergesHCLFromDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, t.TempDir(), map[string]string{
		"settings/a.hcl": `
			quantize {
				verbose = true
			}
			logging {
				level  = lookup(env, "LQ_LEVEL", "info")
				format = "text"
			}
		`,
		"settings/b.hcl": `
			logging {
				format = upper("json") == "JSON" ? "json" : "text"
			}
		`,
	})
	loader := hcl.NewLoaderWithEnv([]string{"LQ_LEVEL=debug"})
	args := []string{"-c", filepath.Join(dir, "settings"), "--log-format", "text", "ref.txt", "target.txt"}

	// --- Act ---
	cfg, shouldExit, err := Parse(context.Background(), args, &bytes.Buffer{}, loader)

	// --- Assert ---
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.InPlace)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "an explicit flag overrides every settings file")
}

func TestParse_MissingSettingsFile(t *testing.T) {
	t.Parallel()

	args := []string{"--config", filepath.Join(t.TempDir(), "nope.hcl"), "ref.txt", "target.txt"}

	_, _, err := Parse(context.Background(), args, &bytes.Buffer{}, hcl.NewLoader())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load settings")
}
