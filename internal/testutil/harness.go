package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/labelquant/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	Dir    string
	Stdout string
	Stderr string
	Err    error
	App    *app.App
}

// ReadFile returns the content of a file created under the harness directory.
func (r *HarnessResult) ReadFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	require.NoError(t, err)
	return string(data)
}

// WriteFiles creates each file under dir, creating parent directories as
// needed, and returns dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

// RunApp writes files to a fresh temporary directory, points the reference
// and target paths of cfg into it, and runs the app. Paths in cfg are
// relative to that directory.
func RunApp(t *testing.T, cfg app.Config, files map[string]string) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, cfg, files)
}

// RunAppWithContext is RunApp with a caller-provided context.
func RunAppWithContext(ctx context.Context, t *testing.T, cfg app.Config, files map[string]string) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, t.TempDir(), files)
	cfg.ReferencePath = filepath.Join(dir, cfg.ReferencePath)
	cfg.TargetPath = filepath.Join(dir, cfg.TargetPath)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	stdout, stderr := &SafeBuffer{}, &SafeBuffer{}
	testApp := app.NewApp(stdout, stderr, validated)
	runErr := testApp.Run(ctx)

	if os.Getenv("LABELQUANT_TEST_LOGS") == "true" {
		t.Logf("--- Diagnostic output for %s ---\n%s", t.Name(), stderr.String())
	}

	return &HarnessResult{
		Dir:    dir,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    runErr,
		App:    testApp,
	}
}
