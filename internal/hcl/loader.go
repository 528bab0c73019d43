package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/labelquant/internal/config"
	"github.com/specialistvlad/labelquant/internal/ctxlog"
	"github.com/specialistvlad/labelquant/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a loader that evaluates expressions against the
// process environment.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// NewLoaderWithEnv creates a loader with a fixed environment, given as
// KEY=VALUE pairs.
func NewLoaderWithEnv(environ []string) *Loader {
	return &Loader{environ: func() []string { return environ }}
}

// Load parses every .hcl file found in paths and merges them in order. A
// directory contributes its .hcl files sorted by path. Unlike file discovery
// for label inputs, a path that does not exist is an error: settings paths
// are always given explicitly.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.environ())
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		fileModel, err := l.translate(ctx, &root, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate HCL file %s: %w", file, err)
		}
		fileModel.Sources = []string{file}
		model.Merge(fileModel)
	}

	logger.Debug("HCL loading complete.", "sources", model.Sources)
	return model, nil
}

// findAllHCLFiles expands directories and removes duplicates while keeping
// the order in which paths were given.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing settings path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(filepath.Clean(path))
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error scanning settings directory %s: %w", path, err)
		}
		sort.Strings(found)
		for _, f := range found {
			add(filepath.Clean(f))
		}
	}
	return allFiles, nil
}
