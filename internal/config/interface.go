package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads settings from the given files or directories and merges
	// them into a single Model. Later paths override earlier ones.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
