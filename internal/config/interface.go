package config

import "context"

// Loader is the interface for a format-specific profile loader.
type Loader interface {
	// Load reads profile files from the given paths, applies them in order on
	// top of DefaultProfile and returns the merged result.
	Load(ctx context.Context, paths ...string) (*Profile, error)
}
