package config

import (
	"fmt"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// Paths holds the files and directories the bootstrap manages.
type Paths struct {
	Template string `toml:"template"`
	Config   string `toml:"config"`
	PIDFile  string `toml:"pid_file"`
	CacheDir string `toml:"cache_dir"`
}

// DefaultPaths returns the default path configuration
func DefaultPaths() *Paths {
	return &Paths{
		Template: DefaultTemplatePath,
		Config:   DefaultConfigPath,
		PIDFile:  DefaultPIDFile,
		CacheDir: DefaultCacheDir,
	}
}

// Validate checks that every path is absolute.
func (p *Paths) Validate() error {
	for _, entry := range []struct{ key, path string }{
		{"paths.template", p.Template},
		{"paths.config", p.Config},
		{"paths.pid_file", p.PIDFile},
		{"paths.cache_dir", p.CacheDir},
	} {
		if entry.path == "" {
			return fmt.Errorf("%s is required", entry.key)
		}
		if !filepath.IsAbs(entry.path) {
			return fmt.Errorf("%s must be an absolute path (got %q)", entry.key, entry.path)
		}
	}
	return nil
}

// Under resolves every path inside root, following symlinks as if root were
// the filesystem root so nothing can escape it. An empty root or "/" returns
// the paths unchanged.
func (p *Paths) Under(root string) (*Paths, error) {
	if root == "" || filepath.Clean(root) == "/" {
		resolved := *p
		return &resolved, nil
	}

	join := func(path string) (string, error) {
		resolved, err := securejoin.SecureJoin(root, path)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s under %s: %w", path, root, err)
		}
		return resolved, nil
	}

	var (
		resolved Paths
		err      error
	)
	if resolved.Template, err = join(p.Template); err != nil {
		return nil, err
	}
	if resolved.Config, err = join(p.Config); err != nil {
		return nil, err
	}
	if resolved.PIDFile, err = join(p.PIDFile); err != nil {
		return nil, err
	}
	if resolved.CacheDir, err = join(p.CacheDir); err != nil {
		return nil, err
	}
	return &resolved, nil
}
