// Package irenadir encapsulates all path knowledge for the .irena/ project
// directory: the site catalog and the local (gitignored) runtime files.
package irenadir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultRoot is the directory name used when none is given.
const DefaultRoot = ".irena"

const gitignoreContent = "local/\n"

// Dir is a value object that resolves paths within a .irena/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the .irena/ directory.
func (d Dir) Root() string { return d.root }

// SitePath returns the path to the site catalog.
func (d Dir) SitePath() string { return filepath.Join(d.root, "site.yaml") }

// LocalDir returns the path to the local runtime state directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, "local") }

// LogPath returns the default log file inside local/.
func (d Dir) LogPath() string { return filepath.Join(d.root, "local", "irena.log") }

// GitignorePath returns the path to the .gitignore file inside .irena/.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".gitignore") }

// Exists reports whether the .irena/ root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}

// EnsureStructure creates the root, the local/ directory and the .gitignore
// file if they are missing. It is safe to call multiple times.
func EnsureStructure(d Dir) error {
	if err := os.MkdirAll(d.LocalDir(), 0o750); err != nil {
		return fmt.Errorf("irenadir: create local dir: %w", err)
	}

	if err := writeIfMissing(d.GitignorePath(), []byte(gitignoreContent)); err != nil {
		return fmt.Errorf("irenadir: gitignore: %w", err)
	}

	return nil
}

// ErrSiteExists is returned by Bootstrap when the catalog is already there.
var ErrSiteExists = errors.New("irenadir: site catalog already exists")

// Bootstrap sets up the directory and writes siteYAML as its catalog. An
// existing catalog is kept unless overwrite is set.
func Bootstrap(d Dir, siteYAML []byte, overwrite bool) error {
	if err := EnsureStructure(d); err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(d.SitePath()); err == nil {
			return fmt.Errorf("%w: %s", ErrSiteExists, d.SitePath())
		}
	}

	if err := os.WriteFile(d.SitePath(), siteYAML, 0o600); err != nil {
		return fmt.Errorf("irenadir: write site catalog: %w", err)
	}

	return nil
}

func writeIfMissing(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, data, 0o600)
}
