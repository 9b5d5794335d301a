package manager

import (
	"fmt"
	"os"
	"path/filepath"
)

// SiteManager owns the base directory files are served from
type SiteManager struct {
	Dir string
}

// Init resolves Dir to an absolute path, verifies it exists and makes it
// the process working directory, so relative resolution always happens
// beneath the base directory no matter where the server was launched from.
// The directory is never created here.
func (mgr *SiteManager) Init() error {
	dir, err := filepath.Abs(mgr.Dir)
	if err != nil {
		return err
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}
	if err := os.Chdir(dir); err != nil {
		return err
	}
	mgr.Dir = dir
	return nil
}

// ListFileNames list entries at the root of the served directory
func (mgr *SiteManager) ListFileNames() (result []string, err error) {
	files, err := os.ReadDir(mgr.Dir)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		result = append(result, f.Name())
	}
	return result, nil
}

// HasBlog reports whether a blog subdirectory exists under the root
func (mgr *SiteManager) HasBlog() bool {
	fi, err := os.Stat(filepath.Join(mgr.Dir, "blog"))
	return err == nil && fi.IsDir()
}
