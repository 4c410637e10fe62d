// Package filex holds small filesystem helpers shared by the store and the
// naming subsystem.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDirs creates root and every subdirectory of it named in subdirs.
func EnsureDirs(root string, subdirs ...string) error {
	dirs := append([]string{root}, subdirs...)
	for i, d := range dirs {
		dir := d
		if i > 0 {
			dir = filepath.Join(root, d)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return nil
}

// SyncDir flushes directory entries of dir, making a preceding rename or
// link in it durable.
func SyncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
