// Package filex resolves and prepares on-disk locations for local data.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSubdDir makes sure dirName exists and returns its absolute path.
// Relative names are resolved against the current working directory.
func EnsureSubdDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// DataFilePath ensures dirName exists and joins fileName onto it.
// The special SQLite name ":memory:" is returned unchanged.
func DataFilePath(dirName, fileName string) (string, error) {
	if fileName == ":memory:" {
		return fileName, nil
	}
	dir, err := EnsureSubdDir(dirName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}
