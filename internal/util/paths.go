// Package util provides small filesystem helpers shared across packages.
package util

import (
	"os"
	"path/filepath"
)

// HomeDir returns the user's home directory.
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// WorkingDir returns the current working directory, falling back to "." when
// it cannot be determined.
func WorkingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// LazyopencodeConfigPath returns the directory holding lazyopencode's own
// configuration file.
func LazyopencodeConfigPath() string {
	return filepath.Join(HomeDir(), ".config", "lazyopencode")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return HomeDir()
	}
	if len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator) {
		return filepath.Join(HomeDir(), path[2:])
	}
	return path
}
