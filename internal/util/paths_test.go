package util

import (
	"path/filepath"
	"testing"
)

func TestHomeDir(t *testing.T) {
	home := CreateTempDir(t)
	t.Setenv("HOME", home)

	AssertEqual(t, HomeDir(), home)
}

func TestWorkingDir(t *testing.T) {
	if WorkingDir() == "" {
		t.Error("working directory should never be empty")
	}
}

func TestLazyopencodeConfigPath(t *testing.T) {
	home := CreateTempDir(t)
	t.Setenv("HOME", home)

	AssertEqual(t, LazyopencodeConfigPath(), filepath.Join(home, ".config", "lazyopencode"))
}

func TestExpandHome(t *testing.T) {
	home := CreateTempDir(t)
	t.Setenv("HOME", home)

	tests := map[string]struct {
		path string
		want string
	}{
		"bare tilde":    {path: "~", want: home},
		"tilde prefix":  {path: "~/projects", want: filepath.Join(home, "projects")},
		"absolute path": {path: "/etc/opencode", want: "/etc/opencode"},
		"relative path": {path: "docs/notes.md", want: "docs/notes.md"},
		"mid tilde":     {path: "/tmp/~backup", want: "/tmp/~backup"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			AssertEqual(t, ExpandHome(tt.path), tt.want)
		})
	}
}
