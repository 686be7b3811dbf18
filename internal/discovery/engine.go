// Package discovery walks the fixed opencode configuration layout, dispatches
// matched entries to the per-type parsers, and aggregates the results into an
// immutable catalog. One pass covers every (type, scope) pair; no failure on
// a single artifact ever aborts the pass.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauern/lazyopencode/internal/logging"
	"github.com/klauern/lazyopencode/internal/model"
	"github.com/klauern/lazyopencode/internal/parser"
	"github.com/klauern/lazyopencode/internal/paths"
	"github.com/klauern/lazyopencode/internal/util"
)

// maxSymlinkDepth bounds how many links are followed for one matched entry
// before it is skipped with a diagnostic. Cyclic links hit the bound instead
// of looping forever.
const maxSymlinkDepth = 8

// Engine discovers customizations under a global config root and a project
// root. The zero value is not usable; construct with New.
type Engine struct {
	homeDir    string
	projectDir string
}

// New creates an engine for the given roots. Empty arguments fall back to
// the user's home directory and the current working directory.
func New(homeDir, projectDir string) *Engine {
	if homeDir == "" {
		homeDir = util.HomeDir()
	}
	if projectDir == "" {
		projectDir = util.WorkingDir()
	}
	return &Engine{homeDir: homeDir, projectDir: projectDir}
}

// HomeDir returns the home directory the engine scans under.
func (e *Engine) HomeDir() string {
	return e.homeDir
}

// ProjectDir returns the project directory the engine scans under.
func (e *Engine) ProjectDir() string {
	return e.projectDir
}

// Discover runs one full pass over every (type, scope) pair and returns the
// sorted catalog. The pass is idempotent: the same filesystem state produces
// a value-equal catalog.
func (e *Engine) Discover() model.Catalog {
	var catalog model.Catalog
	seen := make(map[string]bool)

	for _, typ := range model.AllTypes() {
		p := parser.ForType(typ)
		for _, scope := range model.AllScopes() {
			custs, diags := e.discoverOne(p, typ, scope)
			for _, c := range custs {
				if seen[c.Key()] {
					continue
				}
				seen[c.Key()] = true
				catalog.Customizations = append(catalog.Customizations, c)
			}
			catalog.Diagnostics = append(catalog.Diagnostics, diags...)
		}
	}

	catalog.Sort()

	logging.Debug("discovery pass complete",
		logging.Count(catalog.Len()),
		logging.Path(e.projectDir),
	)
	return catalog
}

// discoverOne enumerates and parses all entries for one (type, scope) pair.
func (e *Engine) discoverOne(p parser.Parser, typ model.Type, scope model.Scope) ([]model.Customization, []model.Diagnostic) {
	var custs []model.Customization
	var diags []model.Diagnostic

	for _, pattern := range paths.Resolve(typ, scope, e.homeDir, e.projectDir) {
		entries, entryDiags := enumerate(pattern)
		diags = append(diags, entryDiags...)

		for _, entry := range entries {
			c, d := p.Parse(entry, scope)
			custs = append(custs, c...)
			diags = append(diags, d...)
		}
	}

	if len(custs) > 0 {
		logging.Debug("discovered entries",
			logging.Ctype(typ),
			logging.Scope(scope),
			logging.Count(len(custs)),
		)
	}
	return custs, diags
}

// enumerate lists the filesystem entries a pattern matches. Non-existent
// directories contribute nothing; unreadable entries and over-deep symlink
// chains are skipped with a diagnostic.
func enumerate(pattern paths.Pattern) ([]string, []model.Diagnostic) {
	switch pattern.Kind {
	case paths.MatchFiles, paths.MatchSkillDirs:
		return enumerateGlob(pattern.Glob)
	case paths.MatchSingleFile:
		return enumerateSingle(pattern.Glob)
	case paths.MatchDirListing:
		// The plugin parser does its own listing; hand it the directory.
		return []string{pattern.Glob}, nil
	default:
		return nil, nil
	}
}

func enumerateGlob(glob string) ([]string, []model.Diagnostic) {
	matches, err := filepath.Glob(glob)
	if err != nil {
		// Only malformed patterns error here, and ours are fixed.
		return nil, []model.Diagnostic{{Path: glob, Message: fmt.Sprintf("bad pattern: %v", err)}}
	}

	var entries []string
	var diags []model.Diagnostic
	for _, match := range matches {
		resolved, diag := checkSymlinkDepth(match)
		if diag != nil {
			diags = append(diags, *diag)
			continue
		}
		entries = append(entries, resolved)
	}
	return entries, diags
}

func enumerateSingle(path string) ([]string, []model.Diagnostic) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		if os.IsPermission(err) {
			return nil, []model.Diagnostic{{Path: path, Message: fmt.Sprintf("permission denied: %v", err)}}
		}
		return nil, []model.Diagnostic{{Path: path, Message: fmt.Sprintf("failed to stat: %v", err)}}
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if _, diag := checkSymlinkDepth(path); diag != nil {
			return nil, []model.Diagnostic{*diag}
		}
	}
	return []string{path}, nil
}

// checkSymlinkDepth follows a chain of symlinks starting at path, up to
// maxSymlinkDepth hops. It returns the original path (parsers read through
// links) or a skip diagnostic when the bound is exceeded or a link is
// dangling past readability.
func checkSymlinkDepth(path string) (string, *model.Diagnostic) {
	current := path
	for depth := 0; ; depth++ {
		info, err := os.Lstat(current)
		if err != nil {
			// Dangling link target; let the parser surface the read failure.
			return path, nil
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		if depth >= maxSymlinkDepth {
			return "", &model.Diagnostic{Path: path, Message: "symlink depth exceeded"}
		}
		target, err := os.Readlink(current)
		if err != nil {
			return path, nil
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = target
	}
}
