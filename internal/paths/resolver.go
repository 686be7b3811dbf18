// Package paths maps (customization type, scope) pairs to the fixed
// filesystem locations opencode reads them from. The mapping is pure: no
// filesystem access happens here.
package paths

import (
	"path/filepath"

	"github.com/klauern/lazyopencode/internal/model"
)

// MatchKind tells the discovery engine how to enumerate a pattern.
type MatchKind int

const (
	// MatchFiles globs for regular files (e.g. command/*.md).
	MatchFiles MatchKind = iota

	// MatchSkillDirs globs for directories expected to contain a SKILL.md.
	MatchSkillDirs

	// MatchSingleFile names exactly one file that may or may not exist.
	MatchSingleFile

	// MatchDirListing lists the immediate children of a directory.
	MatchDirListing
)

// Pattern is one candidate location for a (type, scope) pair.
type Pattern struct {
	Glob string
	Kind MatchKind
}

// GlobalRoot returns the user-wide opencode configuration root.
func GlobalRoot(homeDir string) string {
	return filepath.Join(homeDir, ".config", "opencode")
}

// ProjectRoot returns the repository-local opencode configuration root.
func ProjectRoot(projectDir string) string {
	return filepath.Join(projectDir, ".opencode")
}

// Resolve returns the ordered match patterns for the given type and scope.
// The layout is fixed and not user-configurable:
//
//	command  <root>/command/*.md
//	agent    <root>/agent/*.md
//	skill    <root>/skill/*/SKILL.md
//	rules    global: <global root>/AGENTS.md, project: <project>/AGENTS.md
//	mcp      global: <global root>/opencode.json, project: <project>/opencode.json
//	plugin   <root>/plugin/ (directory listing)
//
// where <root> is the global config root or the project's .opencode
// directory. Rules and MCP sources live beside the project root itself, not
// under .opencode, matching opencode's lookup rules.
func Resolve(t model.Type, s model.Scope, homeDir, projectDir string) []Pattern {
	root := GlobalRoot(homeDir)
	if s == model.ScopeProject {
		root = ProjectRoot(projectDir)
	}

	switch t {
	case model.TypeCommand:
		return []Pattern{{Glob: filepath.Join(root, "command", "*.md"), Kind: MatchFiles}}
	case model.TypeAgent:
		return []Pattern{{Glob: filepath.Join(root, "agent", "*.md"), Kind: MatchFiles}}
	case model.TypeSkill:
		return []Pattern{{Glob: filepath.Join(root, "skill", "*"), Kind: MatchSkillDirs}}
	case model.TypeRules:
		if s == model.ScopeProject {
			return []Pattern{{Glob: filepath.Join(projectDir, "AGENTS.md"), Kind: MatchSingleFile}}
		}
		return []Pattern{{Glob: filepath.Join(root, "AGENTS.md"), Kind: MatchSingleFile}}
	case model.TypeMCP:
		if s == model.ScopeProject {
			return []Pattern{{Glob: filepath.Join(projectDir, "opencode.json"), Kind: MatchSingleFile}}
		}
		return []Pattern{{Glob: filepath.Join(root, "opencode.json"), Kind: MatchSingleFile}}
	case model.TypePlugin:
		return []Pattern{{Glob: filepath.Join(root, "plugin"), Kind: MatchDirListing}}
	default:
		return nil
	}
}
