// Package parser converts matched filesystem entries into customization
// records. One parser exists per customization type, selected through a
// static type→parser table; malformed input degrades the entry or records a
// diagnostic but never aborts a discovery pass.
package parser

import (
	"github.com/klauern/lazyopencode/internal/model"
)

// Parser converts one matched filesystem entry into customizations.
//
// Single-record sources (commands, agents, skills, rules) return at most one
// customization. Multi-record sources (opencode.json) may return several, and
// may return none when the source cannot be read or decoded. Failures are
// reported as degraded customizations or diagnostics, never as a pass-fatal
// condition.
type Parser interface {
	// Type returns the customization type this parser handles.
	Type() model.Type

	// Parse parses the entry at path within the given scope.
	Parse(path string, scope model.Scope) ([]model.Customization, []model.Diagnostic)
}

// registry maps each customization type to its parser. Built once at
// startup, never mutated afterwards.
var registry = map[model.Type]Parser{
	model.TypeCommand: &FrontmatterParser{typ: model.TypeCommand},
	model.TypeAgent:   &FrontmatterParser{typ: model.TypeAgent},
	model.TypeSkill:   &SkillParser{},
	model.TypeRules:   &RulesParser{},
	model.TypeMCP:     &MCPParser{},
	model.TypePlugin:  &PluginParser{},
}

// ForType returns the parser for the given customization type, or nil if the
// type is not recognized.
func ForType(t model.Type) Parser {
	return registry[t]
}
