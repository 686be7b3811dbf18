// Package model defines the core data types shared across lazyopencode:
// customization artifacts, their type/scope enumerations, and the catalog
// produced by a discovery pass.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Type identifies the kind of customization artifact.
// The set is fixed; it is not extensible at runtime.
type Type string

const (
	// TypeCommand represents slash commands defined in command/*.md files.
	TypeCommand Type = "command"

	// TypeAgent represents agent definitions in agent/*.md files.
	TypeAgent Type = "agent"

	// TypeSkill represents skills defined in skill/<name>/SKILL.md directories.
	TypeSkill Type = "skill"

	// TypeRules represents AGENTS.md rules files.
	TypeRules Type = "rules"

	// TypeMCP represents MCP server entries from opencode.json.
	TypeMCP Type = "mcp"

	// TypePlugin represents plugin files under plugin/.
	TypePlugin Type = "plugin"
)

// typeOrder fixes the display and sort order of customization types.
var typeOrder = map[Type]int{
	TypeCommand: 0,
	TypeAgent:   1,
	TypeSkill:   2,
	TypeRules:   3,
	TypeMCP:     4,
	TypePlugin:  5,
}

// AllTypes returns all customization types in catalog sort order.
func AllTypes() []Type {
	return []Type{TypeCommand, TypeAgent, TypeSkill, TypeRules, TypeMCP, TypePlugin}
}

// IsValid returns true if the type is recognized.
func (t Type) IsValid() bool {
	_, ok := typeOrder[t]
	return ok
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// Label returns a human-readable label for the type.
func (t Type) Label() string {
	switch t {
	case TypeCommand:
		return "Command"
	case TypeAgent:
		return "Agent"
	case TypeSkill:
		return "Skill"
	case TypeRules:
		return "Rules"
	case TypeMCP:
		return "MCP"
	case TypePlugin:
		return "Plugin"
	default:
		return "Unknown"
	}
}

// SortOrder returns the position of the type in the fixed catalog order.
func (t Type) SortOrder() int {
	if o, ok := typeOrder[t]; ok {
		return o
	}
	return len(typeOrder)
}

// ParseType converts a string to a Type.
// Returns an error if the type is not recognized.
func ParseType(s string) (Type, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	t := Type(normalized)
	if t.IsValid() {
		return t, nil
	}

	// Common aliases
	switch normalized {
	case "commands", "slash-command":
		return TypeCommand, nil
	case "agents", "subagent":
		return TypeAgent, nil
	case "skills":
		return TypeSkill, nil
	case "rule", "agents.md":
		return TypeRules, nil
	case "mcps", "server", "mcp-server":
		return TypeMCP, nil
	case "plugins":
		return TypePlugin, nil
	default:
		return "", fmt.Errorf("unknown customization type %q (valid: command, agent, skill, rules, mcp, plugin)", s)
	}
}

// Scope identifies where a customization was discovered from.
type Scope string

const (
	// ScopeGlobal represents the user-wide configuration root (~/.config/opencode).
	ScopeGlobal Scope = "global"

	// ScopeProject represents the repository-local configuration root.
	ScopeProject Scope = "project"
)

// scopeOrder fixes the sort order of scopes within a type.
var scopeOrder = map[Scope]int{
	ScopeGlobal:  0,
	ScopeProject: 1,
}

// AllScopes returns both scopes in catalog sort order.
func AllScopes() []Scope {
	return []Scope{ScopeGlobal, ScopeProject}
}

// IsValid returns true if the scope is recognized.
func (s Scope) IsValid() bool {
	_, ok := scopeOrder[s]
	return ok
}

// String returns the string representation of the scope.
func (s Scope) String() string {
	return string(s)
}

// Label returns a human-readable label for the scope.
func (s Scope) Label() string {
	switch s {
	case ScopeGlobal:
		return "Global"
	case ScopeProject:
		return "Project"
	default:
		return "Unknown"
	}
}

// SortOrder returns the position of the scope in the fixed catalog order.
func (s Scope) SortOrder() int {
	if o, ok := scopeOrder[s]; ok {
		return o
	}
	return len(scopeOrder)
}

// ParseScope converts a string to a Scope.
// Returns an error if the scope is not recognized.
func ParseScope(s string) (Scope, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	scope := Scope(normalized)
	if scope.IsValid() {
		return scope, nil
	}

	switch normalized {
	case "user", "home", "g":
		return ScopeGlobal, nil
	case "repo", "repository", "local", "p":
		return ScopeProject, nil
	default:
		return "", fmt.Errorf("unknown scope %q (valid: global, project)", s)
	}
}

// Status describes the parse outcome for a customization.
// A degraded customization is still visible; only its Reason explains what
// went wrong with the source file.
type Status struct {
	Reason string
}

// StatusValid is the status of a cleanly parsed customization.
var StatusValid = Status{}

// Degraded returns a status carrying the given reason.
func Degraded(reason string) Status {
	return Status{Reason: reason}
}

// IsValid returns true if the customization parsed cleanly.
func (s Status) IsValid() bool {
	return s.Reason == ""
}

// String returns "valid" or "degraded: <reason>".
func (s Status) String() string {
	if s.IsValid() {
		return "valid"
	}
	return "degraded: " + s.Reason
}

// Customization represents one discovered configuration artifact.
// Instances are never mutated after creation; a discovery pass builds a
// complete new set instead.
type Customization struct {
	Type        Type              `json:"type"`
	Scope       Scope             `json:"scope"`
	Name        string            `json:"name"`
	Path        string            `json:"path"`
	Description string            `json:"description,omitempty"`
	Content     string            `json:"content,omitempty"`
	Status      Status            `json:"status"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	ModifiedAt  time.Time         `json:"modified_at,omitzero"`
}

// Key returns the identity of the customization within a catalog.
// No two catalog entries share the same key. The name participates because
// multi-entry sources (opencode.json) yield several entries from one path.
func (c Customization) Key() string {
	return string(c.Type) + "\x00" + string(c.Scope) + "\x00" + c.Path + "\x00" + c.Name
}

// Equal reports whether two customizations are equal by value.
// Metadata maps are compared key by key.
func (c Customization) Equal(other Customization) bool {
	if c.Type != other.Type ||
		c.Scope != other.Scope ||
		c.Name != other.Name ||
		c.Path != other.Path ||
		c.Description != other.Description ||
		c.Content != other.Content ||
		c.Status != other.Status ||
		!c.ModifiedAt.Equal(other.ModifiedAt) {
		return false
	}
	if len(c.Metadata) != len(other.Metadata) {
		return false
	}
	for k, v := range c.Metadata {
		if ov, ok := other.Metadata[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
