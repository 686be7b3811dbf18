package model

import (
	"testing"
	"time"
)

func TestTypeIsValid(t *testing.T) {
	for _, typ := range AllTypes() {
		if !typ.IsValid() {
			t.Errorf("expected %q to be valid", typ)
		}
	}

	if Type("widget").IsValid() {
		t.Error("expected unknown type to be invalid")
	}
}

func TestTypeSortOrder(t *testing.T) {
	types := AllTypes()
	for i := 1; i < len(types); i++ {
		if types[i-1].SortOrder() >= types[i].SortOrder() {
			t.Errorf("sort order not strictly increasing: %q >= %q", types[i-1], types[i])
		}
	}

	if got := Type("widget").SortOrder(); got != len(types) {
		t.Errorf("unknown type sort order = %d, want %d", got, len(types))
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Type
		wantErr bool
	}{
		"exact match":       {input: "command", want: TypeCommand},
		"uppercase":         {input: "AGENT", want: TypeAgent},
		"whitespace":        {input: "  skill  ", want: TypeSkill},
		"plural alias":      {input: "commands", want: TypeCommand},
		"agents.md alias":   {input: "agents.md", want: TypeRules},
		"mcp server alias":  {input: "mcp-server", want: TypeMCP},
		"plugin plural":     {input: "plugins", want: TypePlugin},
		"unknown":           {input: "widget", wantErr: true},
		"empty":             {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseScope(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Scope
		wantErr bool
	}{
		"global":        {input: "global", want: ScopeGlobal},
		"project":       {input: "project", want: ScopeProject},
		"user alias":    {input: "user", want: ScopeGlobal},
		"repo alias":    {input: "repo", want: ScopeProject},
		"local alias":   {input: "local", want: ScopeProject},
		"single letter": {input: "g", want: ScopeGlobal},
		"unknown":       {input: "everywhere", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseScope(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseScope(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	if !StatusValid.IsValid() {
		t.Error("StatusValid should be valid")
	}
	if StatusValid.String() != "valid" {
		t.Errorf("StatusValid.String() = %q", StatusValid.String())
	}

	d := Degraded("malformed frontmatter")
	if d.IsValid() {
		t.Error("degraded status should not be valid")
	}
	if got := d.String(); got != "degraded: malformed frontmatter" {
		t.Errorf("Degraded String() = %q", got)
	}
}

func TestCustomizationKey(t *testing.T) {
	a := Customization{Type: TypeCommand, Scope: ScopeGlobal, Path: "/a/b.md"}
	b := Customization{Type: TypeCommand, Scope: ScopeProject, Path: "/a/b.md"}

	if a.Key() == b.Key() {
		t.Error("customizations in different scopes should have different keys")
	}

	// Entries from a multi-record source share a path but not a name.
	c := Customization{Type: TypeMCP, Scope: ScopeGlobal, Path: "/h/opencode.json", Name: "github"}
	d := Customization{Type: TypeMCP, Scope: ScopeGlobal, Path: "/h/opencode.json", Name: "filesystem"}
	if c.Key() == d.Key() {
		t.Error("entries with different names should have different keys")
	}
}

func TestCustomizationEqual(t *testing.T) {
	now := time.Now()
	base := Customization{
		Type:        TypeAgent,
		Scope:       ScopeProject,
		Name:        "reviewer",
		Path:        "/p/.opencode/agent/reviewer.md",
		Description: "Reviews code",
		Content:     "body",
		Status:      StatusValid,
		Metadata:    map[string]string{"model": "fast"},
		ModifiedAt:  now,
	}

	same := base
	same.Metadata = map[string]string{"model": "fast"}
	if !base.Equal(same) {
		t.Error("value-identical customizations should be equal")
	}

	degraded := base
	degraded.Status = Degraded("malformed frontmatter")
	if base.Equal(degraded) {
		t.Error("customizations with different status should not be equal")
	}

	diffMeta := base
	diffMeta.Metadata = map[string]string{"model": "slow"}
	if base.Equal(diffMeta) {
		t.Error("customizations with different metadata should not be equal")
	}
}
