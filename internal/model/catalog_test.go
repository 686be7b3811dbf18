package model

import "testing"

func sampleCatalog() Catalog {
	return Catalog{
		Customizations: []Customization{
			{Type: TypePlugin, Scope: ScopeProject, Name: "notify", Path: "/p/.opencode/plugin/notify.ts"},
			{Type: TypeCommand, Scope: ScopeProject, Name: "Deploy", Path: "/p/.opencode/command/deploy.md"},
			{Type: TypeCommand, Scope: ScopeGlobal, Name: "audit", Path: "/h/.config/opencode/command/audit.md"},
			{Type: TypeCommand, Scope: ScopeProject, Name: "build", Path: "/p/.opencode/command/build.md"},
			{Type: TypeMCP, Scope: ScopeGlobal, Name: "github", Path: "/h/.config/opencode/opencode.json"},
			{Type: TypeMCP, Scope: ScopeGlobal, Name: "filesystem", Path: "/h/.config/opencode/opencode.json"},
		},
		Diagnostics: []Diagnostic{
			{Path: "/p/.opencode/agent/broken.md", Message: "malformed frontmatter"},
		},
	}
}

func TestCatalogSort(t *testing.T) {
	cat := sampleCatalog()
	cat.Sort()

	wantNames := []string{"audit", "Deploy", "build", "filesystem", "github", "notify"}
	if len(cat.Customizations) != len(wantNames) {
		t.Fatalf("expected %d entries, got %d", len(wantNames), len(cat.Customizations))
	}
	for i, want := range wantNames {
		if got := cat.Customizations[i].Name; got != want {
			t.Errorf("position %d: got %q, want %q", i, got, want)
		}
	}

	// Type groups must be contiguous and in fixed order.
	lastOrder := -1
	for _, c := range cat.Customizations {
		if o := c.Type.SortOrder(); o < lastOrder {
			t.Errorf("type %q out of order", c.Type)
		} else {
			lastOrder = o
		}
	}
}

func TestCatalogSortCaseInsensitiveNames(t *testing.T) {
	cat := Catalog{
		Customizations: []Customization{
			{Type: TypeCommand, Scope: ScopeGlobal, Name: "zeta", Path: "/a"},
			{Type: TypeCommand, Scope: ScopeGlobal, Name: "Alpha", Path: "/b"},
			{Type: TypeCommand, Scope: ScopeGlobal, Name: "beta", Path: "/c"},
		},
	}
	cat.Sort()

	want := []string{"Alpha", "beta", "zeta"}
	for i, name := range want {
		if cat.Customizations[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, cat.Customizations[i].Name, name)
		}
	}
}

func TestCatalogByTypeAndScope(t *testing.T) {
	cat := sampleCatalog()
	cat.Sort()

	commands := cat.ByType(TypeCommand)
	if len(commands) != 3 {
		t.Errorf("expected 3 commands, got %d", len(commands))
	}

	global := cat.ByScope(ScopeGlobal)
	if len(global) != 3 {
		t.Errorf("expected 3 global entries, got %d", len(global))
	}
	for _, c := range global {
		if c.Scope != ScopeGlobal {
			t.Errorf("ByScope returned %q entry", c.Scope)
		}
	}
}

func TestCatalogCounts(t *testing.T) {
	cat := sampleCatalog()
	counts := cat.Counts()

	if counts[TypeCommand] != 3 {
		t.Errorf("command count = %d, want 3", counts[TypeCommand])
	}
	if counts[TypeMCP] != 2 {
		t.Errorf("mcp count = %d, want 2", counts[TypeMCP])
	}
	if counts[TypeSkill] != 0 {
		t.Errorf("skill count = %d, want 0", counts[TypeSkill])
	}
}

func TestCatalogDegraded(t *testing.T) {
	cat := sampleCatalog()
	cat.Customizations[0].Status = Degraded("malformed frontmatter")

	degraded := cat.Degraded()
	if len(degraded) != 1 {
		t.Fatalf("expected 1 degraded entry, got %d", len(degraded))
	}
	if degraded[0].Name != "notify" {
		t.Errorf("degraded entry = %q", degraded[0].Name)
	}
}

func TestCatalogEqual(t *testing.T) {
	a := sampleCatalog()
	b := sampleCatalog()
	a.Sort()
	b.Sort()

	if !a.Equal(b) {
		t.Error("identical catalogs should be equal")
	}

	b.Customizations[0].Description = "changed"
	if a.Equal(b) {
		t.Error("catalogs with differing entries should not be equal")
	}

	c := sampleCatalog()
	c.Sort()
	c.Diagnostics = nil
	if a.Equal(c) {
		t.Error("catalogs with differing diagnostics should not be equal")
	}
}
