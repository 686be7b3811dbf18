package parser

import (
	"path/filepath"
	"testing"

	"github.com/klauern/lazyopencode/internal/model"
	"github.com/klauern/lazyopencode/internal/util"
)

func TestRulesParser(t *testing.T) {
	dir := util.CreateTempDir(t)
	path := filepath.Join(dir, "AGENTS.md")
	content := "# House rules\n\nAlways run the linter.\n"
	util.WriteFile(t, path, content)

	cust, diags := parseOne(t, ForType(model.TypeRules), path, model.ScopeProject)

	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
	util.AssertEqual(t, cust.Type, model.TypeRules)
	util.AssertEqual(t, cust.Name, "Rules")
	util.AssertEqual(t, cust.Content, content)
	util.AssertEqual(t, cust.Description, "Project rules and instructions")
	if !cust.Status.IsValid() {
		t.Errorf("rules should never be degraded for lacking structure, got %v", cust.Status)
	}
}

func TestRulesParserFrontmatterLookalikeStaysValid(t *testing.T) {
	dir := util.CreateTempDir(t)
	path := filepath.Join(dir, "AGENTS.md")
	content := "---\nthis is not frontmatter, just a horizontal rule\n"
	util.WriteFile(t, path, content)

	cust, diags := parseOne(t, ForType(model.TypeRules), path, model.ScopeGlobal)

	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
	util.AssertEqual(t, cust.Content, content)
	if !cust.Status.IsValid() {
		t.Errorf("rules files have no structure to malform, got %v", cust.Status)
	}
}

func TestRulesParserMissingFile(t *testing.T) {
	custs, diags := ForType(model.TypeRules).Parse(filepath.Join(util.CreateTempDir(t), "AGENTS.md"), model.ScopeProject)

	if len(custs) != 0 {
		t.Errorf("expected no entries, got %d", len(custs))
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic for unreadable file, got %d", len(diags))
	}
}
