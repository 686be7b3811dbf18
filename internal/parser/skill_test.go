package parser

import (
	"path/filepath"
	"testing"

	"github.com/klauern/lazyopencode/internal/model"
	"github.com/klauern/lazyopencode/internal/util"
)

func TestSkillParserValidSkill(t *testing.T) {
	dir := util.CreateTempDir(t)
	skillDir := filepath.Join(dir, "code-review")
	util.WriteFile(t, filepath.Join(skillDir, "SKILL.md"), `---
name: reviewer
description: Reviews pull requests
---
Look at the diff.
`)

	cust, diags := parseOne(t, ForType(model.TypeSkill), skillDir, model.ScopeGlobal)

	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
	util.AssertEqual(t, cust.Type, model.TypeSkill)
	util.AssertEqual(t, cust.Name, "reviewer")
	util.AssertEqual(t, cust.Description, "Reviews pull requests")
	util.AssertEqual(t, cust.Path, filepath.Join(skillDir, "SKILL.md"))
}

func TestSkillParserNameFallsBackToDirectory(t *testing.T) {
	dir := util.CreateTempDir(t)
	skillDir := filepath.Join(dir, "code-review")
	util.WriteFile(t, filepath.Join(skillDir, "SKILL.md"), "Instructions without frontmatter.\n")

	cust, _ := parseOne(t, ForType(model.TypeSkill), skillDir, model.ScopeProject)

	// Directory name, not "SKILL".
	util.AssertEqual(t, cust.Name, "code-review")
	if !cust.Status.IsValid() {
		t.Errorf("plain SKILL.md should be valid, got %v", cust.Status)
	}
}

func TestSkillParserDirectoryWithoutManifest(t *testing.T) {
	dir := util.CreateTempDir(t)
	skillDir := filepath.Join(dir, "not-a-skill")
	util.WriteFile(t, filepath.Join(skillDir, "README.md"), "nothing here")

	custs, diags := ForType(model.TypeSkill).Parse(skillDir, model.ScopeProject)

	if len(custs) != 0 {
		t.Errorf("expected no entries for a directory without SKILL.md, got %d", len(custs))
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestSkillParserRegularFile(t *testing.T) {
	dir := util.CreateTempDir(t)
	path := filepath.Join(dir, "stray.md")
	util.WriteFile(t, path, "not a directory")

	custs, diags := ForType(model.TypeSkill).Parse(path, model.ScopeGlobal)

	if len(custs) != 0 || len(diags) != 0 {
		t.Errorf("regular files should be ignored, got %d entries and %d diagnostics", len(custs), len(diags))
	}
}

func TestSkillParserMalformedFrontmatter(t *testing.T) {
	dir := util.CreateTempDir(t)
	skillDir := filepath.Join(dir, "flaky")
	util.WriteFile(t, filepath.Join(skillDir, "SKILL.md"), "---\nname: flaky\nno closing\n")

	cust, diags := parseOne(t, ForType(model.TypeSkill), skillDir, model.ScopeGlobal)

	if cust.Status.IsValid() {
		t.Fatal("expected degraded status")
	}
	util.AssertEqual(t, cust.Name, "flaky")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
}
