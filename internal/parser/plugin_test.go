package parser

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauern/lazyopencode/internal/model"
	"github.com/klauern/lazyopencode/internal/util"
)

func TestPluginParserListsChildren(t *testing.T) {
	dir := util.CreateTempDir(t)
	pluginDir := filepath.Join(dir, "plugin")
	util.WriteFile(t, filepath.Join(pluginDir, "notify.ts"), "export default {}")
	util.WriteFile(t, filepath.Join(pluginDir, "stats.js"), "module.exports = {}")
	util.MkdirAll(t, filepath.Join(pluginDir, "bundled"))

	custs, diags := ForType(model.TypePlugin).Parse(pluginDir, model.ScopeProject)

	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
	if len(custs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(custs))
	}

	sort.Slice(custs, func(i, j int) bool { return custs[i].Name < custs[j].Name })
	util.AssertEqual(t, custs[0].Name, "bundled")
	util.AssertEqual(t, custs[1].Name, "notify")
	util.AssertEqual(t, custs[2].Name, "stats")

	for _, c := range custs {
		util.AssertEqual(t, c.Type, model.TypePlugin)
		util.AssertEqual(t, c.Content, "")
		if !c.Status.IsValid() {
			t.Errorf("plugin %q unexpectedly degraded", c.Name)
		}
	}
}

func TestPluginParserSkipsHiddenEntries(t *testing.T) {
	dir := util.CreateTempDir(t)
	pluginDir := filepath.Join(dir, "plugin")
	util.WriteFile(t, filepath.Join(pluginDir, ".DS_Store"), "")
	util.WriteFile(t, filepath.Join(pluginDir, "real.ts"), "")

	custs, _ := ForType(model.TypePlugin).Parse(pluginDir, model.ScopeGlobal)
	if len(custs) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(custs))
	}
	util.AssertEqual(t, custs[0].Name, "real")
}

func TestPluginParserMissingDirectory(t *testing.T) {
	custs, diags := ForType(model.TypePlugin).Parse(filepath.Join(util.CreateTempDir(t), "plugin"), model.ScopeProject)

	if len(custs) != 0 || len(diags) != 0 {
		t.Errorf("missing plugin dir should be benign, got %d entries and %d diagnostics", len(custs), len(diags))
	}
}

func TestForTypeCoversAllTypes(t *testing.T) {
	for _, typ := range model.AllTypes() {
		p := ForType(typ)
		if p == nil {
			t.Errorf("no parser registered for %q", typ)
			continue
		}
		util.AssertEqual(t, p.Type(), typ)
	}

	if ForType(model.Type("widget")) != nil {
		t.Error("expected nil parser for unknown type")
	}
}
