package parser

import (
	"os"
	"path/filepath"

	"github.com/klauern/lazyopencode/internal/logging"
	"github.com/klauern/lazyopencode/internal/model"
)

// skillFileName is the manifest file every skill directory must contain.
const skillFileName = "SKILL.md"

// SkillParser parses skill/<name>/ directories. The directory must contain a
// SKILL.md file, which is parsed like any frontmatter markdown file except
// that the name falls back to the containing directory's name.
type SkillParser struct{}

// Type returns the customization type this parser handles.
func (p *SkillParser) Type() model.Type {
	return model.TypeSkill
}

// Parse parses a candidate skill directory. Directories without a SKILL.md
// are not skills and produce no entry and no diagnostic.
func (p *SkillParser) Parse(path string, scope model.Scope) ([]model.Customization, []model.Diagnostic) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	skillFile := filepath.Join(path, skillFileName)
	if fi, err := os.Stat(skillFile); err != nil || fi.IsDir() {
		logging.Debug("directory has no skill manifest", logging.Path(path))
		return nil, nil
	}

	content, diag := readSource(skillFile)
	if diag != nil {
		return nil, []model.Diagnostic{*diag}
	}

	cust, diags := parseFrontmatterFile(content, skillFile, model.TypeSkill, scope, filepath.Base(path))
	return []model.Customization{cust}, diags
}
