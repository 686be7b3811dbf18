package parser

import (
	"github.com/klauern/lazyopencode/internal/model"
)

// rulesDescription mirrors the summary opencode shows for AGENTS.md files.
const rulesDescription = "Project rules and instructions"

// RulesParser parses AGENTS.md rules files. Rules are plain markdown with no
// expected structure, so they are never degraded for lacking one.
type RulesParser struct{}

// Type returns the customization type this parser handles.
func (p *RulesParser) Type() model.Type {
	return model.TypeRules
}

// Parse reads the whole file as content under the fixed name "Rules".
func (p *RulesParser) Parse(path string, scope model.Scope) ([]model.Customization, []model.Diagnostic) {
	content, diag := readSource(path)
	if diag != nil {
		return nil, []model.Diagnostic{*diag}
	}

	cust := model.Customization{
		Type:        model.TypeRules,
		Scope:       scope,
		Name:        "Rules",
		Path:        path,
		Description: rulesDescription,
		Content:     string(content),
		Status:      model.StatusValid,
		ModifiedAt:  modTime(path),
	}
	return []model.Customization{cust}, nil
}
