package parser

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauern/lazyopencode/internal/logging"
	"github.com/klauern/lazyopencode/internal/model"
)

// malformedFrontmatterReason is the degradation reason recorded when a
// frontmatter block cannot be parsed as a flat mapping.
const malformedFrontmatterReason = "malformed frontmatter"

// FrontmatterParser parses command/*.md and agent/*.md files: an optional
// flat frontmatter block followed by a markdown body.
type FrontmatterParser struct {
	typ model.Type
}

// Type returns the customization type this parser handles.
func (p *FrontmatterParser) Type() model.Type {
	return p.typ
}

// Parse parses a single markdown file. A missing or malformed frontmatter
// block never fails the file: the whole content becomes the body and the
// entry is degraded with a diagnostic.
func (p *FrontmatterParser) Parse(path string, scope model.Scope) ([]model.Customization, []model.Diagnostic) {
	content, diag := readSource(path)
	if diag != nil {
		logging.Warn("skipping unreadable file",
			logging.Ctype(p.typ),
			logging.Path(path),
		)
		return nil, []model.Diagnostic{*diag}
	}

	cust, diags := parseFrontmatterFile(content, path, p.typ, scope, fileStem(path))
	return []model.Customization{cust}, diags
}

// parseFrontmatterFile builds a customization from markdown content with an
// optional frontmatter block. fallbackName is used when the frontmatter
// carries no name.
func parseFrontmatterFile(content []byte, path string, typ model.Type, scope model.Scope, fallbackName string) (model.Customization, []model.Diagnostic) {
	cust := model.Customization{
		Type:       typ,
		Scope:      scope,
		Name:       fallbackName,
		Path:       path,
		Status:     model.StatusValid,
		ModifiedAt: modTime(path),
	}

	result := SplitFrontmatter(content)
	if !result.HasFrontmatter {
		// Either there was no block at all (plain markdown, valid) or the
		// opening delimiter was never closed (degraded).
		cust.Content = result.Body
		if strings.HasPrefix(string(content), "---") {
			cust.Status = model.Degraded(malformedFrontmatterReason)
			return cust, []model.Diagnostic{{Path: path, Message: malformedFrontmatterReason}}
		}
		return cust, nil
	}

	fm, err := ParseFlatFrontmatter(result.Frontmatter)
	if err != nil {
		logging.Debug("frontmatter rejected",
			logging.Ctype(typ),
			logging.Path(path),
			logging.Err(err),
		)
		cust.Content = string(content)
		cust.Status = model.Degraded(malformedFrontmatterReason)
		return cust, []model.Diagnostic{{Path: path, Message: malformedFrontmatterReason}}
	}

	if name := fm["name"]; name != "" {
		cust.Name = name
	}
	cust.Description = fm["description"]
	cust.Content = result.Body
	cust.Metadata = metadataFrom(fm)
	return cust, nil
}

// metadataFrom returns the frontmatter keys beyond name and description, or
// nil when there are none.
func metadataFrom(fm map[string]string) map[string]string {
	var meta map[string]string
	for k, v := range fm {
		if k == "name" || k == "description" {
			continue
		}
		if meta == nil {
			meta = make(map[string]string)
		}
		meta[k] = v
	}
	return meta
}

// fileStem returns the file name without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// modTime returns the file's modification time, or the zero time when the
// file cannot be stat'd.
func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
