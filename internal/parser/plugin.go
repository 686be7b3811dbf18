package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauern/lazyopencode/internal/logging"
	"github.com/klauern/lazyopencode/internal/model"
)

// PluginParser lists the immediate children of a plugin directory. Plugin
// content is opaque to opencode's loader, so children are cataloged by name
// without being parsed.
type PluginParser struct{}

// Type returns the customization type this parser handles.
func (p *PluginParser) Type() model.Type {
	return model.TypePlugin
}

// Parse enumerates the plugin directory at path. A missing directory yields
// nothing; an unreadable one yields a diagnostic.
func (p *PluginParser) Parse(path string, scope model.Scope) ([]model.Customization, []model.Diagnostic) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		msg := "failed to list plugin directory"
		if os.IsPermission(err) {
			msg = "permission denied"
		}
		return nil, []model.Diagnostic{{Path: path, Message: fmt.Sprintf("%s: %v", msg, err)}}
	}

	custs := make([]model.Customization, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		childPath := filepath.Join(path, name)
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		custs = append(custs, model.Customization{
			Type:        model.TypePlugin,
			Scope:       scope,
			Name:        stem,
			Path:        childPath,
			Description: "Plugin: " + stem,
			Status:      model.StatusValid,
			ModifiedAt:  modTime(childPath),
		})
	}

	logging.Debug("listed plugins", logging.Path(path), logging.Count(len(custs)))
	return custs, nil
}
