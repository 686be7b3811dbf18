package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/klauern/lazyopencode/internal/logging"
	"github.com/klauern/lazyopencode/internal/model"
)

// mcpConfigKey is the top-level opencode.json key holding MCP server
// definitions.
const mcpConfigKey = "mcp"

// MCPParser extracts MCP server entries from an opencode.json file. Each key
// under the top-level "mcp" object becomes one customization. A file that is
// not valid JSON, or that lacks the "mcp" key, yields zero entries and one
// diagnostic; the rest of the pass is unaffected.
type MCPParser struct{}

// Type returns the customization type this parser handles.
func (p *MCPParser) Type() model.Type {
	return model.TypeMCP
}

// Parse parses all MCP server entries from the file at path.
func (p *MCPParser) Parse(path string, scope model.Scope) ([]model.Customization, []model.Diagnostic) {
	content, diag := readSource(path)
	if diag != nil {
		return nil, []model.Diagnostic{*diag}
	}

	var config map[string]json.RawMessage
	if err := json.Unmarshal(stripJSONComments(content), &config); err != nil {
		logging.Warn("invalid JSON in opencode config",
			logging.Path(path),
			logging.Err(err),
		)
		return nil, []model.Diagnostic{{Path: path, Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}

	raw, ok := config[mcpConfigKey]
	if !ok {
		return nil, []model.Diagnostic{{Path: path, Message: fmt.Sprintf("no %q key in config", mcpConfigKey)}}
	}

	var servers map[string]map[string]any
	if err := json.Unmarshal(raw, &servers); err != nil {
		return nil, []model.Diagnostic{{Path: path, Message: fmt.Sprintf("%q key is not a server mapping: %v", mcpConfigKey, err)}}
	}

	modified := modTime(path)
	custs := make([]model.Customization, 0, len(servers))
	for name, server := range servers {
		serverType := "unknown"
		if t, ok := server["type"].(string); ok && t != "" {
			serverType = t
		}

		content := ""
		if pretty, err := json.MarshalIndent(server, "", "  "); err == nil {
			content = string(pretty)
		}

		custs = append(custs, model.Customization{
			Type:        model.TypeMCP,
			Scope:       scope,
			Name:        name,
			Path:        path,
			Description: fmt.Sprintf("MCP (%s)", serverType),
			Content:     content,
			Status:      model.StatusValid,
			Metadata:    serverMetadata(server),
			ModifiedAt:  modified,
		})
	}

	logging.Debug("parsed MCP servers", logging.Path(path), logging.Count(len(custs)))
	return custs, nil
}

// serverMetadata flattens the scalar fields of a server config into display
// metadata.
func serverMetadata(server map[string]any) map[string]string {
	var meta map[string]string
	for k, v := range server {
		s, err := scalarString(v)
		if err != nil {
			continue
		}
		if meta == nil {
			meta = make(map[string]string)
		}
		meta[k] = s
	}
	return meta
}

// stripJSONComments removes // line comments so JSONC-style opencode.json
// files decode cleanly. Whole-line comments are dropped; trailing comments
// are cut only when no quote precedes them on the line, which is enough for
// the comment styles opencode documents.
func stripJSONComments(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") {
			continue
		}
		if idx := strings.Index(line, "//"); idx != -1 && !strings.Contains(line[:idx], `"`) {
			line = line[:idx]
		}
		out = append(out, line)
	}
	return []byte(strings.Join(out, "\n"))
}
