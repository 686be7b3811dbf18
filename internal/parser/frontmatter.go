package parser

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/klauern/lazyopencode/internal/model"
)

// frontmatterDelimiter opens and closes a frontmatter block.
var frontmatterDelimiter = []byte("---")

// FrontmatterResult contains the outcome of splitting a markdown file into
// frontmatter and body.
type FrontmatterResult struct {
	// Frontmatter contains the raw bytes between the delimiters.
	Frontmatter []byte
	// Body contains the content after the closing delimiter, or the whole
	// input when no frontmatter was found.
	Body string
	// HasFrontmatter indicates whether a complete delimited block was found.
	HasFrontmatter bool
}

// SplitFrontmatter extracts a "---" delimited frontmatter block from content.
// A missing opening or closing delimiter is not an error: the whole input is
// returned as body with HasFrontmatter false. Windows line endings are
// tolerated.
func SplitFrontmatter(content []byte) FrontmatterResult {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return FrontmatterResult{Body: string(content)}
	}

	remaining := content[len(frontmatterDelimiter):]
	if bytes.HasPrefix(remaining, []byte("\r\n")) {
		remaining = remaining[2:]
	} else {
		remaining = remaining[1:]
	}

	var frontmatter []byte
	var bodyStart int
	found := false

	if bytes.HasPrefix(remaining, frontmatterDelimiter) {
		// Empty block: ---\n---
		frontmatter = []byte{}
		bodyStart = len(frontmatterDelimiter)
		found = true
	} else {
		for _, nl := range []string{"\n", "\r\n"} {
			closing := append([]byte(nl), frontmatterDelimiter...)
			if idx := bytes.Index(remaining, closing); idx != -1 {
				frontmatter = remaining[:idx]
				bodyStart = idx + len(closing)
				found = true
				break
			}
		}
	}

	if !found {
		return FrontmatterResult{Body: string(content)}
	}

	clean := bytes.ReplaceAll(frontmatter, []byte("\r\n"), []byte("\n"))
	clean = bytes.TrimRight(clean, "\r")

	if bodyStart < len(remaining) {
		if bytes.HasPrefix(remaining[bodyStart:], []byte("\r\n")) {
			bodyStart += 2
		} else if bytes.HasPrefix(remaining[bodyStart:], []byte("\n")) {
			bodyStart++
		}
	}

	var body string
	if bodyStart < len(remaining) {
		body = string(remaining[bodyStart:])
	}

	return FrontmatterResult{
		Frontmatter:    clean,
		Body:           body,
		HasFrontmatter: true,
	}
}

// ParseFlatFrontmatter parses frontmatter as a flat key→string mapping.
// Scalar values (strings, numbers, booleans) are stringified; a block that is
// not valid YAML, not a mapping, or contains nested values is rejected.
func ParseFlatFrontmatter(frontmatter []byte) (map[string]string, error) {
	if len(frontmatter) == 0 {
		return map[string]string{}, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(frontmatter, &raw); err != nil {
		return nil, fmt.Errorf("frontmatter is not a valid YAML mapping: %w", err)
	}

	result := make(map[string]string, len(raw))
	for key, val := range raw {
		s, err := scalarString(val)
		if err != nil {
			return nil, fmt.Errorf("frontmatter key %q: %w", key, err)
		}
		result[key] = s
	}
	return result, nil
}

// scalarString stringifies a scalar YAML value.
func scalarString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("value is not a scalar")
	}
}

// readSource reads a source file, turning read failures into a skip
// diagnostic so a single unreadable file never stops a pass.
func readSource(path string) ([]byte, *model.Diagnostic) {
	// #nosec G304 - path comes from directory enumeration under the
	// configured roots
	content, err := os.ReadFile(path)
	if err != nil {
		msg := "failed to read file"
		if os.IsPermission(err) {
			msg = "permission denied"
		}
		return nil, &model.Diagnostic{Path: path, Message: fmt.Sprintf("%s: %v", msg, err)}
	}
	return content, nil
}
