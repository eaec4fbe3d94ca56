// Package frontmatter parses the metadata block embedded at the top of
// content documents. The block is delimited by --- lines and holds
// key-value pairs where a value is either a scalar string or a list of
// strings. The parser mirrors the legacy publication pipeline rather
// than strict YAML: keys split on the first colon, quotes are stripped,
// inline [a, b] lists split on commas, and a repeated key overwrites
// the previous value.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Value is a frontmatter value: either a scalar string or an ordered
// list of strings. IsList distinguishes an empty list from an empty
// scalar.
type Value struct {
	Scalar string
	List   []string
	IsList bool
}

// Empty reports whether the value is falsy: an empty scalar or a list
// with no elements.
func (v Value) Empty() bool {
	if v.IsList {
		return len(v.List) == 0
	}
	return v.Scalar == ""
}

// Fields maps frontmatter keys to values. A nil Fields means the
// document has no frontmatter block at all.
type Fields map[string]Value

// Split separates a document into its frontmatter block and body text.
// The opening --- must be the very first line; when it is absent, or
// the block is never closed, the whole input is body and ok is false.
func Split(input string) (block, body string, ok bool) {
	if !strings.HasPrefix(input, "---\n") {
		return "", input, false
	}

	rest := input[4:]
	pos := 0
	for pos < len(rest) {
		nlIdx := strings.IndexByte(rest[pos:], '\n')

		var line string
		var nextPos int
		if nlIdx < 0 {
			line = rest[pos:]
			nextPos = len(rest)
		} else {
			line = rest[pos : pos+nlIdx]
			nextPos = pos + nlIdx + 1
		}

		if line == "---" {
			if nlIdx < 0 {
				return rest[:pos], "", true
			}
			return rest[:pos], rest[nextPos:], true
		}

		pos = nextPos
	}

	return "", input, false
}

// Parse extracts frontmatter fields from a document. The second return
// value is false when the document has no frontmatter block; the
// returned Fields is nil in that case, distinguishing absence from an
// empty block.
func Parse(input string) (Fields, bool) {
	block, _, ok := Split(input)
	if !ok {
		return nil, false
	}

	fields := Fields{}
	listKey := "" // key of the multi-line list currently being collected

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)

		if listKey != "" {
			if strings.HasPrefix(trimmed, "-") {
				elem := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
				v := fields[listKey]
				v.List = append(v.List, stripQuotes(elem))
				fields[listKey] = v
				continue
			}
			// A non-list line ends the list and is reprocessed as a
			// key line below.
			listKey = ""
		}

		if trimmed == "" {
			continue
		}

		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])

		switch {
		case val == "":
			fields[key] = Value{IsList: true}
			listKey = key
		case strings.HasPrefix(val, "[") && strings.HasSuffix(val, "]"):
			fields[key] = Value{IsList: true, List: parseInlineList(val)}
		default:
			fields[key] = Value{Scalar: stripQuotes(val)}
		}
	}

	return fields, true
}

// parseInlineList splits an [a, b, c] value into its elements.
func parseInlineList(val string) []string {
	inner := strings.TrimSpace(val[1 : len(val)-1])
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	elems := make([]string, 0, len(parts))
	for _, p := range parts {
		elems = append(elems, stripQuotes(strings.TrimSpace(p)))
	}
	return elems
}

// stripQuotes removes one pair of surrounding single or double quotes.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// CheckYAML probes whether the raw frontmatter block is well-formed
// YAML. The site pipeline parses frontmatter with a real YAML parser,
// so a block that our field parser accepts but YAML rejects will break
// rendering downstream.
func CheckYAML(block string) error {
	var doc map[string]interface{}
	return yaml.Unmarshal([]byte(block), &doc)
}
