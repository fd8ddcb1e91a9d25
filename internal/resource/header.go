package resource

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

const delim = "---"

// splitHeader separates the YAML header (between leading --- lines) from the
// body. The single blank line that follows the closing delimiter is not part
// of the body. Without a complete header the entire input is body.
func splitHeader(raw string) (header, body string, ok bool) {
	s := strings.TrimLeft(raw, "\r\n")
	first, rest, found := strings.Cut(s, "\n")
	if !found || strings.TrimRight(first, "\r") != delim {
		return "", raw, false
	}

	var hb strings.Builder
	for rest != "" {
		line, after, _ := strings.Cut(rest, "\n")
		if strings.TrimRight(line, "\r") == delim {
			return hb.String(), dropBlankLine(after), true
		}
		hb.WriteString(line)
		hb.WriteByte('\n')
		rest = after
	}
	// No closing delimiter.
	return "", raw, false
}

func dropBlankLine(s string) string {
	switch {
	case strings.HasPrefix(s, "\r\n"):
		return s[2:]
	case strings.HasPrefix(s, "\n"):
		return s[1:]
	default:
		return s
	}
}

// decodeHeader reads the raw header into loosely typed fields. Invalid YAML
// yields no fields at all, so every accessor falls back to its zero value.
func decodeHeader(raw string) (fields, string) {
	header, body, ok := splitHeader(raw)
	if !ok {
		return fields{}, body
	}
	var f map[string]any
	if err := yaml.Unmarshal([]byte(header), &f); err != nil || f == nil {
		return fields{}, body
	}
	return fields(f), body
}

// renderHeader encodes v as the YAML header and appends body after one blank line.
func renderHeader(v any, body string) string {
	var buf bytes.Buffer
	buf.WriteString(delim + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	// Header structs hold only strings, integers and string slices, which
	// always encode, and Close only flushes into buf, which cannot fail.
	_ = enc.Encode(v)
	_ = enc.Close()
	buf.WriteString(delim + "\n\n")
	buf.WriteString(body)
	return buf.String()
}
