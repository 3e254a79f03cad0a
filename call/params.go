package call

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	doubleQuotedRe = regexp.MustCompile(`(\w+)\s*=\s*"([^"]*)"`)
	singleQuotedRe = regexp.MustCompile(`(\w+)\s*=\s*'([^']*)'`)
	unquotedRe     = regexp.MustCompile(`(\w+)\s*=\s*([^,\s)]+)`)
)

// parseParams turns a raw argument string into a typed parameter map.
// Double-quoted assignments win over single-quoted ones, and any quoted
// assignment wins over an unquoted one for the same key. Quoted values may
// contain commas and whitespace; unquoted tokens end at a comma, whitespace
// or closing parenthesis and go through type inference.
func parseParams(raw string) map[string]any {
	params := make(map[string]any)
	if strings.TrimSpace(raw) == "" {
		return params
	}

	for _, m := range doubleQuotedRe.FindAllStringSubmatch(raw, -1) {
		params[m[1]] = m[2]
	}
	for _, m := range singleQuotedRe.FindAllStringSubmatch(raw, -1) {
		if _, ok := params[m[1]]; !ok {
			params[m[1]] = m[2]
		}
	}
	for _, m := range unquotedRe.FindAllStringSubmatch(raw, -1) {
		if _, ok := params[m[1]]; ok {
			continue
		}
		params[m[1]] = convertValue(strings.TrimSpace(m[2]))
	}
	return params
}

// convertValue infers a typed value from an unquoted token. The precedence
// (boolean, null, integer, float, string) is part of the wire contract with
// existing model prompts and must not be reordered: the unquoted text "true"
// always becomes a boolean, never a string.
func convertValue(v string) any {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}

	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	case "none", "null":
		return nil
	}

	if isInteger(v) {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	if strings.Contains(v, ".") {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return v
}

// isInteger reports whether v is an optionally negative decimal integer.
func isInteger(v string) bool {
	s := strings.TrimPrefix(v, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
