package llm

import (
	"strings"
)

// ExtractJSONObject returns the first '{' through the last '}' of text.
// Models routinely wrap their JSON in prose; the span between the outermost
// braces is the payload. Empty string when no object is present.
func ExtractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}

// ExtractFenced strips a markdown code fence from reply, returning the
// fenced contents. A reply without a fence comes back trimmed but otherwise
// untouched, so fenced and bare JSON parse identically downstream.
func ExtractFenced(reply string) string {
	trimmed := strings.TrimSpace(reply)

	open := strings.Index(trimmed, "```")
	if open == -1 {
		return trimmed
	}

	rest := trimmed[open+3:]
	// Language tag on the opening fence, e.g. ```json
	if nl := strings.Index(rest, "\n"); nl != -1 {
		firstLine := strings.TrimSpace(rest[:nl])
		if !strings.ContainsAny(firstLine, "{[") {
			rest = rest[nl+1:]
		}
	}

	if end := strings.LastIndex(rest, "```"); end != -1 {
		rest = rest[:end]
	}

	return strings.TrimSpace(rest)
}

// StripQuotes trims whitespace and one layer of surrounding quote
// characters from a single-string model reply.
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	pairs := [][2]string{
		{`"`, `"`},
		{"'", "'"},
		{"“", "”"},
		{"‘", "’"},
	}
	for _, p := range pairs {
		opening, closing := p[0], p[1]
		if len(s) >= len(opening)+len(closing) && strings.HasPrefix(s, opening) && strings.HasSuffix(s, closing) {
			return strings.TrimSpace(s[len(opening) : len(s)-len(closing)])
		}
	}
	return s
}
