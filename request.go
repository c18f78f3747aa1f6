package loaderutil

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var relativeRequest = regexp.MustCompile(`^\.\.?[/\\]`)

// StringifyRequest converts a request into a quoted string literal to be used
// in generated code. Absolute paths of the "!"-separated parts are made
// relative to lc.Context, so generated code does not depend on the machine
// it was built on. Paths on another drive than the context stay absolute.
// Queries are kept unchanged.
func StringifyRequest(lc *LoaderContext, request string) string {
	parts := strings.Split(request, "!")
	for i, part := range parts {
		parts[i] = stringifyPart(lc.Context, part)
	}
	return quote(strings.Join(parts, "!"))
}

func stringifyPart(context, part string) string {
	single, query := part, ""
	if i := strings.IndexByte(part, '?'); i >= 0 {
		single, query = part[:i], part[i:]
	}
	if context != "" && isAbsolutePath(single) {
		single = relativePath(context, single)
		if isAbsolutePath(single) {
			return single + query
		}
		if !relativeRequest.MatchString(single) {
			single = "./" + single
		}
	}
	return strings.ReplaceAll(single, `\`, "/") + query
}

// quote renders s as a JSON string. HTML characters are not escaped.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		T().Errorf("cannot quote request %q: %v", s, err)
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// GetCurrentRequest is the request of the current transformer: the requests
// of the chain from lc.LoaderIndex on, followed by the resource.
func GetCurrentRequest(lc *LoaderContext) string {
	if lc.CurrentRequest != "" {
		return lc.CurrentRequest
	}
	return chainRequest(lc, lc.LoaderIndex)
}

// GetRemainingRequest is the request still to be processed after the current
// transformer.
func GetRemainingRequest(lc *LoaderContext) string {
	if lc.RemainingRequest != "" {
		return lc.RemainingRequest
	}
	return chainRequest(lc, lc.LoaderIndex+1)
}

func chainRequest(lc *LoaderContext, from int) string {
	from = max(0, min(from, len(lc.Loaders)))
	requests := make([]string, 0, len(lc.Loaders)-from+1)
	for _, l := range lc.Loaders[from:] {
		requests = append(requests, l.Request)
	}
	return strings.Join(append(requests, lc.Resource), "!")
}

// ParseString unquotes a JSON string literal or a single-quoted string. Any
// other input is read as the contents of a JSON string. If that fails, s is
// returned unchanged.
func ParseString(s string) string {
	if s == "" {
		return s
	}
	literal := s
	switch {
	case s[0] == '"':
	case s[0] == '\'' && len(s) > 1 && s[len(s)-1] == '\'':
		literal = `"` + escapeQuotes(s[1:len(s)-1]) + `"`
	default:
		literal = `"` + s + `"`
	}
	var out string
	if err := json.Unmarshal([]byte(literal), &out); err != nil {
		return s
	}
	return out
}

// escapeQuotes escapes double quotes which are not already part of an
// escape sequence.
func escapeQuotes(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s):
			sb.WriteByte(c)
			i++
			sb.WriteByte(s[i])
		case c == '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
