package loaderutil

import (
	"fmt"
	"regexp"
	"strings"
)

type rootKind int

const (
	rootNone rootKind = iota
	rootAbsolute
	rootPath
	rootInvalid
)

// Root tells URLToRequest what to do with root-relative URLs ("/img/a.png").
// The zero value is NoRoot.
type Root struct {
	kind rootKind
	path string
}

// NoRoot leaves root-relative URLs relative to the current module, which
// turns "/img/a.png" into ".//img/a.png".
var NoRoot = Root{}

// AbsoluteRoot keeps root-relative URLs as absolute paths.
var AbsoluteRoot = Root{kind: rootAbsolute}

// RootPath prefixes root-relative URLs with p. A p containing "~" turns them
// into module requests.
func RootPath(p string) Root {
	return Root{kind: rootPath, path: p}
}

// RootFromValue converts a loosely typed configuration value: nil and false
// mean NoRoot, true means AbsoluteRoot, a string is a RootPath. Any other
// value yields a Root which URLToRequest rejects.
func RootFromValue(v any) Root {
	switch r := v.(type) {
	case nil:
		return NoRoot
	case bool:
		if r {
			return AbsoluteRoot
		}
		return NoRoot
	case string:
		return RootPath(r)
	}
	return Root{kind: rootInvalid, path: fmt.Sprint(v)}
}

// ParseRoot interprets a command-line root: "" and "false" mean NoRoot,
// "true" means AbsoluteRoot, anything else is a RootPath.
func ParseRoot(s string) Root {
	switch s {
	case "", "false":
		return NoRoot
	case "true":
		return AbsoluteRoot
	}
	return RootPath(s)
}

func (r Root) String() string {
	switch r.kind {
	case rootNone:
		return "<none>"
	case rootAbsolute:
		return "<absolute>"
	}
	return r.path
}

var (
	dataURI          = regexp.MustCompile(`(?i)^data:`)
	absoluteURL      = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*:`)
	protocolRelative = regexp.MustCompile(`^//`)
	templateURL      = regexp.MustCompile(`^#`)

	nonRequestURL = regexp.MustCompile("^data:|^chrome-extension:|^(https?:)?//|^[{}\\[\\]#*;,'§$%&(=?`´^°<>]|^about:blank$")
)

// IsURLRequest reports whether url refers to something a bundler can
// resolve. Data URIs are requests; absolute URLs with a scheme (other than
// Windows drive paths), protocol-relative URLs and template references
// starting with '#' are not.
func IsURLRequest(url string) bool {
	switch {
	case dataURI.MatchString(url):
		return true
	case absoluteURL.MatchString(url) && !isWin32Absolute(url):
		return false
	case protocolRelative.MatchString(url):
		return false
	case templateURL.MatchString(url):
		return false
	}
	return true
}

// IsURLRequestRoot is the older, stricter classification: besides absolute
// and protocol-relative URLs it rejects data URIs, "about:blank", strings
// starting with template punctuation, and root-relative URLs unless a root
// is given.
func IsURLRequestRoot(url string, root Root) bool {
	if nonRequestURL.MatchString(url) {
		return false
	}
	if root.kind == rootNone && strings.HasPrefix(url, "/") {
		return false
	}
	return true
}

var (
	nativeWin32Path    = regexp.MustCompile(`(?i)^[A-Z]:[/\\]|^\\\\`)
	moduleRequest      = regexp.MustCompile(`^[^?]*~`)
	tildeRootTail      = regexp.MustCompile(`([^~/])$`)
	explicitlyRelative = regexp.MustCompile(`^\.\.?/`)
)

// URLToRequest converts a URL found in an asset into a module request.
//
//	"path/to/module.js"          → "./path/to/module.js"
//	"~path/to/module.js"         → "path/to/module.js"
//	"/path/to/module.js", "~"    → "path/to/module.js"
//	"/path/to/module.js", "root" → "root/path/to/module.js"
//
// Windows absolute paths are kept. Everything up to a "~" outside of the
// query marks a module request and is dropped.
func URLToRequest(url string, root Root) (string, error) {
	if url == "" {
		return "", nil
	}
	var request string
	switch {
	case nativeWin32Path.MatchString(url):
		request = url
	case root.kind != rootNone && strings.HasPrefix(url, "/"):
		switch root.kind {
		case rootPath:
			if moduleRequest.MatchString(root.path) {
				request = tildeRootTail.ReplaceAllString(root.path, "$1/") + url[1:]
			} else {
				request = root.path + url
			}
		case rootAbsolute:
			request = url
		default:
			return "", fmt.Errorf("%w: url = %s, root = %s", ErrInvalidRoot, url, root)
		}
	case explicitlyRelative.MatchString(url):
		request = url
	default:
		request = "./" + url
	}
	return moduleRequest.ReplaceAllLiteralString(request, ""), nil
}
