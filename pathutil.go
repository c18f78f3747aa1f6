package loaderutil

import (
	"os"
	"path"
	"regexp"
	"strings"
)

// Paths may come in POSIX or in Windows notation, independent of the
// platform we run on. Helpers in this file pick the rules from the shape of
// the path.

var win32Rooted = regexp.MustCompile(`^[A-Za-z]:|^\\\\[^\\/]`)

// isWin32Absolute follows the Windows notion of absolute paths, where a
// leading slash counts as absolute as well.
func isWin32Absolute(p string) bool {
	if p == "" {
		return false
	}
	if p[0] == '/' || p[0] == '\\' {
		return true
	}
	return len(p) > 2 && isDriveLetter(p[0]) && p[1] == ':' && (p[2] == '/' || p[2] == '\\')
}

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAbsolutePath(p string) bool {
	return path.IsAbs(p) || isWin32Absolute(p)
}

// relativePath is the relative path from directory `from` to `to`. If either
// path carries a drive letter or is a UNC path, Windows rules apply.
func relativePath(from, to string) string {
	if win32Rooted.MatchString(from) || win32Rooted.MatchString(to) {
		return win32Relative(from, to)
	}
	return posixRelative(from, to)
}

func posixResolve(p string) []string {
	if !path.IsAbs(p) {
		wd, err := os.Getwd()
		if err != nil {
			wd = "/"
		}
		p = path.Join(wd, p)
	}
	p = path.Clean(p)
	if p == "/" {
		return nil
	}
	return strings.Split(p[1:], "/")
}

func posixRelative(from, to string) string {
	f, t := posixResolve(from), posixResolve(to)
	n := commonPrefix(f, t, func(a, b string) bool { return a == b })
	return joinRelative(len(f)-n, t[n:], "/")
}

// win32Resolve splits a Windows path into its root (drive or UNC share) and
// its normalized segments.
func win32Resolve(p string) (string, []string) {
	p = strings.ReplaceAll(p, "/", `\`)
	root := ""
	switch {
	case strings.HasPrefix(p, `\\`):
		parts := strings.SplitN(strings.TrimLeft(p, `\`), `\`, 3)
		if len(parts) >= 2 {
			root = `\\` + parts[0] + `\` + parts[1]
			p = ""
			if len(parts) == 3 {
				p = parts[2]
			}
		}
	case len(p) > 1 && isDriveLetter(p[0]) && p[1] == ':':
		root, p = p[:2], p[2:]
	}
	var segs []string
	for _, s := range strings.Split(p, `\`) {
		switch s {
		case "", ".":
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, s)
		}
	}
	return root, segs
}

func win32Relative(from, to string) string {
	fr, f := win32Resolve(from)
	tr, t := win32Resolve(to)
	if !strings.EqualFold(fr, tr) {
		return tr + `\` + strings.Join(t, `\`)
	}
	n := commonPrefix(f, t, strings.EqualFold)
	return joinRelative(len(f)-n, t[n:], `\`)
}

func commonPrefix(a, b []string, eq func(string, string) bool) int {
	n := 0
	for n < len(a) && n < len(b) && eq(a[n], b[n]) {
		n++
	}
	return n
}

func joinRelative(ups int, rest []string, sep string) string {
	segs := make([]string, 0, ups+len(rest))
	for j := 0; j < ups; j++ {
		segs = append(segs, "..")
	}
	return strings.Join(append(segs, rest...), sep)
}

// resourceParts splits a resource path into directory (with trailing slash,
// empty if there is none), name and extension. Backslashes are treated as
// separators. A leading dot does not start an extension.
func resourceParts(resourcePath string) (dir, name, ext string) {
	dir, base := path.Split(strings.ReplaceAll(resourcePath, `\`, "/"))
	if i := strings.LastIndexByte(base, '.'); i > 0 && strings.Trim(base[:i], ".") != "" {
		ext = base[i:]
	}
	return dir, base[:len(base)-len(ext)], ext
}
