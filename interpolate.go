package loaderutil

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// Template is a file name template: either a Pattern or a TemplateFunc.
type Template interface {
	pattern(resourcePath, resourceQuery string) string
}

// Pattern is a literal template string.
type Pattern string

func (p Pattern) pattern(string, string) string {
	return string(p)
}

// TemplateFunc computes the template from the resource path and query. The
// query is empty unless the resource has one beyond a bare "?".
type TemplateFunc func(resourcePath, resourceQuery string) string

func (f TemplateFunc) pattern(resourcePath, resourceQuery string) string {
	return f(resourcePath, resourceQuery)
}

// Interpolator post-processes an interpolated name. It receives the name, the
// template it was computed from and the options of the call.
type Interpolator func(name string, tmpl Template, opts *InterpolateOptions) string

// InterpolateOptions configure InterpolateName. A nil *InterpolateOptions is
// valid and equals the zero value.
type InterpolateOptions struct {
	// Content is hashed for hash placeholders. If it is nil, hash placeholders
	// are left as they are.
	Content []byte
	// Context is the directory [path] is made relative to.
	Context string
	// RegExp is matched against the resource path; capture groups fill [N].
	RegExp string
	// Defaults for hash placeholders which do not name them.
	HashFunction     string
	HashDigest       string
	HashDigestLength int
	Salt             []byte
	// DottedExt makes [ext] include the leading dot, with an empty default,
	// and the default template "[contenthash][ext]". Otherwise [ext] has no
	// dot, defaults to "bin", and the default template is "[hash].[ext]".
	DottedExt bool
	// Custom is invoked last; its result replaces the interpolated name.
	Custom Interpolator
}

const (
	legacyTemplate = "[hash].[ext]"
	dottedTemplate = "[contenthash][ext]"
)

var (
	hashPlaceholder  = regexp.MustCompile(`(?i)\[(?:([^\[:\]]+):)?(?:hash|contenthash)(?::([a-z]+\d*))?(?::(\d+))?\]`)
	emojiPlaceholder = regexp.MustCompile(`(?i)\[emoji(?::(\d+))?\]`)
	parentDirs       = regexp.MustCompile(`\.\.(/)?`)
)

// pathTokens are substituted in this order.
var pathTokens = []struct {
	re    *regexp.Regexp
	value func(*nameParts) string
}{
	{regexp.MustCompile(`(?i)\[folder\]`), func(p *nameParts) string { return p.folder }},
	{regexp.MustCompile(`(?i)\[query\]`), func(p *nameParts) string { return p.query }},
	{regexp.MustCompile(`(?i)\[path\]`), func(p *nameParts) string { return p.directory }},
	{regexp.MustCompile(`(?i)\[name\]`), func(p *nameParts) string { return p.basename }},
	{regexp.MustCompile(`(?i)\[ext\]`), func(p *nameParts) string { return p.ext }},
}

// nameParts are the values of the path-derived placeholders.
type nameParts struct {
	ext       string
	basename  string
	directory string
	folder    string
	query     string
}

// InterpolateName expands a file name template for the resource of lc.
// An empty Pattern selects the default template. Unknown placeholders are
// kept verbatim.
//
// Errors come from hash placeholders (unknown algorithm or encoding) and from
// a RegExp which does not compile.
func InterpolateName(lc *LoaderContext, tmpl Template, opts *InterpolateOptions) (string, error) {
	if lc == nil {
		lc = &LoaderContext{}
	}
	if opts == nil {
		opts = &InterpolateOptions{}
	}
	query := ""
	if len(lc.ResourceQuery) > 1 {
		query = lc.ResourceQuery
	}
	var url string
	if tmpl != nil {
		url = tmpl.pattern(lc.ResourcePath, query)
	}
	if _, isPattern := tmpl.(Pattern); url == "" && (tmpl == nil || isPattern) {
		url = legacyTemplate
		if opts.DottedExt {
			url = dottedTemplate
		}
	}
	parts := splitResource(lc.ResourcePath, opts)
	if i := strings.IndexByte(query, '#'); i >= 0 {
		query = query[:i]
	}
	parts.query = query
	if opts.Content != nil {
		var err error
		if url, err = replaceHashes(url, opts); err != nil {
			return "", err
		}
	}
	for _, tok := range pathTokens {
		url = tok.re.ReplaceAllLiteralString(url, tok.value(&parts))
	}
	if opts.RegExp != "" && lc.ResourcePath != "" {
		re, err := regexp.Compile(opts.RegExp)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidRegExp, err)
		}
		for i, group := range re.FindStringSubmatch(lc.ResourcePath) {
			url = strings.ReplaceAll(url, "["+strconv.Itoa(i)+"]", group)
		}
	}
	if opts.Custom != nil {
		url = opts.Custom(url, tmpl, opts)
	}
	T().Debugf("interpolated %q for %q", url, lc.ResourcePath)
	return url, nil
}

// splitResource derives the path placeholders. Parent directory segments
// in [path] are replaced by "_" so that names cannot escape the output
// directory.
func splitResource(resourcePath string, opts *InterpolateOptions) nameParts {
	parts := nameParts{ext: "bin", basename: "file"}
	if opts.DottedExt {
		parts.ext = ""
	}
	if resourcePath == "" {
		return parts
	}
	dir, name, ext := resourceParts(resourcePath)
	if ext != "" {
		parts.ext = ext
		if !opts.DottedExt {
			parts.ext = ext[1:]
		}
	}
	parts.basename = name
	if dir == "" {
		return parts
	}
	var directory string
	if opts.Context != "" {
		directory = relativePath(opts.Context, dir+"_")
		directory = strings.ReplaceAll(directory, `\`, "/")
		directory = parentDirs.ReplaceAllString(directory, "_$1")
		directory = strings.TrimSuffix(directory, "_")
	} else {
		directory = parentDirs.ReplaceAllString(dir, "_$1")
	}
	if len(directory) > 1 {
		parts.directory = directory
		parts.folder = path.Base(directory)
	}
	return parts
}

// replaceHashes computes every hash and emoji placeholder independently.
// The first failing placeholder aborts the interpolation.
func replaceHashes(url string, opts *InterpolateOptions) (string, error) {
	var firstErr error
	digest := func(spec DigestSpec) string {
		if firstErr != nil {
			return ""
		}
		token, err := spec.Digest(opts.Content)
		if err != nil {
			firstErr = err
		}
		return token
	}
	url = hashPlaceholder.ReplaceAllStringFunc(url, func(m string) string {
		sub := hashPlaceholder.FindStringSubmatch(m)
		spec := DigestSpec{
			Algorithm: orDefault(sub[1], opts.HashFunction),
			Encoding:  orDefault(sub[2], opts.HashDigest),
			MaxLength: opts.HashDigestLength,
			Salt:      opts.Salt,
		}
		if sub[3] != "" {
			spec.MaxLength, _ = strconv.Atoi(sub[3])
		}
		return digest(spec)
	})
	url = emojiPlaceholder.ReplaceAllStringFunc(url, func(m string) string {
		sub := emojiPlaceholder.FindStringSubmatch(m)
		spec := DigestSpec{
			Algorithm: opts.HashFunction,
			Encoding:  "emoji",
			Salt:      opts.Salt,
		}
		if sub[1] != "" {
			spec.MaxLength, _ = strconv.Atoi(sub[1])
		}
		return digest(spec)
	})
	return url, firstErr
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
