/*
Package html finds the module requests an HTML document makes.

Requests returns one Reference for every attribute which points to an asset
the bundler has to resolve, e.g. the src of an image or the href of a
stylesheet link. References which are not requests (absolute URLs, template
fragments) are skipped.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/loaderutil"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Reference is an attribute value of an HTML element which refers to an
// asset, together with the module request it translates to.
type Reference struct {
	Tag     string // element name, e.g. "img"
	Attr    string // attribute name, e.g. "src"
	URL     string // attribute value, or one candidate of a srcset
	Request string // module request for URL
}

// attributes lists the asset attributes per element.
var attributes = map[atom.Atom][]string{
	atom.Img:    {"src", "srcset"},
	atom.Script: {"src"},
	atom.Link:   {"href"},
	atom.Source: {"src", "srcset"},
	atom.Video:  {"src", "poster"},
	atom.Audio:  {"src"},
	atom.Input:  {"src"},
}

// Requests parses an HTML document and collects its asset references in
// document order. root is handed to loaderutil.URLToRequest.
func Requests(input io.Reader, root loaderutil.Root) ([]Reference, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	var refs []Reference
	if err := collectRequests(doc, root, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

func collectRequests(n *html.Node, root loaderutil.Root, refs *[]Reference) error {
	if n.Type == html.ElementNode {
		for _, name := range attributes[n.DataAtom] {
			value, ok := attr(n, name)
			if !ok {
				continue
			}
			urls := []string{strings.TrimSpace(value)}
			if name == "srcset" {
				urls = srcsetURLs(value)
			}
			for _, u := range urls {
				if u == "" || !loaderutil.IsURLRequest(u) {
					loaderutil.T().Debugf("<%s %s=%q> is not a request", n.Data, name, u)
					continue
				}
				req, err := loaderutil.URLToRequest(u, root)
				if err != nil {
					return fmt.Errorf("<%s %s=%q>: %w", n.Data, name, u, err)
				}
				*refs = append(*refs, Reference{Tag: n.Data, Attr: name, URL: u, Request: req})
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectRequests(c, root, refs); err != nil {
			return err
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// srcsetURLs extracts the URLs of the image candidates of a srcset
// attribute, dropping the width and density descriptors.
func srcsetURLs(srcset string) []string {
	var urls []string
	for _, candidate := range strings.Split(srcset, ",") {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			urls = append(urls, fields[0])
		}
	}
	return urls
}
