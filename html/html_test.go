package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/loaderutil"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const page = `<!DOCTYPE html>
<html>
<head>
  <link rel="stylesheet" href="style.css">
  <link rel="icon" href="https://example.com/favicon.ico">
  <script src="~lib/app.js"></script>
</head>
<body>
  <img src="/img/logo.png" srcset="img/logo-2x.png 2x, img/logo-3x.png 3x">
  <img src="#placeholder">
  <video poster="./poster.jpg"><source src="//cdn.example.com/movie.mp4"></video>
  <a href="other.html">link</a>
</body>
</html>`

func TestRequests(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	refs, err := Requests(strings.NewReader(page), loaderutil.RootPath("."))
	if err != nil {
		t.Fatal(err)
	}
	want := []Reference{
		{"link", "href", "style.css", "./style.css"},
		{"script", "src", "~lib/app.js", "lib/app.js"},
		{"img", "src", "/img/logo.png", "./img/logo.png"},
		{"img", "srcset", "img/logo-2x.png", "./img/logo-2x.png"},
		{"img", "srcset", "img/logo-3x.png", "./img/logo-3x.png"},
		{"video", "poster", "./poster.jpg", "./poster.jpg"},
	}
	if len(refs) != len(want) {
		t.Fatalf("expected %d references, got %d: %v", len(want), len(refs), refs)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("reference %d: got %+v, want %+v", i, refs[i], want[i])
		}
	}
}

func TestRequestsInvalidRoot(t *testing.T) {
	_, err := Requests(strings.NewReader(`<img src="/a.png">`), loaderutil.RootFromValue(1))
	if !errors.Is(err, loaderutil.ErrInvalidRoot) {
		t.Errorf("expected ErrInvalidRoot, got %v", err)
	}
}

func TestSrcset(t *testing.T) {
	urls := srcsetURLs(" a.png 1x,b.png  480w , ,c.png")
	if strings.Join(urls, "|") != "a.png|b.png|c.png" {
		t.Errorf("unexpected srcset urls %v", urls)
	}
}
