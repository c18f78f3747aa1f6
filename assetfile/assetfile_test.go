package assetfile

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/guiguan/caster"
	"github.com/npillmayer/loaderutil"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeAssets(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func md5Hex(s string, n int) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:n]
}

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	dir := writeAssets(t, map[string]string{"a.txt": "test content"})
	f, err := Load(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(f.Content) != "test content" || f.Info.Size() != 12 {
		t.Errorf("unexpected file %q of size %d", f.Content, f.Info.Size())
	}
	if _, err := Load(dir); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestCollect(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	dir := writeAssets(t, map[string]string{
		"logo.png":  "png bytes",
		"app.js":    "console.log(1)",
		"style.css": "body{}",
	})
	paths := []string{
		filepath.Join(dir, "app.js"),
		filepath.Join(dir, "missing.gif"),
		filepath.Join(dir, "logo.png"),
		filepath.Join(dir, "style.css"),
	}
	opts := &loaderutil.InterpolateOptions{HashFunction: "md5"}
	results, err := Collect(context.Background(), paths, loaderutil.Pattern("[name].[hash:8].[ext]"), opts)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"app." + md5Hex("console.log(1)", 8) + ".js",
		"",
		"logo." + md5Hex("png bytes", 8) + ".png",
		"style." + md5Hex("body{}", 8) + ".css",
	}
	for i, r := range results {
		if r.Index != i || r.Path != paths[i] {
			t.Errorf("result %d is out of order: %+v", i, r)
		}
		if r.Name != want[i] {
			t.Errorf("result %d: got name %q, want %q", i, r.Name, want[i])
		}
	}
	if !errors.Is(results[1].Err, fs.ErrNotExist) {
		t.Errorf("missing file should report ErrNotExist, got %v", results[1].Err)
	}
	if opts.Content != nil {
		t.Errorf("caller's options must not be modified")
	}
}

func TestNameAllBroadcast(t *testing.T) {
	dir := writeAssets(t, map[string]string{"a.txt": "a", "b.txt": "b"})
	paths := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	ctx := context.Background()
	cast := caster.New(ctx)
	defer cast.Close()
	sub1, _ := cast.Sub(ctx, 2)
	sub2, _ := cast.Sub(ctx, 2)
	NameAll(ctx, cast, paths, loaderutil.Pattern("[name]"), nil)
	for _, sub := range []<-chan interface{}{sub1, sub2} {
		seen := make(map[string]bool)
		for range paths {
			r := (<-sub).(Result)
			if r.Err != nil {
				t.Fatal(r.Err)
			}
			seen[r.Name] = true
		}
		if !seen["a"] || !seen["b"] {
			t.Errorf("subscriber missed results: %v", seen)
		}
	}
}

func TestCollectEmpty(t *testing.T) {
	results, err := Collect(context.Background(), nil, loaderutil.Pattern("[name]"), nil)
	if err != nil || len(results) != 0 {
		t.Errorf("expected no results, got %v, %v", results, err)
	}
}
