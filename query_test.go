package loaderutil

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseQuery(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		query    string
		expected map[string]any
	}{
		{"", map[string]any{}},
		{"?", map[string]any{}},
		{"?sweet=true&name=cheesecake&slices=8&delicious&warm=false", map[string]any{
			"sweet": true, "name": "cheesecake", "slices": "8", "delicious": true, "warm": false,
		}},
		{"?a=1,b=2", map[string]any{"a": "1", "b": "2"}},
		{"?nothing=null", map[string]any{"nothing": nil}},
		{"?%3d", map[string]any{"=": true}},
		{"?+%3d", map[string]any{"=": true}},
		{"?-%3d", map[string]any{"=": false}},
		{"?%3d=%3D", map[string]any{"=": "="}},
		{"?ingredients[]=flour&ingredients[]=sugar", map[string]any{
			"ingredients": []any{"flour", "sugar"},
		}},
		{`?{"delicious":true,"name":"cheesecake","slices":8,"warm":false}`, map[string]any{
			"delicious": true, "name": "cheesecake", "slices": 8, "warm": false,
		}},
		{`?{"toppings": {"cream": true}, "sizes": [1, 2]}`, map[string]any{
			"toppings": map[string]any{"cream": true},
			"sizes":    []any{1, 2},
		}},
		{"?bad=%zz", map[string]any{"bad": "%zz"}},
	}
	for i, test := range tests {
		q, err := ParseQuery(test.query)
		if err != nil {
			t.Errorf("test %d: %q: unexpected error %v", i, test.query, err)
			continue
		}
		if !reflect.DeepEqual(q, test.expected) {
			t.Errorf("test %d: %q: expected %v, have %v", i, test.query, test.expected, q)
		}
	}
}

func TestParseQueryErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, query := range []string{"a", "name=cheesecake", `?{"a": [}`} {
		if _, err := ParseQuery(query); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("%q: expected ErrInvalidQuery, have %v", query, err)
		}
	}
}

func TestGetOptions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	opts, err := GetOptions(&LoaderContext{})
	if err != nil || opts != nil {
		t.Errorf("expected nil options for empty query, have %v, %v", opts, err)
	}
	preset := map[string]any{"limit": 1024}
	opts, err = GetOptions(&LoaderContext{QueryOptions: preset})
	if err != nil || !reflect.DeepEqual(opts, preset) {
		t.Errorf("expected pre-parsed options, have %v, %v", opts, err)
	}
	opts, err = GetOptions(&LoaderContext{Query: "?", QueryOptions: preset})
	if err != nil || len(opts) != 0 {
		t.Errorf("expected query to take precedence, have %v, %v", opts, err)
	}
	opts, err = GetOptions(&LoaderContext{Query: "?name=cheesecake&slices=8"})
	if err != nil {
		t.Fatal(err)
	}
	if opts["name"] != "cheesecake" || opts["slices"] != "8" {
		t.Errorf("unexpected options %v", opts)
	}
	if _, err = GetOptions(&LoaderContext{Query: "a"}); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, have %v", err)
	}
}

func TestGetLoaderConfig(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		lc         LoaderContext
		defaultKey string
		expected   map[string]any
	}{
		{LoaderContext{
			Query:  "?name=cheesecake",
			Config: map[string]map[string]any{"testLoader": {"slices": 8}},
		}, "testLoader", map[string]any{"name": "cheesecake", "slices": 8}},
		{LoaderContext{
			Query:  "?name=cheesecake&config=otherConfig",
			Config: map[string]map[string]any{"otherConfig": {"slices": 8}},
		}, "testLoader", map[string]any{"name": "cheesecake", "slices": 8}},
		{LoaderContext{
			Query:  "?slices=8",
			Config: map[string]map[string]any{"testLoader": {"slices": 4}},
		}, "testLoader", map[string]any{"slices": "8"}},
		{LoaderContext{
			Query:  "?slices=8",
			Config: map[string]map[string]any{},
		}, "", map[string]any{"slices": "8"}},
		{LoaderContext{}, "missing", map[string]any{}},
	}
	for i, test := range tests {
		config, err := GetLoaderConfig(&test.lc, test.defaultKey)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
			continue
		}
		if !reflect.DeepEqual(config, test.expected) {
			t.Errorf("test %d: expected %v, have %v", i, test.expected, config)
		}
	}
	section := map[string]any{"slices": 4}
	lc := &LoaderContext{Query: "?slices=8", Config: map[string]map[string]any{"testLoader": section}}
	if _, err := GetLoaderConfig(lc, "testLoader"); err != nil {
		t.Fatal(err)
	}
	if section["slices"] != 4 {
		t.Errorf("expected config section to be left unchanged, have %v", section)
	}
}
