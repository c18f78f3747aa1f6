package loaderutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGetHashDigest(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		algorithm, encoding string
		maxLength           int
		expected            string
	}{
		{"md5", "hex", 0, "6f8db599de986fab7a21625b7916589c"},
		{"md5", "hex", 4, "6f8d"},
		{"md5", "base26", 6, "bhtsgu"},
		{"md5", "base32", 0, "5wc1c8kqv356xbqvwsvudvc4cg"},
		{"md5", "base36", 0, "997pjihdecvikbbokopxdvujz"},
		{"md5", "base49", 0, "oEgJVoBEipRvFtEXuDUbZQY"},
		{"md5", "base52", 0, "dJnldHSAutqUacjgfBQGLQx"},
		{"md5", "base58", 0, "kiKv8gGHgGhA8kV3s8V6K6"},
		{"md5", "base62", 0, "4L13FJ3yYOQy6HP57cyUkD"},
		{"md5", "base64", 0, "2sm1pVmS8xuGJLCdWpJoRL"},
		{"md5", "BASE64", 0, "2sm1pVmS8xuGJLCdWpJoRL"},
		{"sha512", "base64", 0, "2IS-kbfIPnVflXb9CzgoNESGCkvkb0urMmucPD9z8q6HuYz8RShY1-tzSUpm5-Ivx_u4H1MEzPgAhyhaZ7RKog"},
		{"md5", "base64url", 0, "b421md6Yb6t6IWJbeRZYnA"},
		{"md5", "base64url", 6, "b421md"},
	}
	for i, test := range tests {
		d, err := GetHashDigest([]byte("test string"), test.algorithm, test.encoding, test.maxLength)
		if err != nil {
			t.Errorf("test %d: %s/%s: unexpected error: %v", i, test.algorithm, test.encoding, err)
			continue
		}
		if d != test.expected {
			t.Errorf("test %d: %s/%s: expected %q, have %q", i, test.algorithm, test.encoding, test.expected, d)
		}
	}
}

func TestDigestDefaults(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d, err := GetHashDigest([]byte{}, "", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if d != "ef46db3751d8e999" {
		t.Errorf("expected xxhash64 hex digest of empty input, have %q", d)
	}
	var spec DigestSpec
	d2, err := spec.DigestString("")
	if err != nil {
		t.Fatal(err)
	}
	if d2 != d {
		t.Errorf("expected zero DigestSpec to use the defaults, have %q", d2)
	}
}

func TestDigestSalt(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	spec := DigestSpec{Algorithm: "md5", Salt: []byte("pepper")}
	salted, err := spec.Digest([]byte("test string"))
	if err != nil {
		t.Fatal(err)
	}
	expected, _ := GetHashDigest([]byte("test stringpepper"), "md5", "hex", 0)
	if salted != expected {
		t.Errorf("expected salt to be appended to the content, have %q", salted)
	}
}

func TestDigestEmoji(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	full, err := GetHashDigest([]byte("test string"), "md5", "emoji", 0)
	if err != nil {
		t.Fatal(err)
	}
	short, err := GetHashDigest([]byte("test string"), "md5", "emoji", 4)
	if err != nil {
		t.Fatal(err)
	}
	if short == "" || !strings.HasPrefix(full, short) {
		t.Errorf("expected %q to be a prefix of %q", short, full)
	}
	_, err = GetHashDigest([]byte("test string"), "md5", "emoji", 1<<20)
	if !errors.Is(err, ErrEmojiExhausted) {
		t.Errorf("expected emoji exhaustion, have %v", err)
	}
}

func TestDigestErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, enc := range []string{"base17", "base", "base1x", "utf8", "rot13"} {
		_, err := GetHashDigest([]byte("x"), "md5", enc, 0)
		if !errors.Is(err, ErrUnknownEncoding) {
			t.Errorf("encoding %q: expected ErrUnknownEncoding, have %v", enc, err)
		}
	}
	_, err := GetHashDigest([]byte("x"), "sha1fakename", "hex", 0)
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm, have %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "digest method not supported") {
		t.Errorf("unexpected error message %q", err.Error())
	}
}
