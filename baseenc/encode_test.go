package baseenc

import (
	"bytes"
	"crypto/md5"
	"crypto/sha512"
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func md5Of(s string) []byte {
	sum := md5.Sum([]byte(s))
	return sum[:]
}

func TestEncodeKnownDigests(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	digest := md5Of("test string")
	tests := []struct {
		base   int
		length int
		want   string
	}{
		{26, 6, "bhtsgu"},
		{32, 0, "5wc1c8kqv356xbqvwsvudvc4cg"},
		{36, 0, "997pjihdecvikbbokopxdvujz"},
		{49, 0, "oEgJVoBEipRvFtEXuDUbZQY"},
		{52, 0, "dJnldHSAutqUacjgfBQGLQx"},
		{58, 0, "kiKv8gGHgGhA8kV3s8V6K6"},
		{62, 0, "4L13FJ3yYOQy6HP57cyUkD"},
		{64, 0, "2sm1pVmS8xuGJLCdWpJoRL"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("base%d", tt.base), func(t *testing.T) {
			got, err := Encode(digest, tt.base, tt.length)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Encode(md5, %d, %d) = %q, want %q", tt.base, tt.length, got, tt.want)
			}
		})
	}
}

func TestEncodeSHA512Base64(t *testing.T) {
	sum := sha512.Sum512([]byte("test string"))
	got, err := Encode(sum[:], 64, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := "2IS-kbfIPnVflXb9CzgoNESGCkvkb0urMmucPD9z8q6HuYz8RShY1-tzSUpm5-Ivx_u4H1MEzPgAhyhaZ7RKog"
	if got != want {
		t.Errorf("sha512/base64 = %q, want %q", got, want)
	}
}

func TestEncodeUnknownBase(t *testing.T) {
	_, err := Encode([]byte{1, 2, 3}, 17, 0)
	if !errors.Is(err, ErrUnknownBase) {
		t.Errorf("expected ErrUnknownBase, got %v", err)
	}
}

func TestEncodeEmptyBuffer(t *testing.T) {
	for _, b := range Bases() {
		got, err := Encode(nil, b, 0)
		if err != nil || got != "" {
			t.Errorf("Encode(nil, %d) = %q, %v; want empty", b, got, err)
		}
	}
}

func TestEncodeDoesNotTouchInput(t *testing.T) {
	digest := md5Of("immutable")
	orig := append([]byte(nil), digest...)
	for _, b := range Bases() {
		if _, err := Encode(digest, b, 0); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(orig, digest) {
			t.Fatalf("base%d: input buffer has been modified", b)
		}
	}
}

func TestEncodeNoLeadingZeros(t *testing.T) {
	sum := sha512.Sum512([]byte("test content"))
	got, _ := Encode(sum[:], 64, 7)
	if got != "2BKDTjl" {
		t.Errorf("sha512/base64:7 = %q, want %q", got, "2BKDTjl")
	}
	got, _ = Encode(make([]byte, 16), 62, 0)
	if got != "" {
		t.Errorf("a zero buffer has no significant digits, got %q", got)
	}
	got, _ = Encode([]byte{0xff, 0xff, 0xff}, 36, 0)
	if len(got) > DigitCount(3, 36) {
		t.Errorf("expected at most %d digits for 3 bytes, got %q", DigitCount(3, 36), got)
	}
	got, _ = Encode([]byte{1, 0, 0, 0}, 26, 0)
	if got != "b" {
		t.Errorf("value 1 in base26 should be %q, got %q", "b", got)
	}
}

func TestEncodePrefixStability(t *testing.T) {
	digest := md5Of("prefix")
	for _, b := range Bases() {
		full, _ := Encode(digest, b, 0)
		for l := 1; l <= len(full); l++ {
			short, _ := Encode(digest, b, l)
			if short != full[:l] {
				t.Fatalf("base%d: length %d gives %q, not a prefix of %q", b, l, short, full)
			}
		}
		longer, _ := Encode(digest, b, len(full)+10)
		if longer != full {
			t.Errorf("base%d: output must not be padded, got %q", b, longer)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		md5Of("round trip"),
		{0, 0, 0, 1},
		{0xff},
		{1, 2, 3, 4, 5, 6, 7},
	}
	for _, b := range Bases() {
		a, _ := AlphabetFor(b)
		for _, in := range inputs {
			enc := a.Encode(in, 0)
			dec, err := a.Decode(enc, len(in))
			if err != nil {
				t.Fatalf("base%d: decode %q: %v", b, enc, err)
			}
			if !bytes.Equal(dec, in) {
				t.Errorf("base%d: round trip of %x gave %x", b, in, dec)
			}
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	a, _ := AlphabetFor(32)
	if _, err := a.Decode("0", 4); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol for '0' in base32, got %v", err)
	}
	if _, err := a.Decode("zzzz", 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
	for _, size := range []int{-1, -4, -5} {
		if _, err := a.Decode("b", size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestAlphabetValidity(t *testing.T) {
	digest := md5Of("alphabet")
	for _, b := range Bases() {
		a, _ := AlphabetFor(b)
		if a.Size() != b {
			t.Errorf("alphabet for base %d has %d symbols", b, a.Size())
		}
		out := a.Encode(digest, 0)
		for _, r := range out {
			if !a.Contains(string(r)) {
				t.Errorf("base%d emitted %q which is not in its alphabet", b, r)
			}
		}
	}
}

func TestDistribution(t *testing.T) {
	const samples = 20000
	for _, b := range []int{26, 36, 62} {
		a, _ := AlphabetFor(b)
		width := DigitCount(16, b)
		counts := make([][]int, width)
		for i := range counts {
			counts[i] = make([]int, b)
		}
		for i := 0; i < samples; i++ {
			syms, err := a.Split(a.Encode(md5Of(fmt.Sprintf("sample-%d", i)), 0))
			if err != nil {
				t.Fatal(err)
			}
			// positions count from the least significant digit
			for k := 0; k < len(syms); k++ {
				counts[k][a.index[syms[len(syms)-1-k]]]++
			}
		}
		// the two most significant positions only cover part of the range
		expected := float64(samples) / float64(b)
		for k := 0; k < width-2; k++ {
			for d, c := range counts[k] {
				if dev := (float64(c) - expected) / expected; dev > 0.3 || dev < -0.3 {
					t.Errorf("base%d position %d digit %d: count %d deviates from %.0f", b, k, d, c, expected)
				}
			}
		}
	}
}
