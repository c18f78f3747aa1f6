package hashing

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tilinna/z85"
)

// Encoding names a binary-to-text encoding, either for string input to an
// Accumulator or for its digest output.
type Encoding string

// Supported encodings. Raw means "bytes as they are" for digests and UTF-8
// for string input.
const (
	Raw       Encoding = ""
	UTF8      Encoding = "utf8"
	Latin1    Encoding = "latin1"
	Hex       Encoding = "hex"
	Base64    Encoding = "base64"
	Base64URL Encoding = "base64url"
	Z85       Encoding = "z85"
)

// ParseEncoding normalizes an encoding name. Aliases "utf-8" and "binary"
// are accepted.
func ParseEncoding(name string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(name)); e {
	case Raw, UTF8, Latin1, Hex, Base64, Base64URL, Z85:
		return e, nil
	case "utf-8":
		return UTF8, nil
	case "binary":
		return Latin1, nil
	}
	return Raw, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// batchable reports whether strings in this encoding may be concatenated
// before decoding. Hex and base64 may not: odd hex digits and padding
// characters change meaning when strings are joined.
func (e Encoding) batchable() bool {
	return e == Raw || e == UTF8 || e == Latin1
}

// decodeInput converts string input to the bytes which are hashed.
func decodeInput(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case Raw, UTF8:
		return []byte(s), nil
	case Latin1:
		b := make([]byte, 0, len(s))
		for len(s) > 0 {
			r, size := utf8.DecodeRuneInString(s)
			b = append(b, byte(r))
			s = s[size:]
		}
		return b, nil
	case Hex:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return b, nil
	case Base64:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return b, nil
	case Base64URL:
		b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q is not an input encoding", ErrUnknownEncoding, string(enc))
}

// EncodeDigest converts a raw digest to its text form.
func EncodeDigest(sum []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case Raw:
		return sum, nil
	case Hex:
		out := make([]byte, hex.EncodedLen(len(sum)))
		hex.Encode(out, sum)
		return out, nil
	case Base64:
		out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
		base64.StdEncoding.Encode(out, sum)
		return out, nil
	case Base64URL:
		out := make([]byte, base64.RawURLEncoding.EncodedLen(len(sum)))
		base64.RawURLEncoding.Encode(out, sum)
		return out, nil
	case Latin1:
		var sb strings.Builder
		for _, b := range sum {
			sb.WriteRune(rune(b))
		}
		return []byte(sb.String()), nil
	case Z85:
		out := make([]byte, z85.EncodedLen(len(sum)))
		if _, err := z85.Encode(out, sum); err != nil {
			return nil, fmt.Errorf("z85 digest encoding: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q is not a digest encoding", ErrUnknownEncoding, string(enc))
}
