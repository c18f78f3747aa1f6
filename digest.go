package loaderutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/loaderutil/baseenc"
	"github.com/npillmayer/loaderutil/hashing"
)

// Defaults for digests.
const (
	DefaultAlgorithm = "xxhash64"
	DefaultEncoding  = "hex"
	DefaultMaxLength = 9999
)

// DigestSpec configures the computation of a digest token. The zero value
// uses the defaults.
type DigestSpec struct {
	Algorithm string // hash algorithm name, default xxhash64
	Encoding  string // digest encoding, default hex
	MaxLength int    // maximum token length; < 1 means no explicit limit
	Salt      []byte // appended to the payload
	Registry  *hashing.Registry
}

// GetHashDigest hashes content and returns the encoded digest, limited to
// maxLength characters. Empty arguments select the defaults.
//
// Recognized encodings are hex, base26, base32, base36, base49, base52,
// base58, base62, base64 (URL-safe digit order, not RFC 4648), emoji,
// base64url, z85 and latin1.
func GetHashDigest(content []byte, algorithm, digestEncoding string, maxLength int) (string, error) {
	spec := DigestSpec{
		Algorithm: algorithm,
		Encoding:  digestEncoding,
		MaxLength: maxLength,
	}
	return spec.Digest(content)
}

// Digest hashes content.
func (spec DigestSpec) Digest(content []byte) (string, error) {
	return spec.DigestString(string(content))
}

// DigestString hashes the UTF-8 bytes of s. Short strings are subject to
// digest caching.
func (spec DigestSpec) DigestString(s string) (string, error) {
	algorithm := spec.Algorithm
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	encoding := strings.ToLower(spec.Encoding)
	if encoding == "" {
		encoding = DefaultEncoding
	}
	encode, err := digestEncoder(encoding, spec.MaxLength)
	if err != nil {
		return "", err
	}
	registry := spec.Registry
	if registry == nil {
		registry = hashing.DefaultRegistry
	}
	acc, err := registry.New(algorithm)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedAlgorithm, err)
	}
	if err := acc.UpdateString(s, hashing.Raw); err != nil {
		return "", err
	}
	if len(spec.Salt) > 0 {
		acc.Update(spec.Salt)
	}
	token, err := encode(acc)
	if err != nil {
		return "", err
	}
	T().Debugf("digest %s/%s of %d bytes: %s", algorithm, encoding, len(s), token)
	return token, nil
}

type encoderFunc func(hashing.Accumulator) (string, error)

// digestEncoder selects the encoding route for a digest: custom bases go
// through baseenc, native encodings through the accumulator. Every route
// limits its token to maxLength symbols.
func digestEncoder(encoding string, maxLength int) (encoderFunc, error) {
	if encoding == "emoji" {
		return func(acc hashing.Accumulator) (string, error) {
			sum, err := acc.Digest(hashing.Raw)
			if err != nil {
				return "", err
			}
			token, err := baseenc.EncodeEmoji(sum, maxLength)
			if errors.Is(err, baseenc.ErrEmojiExhausted) {
				return "", fmt.Errorf("%w: %w", ErrEmojiExhausted, err)
			}
			return token, err
		}, nil
	}
	if b, ok := strings.CutPrefix(encoding, "base"); ok && b != "64url" {
		base, err := strconv.Atoi(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
		}
		alphabet, err := baseenc.AlphabetFor(base)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnknownEncoding, err)
		}
		return func(acc hashing.Accumulator) (string, error) {
			sum, err := acc.Digest(hashing.Raw)
			if err != nil {
				return "", err
			}
			return alphabet.Encode(sum, maxLength), nil
		}, nil
	}
	enc, err := hashing.ParseEncoding(encoding)
	if err != nil || enc == hashing.Raw || enc == hashing.UTF8 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	if maxLength < 1 {
		maxLength = DefaultMaxLength
	}
	return func(acc hashing.Accumulator) (string, error) {
		d, err := acc.Digest(enc)
		if err != nil {
			return "", err
		}
		return truncate(string(d), maxLength), nil
	}, nil
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
