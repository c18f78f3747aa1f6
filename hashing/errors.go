package hashing

import "errors"

var (
	// ErrUnsupportedAlgorithm signals an algorithm name no factory is registered for.
	ErrUnsupportedAlgorithm = errors.New("hashing: unsupported algorithm")
	// ErrUnknownEncoding signals an unknown input or output text encoding.
	ErrUnknownEncoding = errors.New("hashing: unknown encoding")
	// ErrInvalidInput signals string input which is not valid for its encoding.
	ErrInvalidInput = errors.New("hashing: input does not match encoding")
	// ErrConsumed signals a second call to Digest.
	ErrConsumed = errors.New("hashing: digest already computed")
)
