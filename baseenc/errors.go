package baseenc

import "errors"

var (
	// ErrUnknownBase signals a base size without an alphabet.
	ErrUnknownBase = errors.New("baseenc: unknown encoding base")
	// ErrEmojiExhausted signals a requested length exceeding the number of
	// distinct emoji available.
	ErrEmojiExhausted = errors.New("baseenc: ran out of emoji")
	// ErrInvalidSymbol signals a symbol not part of the alphabet while decoding.
	ErrInvalidSymbol = errors.New("baseenc: invalid symbol for alphabet")
	// ErrOverflow signals a decoded value which does not fit into the target buffer.
	ErrOverflow = errors.New("baseenc: value exceeds buffer size")
	// ErrInvalidSize signals a negative target buffer size.
	ErrInvalidSize = errors.New("baseenc: negative buffer size")
)
