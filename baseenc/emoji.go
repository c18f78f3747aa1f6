package baseenc

import (
	"fmt"
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

var emoji struct {
	once     sync.Once
	alphabet *Alphabet
}

// EmojiAlphabet returns the emoji alphabet. It is derived from a static
// catalog on first use and shared for the lifetime of the process.
//
// A catalog entry is accepted if it forms exactly one grapheme cluster and
// contains at least one code point outside the Basic Multilingual Plane.
func EmojiAlphabet() *Alphabet {
	emoji.once.Do(func() {
		grapheme.SetupGraphemeClasses()
		symbols := make([]string, 0, len(emojiCatalog))
		seen := make(map[string]bool, len(emojiCatalog))
		for _, e := range emojiCatalog {
			if seen[e] || !isEmojiGlyph(e) {
				continue
			}
			seen[e] = true
			symbols = append(symbols, e)
		}
		a, err := NewAlphabet("emoji", symbols)
		if err != nil {
			panic(err.Error())
		}
		tracer().Debugf("emoji alphabet: %d of %d catalog entries accepted", a.Size(), len(emojiCatalog))
		emoji.alphabet = a
	})
	return emoji.alphabet
}

func isEmojiGlyph(s string) bool {
	astral := false
	for _, r := range s {
		if r > 0xFFFF {
			astral = true
			break
		}
	}
	if !astral {
		return false
	}
	return grapheme.StringFromString(s).Len() == 1
}

// EncodeEmoji encodes buf with one emoji per digit. A maxLength < 1 means no
// limit. Asking for more emoji than the alphabet holds is an error, the
// encoding never wraps around.
func EncodeEmoji(buf []byte, maxLength int) (string, error) {
	a := EmojiAlphabet()
	if maxLength > a.Size() {
		return "", fmt.Errorf("%w: %d requested, %d available", ErrEmojiExhausted, maxLength, a.Size())
	}
	return a.Encode(buf, maxLength), nil
}
