package baseenc

import (
	"fmt"
	"sort"
)

// Symbol tables for the supported bases. Some tables leave out characters
// which are easily confused with others.
const (
	table26 = "abcdefghijklmnopqrstuvwxyz"
	table32 = "123456789abcdefghjkmnpqrstuvwxyz" // no 0lio
	table36 = "0123456789abcdefghijklmnopqrstuvwxyz"
	table49 = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ" // no lIO
	table52 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	table58 = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ" // no 0lIO
	table62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	table64 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"
)

// Alphabet is an ordered set of distinct symbols. The position of a symbol
// is its digit value.
//
// Alphabets are immutable after construction and safe for concurrent use.
type Alphabet struct {
	name    string
	symbols []string
	index   map[string]int
	longest int // byte length of the longest symbol
}

var alphabets = map[int]*Alphabet{
	26: alphabetFromChars("base26", table26),
	32: alphabetFromChars("base32", table32),
	36: alphabetFromChars("base36", table36),
	49: alphabetFromChars("base49", table49),
	52: alphabetFromChars("base52", table52),
	58: alphabetFromChars("base58", table58),
	62: alphabetFromChars("base62", table62),
	64: alphabetFromChars("base64", table64),
}

// Bases returns the supported base sizes in ascending order. The emoji
// alphabet is not included, see EmojiAlphabet.
func Bases() []int {
	bases := make([]int, 0, len(alphabets))
	for b := range alphabets {
		bases = append(bases, b)
	}
	sort.Ints(bases)
	return bases
}

// AlphabetFor returns the alphabet for a base size.
func AlphabetFor(base int) (*Alphabet, error) {
	a, ok := alphabets[base]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBase, base)
	}
	return a, nil
}

func alphabetFromChars(name, chars string) *Alphabet {
	symbols := make([]string, 0, len(chars))
	for _, r := range chars {
		symbols = append(symbols, string(r))
	}
	a, err := NewAlphabet(name, symbols)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// NewAlphabet creates an alphabet from a list of symbols. Symbols must be
// non-empty and distinct, and there must be at least two of them.
func NewAlphabet(name string, symbols []string) (*Alphabet, error) {
	if len(symbols) < 2 {
		return nil, fmt.Errorf("baseenc: alphabet %q needs at least 2 symbols", name)
	}
	a := &Alphabet{
		name:    name,
		symbols: make([]string, len(symbols)),
		index:   make(map[string]int, len(symbols)),
	}
	for i, s := range symbols {
		if s == "" {
			return nil, fmt.Errorf("baseenc: alphabet %q has an empty symbol at %d", name, i)
		}
		if _, dup := a.index[s]; dup {
			return nil, fmt.Errorf("baseenc: alphabet %q has duplicate symbol %q", name, s)
		}
		a.symbols[i] = s
		a.index[s] = i
		if len(s) > a.longest {
			a.longest = len(s)
		}
	}
	return a, nil
}

// Name returns the name of the alphabet, e.g. "base62".
func (a *Alphabet) Name() string {
	return a.name
}

// Size is the number of symbols, i.e. the base.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbol returns the symbol for digit value d.
func (a *Alphabet) Symbol(d int) string {
	return a.symbols[d]
}

// Contains reports whether sym is a symbol of a.
func (a *Alphabet) Contains(sym string) bool {
	_, ok := a.index[sym]
	return ok
}

// Symbols returns a copy of the symbol list.
func (a *Alphabet) Symbols() []string {
	s := make([]string, len(a.symbols))
	copy(s, a.symbols)
	return s
}

// Split breaks an encoded string into symbols, longest match first.
func (a *Alphabet) Split(s string) ([]string, error) {
	var syms []string
	for len(s) > 0 {
		n := min(a.longest, len(s))
		for ; n > 0; n-- {
			if _, ok := a.index[s[:n]]; ok {
				break
			}
		}
		if n == 0 {
			return nil, fmt.Errorf("%w %s: %q", ErrInvalidSymbol, a.name, s)
		}
		syms = append(syms, s[:n])
		s = s[n:]
	}
	return syms, nil
}
