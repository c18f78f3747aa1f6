package baseenc

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// DigitCount is the maximum number of digits a buffer of n bytes carries in
// base b. The input bits are only enough to generate this many characters.
func DigitCount(n int, b int) int {
	if n <= 0 || b < 2 {
		return 0
	}
	return int(math.Ceil(float64(n*8) / math.Log2(float64(b))))
}

// Encode encodes buf in the alphabet for base. A maxLength < 1 means no limit.
func Encode(buf []byte, base int, maxLength int) (string, error) {
	a, err := AlphabetFor(base)
	if err != nil {
		return "", err
	}
	return a.Encode(buf, maxLength), nil
}

// Encode converts buf into a string of at most DigitCount(len(buf), a.Size())
// symbols, most significant digit first, without leading zero symbols, and
// keeps at most maxLength symbols of it. A maxLength < 1 means no limit.
//
// buf is not modified.
func (a *Alphabet) Encode(buf []byte, maxLength int) string {
	if len(buf) == 0 {
		return ""
	}
	base := uint32(len(a.symbols))
	limit := DigitCount(len(buf), len(a.symbols))
	limbs := toLimbs(buf)
	digits := make([]string, limit)
	for i := limit - 1; i >= 0; i-- {
		digits[i] = a.symbols[divmod(limbs, base)]
	}
	zero := a.symbols[0]
	for len(digits) > 0 && digits[0] == zero {
		digits = digits[1:]
	}
	if maxLength > 0 && maxLength < len(digits) {
		digits = digits[:maxLength]
	}
	return strings.Join(digits, "")
}

// Decode reverses Encode for an untruncated string. The result has size bytes;
// a value which does not fit yields ErrOverflow.
func (a *Alphabet) Decode(s string, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	syms, err := a.Split(s)
	if err != nil {
		return nil, err
	}
	limbs := make([]uint32, (size+3)/4)
	base := uint64(len(a.symbols))
	for _, sym := range syms {
		if mulAdd(limbs, base, uint64(a.index[sym])) != 0 {
			return nil, ErrOverflow
		}
	}
	buf := make([]byte, len(limbs)*4)
	for i, l := range limbs {
		binary.LittleEndian.PutUint32(buf[i*4:], l)
	}
	for _, b := range buf[size:] {
		if b != 0 {
			return nil, ErrOverflow
		}
	}
	return buf[:size], nil
}

// toLimbs copies buf into little-endian 32-bit limbs. The limbs are the
// scratch space for divmod, so the caller's buffer stays untouched.
func toLimbs(buf []byte) []uint32 {
	limbs := make([]uint32, (len(buf)+3)/4)
	var tail [4]byte
	for i := range limbs {
		chunk := buf[i*4:]
		if len(chunk) < 4 {
			copy(tail[:], chunk)
			chunk = tail[:]
		}
		limbs[i] = binary.LittleEndian.Uint32(chunk)
	}
	return limbs
}

// divmod divides the number in limbs by divisor in place and returns the
// remainder.
func divmod(limbs []uint32, divisor uint32) uint32 {
	var carry uint64
	d := uint64(divisor)
	for i := len(limbs) - 1; i >= 0; i-- {
		v := carry<<32 | uint64(limbs[i])
		limbs[i] = uint32(v / d)
		carry = v % d
	}
	return uint32(carry)
}

// mulAdd sets limbs to limbs*m + a and returns the overflow.
func mulAdd(limbs []uint32, m, a uint64) uint64 {
	carry := a
	for i := range limbs {
		v := uint64(limbs[i])*m + carry
		limbs[i] = uint32(v)
		carry = v >> 32
	}
	return carry
}
