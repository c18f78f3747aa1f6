package hashing

import (
	"hash"
)

// Accumulator is an incremental hash. All updates are hashed in order, as if
// their decoded bytes had been concatenated.
type Accumulator interface {
	// Update appends raw bytes.
	Update(p []byte)
	// UpdateString appends s, decoded according to enc.
	UpdateString(s string, enc Encoding) error
	// Digest finalizes the hash and returns it in the requested encoding.
	// It may be called once.
	Digest(enc Encoding) ([]byte, error)
}

// MaxShortString is the largest pending batch of string input a Batched
// accumulator collects before it writes to the primitive.
const MaxShortString = 16368

// Batched collects consecutive short string updates of the same encoding and
// writes them to the hash primitive in one call.
type Batched struct {
	h       hash.Hash
	pending []byte
	enc     Encoding
	hasData bool
	done    bool
}

var _ Accumulator = (*Batched)(nil)

// NewBatched wraps a hash primitive.
func NewBatched(h hash.Hash) *Batched {
	return &Batched{h: h}
}

// Update writes the pending batch, then p.
func (b *Batched) Update(p []byte) {
	if b.done {
		return
	}
	if err := b.flush(); err != nil {
		tracer().Errorf("hashing: dropping batch: %v", err)
	}
	b.h.Write(p)
}

// UpdateString appends s. Input in hex or base64 is validated and written
// immediately.
func (b *Batched) UpdateString(s string, enc Encoding) error {
	if b.done {
		return ErrConsumed
	}
	if enc == Raw {
		enc = UTF8
	}
	if b.hasData {
		if enc == b.enc && len(b.pending)+len(s) < MaxShortString {
			b.pending = append(b.pending, s...)
			return nil
		}
		if err := b.flush(); err != nil {
			return err
		}
	}
	if len(s) < MaxShortString && enc.batchable() {
		b.pending = append(b.pending[:0], s...)
		b.enc = enc
		b.hasData = true
		return nil
	}
	p, err := decodeInput(s, enc)
	if err != nil {
		return err
	}
	b.h.Write(p)
	return nil
}

// Digest writes the pending batch and finalizes the hash.
func (b *Batched) Digest(enc Encoding) ([]byte, error) {
	if b.done {
		return nil, ErrConsumed
	}
	if err := b.flush(); err != nil {
		return nil, err
	}
	b.done = true
	return EncodeDigest(b.h.Sum(nil), enc)
}

func (b *Batched) flush() error {
	if !b.hasData {
		return nil
	}
	b.hasData = false
	p, err := decodeInput(string(b.pending), b.enc)
	b.pending = b.pending[:0]
	if err != nil {
		return err
	}
	b.h.Write(p)
	return nil
}
