package hashing

import (
	"hash"
)

// BulkSize is the number of bytes of string input a Bulk accumulator buffers
// before the hash primitive is created.
const BulkSize = 2000

// Bulk buffers default-encoded string input and creates the hash primitive
// on demand. If the buffer never had to be flushed, the digest is looked up
// in, and stored into, the digest cache.
type Bulk struct {
	key     string
	factory Factory
	h       hash.Hash
	buffer  []byte
	done    bool
}

var _ Accumulator = (*Bulk)(nil)

// NewBulk creates a bulk accumulator. key identifies the hash function in
// the digest cache.
func NewBulk(key string, f Factory) *Bulk {
	return &Bulk{key: key, factory: f}
}

// Update writes the buffer and p to the primitive.
func (b *Bulk) Update(p []byte) {
	if b.done {
		return
	}
	b.spill()
	b.h.Write(p)
}

// UpdateString buffers s if it is UTF-8 and short. Anything else goes
// straight to the primitive.
func (b *Bulk) UpdateString(s string, enc Encoding) error {
	if b.done {
		return ErrConsumed
	}
	if enc != Raw || len(s) > BulkSize {
		p, err := decodeInput(s, enc)
		if err != nil {
			return err
		}
		b.spill()
		b.h.Write(p)
		return nil
	}
	b.buffer = append(b.buffer, s...)
	if len(b.buffer) > BulkSize {
		b.spill()
	}
	return nil
}

// Digest finalizes the hash.
func (b *Bulk) Digest(enc Encoding) ([]byte, error) {
	if b.done {
		return nil, ErrConsumed
	}
	b.done = true
	if b.h != nil {
		b.spill()
		return EncodeDigest(b.h.Sum(nil), enc)
	}
	k := cacheKey{algorithm: b.key, encoding: enc, input: string(b.buffer)}
	if d, ok := digests.get(k); ok {
		tracer().Debugf("hashing: %s digest cache hit", b.key)
		return d, nil
	}
	h := b.factory()
	h.Write(b.buffer)
	d, err := EncodeDigest(h.Sum(nil), enc)
	if err != nil {
		return nil, err
	}
	digests.put(k, d)
	return d, nil
}

// spill creates the primitive if needed and moves the buffer into it.
func (b *Bulk) spill() {
	if b.h == nil {
		b.h = b.factory()
	}
	if len(b.buffer) > 0 {
		b.h.Write(b.buffer)
		b.buffer = b.buffer[:0]
	}
}
