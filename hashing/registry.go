package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"hash/crc32"
	"hash/fnv"
	"sort"
	"strings"
	"sync"

	oneofone "github.com/OneOfOne/xxhash"
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/md4"
	"lukechampine.com/blake3"
)

// Factory creates a fresh hash primitive.
type Factory func() hash.Hash

// Strategy selects the Accumulator which wraps a primitive.
type Strategy int

// Accumulation strategies.
const (
	StrategyBulk    Strategy = iota // buffered, with digest cache
	StrategyBatched                 // short strings concatenated
)

type entry struct {
	factory  Factory
	strategy Strategy
	key      string // identity for the digest cache
}

// Registry maps algorithm names to hash factories. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// DefaultRegistry holds the built-in algorithms.
var DefaultRegistry = builtinRegistry()

func builtinRegistry() *Registry {
	r := NewRegistry()
	r.Register("xxhash64", func() hash.Hash { return xxhash.New() }, StrategyBatched)
	r.Register("xxhash32", func() hash.Hash { return oneofone.New32() }, StrategyBatched)
	r.Register("xxh3", func() hash.Hash { return xxh3.New() }, StrategyBatched)
	r.Register("xxh128", func() hash.Hash { return xxh128{xxh3.New()} }, StrategyBatched)
	r.Register("md4", md4.New, StrategyBatched)
	r.RegisterAlias("native-md4", "md4", md4.New, StrategyBulk)
	r.Register("md5", md5.New, StrategyBulk)
	r.Register("sha1", sha1.New, StrategyBulk)
	r.Register("sha224", sha256.New224, StrategyBulk)
	r.Register("sha256", sha256.New, StrategyBulk)
	r.Register("sha384", sha512.New384, StrategyBulk)
	r.Register("sha512", sha512.New, StrategyBulk)
	r.Register("blake3", func() hash.Hash { return blake3.New(32, nil) }, StrategyBulk)
	r.Register("crc32", func() hash.Hash { return crc32.NewIEEE() }, StrategyBatched)
	r.Register("fnv1a64", func() hash.Hash { return fnv.New64a() }, StrategyBatched)
	return r
}

// Register adds or replaces an algorithm.
func (r *Registry) Register(name string, f Factory, s Strategy) {
	r.RegisterAlias(name, name, f, s)
}

// RegisterAlias adds an algorithm whose digests are cached under the identity
// of another algorithm name. This is for alternative implementations of the
// same function. Names are case-insensitive.
func (r *Registry) RegisterAlias(name, identity string, f Factory, s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[strings.ToLower(name)] = entry{factory: f, strategy: s, key: strings.ToLower(identity)}
}

// Has reports whether name resolves to an algorithm.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[strings.ToLower(name)]
	return ok
}

// Names lists the registered algorithm names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New creates an Accumulator for the named algorithm.
func (r *Registry) New(name string) (Accumulator, error) {
	r.mu.RLock()
	e, ok := r.entries[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s: digest method not supported", ErrUnsupportedAlgorithm, name)
	}
	if e.strategy == StrategyBatched {
		return NewBatched(e.factory()), nil
	}
	return NewBulk(e.key, e.factory), nil
}

// New creates an Accumulator from the default registry.
func New(name string) (Accumulator, error) {
	return DefaultRegistry.New(name)
}

// xxh128 exposes the 128-bit variant of an xxh3 hasher.
type xxh128 struct {
	*xxh3.Hasher
}

func (h xxh128) Size() int { return 16 }

func (h xxh128) Sum(b []byte) []byte {
	sum := h.Sum128().Bytes()
	return append(b, sum[:]...)
}
