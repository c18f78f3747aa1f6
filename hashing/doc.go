/*
Package hashing provides incremental hashing for content-derived file names.

An Accumulator wraps a hash primitive from the standard library or from a
third-party module and is tuned for many small string updates:

  - Batched concatenates short string updates before handing them to the
    primitive. It is used for the fast non-cryptographic hashes.
  - Bulk buffers string input and creates the primitive lazily. Short inputs
    which never left the buffer are memoized in a process-wide digest cache.

Both are semantically equal to hashing the concatenation of all updates in
order; batching never changes a digest.

Primitives are looked up by name in a Registry. Names are open strings;
unknown names fail with ErrUnsupportedAlgorithm.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package hashing

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer writes to the global core-tracer.
func tracer() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	return gtrace.CoreTracer
}
