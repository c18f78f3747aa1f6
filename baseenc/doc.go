/*
Package baseenc converts digest buffers into positional-notation strings over
small alphabets.

A buffer is read as one unsigned integer, least-significant byte first, and
repeatedly divided by the alphabet size. Each remainder selects one symbol.
Symbols are usually single characters (bases 26 to 64), but the emoji alphabet
uses one emoji grapheme per digit.

The input bits are only enough for a bounded number of digits:

	digits <= ceil(len(buf)*8 / log2(base))

Leading zero digits are dropped. Limiting the output to a maximum length keeps
the most significant digits, so shorter tokens are always prefixes of longer
ones.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package baseenc

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
