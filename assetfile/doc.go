/*
Package assetfile reads asset files and names them by their content.

The core of loaderutil never touches the file system; this package is the
caller side. Load reads a single file. NameAll names many files concurrently
and broadcasts every Result, so that more than one consumer (a progress
display, a manifest writer) may follow along. Collect is the simple
synchronous front end.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package assetfile

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
