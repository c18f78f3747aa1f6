/*
Package loaderutil offers helpers for build-tool transformers which emit
assets under content-derived names.

Content Hashes

GetHashDigest hashes a payload and encodes the digest as hex, as a custom
base (26, 32, 36, 49, 52, 58, 62 or 64) or as a sequence of emoji. Tokens may
be limited to a maximum length; a shorter token is always a prefix of a longer
one for the same payload.

	token, err := loaderutil.GetHashDigest(content, "md5", "base62", 8)

Name Templates

InterpolateName expands a file name template for a resource:

	name, err := loaderutil.InterpolateName(
	    &loaderutil.LoaderContext{ResourcePath: "/app/img/logo.png"},
	    loaderutil.Pattern("img/[name].[contenthash:8].[ext]"),
	    &loaderutil.InterpolateOptions{Content: content},
	)

Placeholders are [name], [ext], [path], [folder], [query], the hash
placeholder [<algorithm>:contenthash:<encoding>:<length>] with all parts but
"hash" or "contenthash" optional, [emoji:<length>] and the capture groups
[1], [2], … of an optional regular expression. Unknown placeholders are left
untouched.

Requests

The remaining helpers deal with module requests: ParseQuery and GetOptions
read loader options from query strings, IsURLRequest and URLToRequest turn
references found in assets into requests, and StringifyRequest produces
request strings fit for generated code.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package loaderutil

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	return gtrace.CoreTracer
}

// LoaderError is an error type for the loaderutil module.
type LoaderError string

func (e LoaderError) Error() string {
	return string(e)
}

// ErrUnknownEncoding is flagged for a digest encoding which is neither a
// supported base nor a native digest encoding.
const ErrUnknownEncoding = LoaderError("unknown digest encoding")

// ErrUnsupportedAlgorithm is flagged if no hash function is registered for an
// algorithm name.
const ErrUnsupportedAlgorithm = LoaderError("unsupported hash algorithm")

// ErrEmojiExhausted is flagged whenever an emoji token is requested which is
// longer than the emoji alphabet.
const ErrEmojiExhausted = LoaderError("emoji token too long")

// ErrInvalidQuery is flagged for query strings which cannot be parsed.
const ErrInvalidQuery = LoaderError("invalid query string")

// ErrInvalidRoot is flagged for a root value which is neither a path nor a
// boolean.
const ErrInvalidRoot = LoaderError("unexpected parameters to URLToRequest")

// ErrInvalidRegExp is flagged if a name template's regular expression does
// not compile.
const ErrInvalidRegExp = LoaderError("invalid regular expression")
