/*
Package vector implements an immutable persistent vector, designed for
use-cases similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: each
“modification” of the vector (replacement, append, slice, …) creates a copy,
leaving the original unmodified. Under the hood, copy-on-write retains most of
the memory held by the original and creates a new incarnation of parts of the
structure only. Thus, most of the structure/memory is shared between original
and copy, transparently to clients.

Vectors organize their elements in a shallow, wide tree with a branch factor
of 32, plus a small tail buffer for the most recently appended elements. This
gives near-array random access together with cheap functional updates:

	Operation     |   Vector          |  Slice
	--------------+-------------------+--------
	Get           |   O(log32 n)      |   O(1)
	Set           |   O(log32 n)      |   O(n) for a private copy
	Push          |   O(1) amortized  |   O(1) amortized, destructive
	Slice         |   O(log32 n) ¹    |   O(1), aliasing
	Append        |   O(n/32)         |   O(n)

¹ right-truncating slices; general slices rebuild in O(n/32).

Two vectors holding the same elements in the same order are guaranteed to be
representation-identical (canonical shape), regardless of the sequence of
operations that produced them. Clients may therefore compare vectors with
reflect.DeepEqual.

Immutable vectors are inherently concurrency-safe.

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
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vector'.
func tracer() tracing.Trace {
	return tracing.Select("vector")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// VectorError is an error type for the vector module.
type VectorError string

func (e VectorError) Error() string {
	return string(e)
}

// ErrVectorCompleted signals that a builder has already completed a vector and
// it's illegal to further add elements.
const ErrVectorCompleted = VectorError("forbidden to add elements; vector has been completed")

// ErrIndexOutOfBounds is flagged whenever a position is greater than the
// length of the vector.
const ErrIndexOutOfBounds = VectorError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = VectorError("illegal arguments")
