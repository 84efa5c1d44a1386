/*
Package vstr is about validated strings of arbitrary Unicode encodings.

Description

Go strings are sequences of bytes by convention holding UTF-8, but nothing
prevents a string from containing garbage. Package vstr and its
sub-packages provide a family of string types which are parameterized
over an element type (byte, 16-bit code unit or rune) and an encoding
policy. Every live instance of one of these types holds a buffer which
has been checked to be well-formed with respect to its encoding.

Once a buffer has been validated, slicing it does not need a full re-scan.
An encoding policy offers a cheap boundary check for sub-ranges of buffers
which are already known to be valid. For UTF-8 this means looking at no more
than 4 bytes at either end of the sub-range, for UTF-16 at one code unit at
either end.

Contents

Base package vstr holds the contract every encoding has to satisfy
(interface Policy and its companions Decoder, Encoder and Codec), the
error types, and the package-wide configuration. Concrete encodings live
in sub-packages utf (UTF-8, UTF-16, UTF-32) and raw (opaque bytes, used for
interoperability with C-style strings). The string types are contained in
sub-package text, pattern matching in sub-package pattern, and the dynamic
buffers backing owned strings in sub-package buffer.

The set of encodings is closed: Policy carries a method with an argument
type from an internal package, so it can only be implemented within this
module.

Unchecked Operations

A number of functions carry the word "Unchecked" in their names. They
perform no validation and expect the caller to guarantee that their
documented preconditions hold. Violating a precondition results in
string values breaking the well-formedness invariant, which in turn makes
the results of all further operations undefined. Clients should treat them
as escape hatches, not as part of the regular API.

To catch misuse of the fast sub-range check during testing, clients may
switch on CheckSubranges. Every sub-range check will then be cross-checked
by a full validation, and disagreement results in a panic.

Non-Goals

Package vstr does not normalize, collate, segment into graphemes or
perform any kind of locale-specific processing. See
github.com/npillmayer/uax for Unicode segmentation.

BSD License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package vstr

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
