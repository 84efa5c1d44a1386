/*
Package pattern implements search over validated buffers.

A Pattern locates the first match within a haystack, a RevPattern the
last one. Matches are reported as unit offsets into the haystack, always
spanning complete scalars:

	m, ok := pattern.Rune[byte](',').FirstMatch(hay, utf.UTF8{})
	// hay[:m.Start], hay[m.Start:m.End], hay[m.End:]

Matchers on scalars (Rune, Predicate, AnyOf, InTables) decode the haystack
scalar by scalar and need a decoder. For encodings without decoder, e.g.
raw bytes, they never match. Substring compares units directly and works
for every encoding. All matchers of this package search in both
directions.

An empty needle never matches. Neither does any needle in an empty
haystack, or a needle longer than the haystack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–22 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern
