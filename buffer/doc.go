/*
Package buffer provides the growable backing stores of owned strings.

Owned string types do not manage capacity themselves. They delegate to a
Buffer, which hands out its elements as a slice and grows on request.
Two implementations exist: Slice, a plain Go slice, and buffers borrowed
from a Pool, which recycles backing stores of released strings. Pools are
useful for workloads producing many short-lived strings of similar size.

Buffers are not safe for concurrent mutation. Pools are safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–22 Norbert Pillmayer <norbert@pillmayer.com>

*/
package buffer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
