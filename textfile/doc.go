/*
Package textfile loads text files as vectors of lines.

Files are opened synchronously, but read in the background; clients may
subscribe to progress messages while loading is under way, or simply wait
for the completed vector.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vector.textfile'.
func tracer() tracing.Trace {
	return tracing.Select("vector.textfile")
}
