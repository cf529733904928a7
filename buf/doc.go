/*
Package buf provides a fixed-capacity immutable value buffer.

Buffers are the storage primitive for the persistent vector in the parent
package: every tree node and every tail is a Buffer. A Buffer holds at most
Capacity elements inline and is immutable by convention: all modifying
operations return a new Buffer and never touch the receiver. Copying a Buffer
copies its inline store, so sharing one between any number of owners is safe.

The package is deliberately small: no I/O, no aggregation, no allocation
beyond the value itself. Bounds checking is the caller's business for the
Unsafe operations, mirroring their use by tree code that has already proven
an index in range.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package buf

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
