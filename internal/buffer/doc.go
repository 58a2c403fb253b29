// Package buffer defines the abstract text-buffer interface the engine
// drives.
//
// Every accessor may fail: a buffer backed by an external application can
// lose its target at any time. The engine treats any failure as a hard
// abort of the in-flight command, so implementations should return
// ErrUnavailable rather than guessing at state. MemoryBuffer provides an
// in-process implementation used by tests and the demo binary.
package buffer
