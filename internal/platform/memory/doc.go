// Package memory provides process-local implementations of the store and
// job queue contracts, backed by mutex-guarded maps and an unbounded
// FIFO. It is the default backend and the fixture every contract test
// runs against. A separate worker process cannot share it; embedded mode
// runs the worker in the server process instead.
package memory
