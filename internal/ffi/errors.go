package ffi

import "fmt"

// LibraryNotFoundError is returned when a named shared library cannot be
// located on this system. It is not recoverable by this layer and propagates
// unchanged to whoever asked for the library.
type LibraryNotFoundError struct {
	Name    string
	Tried   []string
	LastErr error
}

func (e *LibraryNotFoundError) Error() string {
	if len(e.Tried) > 0 {
		return fmt.Sprintf("ffi: shared library %q not found (tried %d paths)", e.Name, len(e.Tried))
	}
	return fmt.Sprintf("ffi: shared library %q not found", e.Name)
}

func (e *LibraryNotFoundError) Unwrap() error { return e.LastErr }

// FFIEngineError is returned when neither foreign-call engine could be
// instantiated during bootstrap. Fatal at process level; there is no retry
// path because repeating selection with the same build would fail identically.
type FFIEngineError struct {
	Reason string
	Err    error
}

func (e *FFIEngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ffi: no foreign-call engine available: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("ffi: no foreign-call engine available: %s", e.Reason)
}

func (e *FFIEngineError) Unwrap() error { return e.Err }

// UnresolvedTypeError is returned when a type name is neither in the built-in
// type table nor declared by the library the caller supplied.
type UnresolvedTypeError struct {
	Name    string
	Library string
}

func (e *UnresolvedTypeError) Error() string {
	if e.Library != "" {
		return fmt.Sprintf("ffi: type %q not known to the base table or library %q", e.Name, e.Library)
	}
	return fmt.Sprintf("ffi: type %q not known to the base table", e.Name)
}
