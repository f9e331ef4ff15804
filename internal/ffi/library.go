package ffi

import "sync"

// Library is an opaque reference to a loaded native module. The loader
// creates it; binding modules populate its type, struct, and handle tables;
// the resolver consults them. The handle is not owned by this layer and is
// never closed here.
type Library struct {
	name   string
	handle uintptr

	mu      sync.RWMutex
	types   map[string]Kind
	structs map[string]uintptr
	handles map[string]struct{}
}

// NewLibrary wraps an already-loaded native module handle. Most callers get
// a Library from LoadLibrary instead.
func NewLibrary(name string, handle uintptr) *Library {
	return &Library{
		name:    name,
		handle:  handle,
		types:   map[string]Kind{},
		structs: map[string]uintptr{},
		handles: map[string]struct{}{},
	}
}

// Name is the loader-facing name the library was requested under.
func (l *Library) Name() string { return l.name }

// Handle is the platform module handle.
func (l *Library) Handle() uintptr { return l.handle }

// Symbol resolves a named symbol in the library.
func (l *Library) Symbol(name string) (uintptr, error) {
	return getSymbol(l.handle, name)
}

// RegisterType declares a library-specific type name as a primitive kind.
// Binding modules call this once, at declaration time.
func (l *Library) RegisterType(name string, k Kind) {
	l.mu.Lock()
	l.types[name] = k
	l.mu.Unlock()
}

// RegisterHandleType declares a type name as an opaque handle: New yields a
// null handle for it instead of an allocation.
func (l *Library) RegisterHandleType(name string, k Kind) {
	l.mu.Lock()
	l.types[name] = k
	l.handles[name] = struct{}{}
	l.mu.Unlock()
}

// RegisterStruct declares the byte size of a named struct type.
func (l *Library) RegisterStruct(name string, size uintptr) {
	l.mu.Lock()
	l.structs[name] = size
	l.mu.Unlock()
}

func (l *Library) lookupType(name string) (Kind, bool) {
	l.mu.RLock()
	k, ok := l.types[name]
	l.mu.RUnlock()
	return k, ok
}

func (l *Library) lookupStruct(name string) (uintptr, bool) {
	l.mu.RLock()
	size, ok := l.structs[name]
	l.mu.RUnlock()
	return size, ok
}

func (l *Library) isHandleType(name string) bool {
	l.mu.RLock()
	_, ok := l.handles[name]
	l.mu.RUnlock()
	return ok
}
