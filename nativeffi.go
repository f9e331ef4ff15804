// Package nativeffi exposes a uniform set of primitives for calling into
// native shared libraries. Two foreign-call engines can back it: a
// declarative cgo engine with pre-compiled C declarations, and a dynamic
// purego engine that resolves everything at call time. One of them is chosen
// exactly once at bootstrap; callers never branch on the choice.
package nativeffi

import (
	"go.uber.org/zap"

	"github.com/osbind/nativeffi/internal/ffi"
)

// Engine identity values, readable through Engine after bootstrap.
const (
	EngineCgo    = ffi.EngineCgo
	EnginePurego = ffi.EnginePurego
)

// Re-exports of the core types for consumer convenience.
type (
	Buffer    = ffi.Buffer
	Pointer   = ffi.Pointer
	StructPtr = ffi.StructPtr
	Library   = ffi.Library
	Type      = ffi.Type
	TypeRef   = ffi.TypeRef
	Kind      = ffi.Kind
	HostKind  = ffi.HostKind

	LoaderConfig = ffi.LoaderConfig

	LibraryNotFoundError = ffi.LibraryNotFoundError
	FFIEngineError       = ffi.FFIEngineError
	UnresolvedTypeError  = ffi.UnresolvedTypeError
)

// Primitive kinds for library type registration.
const (
	KindByte     = ffi.KindByte
	KindInt      = ffi.KindInt
	KindUint     = ffi.KindUint
	KindSizeT    = ffi.KindSizeT
	KindULong    = ffi.KindULong
	KindDword    = ffi.KindDword
	KindWchar    = ffi.KindWchar
	KindVoidPtr  = ffi.KindVoidPtr
	KindCharPtr  = ffi.KindCharPtr
	KindWCharPtr = ffi.KindWCharPtr
)

// Host-native coercion targets for Native.
const (
	HostString = ffi.HostString
	HostBytes  = ffi.HostBytes
	HostInt    = ffi.HostInt
	HostUint   = ffi.HostUint
)

// Init runs engine selection once and reports whether a foreign-call engine
// is available.
func Init() error { return ffi.Init() }

// Engine returns the identity of the active engine.
func Engine() string { return ffi.Engine() }

// SetLogger installs a logger for bootstrap and loader diagnostics.
func SetLogger(l *zap.Logger) { ffi.SetLogger(l) }

// Library loading.
func LoadLibrary(name string) (*Library, error) { return ffi.LoadLibrary(name) }
func LoadLibraryWith(name string, cfg *LoaderConfig) (*Library, error) {
	return ffi.LoadLibraryWith(name, cfg)
}
func LoadLoaderConfig(path string) (*LoaderConfig, error) { return ffi.LoadLoaderConfig(path) }

// Type descriptor resolution.
func ParseTypeName(name string) TypeRef { return ffi.ParseTypeName(name) }
func ResolveType(lib *Library, ref TypeRef) (Type, error) {
	return ffi.ResolveType(lib, ref)
}
func ResolveTypeName(lib *Library, name string) (Type, error) {
	return ffi.ResolveTypeName(lib, name)
}
func TypeSize(lib *Library, name string) (uintptr, error) { return ffi.TypeSize(lib, name) }

// Buffer and memory primitives.
func BufferFromBytes(data []byte) *Buffer        { return ffi.BufferFromBytes(data) }
func BufferFromUnicode(text string) *Buffer      { return ffi.BufferFromUnicode(text) }
func ByteArray(data []byte) *Buffer              { return ffi.ByteArray(data) }
func BufferPointer(buf *Buffer) Pointer          { return ffi.BufferPointer(buf) }
func BytesFromBuffer(buf *Buffer) []byte         { return ffi.BytesFromBuffer(buf) }
func BytesFromBufferN(buf *Buffer, n int) []byte { return ffi.BytesFromBufferN(buf, n) }
func ByteStringFromBuffer(buf *Buffer) []byte    { return ffi.ByteStringFromBuffer(buf) }
func Null() Pointer                              { return ffi.Null() }
func IsNull(p Pointer) bool                      { return ffi.IsNull(p) }
func Errno() int                                 { return ffi.Errno() }

// Struct and array marshaling.
func Struct(lib *Library, name string) (*StructPtr, error) { return ffi.Struct(lib, name) }
func StructBytes(s *StructPtr) []byte                      { return ffi.StructBytes(s) }
func StructFromBuffer(lib *Library, name string, buf *Buffer) (*StructPtr, error) {
	return ffi.StructFromBuffer(lib, name, buf)
}
func ArrayFromPointer(lib *Library, typeName string, p Pointer, size int) ([]any, error) {
	return ffi.ArrayFromPointer(lib, typeName, p, size)
}

// Dereference and coercion.
func Deref(p Pointer) any                            { return ffi.Deref(p) }
func Unwrap(p Pointer) any                           { return ffi.Unwrap(p) }
func Native(target HostKind, v any) (any, error)     { return ffi.Native(target, v) }
func New(lib *Library, name string) (Pointer, error) { return ffi.New(lib, name) }
func Cast(lib *Library, name string, p Pointer) (Pointer, error) {
	return ffi.Cast(lib, name, p)
}
func Sizeof(v any) int { return ffi.Sizeof(v) }
