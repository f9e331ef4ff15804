package ffi

import "strings"

// Base type table shared by both engines. The dynamic engine consults it
// directly; the declarative engine's pre-compiled types cover the same set,
// so resolution stays identical from the caller's point of view. Windows
// extends these tables from typeref_windows.go at init.
var baseKinds = map[string]Kind{
	"void *":        KindVoidPtr,
	"char *":        KindCharPtr,
	"wchar_t *":     KindWCharPtr,
	"unsigned char": KindByte,
	"wchar_t":       KindWchar,
	"int":           KindInt,
	"unsigned int":  KindUint,
	"size_t":        KindSizeT,
}

// alreadyPointer is the set of names that are atomic pointer types. A name
// in this set ending in " *" is not treated as an extra indirection.
var alreadyPointer = map[string]bool{
	"void *":    true,
	"char *":    true,
	"wchar_t *": true,
}

// stringPointerNames maps recognized string-pointer type names, as written
// by callers, to whether they are wide. Used by array decoding to turn
// elements into byte strings instead of raw pointers.
var stringPointerNames = map[string]bool{
	"char *":          false,
	"unsigned char *": false,
	"wchar_t *":       true,
}

// ParseTypeName splits a textual type name into a base name and an explicit
// indirection count (0, 1, or 2). A single trailing " *" or " **" is peeled
// off unless the remaining name is itself an atomic pointer type.
func ParseTypeName(name string) TypeRef {
	ref := TypeRef{Base: name}
	if strings.HasSuffix(ref.Base, " **") {
		ref.Base = ref.Base[:len(ref.Base)-1]
		ref.Indirection++
	}
	if strings.HasSuffix(ref.Base, " *") && !alreadyPointer[ref.Base] {
		ref.Base = ref.Base[:len(ref.Base)-2]
		ref.Indirection++
	}
	ref.AlreadyPointer = alreadyPointer[ref.Base]
	return ref
}

// resolveKind maps a parsed base name to a primitive kind: base table first,
// then the library's declared types, else an unresolved-type error. Pure
// lookup; no engine required.
func resolveKind(lib *Library, ref TypeRef) (Kind, error) {
	if k, ok := baseKinds[ref.Base]; ok {
		return k, nil
	}
	if lib != nil {
		if k, ok := lib.lookupType(ref.Base); ok {
			return k, nil
		}
	}
	err := &UnresolvedTypeError{Name: ref.Base}
	if lib != nil {
		err.Library = lib.name
	}
	return KindInvalid, err
}

// ResolveType materializes a parsed type name into the active engine's
// concrete descriptor.
func ResolveType(lib *Library, ref TypeRef) (Type, error) {
	k, err := resolveKind(lib, ref)
	if err != nil {
		return Type{}, err
	}
	return Type{
		Name:        ref.Base,
		Kind:        k,
		Size:        eng().scalarSize(k),
		Indirection: ref.Indirection,
	}, nil
}

// ResolveTypeName is ResolveType over an unparsed name.
func ResolveTypeName(lib *Library, name string) (Type, error) {
	return ResolveType(lib, ParseTypeName(name))
}

// TypeSize resolves a type name and returns its size in bytes. Indirected
// types size as pointers.
func TypeSize(lib *Library, name string) (uintptr, error) {
	t, err := ResolveTypeName(lib, name)
	if err != nil {
		return 0, err
	}
	return t.elemSize(), nil
}
