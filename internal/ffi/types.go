package ffi

// Kind is a resolved primitive encoding for a native type. Pointer-valued
// kinds carry their pointer nature in the kind itself; extra indirection on
// top of any kind is tracked separately in Type.Indirection.
type Kind int

const (
	KindInvalid  Kind = iota
	KindByte          // unsigned char
	KindInt           // int
	KindUint          // unsigned int
	KindSizeT         // size_t
	KindULong         // ULONG (Windows)
	KindDword         // DWORD (Windows)
	KindWchar         // wchar_t
	KindVoidPtr       // void *
	KindCharPtr       // char *, unsigned char *, LPSTR, LPCSTR
	KindWCharPtr      // wchar_t *, LPWSTR, LPCWSTR
)

// isPointer reports whether values of this kind are themselves addresses.
func (k Kind) isPointer() bool {
	switch k {
	case KindVoidPtr, KindCharPtr, KindWCharPtr:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case KindByte:
		return "byte"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindSizeT:
		return "size_t"
	case KindULong:
		return "ulong"
	case KindDword:
		return "dword"
	case KindWchar:
		return "wchar"
	case KindVoidPtr:
		return "void*"
	case KindCharPtr:
		return "char*"
	case KindWCharPtr:
		return "wchar*"
	}
	return "invalid"
}

// TypeRef is the parsed form of a textual type name: a base name plus an
// explicit indirection count. Parsing happens once at binding-declaration
// time; nothing downstream ever re-inspects trailing "*" syntax.
type TypeRef struct {
	Base        string
	Indirection int
	// AlreadyPointer marks base names that denote an atomic pointer type
	// (for example "char *" or LPCWSTR). A trailing " *" on such a name is
	// part of the name, not an extra level of indirection.
	AlreadyPointer bool
}

// Type is the engine-resolved descriptor for a native type: the primitive
// kind, its size in bytes, and any extra pointer levels requested by the
// caller on top of it.
type Type struct {
	Name        string
	Kind        Kind
	Size        uintptr
	Indirection int
}

// elemSize is the byte width of one element of this type when laid out in
// an array: the pointer width when indirected, the scalar width otherwise.
func (t Type) elemSize() uintptr {
	if t.Indirection > 0 || t.Kind.isPointer() {
		return ptrSize
	}
	return t.Size
}

// Pointer is a value referencing foreign memory or an opaque system handle.
// The zero Pointer is the null sentinel. elem describes what one level of
// dereference yields; it may be the zero Type for untyped pointers.
type Pointer struct {
	addr uintptr
	elem Type
}

// Addr exposes the raw pointer value for passing to native calls.
func (p Pointer) Addr() uintptr { return p.addr }

// Elem returns the descriptor of the pointed-to value.
func (p Pointer) Elem() Type { return p.elem }
