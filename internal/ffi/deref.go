package ffi

import "fmt"

// Deref reads one level of indirection: the value p points to, decoded per
// p's element type. Indirected and pointer-kind elements come back as a
// Pointer one level shallower; scalar elements as their host value.
func Deref(p Pointer) any {
	if p.elem.Indirection > 0 {
		inner := p.elem
		inner.Indirection--
		return Pointer{addr: loadWord(p.addr), elem: inner}
	}
	if p.elem.Kind.isPointer() || p.elem.Kind == KindInvalid {
		return Pointer{addr: loadWord(p.addr)}
	}
	return loadScalar(p.elem.Kind, p.addr)
}

// Unwrap reads the contents view of a pointer. Interchangeable with Deref;
// it exists because some calling conventions name the operation differently
// for structured data than for scalars.
func Unwrap(p Pointer) any {
	return Deref(p)
}

// HostKind names a host-native representation Native can coerce into.
type HostKind int

const (
	HostString HostKind = iota
	HostBytes
	HostInt
	HostUint
)

// Native coerces a foreign value into the requested host representation.
// Text targets decode a null-terminated foreign buffer; byte targets copy
// the full buffer; integral targets convert the scalar payload. A value
// already in the requested representation passes through untouched.
func Native(target HostKind, value any) (any, error) {
	switch target {
	case HostString:
		switch v := value.(type) {
		case string:
			return v, nil
		case *Buffer:
			if v.wide {
				return decodeWide(v.addr, eng().wcslen(v.addr), eng().wcharSize()), nil
			}
			return string(ByteStringFromBuffer(v)), nil
		case Pointer:
			if v.elem.Kind == KindWCharPtr || v.elem.Kind == KindWchar {
				return wideStringAt(v.addr), nil
			}
			return string(cStringAt(v.addr)), nil
		}
	case HostBytes:
		switch v := value.(type) {
		case []byte:
			return v, nil
		case *Buffer:
			return BytesFromBuffer(v), nil
		case Pointer:
			return cStringAt(v.addr), nil
		}
	case HostInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case uint:
			return int(v), nil
		case byte:
			return int(v), nil
		case rune:
			return int(v), nil
		case uintptr:
			return int(v), nil
		case Pointer:
			return int(v.addr), nil
		}
	case HostUint:
		switch v := value.(type) {
		case uint:
			return v, nil
		case int:
			return uint(v), nil
		case byte:
			return uint(v), nil
		case rune:
			return uint(v), nil
		case uintptr:
			return uint(v), nil
		case Pointer:
			return uint(v.addr), nil
		}
	}
	return nil, fmt.Errorf("ffi: cannot coerce %T to host kind %d", value, target)
}

// New allocates a zero-initialized instance of the named type and returns a
// pointer to it, the out-parameter idiom native APIs expect. Names the
// library registered as opaque handle types yield a null handle instead of
// an allocation.
func New(lib *Library, name string) (Pointer, error) {
	ref := ParseTypeName(name)
	if lib != nil && lib.isHandleType(ref.Base) {
		k, err := resolveKind(lib, ref)
		if err != nil {
			return Pointer{}, err
		}
		return Pointer{elem: Type{Name: ref.Base, Kind: k, Size: eng().scalarSize(k)}}, nil
	}
	t, err := ResolveType(lib, ref)
	if err != nil {
		return Pointer{}, err
	}
	cell := t
	cell.Indirection = 0
	size := cell.elemSize()
	if ref.Indirection > 1 {
		// pointer-to-pointer out-param: the cell itself holds a pointer
		cell.Indirection = ref.Indirection - 1
		size = ptrSize
	}
	return Pointer{addr: eng().alloc(size), elem: cell}, nil
}

// Cast reinterprets p as a pointer of the named type without moving or
// copying anything.
func Cast(lib *Library, name string, p Pointer) (Pointer, error) {
	t, err := ResolveTypeName(lib, name)
	if err != nil {
		return Pointer{}, err
	}
	return Pointer{addr: p.addr, elem: t}, nil
}

// Sizeof reports the foreign size in bytes of a buffer, struct instance, or
// pointer produced by this layer.
func Sizeof(value any) int {
	switch v := value.(type) {
	case *Buffer:
		return v.size
	case *StructPtr:
		return int(v.size)
	case Pointer:
		return int(ptrSize)
	}
	return 0
}
