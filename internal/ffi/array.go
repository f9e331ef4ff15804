package ffi

// ArrayFromPointer reinterprets p as a fixed-length array of size elements
// of the named type and decodes it into a slice in memory order (index 0 is
// the lowest address).
//
// Elements of a recognized string-pointer type are followed one level and
// decoded from their null terminator: narrow variants as []byte, wide
// variants as string. Every other type decodes to its scalar host value, or
// to a Pointer for pointer-valued elements.
//
// A size that resolves to zero total bytes yields an empty slice without any
// pointer arithmetic, regardless of p (including null).
func ArrayFromPointer(lib *Library, typeName string, p Pointer, size int) ([]any, error) {
	ref := ParseTypeName(typeName)
	t, err := ResolveType(lib, ref)
	if err != nil {
		return nil, err
	}

	elemSize := t.elemSize()
	if size <= 0 || elemSize == 0 {
		return []any{}, nil
	}

	wide, isString := stringPointerNames[typeName]

	out := make([]any, 0, size)
	for i := 0; i < size; i++ {
		addr := p.addr + uintptr(i)*elemSize
		switch {
		case isString && wide:
			out = append(out, wideStringAt(loadWord(addr)))
		case isString:
			out = append(out, cStringAt(loadWord(addr)))
		case t.Indirection > 0:
			out = append(out, Pointer{addr: loadWord(addr), elem: Type{Name: t.Name, Kind: t.Kind, Size: t.Size, Indirection: t.Indirection - 1}})
		case t.Kind.isPointer():
			out = append(out, Pointer{addr: loadWord(addr)})
		default:
			out = append(out, loadScalar(t.Kind, addr))
		}
	}
	return out, nil
}
