package ffi

// StructPtr is a foreign-memory-backed record addressed by pointer. The
// layout comes from the owning library's struct table; this layer only
// knows the total size.
type StructPtr struct {
	addr uintptr
	size uintptr
	name string
}

// Addr exposes the raw struct address for passing to native calls.
func (s *StructPtr) Addr() uintptr { return s.addr }

// Size is sizeof() the struct type.
func (s *StructPtr) Size() uintptr { return s.size }

// Name is the struct type name as declared by the library.
func (s *StructPtr) Name() string { return s.name }

// Free releases the instance.
func (s *StructPtr) Free() {
	if s.addr != 0 {
		eng().free(s.addr)
		s.addr = 0
	}
}

// Struct allocates a zero-initialized instance of the named struct type
// known to lib and returns a pointer to it.
func Struct(lib *Library, name string) (*StructPtr, error) {
	size, ok := lib.lookupStruct(name)
	if !ok {
		return nil, &UnresolvedTypeError{Name: name, Library: lib.name}
	}
	return &StructPtr{addr: eng().alloc(size), size: size, name: name}, nil
}

// StructBytes returns the exact in-memory byte representation of the
// pointed-to struct.
func StructBytes(s *StructPtr) []byte {
	return readBytes(s.addr, int(s.size))
}

// StructFromBuffer allocates a new instance of the named struct type and
// copies exactly sizeof(type) bytes from the start of buf into it. The
// caller guarantees buf is at least that long; a shorter buffer reads past
// its allocation, exactly as the native copy would.
func StructFromBuffer(lib *Library, name string, buf *Buffer) (*StructPtr, error) {
	s, err := Struct(lib, name)
	if err != nil {
		return nil, err
	}
	copyForeign(s.addr, buf.addr, s.size)
	return s, nil
}
