package ffi

// Buffer is a fixed-length, mutable block of foreign memory used to pass
// byte or wide-character data across the boundary. The allocation carries a
// backend-imposed null terminator beyond size; size itself is the payload
// length in bytes. The creating caller owns the buffer for its lifetime;
// this layer does no reference counting.
type Buffer struct {
	addr uintptr
	size int
	wide bool
}

// Addr exposes the raw buffer address for passing to native calls.
func (b *Buffer) Addr() uintptr { return b.addr }

// Size is the payload length in bytes, excluding the terminator.
func (b *Buffer) Size() int { return b.size }

// Pointer returns a typed pointer to the buffer's first byte.
func (b *Buffer) Pointer() Pointer {
	k := KindByte
	name := "unsigned char"
	if b.wide {
		k = KindWchar
		name = "wchar_t"
	}
	return Pointer{addr: b.addr, elem: Type{Name: name, Kind: k, Size: eng().scalarSize(k)}}
}

// Free releases the foreign allocation. The buffer must not be referenced
// by any live struct or pointer derived from it.
func (b *Buffer) Free() {
	if b.addr != 0 {
		eng().free(b.addr)
		b.addr = 0
		b.size = 0
	}
}

// BufferFromBytes allocates a foreign buffer initialized with data, plus a
// trailing null byte.
func BufferFromBytes(data []byte) *Buffer {
	e := eng()
	addr := e.alloc(uintptr(len(data)) + 1)
	writeBytes(addr, data)
	return &Buffer{addr: addr, size: len(data)}
}

// BufferFromUnicode allocates a wide-character foreign buffer initialized
// from text, plus a trailing wide null.
func BufferFromUnicode(text string) *Buffer {
	e := eng()
	ws := e.wcharSize()
	payload := encodeWide(text, ws)
	addr := e.alloc(uintptr(len(payload) + ws))
	writeBytes(addr, payload)
	return &Buffer{addr: addr, size: len(payload), wide: true}
}

// ByteArray constructs a foreign array of single bytes from data, for APIs
// requiring byte-array-by-value semantics. Unlike BufferFromBytes the
// allocation is exactly len(data) bytes with no terminator.
func ByteArray(data []byte) *Buffer {
	e := eng()
	n := uintptr(len(data))
	if n == 0 {
		n = 1 // zero-byte foreign allocations are not portable
	}
	addr := e.alloc(n)
	writeBytes(addr, data)
	return &Buffer{addr: addr, size: len(data)}
}

// BufferPointer produces a single-element array of pointers whose one entry
// points at buf, for native APIs expecting pointer-to-pointer-to-bytes.
func BufferPointer(buf *Buffer) Pointer {
	e := eng()
	cell := e.alloc(ptrSize)
	storeWord(cell, buf.addr)
	elemName := "unsigned char *"
	k := KindCharPtr
	if buf.wide {
		elemName = "wchar_t *"
		k = KindWCharPtr
	}
	return Pointer{addr: cell, elem: Type{Name: elemName, Kind: k, Size: ptrSize}}
}

// BytesFromBuffer copies out the full buffer as an immutable byte sequence.
func BytesFromBuffer(buf *Buffer) []byte {
	return readBytes(buf.addr, buf.size)
}

// BytesFromBufferN copies out up to maxlen bytes of the buffer.
func BytesFromBufferN(buf *Buffer, maxlen int) []byte {
	if maxlen > buf.size {
		maxlen = buf.size
	}
	return readBytes(buf.addr, maxlen)
}

// ByteStringFromBuffer copies out a null-terminated byte string, stopping at
// the first null or the end of the buffer, whichever comes first.
func ByteStringFromBuffer(buf *Buffer) []byte {
	full := foreignBytes(buf.addr, buf.size)
	for i, c := range full {
		if c == 0 {
			return readBytes(buf.addr, i)
		}
	}
	return readBytes(buf.addr, buf.size)
}

// Null returns the null-pointer sentinel for the active engine.
func Null() Pointer {
	return Pointer{}
}

// IsNull reports whether p is null. A non-null pointer whose pointee is
// itself a pointer type is additionally checked one level down: some APIs
// return a handle through an out-pointer that is validly non-null while the
// handle it carries is null. This dual check is deliberately narrow; do not
// extend it past pointer-typed pointees.
func IsNull(p Pointer) bool {
	if p.addr == 0 {
		return true
	}
	if p.elem.Indirection > 0 || p.elem.Kind.isPointer() {
		return loadWord(p.addr) == 0
	}
	return false
}
