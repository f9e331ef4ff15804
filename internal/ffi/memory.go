package ffi

import "unsafe"

const ptrSize = unsafe.Sizeof(uintptr(0))

// The helpers below operate on foreign memory only. They are shared by both
// engines: once a block exists, reading and writing it is plain pointer
// arithmetic regardless of which engine allocated it.

func foreignBytes(p uintptr, n int) []byte {
	if p == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// readBytes copies n bytes out of foreign memory.
func readBytes(p uintptr, n int) []byte {
	src := foreignBytes(p, n)
	if src == nil {
		return []byte{}
	}
	out := make([]byte, n)
	copy(out, src)
	return out
}

// writeBytes copies b into foreign memory at p. The caller guarantees the
// destination block is at least len(b) bytes.
func writeBytes(p uintptr, b []byte) {
	if len(b) == 0 {
		return
	}
	copy(foreignBytes(p, len(b)), b)
}

// copyForeign copies n bytes between two foreign blocks.
func copyForeign(dst, src uintptr, n uintptr) {
	if n == 0 {
		return
	}
	copy(foreignBytes(dst, int(n)), foreignBytes(src, int(n)))
}

func loadWord(p uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(p))
}

func storeWord(p uintptr, v uintptr) {
	*(*uintptr)(unsafe.Pointer(p)) = v
}

func loadU16(p uintptr) uint16 { return *(*uint16)(unsafe.Pointer(p)) }
func loadU32(p uintptr) uint32 { return *(*uint32)(unsafe.Pointer(p)) }

// loadScalar decodes one value of kind k at address p into its host-native
// representation. Pointer kinds come back as raw addresses; integral kinds
// as sign-appropriate Go integers.
func loadScalar(k Kind, p uintptr) any {
	switch k {
	case KindByte:
		return *(*byte)(unsafe.Pointer(p))
	case KindInt:
		return int(*(*int32)(unsafe.Pointer(p)))
	case KindUint:
		return uint(loadU32(p))
	case KindSizeT:
		return uint(loadWord(p))
	case KindULong, KindDword:
		return uint(loadU32(p))
	case KindWchar:
		if eng().wcharSize() == 2 {
			return rune(loadU16(p))
		}
		return rune(loadU32(p))
	default:
		return loadWord(p)
	}
}
