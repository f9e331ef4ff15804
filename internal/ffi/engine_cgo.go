//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include <string.h>
#include <wchar.h>
#include <errno.h>

static int nf_errno(void) { return errno; }
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// cgoEngine is the declarative backend: its type sizes and entry points are
// C declarations compiled ahead of any call. When the toolchain builds
// without cgo this file drops out, declarativeFactory stays nil, and
// bootstrap falls through to the dynamic engine.
func init() {
	declarativeFactory = &engineFactory{
		name:  EngineCgo,
		build: func() (callEngine, error) { return cgoEngine{}, nil },
	}
}

type cgoEngine struct{}

func (cgoEngine) name() string { return EngineCgo }

func (cgoEngine) alloc(n uintptr) uintptr {
	if n == 0 {
		n = 1
	}
	p := C.calloc(1, C.size_t(n))
	if p == nil {
		panic(fmt.Sprintf("ffi: foreign allocation of %d bytes failed", n))
	}
	return uintptr(p)
}

func (cgoEngine) free(p uintptr) {
	if p != 0 {
		C.free(unsafe.Pointer(p))
	}
}

func (cgoEngine) strlen(p uintptr) int {
	return int(C.strlen((*C.char)(unsafe.Pointer(p))))
}

func (cgoEngine) wcslen(p uintptr) int {
	return int(C.wcslen((*C.wchar_t)(unsafe.Pointer(p))))
}

func (cgoEngine) wcharSize() int { return C.sizeof_wchar_t }

func (cgoEngine) scalarSize(k Kind) uintptr {
	switch k {
	case KindByte:
		return C.sizeof_uchar
	case KindInt:
		return C.sizeof_int
	case KindUint:
		return C.sizeof_uint
	case KindULong, KindDword:
		return 4
	case KindWchar:
		return C.sizeof_wchar_t
	case KindSizeT:
		return C.sizeof_size_t
	case KindVoidPtr, KindCharPtr, KindWCharPtr:
		return ptrSize
	}
	return 0
}

func (cgoEngine) errno() int {
	return int(C.nf_errno())
}
