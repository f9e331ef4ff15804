//go:build darwin || linux || freebsd

package ffi

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// dynamicEngine is the purego backend. Nothing about the C runtime is known
// at compile time: the C library is dlopened at bootstrap and every entry
// point below is resolved by name and bound through purego.
type dynamicEngine struct {
	fnCalloc   func(num, size uintptr) uintptr
	fnFree     func(p uintptr)
	fnStrlen   func(p uintptr) uintptr
	fnWcslen   func(p uintptr) uintptr
	fnErrnoLoc func() uintptr
}

func newDynamicEngine() (callEngine, error) {
	handle, err := purego.Dlopen(crtLibrary, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", crtLibrary, err)
	}

	// Fail bootstrap, not first use, if the C runtime is missing anything.
	for _, sym := range []string{"calloc", "free", "strlen", "wcslen", crtErrnoSymbol} {
		if _, err := purego.Dlsym(handle, sym); err != nil {
			return nil, fmt.Errorf("resolve %s in %s: %w", sym, crtLibrary, err)
		}
	}

	e := &dynamicEngine{}
	purego.RegisterLibFunc(&e.fnCalloc, handle, "calloc")
	purego.RegisterLibFunc(&e.fnFree, handle, "free")
	purego.RegisterLibFunc(&e.fnStrlen, handle, "strlen")
	purego.RegisterLibFunc(&e.fnWcslen, handle, "wcslen")
	purego.RegisterLibFunc(&e.fnErrnoLoc, handle, crtErrnoSymbol)
	return e, nil
}

func (e *dynamicEngine) name() string { return EnginePurego }

func (e *dynamicEngine) alloc(n uintptr) uintptr {
	if n == 0 {
		n = 1
	}
	p := e.fnCalloc(1, n)
	if p == 0 {
		panic(fmt.Sprintf("ffi: foreign allocation of %d bytes failed", n))
	}
	return p
}

func (e *dynamicEngine) free(p uintptr) {
	if p != 0 {
		e.fnFree(p)
	}
}

func (e *dynamicEngine) strlen(p uintptr) int { return int(e.fnStrlen(p)) }
func (e *dynamicEngine) wcslen(p uintptr) int { return int(e.fnWcslen(p)) }

func (e *dynamicEngine) wcharSize() int { return 4 }

func (e *dynamicEngine) scalarSize(k Kind) uintptr {
	switch k {
	case KindByte:
		return 1
	case KindInt, KindUint, KindULong, KindDword:
		return 4
	case KindWchar:
		return uintptr(e.wcharSize())
	case KindSizeT, KindVoidPtr, KindCharPtr, KindWCharPtr:
		return ptrSize
	}
	return 0
}

func (e *dynamicEngine) errno() int {
	loc := e.fnErrnoLoc()
	if loc == 0 {
		return 0
	}
	return int(*(*int32)(unsafe.Pointer(loc)))
}
