//go:build windows

package ffi

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// dynamicEngine on Windows resolves the C runtime entry points out of
// ucrtbase at bootstrap and invokes them through purego's generic syscall
// path. No signatures are compiled ahead of use.
type dynamicEngine struct {
	procCalloc uintptr
	procFree   uintptr
	procStrlen uintptr
	procWcslen uintptr
	procErrno  uintptr
}

func newDynamicEngine() (callEngine, error) {
	crt := windows.NewLazySystemDLL("ucrtbase.dll")
	if err := crt.Load(); err != nil {
		return nil, fmt.Errorf("load ucrtbase.dll: %w", err)
	}

	e := &dynamicEngine{}
	for _, bind := range []struct {
		sym  string
		addr *uintptr
	}{
		{"calloc", &e.procCalloc},
		{"free", &e.procFree},
		{"strlen", &e.procStrlen},
		{"wcslen", &e.procWcslen},
		{"_errno", &e.procErrno},
	} {
		proc := crt.NewProc(bind.sym)
		if err := proc.Find(); err != nil {
			return nil, fmt.Errorf("resolve %s in ucrtbase.dll: %w", bind.sym, err)
		}
		*bind.addr = proc.Addr()
	}
	return e, nil
}

func (e *dynamicEngine) name() string { return EnginePurego }

func (e *dynamicEngine) alloc(n uintptr) uintptr {
	if n == 0 {
		n = 1
	}
	p, _, _ := purego.SyscallN(e.procCalloc, 1, n)
	if p == 0 {
		panic(fmt.Sprintf("ffi: foreign allocation of %d bytes failed", n))
	}
	return p
}

func (e *dynamicEngine) free(p uintptr) {
	if p != 0 {
		purego.SyscallN(e.procFree, p)
	}
}

func (e *dynamicEngine) strlen(p uintptr) int {
	n, _, _ := purego.SyscallN(e.procStrlen, p)
	return int(n)
}

func (e *dynamicEngine) wcslen(p uintptr) int {
	n, _, _ := purego.SyscallN(e.procWcslen, p)
	return int(n)
}

func (e *dynamicEngine) wcharSize() int { return 2 }

func (e *dynamicEngine) scalarSize(k Kind) uintptr {
	switch k {
	case KindByte:
		return 1
	case KindInt, KindUint, KindULong, KindDword:
		return 4
	case KindWchar:
		return 2
	case KindSizeT, KindVoidPtr, KindCharPtr, KindWCharPtr:
		return ptrSize
	}
	return 0
}

func (e *dynamicEngine) errno() int {
	loc, _, _ := purego.SyscallN(e.procErrno)
	if loc == 0 {
		return 0
	}
	return int(*(*int32)(unsafe.Pointer(loc)))
}
