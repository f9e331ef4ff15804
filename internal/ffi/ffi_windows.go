//go:build windows

package ffi

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

var (
	winDLLMu sync.Mutex
	winDLLs  = map[uintptr]*windows.DLL{}
)

// openLibrary loads a dynamic library on Windows.
func openLibrary(path string) (uintptr, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return 0, fmt.Errorf("LoadDLL failed: %w", err)
	}
	handle := uintptr(dll.Handle)
	winDLLMu.Lock()
	winDLLs[handle] = dll
	winDLLMu.Unlock()
	return handle, nil
}

// getSymbol retrieves a symbol from the loaded library on Windows.
func getSymbol(handle uintptr, name string) (uintptr, error) {
	winDLLMu.Lock()
	dll := winDLLs[handle]
	winDLLMu.Unlock()
	if dll == nil {
		return 0, fmt.Errorf("library handle %#x not loaded through this loader", handle)
	}
	proc, err := dll.FindProc(name)
	if err != nil {
		return 0, fmt.Errorf("FindProc(%s) failed: %w", name, err)
	}
	return proc.Addr(), nil
}
