package ffi

const (
	crtLibrary     = "/usr/lib/libSystem.B.dylib"
	crtErrnoSymbol = "__error"
)
