package ffi

const (
	crtLibrary     = "libc.so.7"
	crtErrnoSymbol = "__error"
)
