package ffi

const (
	crtLibrary     = "libc.so.6"
	crtErrnoSymbol = "__errno_location"
)
