package ffi

import (
	"unicode/utf16"
	"unsafe"
)

// encodeWide converts text to the platform wide-character encoding:
// UTF-16 units when wchar_t is 2 bytes, UTF-32 code points when 4.
// The returned slice excludes the terminator.
func encodeWide(s string, wcharSize int) []byte {
	runes := []rune(s)
	if wcharSize == 2 {
		units := utf16.Encode(runes)
		out := make([]byte, len(units)*2)
		for i, u := range units {
			*(*uint16)(unsafe.Pointer(&out[i*2])) = u
		}
		return out
	}
	out := make([]byte, len(runes)*4)
	for i, r := range runes {
		*(*uint32)(unsafe.Pointer(&out[i*4])) = uint32(r)
	}
	return out
}

// decodeWide reads n wide characters of foreign memory at p back into a
// string.
func decodeWide(p uintptr, n int, wcharSize int) string {
	if p == 0 || n <= 0 {
		return ""
	}
	if wcharSize == 2 {
		units := make([]uint16, n)
		for i := range units {
			units[i] = loadU16(p + uintptr(i)*2)
		}
		return string(utf16.Decode(units))
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = rune(loadU32(p + uintptr(i)*4))
	}
	return string(runes)
}

// wideStringAt decodes the null-terminated wide string at p using the
// active engine's wcslen.
func wideStringAt(p uintptr) string {
	if p == 0 {
		return ""
	}
	e := eng()
	return decodeWide(p, e.wcslen(p), e.wcharSize())
}

// cStringAt copies the null-terminated byte string at p.
func cStringAt(p uintptr) []byte {
	if p == 0 {
		return nil
	}
	return readBytes(p, eng().strlen(p))
}
