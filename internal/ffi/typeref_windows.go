//go:build windows

package ffi

// The Windows crypto APIs traffic in their own aliases for narrow and wide
// string pointers plus a couple of fixed-width integers. They are atomic
// pointer names, never an extra indirection.
func init() {
	for name, k := range map[string]Kind{
		"LPSTR":   KindCharPtr,
		"LPCSTR":  KindCharPtr,
		"LPWSTR":  KindWCharPtr,
		"LPCWSTR": KindWCharPtr,
		"ULONG":   KindULong,
		"DWORD":   KindDword,
	} {
		baseKinds[name] = k
	}
	for _, name := range []string{"LPSTR", "LPCSTR", "LPWSTR", "LPCWSTR"} {
		alreadyPointer[name] = true
	}
	for name, wide := range map[string]bool{
		"LPSTR":   false,
		"LPCSTR":  false,
		"LPWSTR":  true,
		"LPCWSTR": true,
	} {
		stringPointerNames[name] = wide
	}
}
