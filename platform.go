package nativeffi

import "runtime"

// Platform represents the current operating system as seen by the loader
// and the wide-character primitives.
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformFreeBSD Platform = "freebsd"
	PlatformWindows Platform = "windows"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the process is running on.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformMacOS
	case "linux":
		return PlatformLinux
	case "freebsd":
		return PlatformFreeBSD
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

// IsWindows reports whether the Windows string-pointer extension set is in
// effect for type resolution and array decoding.
func IsWindows() bool {
	return CurrentPlatform() == PlatformWindows
}
