package nativeffi

import (
	"runtime"
	"testing"
)

func TestCurrentPlatform(t *testing.T) {
	p := CurrentPlatform()
	if p == PlatformUnknown && (runtime.GOOS == "linux" || runtime.GOOS == "darwin" || runtime.GOOS == "windows") {
		t.Errorf("CurrentPlatform() = %v on %s", p, runtime.GOOS)
	}
	if IsWindows() != (runtime.GOOS == "windows") {
		t.Error("IsWindows disagrees with GOOS")
	}
}

func TestFacadeParseResolve(t *testing.T) {
	ref := ParseTypeName("unsigned char **")
	if ref.Base != "unsigned char" || ref.Indirection != 2 {
		t.Errorf("ParseTypeName through facade = %+v", ref)
	}

	if err := Init(); err != nil {
		t.Skipf("no ffi engine available: %v", err)
	}
	if Engine() != EngineCgo && Engine() != EnginePurego {
		t.Errorf("Engine() = %q", Engine())
	}

	buf := BufferFromBytes([]byte{1, 2, 3, 4})
	defer buf.Free()
	if got := BytesFromBufferN(buf, 2); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("BytesFromBufferN = %v", got)
	}
}
