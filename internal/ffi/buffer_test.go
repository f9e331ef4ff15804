package ffi

import (
	"bytes"
	"testing"
)

func TestBufferRoundTrip(t *testing.T) {
	requireEngine(t)
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "ascii", data: []byte("hello")},
		{name: "binary with embedded null", data: []byte{0x01, 0x00, 0x02, 0xff}},
		{name: "long", data: bytes.Repeat([]byte{0xab}, 4096)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := BufferFromBytes(tt.data)
			defer buf.Free()
			if got := BytesFromBuffer(buf); !bytes.Equal(got, tt.data) {
				t.Errorf("round trip = %v, want %v", got, tt.data)
			}
			if buf.Size() != len(tt.data) {
				t.Errorf("Size() = %d, want %d", buf.Size(), len(tt.data))
			}
		})
	}
}

func TestBytesFromBufferN(t *testing.T) {
	requireEngine(t)
	buf := BufferFromBytes([]byte{0x01, 0x02, 0x03, 0x04})
	defer buf.Free()

	if got := BytesFromBufferN(buf, 2); !bytes.Equal(got, []byte{0x01, 0x02}) {
		t.Errorf("maxlen=2 = %v, want 01 02", got)
	}
	if got := BytesFromBufferN(buf, 100); !bytes.Equal(got, []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("maxlen past end = %v, want full payload", got)
	}
	if got := BytesFromBufferN(buf, 0); len(got) != 0 {
		t.Errorf("maxlen=0 = %v, want empty", got)
	}
}

func TestByteStringFromBuffer(t *testing.T) {
	requireEngine(t)
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{name: "no null", data: []byte("abc"), want: []byte("abc")},
		{name: "stops at first null", data: []byte{'a', 'b', 0x00, 'c'}, want: []byte("ab")},
		{name: "leading null", data: []byte{0x00, 'x'}, want: []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := BufferFromBytes(tt.data)
			defer buf.Free()
			if got := ByteStringFromBuffer(buf); !bytes.Equal(got, tt.want) {
				t.Errorf("= %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBufferFromUnicode(t *testing.T) {
	requireEngine(t)
	buf := BufferFromUnicode("héllo")
	defer buf.Free()

	ws := eng().wcharSize()
	if buf.Size() != 5*ws {
		t.Errorf("Size() = %d, want %d", buf.Size(), 5*ws)
	}
	got, err := Native(HostString, buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != "héllo" {
		t.Errorf("decoded %q, want %q", got, "héllo")
	}
}

func TestByteArray(t *testing.T) {
	requireEngine(t)
	data := []byte{0x10, 0x20, 0x30}
	arr := ByteArray(data)
	defer arr.Free()
	if got := BytesFromBuffer(arr); !bytes.Equal(got, data) {
		t.Errorf("= %v, want %v", got, data)
	}
}

func TestIsNull(t *testing.T) {
	requireEngine(t)

	if !IsNull(Null()) {
		t.Error("IsNull(Null()) must be true")
	}

	buf := BufferFromBytes([]byte("x"))
	defer buf.Free()
	if IsNull(buf.Pointer()) {
		t.Error("freshly allocated buffer pointer reported null")
	}

	// Out-pointer whose cell holds a live buffer.
	cell := BufferPointer(buf)
	if IsNull(cell) {
		t.Error("pointer cell holding a live buffer reported null")
	}

	// Out-pointer that is itself non-null but whose pointee is null.
	empty := eng().alloc(ptrSize)
	defer eng().free(empty)
	hollow := Pointer{addr: empty, elem: Type{Name: "void *", Kind: KindVoidPtr, Size: ptrSize}}
	if !IsNull(hollow) {
		t.Error("non-null out-pointer with null pointee must report null")
	}

	// Scalar pointees never trigger the second hop.
	zero := eng().alloc(8)
	defer eng().free(zero)
	scalar := Pointer{addr: zero, elem: Type{Name: "int", Kind: KindInt, Size: 4}}
	if IsNull(scalar) {
		t.Error("pointer to zero-valued scalar must not report null")
	}
}

func TestBufferPointerDeref(t *testing.T) {
	requireEngine(t)
	buf := BufferFromBytes([]byte("payload"))
	defer buf.Free()

	cell := BufferPointer(buf)
	inner := Deref(cell)
	p, ok := inner.(Pointer)
	if !ok {
		t.Fatalf("Deref of pointer cell = %T, want Pointer", inner)
	}
	if p.Addr() != buf.Addr() {
		t.Errorf("dereferenced cell points at %#x, want %#x", p.Addr(), buf.Addr())
	}
}
