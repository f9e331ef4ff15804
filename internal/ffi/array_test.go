package ffi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestArrayFromPointerZeroSize(t *testing.T) {
	requireEngine(t)

	tests := []struct {
		name string
		p    Pointer
	}{
		{name: "null pointer", p: Null()},
		{name: "dangling non-null", p: Pointer{addr: 0xdeadbeef}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArrayFromPointer(nil, "unsigned char *", tt.p, 0)
			if err != nil {
				t.Fatalf("size=0 must never fail: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("size=0 = %v, want empty", got)
			}
		})
	}
}

func TestArrayFromPointerStrings(t *testing.T) {
	requireEngine(t)

	one := BufferFromBytes([]byte("one"))
	two := BufferFromBytes([]byte("two"))
	defer one.Free()
	defer two.Free()

	cells := eng().alloc(2 * ptrSize)
	defer eng().free(cells)
	storeWord(cells, one.Addr())
	storeWord(cells+ptrSize, two.Addr())

	got, err := ArrayFromPointer(nil, "unsigned char *", Pointer{addr: cells}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !bytes.Equal(got[0].([]byte), []byte("one")) || !bytes.Equal(got[1].([]byte), []byte("two")) {
		t.Errorf("decoded %q %q, want pointer order one, two", got[0], got[1])
	}
}

func TestArrayFromPointerScalars(t *testing.T) {
	requireEngine(t)

	raw := make([]byte, 3*4)
	binary.LittleEndian.PutUint32(raw[0:], 10)
	binary.LittleEndian.PutUint32(raw[4:], 20)
	binary.LittleEndian.PutUint32(raw[8:], 30)
	arr := ByteArray(raw)
	defer arr.Free()

	got, err := ArrayFromPointer(nil, "unsigned int", Pointer{addr: arr.Addr()}, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint{10, 20, 30}
	for i, v := range got {
		if v.(uint) != want[i] {
			t.Errorf("element %d = %v, want %d (memory order)", i, v, want[i])
		}
	}
}

func TestArrayFromPointerBytes(t *testing.T) {
	requireEngine(t)

	arr := ByteArray([]byte{0xaa, 0xbb})
	defer arr.Free()

	got, err := ArrayFromPointer(nil, "unsigned char", Pointer{addr: arr.Addr()}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].(byte) != 0xaa || got[1].(byte) != 0xbb {
		t.Errorf("= %v, want aa bb", got)
	}
}

func TestArrayFromPointerUnresolvedType(t *testing.T) {
	requireEngine(t)
	_, err := ArrayFromPointer(nil, "MYSTERY_T", Null(), 1)
	var unresolved *UnresolvedTypeError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedTypeError, got %v", err)
	}
}
