package ffi

import (
	"errors"
	"testing"
)

func TestParseTypeName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		base   string
		indir  int
		atomic bool
	}{
		{name: "plain scalar", input: "int", base: "int", indir: 0},
		{name: "scalar pointer", input: "int *", base: "int", indir: 1},
		{name: "scalar double pointer", input: "int **", base: "int", indir: 2},
		{name: "byte pointer", input: "unsigned char *", base: "unsigned char", indir: 1},
		{name: "byte double pointer", input: "unsigned char **", base: "unsigned char", indir: 2},
		{name: "atomic char pointer", input: "char *", base: "char *", indir: 0, atomic: true},
		{name: "atomic void pointer", input: "void *", base: "void *", indir: 0, atomic: true},
		{name: "pointer to atomic pointer", input: "wchar_t **", base: "wchar_t *", indir: 1, atomic: true},
		{name: "size_t pointer", input: "size_t *", base: "size_t", indir: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseTypeName(tt.input)
			if ref.Base != tt.base {
				t.Errorf("Base = %q, want %q", ref.Base, tt.base)
			}
			if ref.Indirection != tt.indir {
				t.Errorf("Indirection = %d, want %d", ref.Indirection, tt.indir)
			}
			if ref.AlreadyPointer != tt.atomic {
				t.Errorf("AlreadyPointer = %v, want %v", ref.AlreadyPointer, tt.atomic)
			}
		})
	}
}

func TestResolveKindBaseTable(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"int", KindInt},
		{"unsigned int", KindUint},
		{"size_t", KindSizeT},
		{"unsigned char", KindByte},
		{"void *", KindVoidPtr},
		{"char *", KindCharPtr},
		{"wchar_t *", KindWCharPtr},
	}
	for _, tt := range tests {
		k, err := resolveKind(nil, TypeRef{Base: tt.input})
		if err != nil {
			t.Errorf("resolveKind(%q) error: %v", tt.input, err)
			continue
		}
		if k != tt.kind {
			t.Errorf("resolveKind(%q) = %v, want %v", tt.input, k, tt.kind)
		}
	}
}

func TestResolveKindLibraryFallback(t *testing.T) {
	lib := NewLibrary("test", 0)
	lib.RegisterType("CK_ULONG", KindSizeT)

	k, err := resolveKind(lib, ParseTypeName("CK_ULONG"))
	if err != nil {
		t.Fatalf("library-declared type did not resolve: %v", err)
	}
	if k != KindSizeT {
		t.Errorf("kind = %v, want %v", k, KindSizeT)
	}

	// Indirection parses off before the library lookup.
	ref := ParseTypeName("CK_ULONG *")
	if ref.Base != "CK_ULONG" || ref.Indirection != 1 {
		t.Fatalf("ParseTypeName(CK_ULONG *) = %+v", ref)
	}
	if _, err := resolveKind(lib, ref); err != nil {
		t.Errorf("indirected library type did not resolve: %v", err)
	}
}

func TestResolveKindUnresolved(t *testing.T) {
	lib := NewLibrary("test", 0)
	_, err := resolveKind(lib, ParseTypeName("NO_SUCH_TYPE"))
	var unresolved *UnresolvedTypeError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedTypeError, got %v", err)
	}
	if unresolved.Name != "NO_SUCH_TYPE" || unresolved.Library != "test" {
		t.Errorf("error fields = %q/%q", unresolved.Name, unresolved.Library)
	}

	// Without a library the base table is the only stop.
	if _, err := resolveKind(nil, ParseTypeName("NO_SUCH_TYPE")); !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedTypeError without library, got %v", err)
	}
}

func TestStringPointerTable(t *testing.T) {
	for name, wide := range map[string]bool{
		"char *":          false,
		"unsigned char *": false,
		"wchar_t *":       true,
	} {
		got, ok := stringPointerNames[name]
		if !ok {
			t.Errorf("%q missing from string-pointer table", name)
		}
		if got != wide {
			t.Errorf("%q wide = %v, want %v", name, got, wide)
		}
	}
	if _, ok := stringPointerNames["int *"]; ok {
		t.Error("int * must not decode as a string pointer")
	}
}
