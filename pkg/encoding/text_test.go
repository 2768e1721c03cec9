package encoding

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeUTF8PassThrough(t *testing.T) {
	in := []byte("100, Café, generic, 299, 0\n")
	for _, name := range []string{"", "utf-8", "UTF8"} {
		got, err := Encode(name, in)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", name, err)
		}
		if !bytes.Equal(got, in) {
			t.Errorf("Encode(%q) changed data: %q", name, got)
		}
	}
}

func TestEncodeWindows1252(t *testing.T) {
	got, err := Encode(Windows1252, []byte("Café"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{'C', 'a', 'f', 0xE9}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestEncodeUnsupportedRune(t *testing.T) {
	got, err := Encode(Windows1252, []byte("a木b"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if string(got) != "a?b" {
		t.Errorf("got %q, want %q", got, "a?b")
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("ebcdic")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("expected ErrUnknownEncoding, got %v", err)
	}
}
