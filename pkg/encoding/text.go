// Package encoding provides text encoding utilities for exported map files.
package encoding

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned for an encoding name that is not supported.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Supported encoding names.
const (
	UTF8        = "utf-8"
	Windows1252 = "windows-1252"
)

// Lookup returns the encoding registered under name (case-insensitive).
// Empty selects UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", UTF8, "utf8":
		return unicode.UTF8, nil
	case Windows1252, "cp1252", "latin1":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// Encode converts UTF-8 text to the named encoding.
// Characters the target cannot represent are replaced with '?'.
func Encode(name string, data []byte) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return data, nil
	}

	result := make([]byte, 0, len(data))
	for _, r := range string(data) {
		b, ok := cm.EncodeRune(r)
		if !ok {
			b = '?'
		}
		result = append(result, b)
	}
	return result, nil
}
