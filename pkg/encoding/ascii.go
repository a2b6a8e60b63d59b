// Package encoding provides text decoding utilities for Pure3D names.
package encoding

import (
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// nonASCII matches NUL, every rune above 0x7F and the replacement rune
// produced for invalid UTF-8 bytes.
var nonASCII = runes.Predicate(func(r rune) bool {
	return r == 0 || r > utf8.RuneSelf-1
})

// ASCII converts raw name bytes to a string, dropping NUL and any byte
// outside the 7-bit range. Pure3D pads names with zeros and some exporters
// leave garbage after the terminator.
func ASCII(data []byte) string {
	// Fast path: most names are already clean.
	clean := true
	for _, b := range data {
		if b == 0 || b >= utf8.RuneSelf {
			clean = false
			break
		}
	}
	if clean {
		return string(data)
	}

	result, _, err := transform.Bytes(runes.Remove(nonASCII), data)
	if err != nil {
		// runes.Remove never fails on complete input; fall back to a byte filter.
		out := make([]byte, 0, len(data))
		for _, b := range data {
			if b != 0 && b < utf8.RuneSelf {
				out = append(out, b)
			}
		}
		return string(out)
	}
	return string(result)
}
