package admetlab2

import (
	"bytes"
	"encoding/json"
)

// Python services emit these for float('nan') and float('inf').
var nonFiniteLiterals = [][]byte{[]byte("-Infinity"), []byte("Infinity"), []byte("NaN")}

var nullLiteral = []byte("null")

// maskNonFinite replaces NaN, Infinity and -Infinity outside strings with
// null so the document can go through encoding/json. The returned slice has
// one entry per null in the masked document, in order: the literal it
// replaced, or nil for a null that was already there.
func maskNonFinite(src []byte) ([]byte, [][]byte) {
	var (
		out      = make([]byte, 0, len(src))
		nulls    [][]byte
		inString bool
	)

	for i := 0; i < len(src); i++ {
		c := src[i]

		if inString {
			out = append(out, c)

			switch c {
			case '\\':
				if i+1 < len(src) {
					i++
					out = append(out, src[i])
				}
			case '"':
				inString = false
			}

			continue
		}

		if c == '"' {
			inString = true
			out = append(out, c)

			continue
		}

		if bytes.HasPrefix(src[i:], nullLiteral) {
			out = append(out, nullLiteral...)
			nulls = append(nulls, nil)
			i += len(nullLiteral) - 1

			continue
		}

		if lit := nonFiniteAt(src[i:]); lit != nil {
			out = append(out, nullLiteral...)
			nulls = append(nulls, lit)
			i += len(lit) - 1

			continue
		}

		out = append(out, c)
	}

	return out, nulls
}

func nonFiniteAt(b []byte) []byte {
	for _, lit := range nonFiniteLiterals {
		if bytes.HasPrefix(b, lit) {
			return lit
		}
	}

	return nil
}

// unmaskNonFinite restores the literals recorded by maskNonFinite. src must
// hold the same tokens in the same order as the masked document.
func unmaskNonFinite(src []byte, nulls [][]byte) []byte {
	var (
		out      = make([]byte, 0, len(src))
		inString bool
		n        int
	)

	for i := 0; i < len(src); i++ {
		c := src[i]

		if inString {
			out = append(out, c)

			switch c {
			case '\\':
				if i+1 < len(src) {
					i++
					out = append(out, src[i])
				}
			case '"':
				inString = false
			}

			continue
		}

		if c == '"' {
			inString = true
			out = append(out, c)

			continue
		}

		if bytes.HasPrefix(src[i:], nullLiteral) {
			if n < len(nulls) && nulls[n] != nil {
				out = append(out, nulls[n]...)
			} else {
				out = append(out, nullLiteral...)
			}

			n++
			i += len(nullLiteral) - 1

			continue
		}

		out = append(out, c)
	}

	return out
}

// ValidResponse reports whether b is JSON, also accepting the NaN, Infinity
// and -Infinity values Python's json module produces.
func ValidResponse(b []byte) bool {
	masked, _ := maskNonFinite(b)

	return json.Valid(masked)
}
