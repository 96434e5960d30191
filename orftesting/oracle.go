package orftesting

import "bytes"

// The functions here answer the index queries by scanning the raw sequence.
// They are slow and obviously correct, which is all the property tests need.

// StartPositions returns every one-based s where seq[s..] begins with q.
func StartPositions(seq, q []byte) []uint32 {
	out := []uint32{}
	for i := 0; i < len(seq); i++ {
		if bytes.HasPrefix(seq[i:], q) {
			out = append(out, uint32(i+1))
		}
	}
	return out
}

// EndPositions returns every one-based e where seq[..e] ends with q.
func EndPositions(seq, q []byte) []uint32 {
	out := []uint32{}
	for e := 1; e <= len(seq); e++ {
		if bytes.HasSuffix(seq[:e], q) {
			out = append(out, uint32(e))
		}
	}
	return out
}

// Substrings enumerates, start position ascending then end position
// ascending, every seq[s..e] that begins with start, ends with end and is at
// least len(start)+len(end) long.
func Substrings(seq, start, end []byte) [][]byte {
	out := [][]byte{}
	minSpan := len(start) + len(end)
	for i := 0; i < len(seq); i++ {
		for j := i + minSpan; j <= len(seq); j++ {
			w := seq[i:j]
			if bytes.HasPrefix(w, start) && bytes.HasSuffix(w, end) {
				out = append(out, append([]byte{}, w...))
			}
		}
	}
	return out
}
