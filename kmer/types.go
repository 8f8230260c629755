package kmer

import "fmt"

// Code is a bit-packed k-mer: 2k bits, A=0,C=1,G=2,T=3, earliest base in
// the most significant 2-bit position. Code is only meaningful alongside
// a k; it carries no k of its own.
type Code uint32

// Base is one of the four nucleotides under the fixed encoding.
type Base uint8

const (
	A Base = 0
	C Base = 1
	G Base = 2
	T Base = 3
)

// baseChar maps a Base to its ASCII nucleotide letter.
var baseChar = [4]byte{'A', 'C', 'G', 'T'}

// complement returns the Watson-Crick complement of a 2-bit base: A<->T,
// C<->G. Under this encoding complementation is exactly XOR 3.
func complement(b uint32) uint32 {
	return b ^ 3
}

// RevComp returns the reverse complement of code under a k-mer length k.
// Each 2-bit base is complemented, and the base order is reversed.
func RevComp(code Code, k int) Code {
	var out uint32
	c := uint32(code)
	for i := 0; i < k; i++ {
		base := c & 3
		c >>= 2
		out = (out << 2) | complement(base)
	}
	return Code(out)
}

// String renders code as a k-length nucleotide string, e.g. "GATCA".
func (code Code) String(k int) string {
	buf := make([]byte, k)
	c := uint32(code)
	for i := k - 1; i >= 0; i-- {
		buf[i] = baseChar[c&3]
		c >>= 2
	}
	return string(buf)
}

// Strings returns the nucleotide string for every code in [0, 4^k),
// indexed by code value; used to render iteration-log lines without
// recomputing String(k) per lookup in the hot training loop.
func Strings(k int) ([]string, error) {
	if k < 1 || k > 15 {
		return nil, ErrInvalidK
	}
	n := 1 << uint(2*k)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = Code(i).String(k)
	}
	return out, nil
}

// BaseCode maps an ASCII nucleotide letter to its 2-bit base code; it is
// the exported form of c2i, for callers building a Code incrementally
// over a sliding window (see fastaprep) rather than from a whole string.
func BaseCode(c byte) (uint32, error) {
	return c2i(c)
}

// c2i maps an ASCII nucleotide letter to its 2-bit base code.
func c2i(c byte) (uint32, error) {
	switch c {
	case 'A', 'a':
		return 0, nil
	case 'C', 'c':
		return 1, nil
	case 'G', 'g':
		return 2, nil
	case 'T', 't':
		return 3, nil
	default:
		return 0, fmt.Errorf("kmer: %w: %q", ErrInvalidMotifSeq, c)
	}
}

// Encode packs a nucleotide string into a Code under the fixed encoding.
func Encode(seq string) (Code, error) {
	var code uint32
	for i := 0; i < len(seq); i++ {
		b, err := c2i(seq[i])
		if err != nil {
			return 0, err
		}
		code = (code << 2) | b
	}
	return Code(code), nil
}
