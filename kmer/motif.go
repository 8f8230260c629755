package kmer

import "fmt"

// Motif is a forbidden nucleotide subsequence, encoded the same way as a
// k-mer Code but truncated to Len bases.
type Motif struct {
	Code Code
	Len  int
}

// DefaultMotifs returns the single forbidden motif the reference pipeline
// filters on: the GATC restriction site (Dam methylation motif), encoded
// under A=0,C=1,G=2,T=3 as the 8-bit value 141.
func DefaultMotifs() []Motif {
	return []Motif{{Code: 141, Len: 4}}
}

// ParseMotif encodes a nucleotide string (e.g. "GATC") into a Motif.
func ParseMotif(seq string) (Motif, error) {
	code, err := Encode(seq)
	if err != nil {
		return Motif{}, err
	}
	return Motif{Code: code, Len: len(seq)}, nil
}

// contains reports whether k-mer code (of length k) contains motif m at
// some shift: (code >> 2s) & mask == m.Code, for s in [0, k-m.Len].
func (m Motif) contains(code Code, k int) bool {
	if m.Len > k {
		return false
	}
	mask := uint32(1<<uint(2*m.Len)) - 1
	c := uint32(code)
	for s := 0; s <= k-m.Len; s++ {
		if (c>>uint(2*s))&mask == uint32(m.Code) {
			return true
		}
	}
	return false
}

// Filter marks every candidate in kp whose l1, m1, l2, or m2 k-mer
// contains any motif in motifs, at any shift. marked must have length
// kp.Len(); Filter only ever sets entries true, so running it twice (or
// running it after prior marking by the selector) is idempotent — it
// never clears an existing mark.
//
// Returns the number of candidates marked by this call (i.e. not already
// marked) so the caller can log the eliminated fraction.
func Filter(kp *CKPI, motifs []Motif, marked []bool) (int, error) {
	if len(marked) != kp.Len() {
		return 0, fmt.Errorf("kmer: Filter: marked has length %d, want %d", len(marked), kp.Len())
	}

	newlyMarked := 0
	for lm := 0; lm < kp.Len(); lm++ {
		if marked[lm] {
			continue
		}
		hit := false
		for _, m := range motifs {
			if m.contains(kp.L1[lm], kp.K) ||
				m.contains(kp.M1[lm], kp.K) ||
				m.contains(kp.L2[lm], kp.K) ||
				m.contains(kp.M2[lm], kp.K) {
				hit = true
				break
			}
		}
		if hit {
			marked[lm] = true
			newlyMarked++
		}
	}
	return newlyMarked, nil
}
