// Package kmer provides the canonical k-mer-pair index (CKPI): an
// immutable enumeration of the stump feature space searched by package
// adaboost, plus forbidden-motif filtering over that space.
//
// A k-mer of length k is encoded as a 2k-bit integer, A=0,C=1,G=2,T=3,
// earliest base in the most significant 2-bit position. An ordered pair
// of k-mers (a,b) is canonicalized by identifying it with its reverse
// complement pair (RevComp(b), RevComp(a)) — the natural symmetry for a
// pair of loci whose relative strand orientation is ambiguous. The CKPI
// stores exactly one representative per equivalence class, together with
// its partner (l2,m2), so that a stump can sum both orientations.
//
//	P = 2^(4k-1) + 2^(2k-1)
//
// Construction: see BuildCKPI. Filtering: see Filter.
package kmer
