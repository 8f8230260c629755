package kmer

import "errors"

// Sentinel errors for package kmer. Callers should branch with errors.Is;
// sentinels are never wrapped with formatted strings at definition site,
// implementations attach context with fmt.Errorf("kmer: ...: %w", ...).
var (
	// ErrInvalidK indicates k lies outside the accepted range [1, 15].
	ErrInvalidK = errors.New("kmer: k must satisfy 1 <= k <= 15")

	// ErrInvalidMotifLen indicates a forbidden motif is longer than k or
	// has non-positive length.
	ErrInvalidMotifLen = errors.New("kmer: motif length must be in [1, k]")

	// ErrInvalidMotifSeq indicates ParseMotif was given a non-ACGT base.
	ErrInvalidMotifSeq = errors.New("kmer: motif sequence contains a non-ACGT base")
)
