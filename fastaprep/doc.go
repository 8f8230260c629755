// Package fastaprep computes per-bin k-mer frequency vectors from a FASTA
// genomic sequence, producing a feature.Store ready for package adaboost.
//
// The sequence is read as a single record via
// github.com/biogo/biogo/io/seqio/fasta and sliced into fixed-width,
// non-overlapping bins of binSize bases. Within each bin, a length-k
// sliding window is bit-packed into a kmer.Code exactly as package kmer
// encodes one, and its frequency table accumulated. A bin whose window
// contains an ambiguity base ('N') is left missing, mirroring
// original_source/prep.c: computeFeatureSub's early return.
package fastaprep
