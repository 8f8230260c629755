// Package hicio reads raw Hi-C contact records, applies a KR-style
// per-bin normalization vector, divides by an expected-contact-by-distance
// curve, and discards non-finite results — this is the observed/expected
// (O/E) transform AdaBoost trains on.
//
// The on-disk formats mirror the Rao et al. Hi-C data release layout
// consumed by original_source/prep.c: RAWobserved is "i\tj\tvalue" per
// line in genomic coordinates; the normalization and expected vectors are
// one floating-point value per line, indexed by bin and by genomic
// distance respectively.
package hicio
