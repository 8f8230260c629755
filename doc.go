// Package hicaboost trains an AdaBoost ensemble of stumps over canonical
// k-mer-pair features to predict high-vs-low Hi-C contact frequency
// between genomic bin pairs.
//
// Subpackages:
//
//	kmer/       — canonical k-mer-pair index (CKPI) and forbidden-motif filtering
//	feature/    — per-bin k-mer frequency store and training-label builder
//	adaboost/   — the boosting loop: weak-learner search, sign selection, weight updates
//	fastaprep/  — FASTA sequence to per-bin k-mer counts
//	hicio/      — raw Hi-C contact ingestion and KR/expected normalization
//	cmd/hicaboost/ — CLI wiring the above into the original pipeline order
//
//	go get github.com/tanigawalab/hicaboost
package hicaboost
