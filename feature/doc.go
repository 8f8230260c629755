// Package feature holds the per-bin k-mer frequency store and the label
// builder that turns a Hi-C observation vector into binary labels.
//
// Store is read-only from package adaboost's point of view: it is
// populated once by an ancillary preparer (package fastaprep, or a test
// fixture) before training starts, and never mutated during a run.
package feature
