package feature

import "errors"

// ErrMismatchedLengths indicates HI, HJ, and Mij have different lengths.
var ErrMismatchedLengths = errors.New("feature: h_i, h_j, and mij must have equal length")

// Examples holds the training set: bin-pair indices, the raw Hi-C
// observation, and its derived label for one genomic bin pair.
type Examples struct {
	HI  []int     // bin index i per example
	HJ  []int     // bin index j per example
	Mij []float64 // observed Hi-C contact value per example
	Y   []uint8   // derived label, 0 or 1
}

// N returns the example count.
func (e *Examples) N() int { return len(e.Mij) }

// BuildLabels constructs Examples from bin-pair indices and observed
// Hi-C values, binarizing each label as y[x] = 1 if mij[x] > threshold
// else 0, per original_source/adaboost.h: adaboost_set_y.
func BuildLabels(hi, hj []int, mij []float64, threshold float64) (*Examples, error) {
	if len(hi) != len(hj) || len(hi) != len(mij) {
		return nil, ErrMismatchedLengths
	}
	y := make([]uint8, len(mij))
	for x, v := range mij {
		if v > threshold {
			y[x] = 1
		}
	}
	return &Examples{HI: hi, HJ: hj, Mij: mij, Y: y}, nil
}
