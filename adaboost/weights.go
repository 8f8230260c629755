package adaboost

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tanigawalab/hicaboost/feature"
	"github.com/tanigawalab/hicaboost/kmer"
)

// normalize fills p with w / sum(w) at the top of each round. w is never
// renormalized in place; p is transient per-round scratch. The sum uses
// gonum/floats.Sum's natural-order reduction, so the weight sum uses the
// same summation order as the evaluator.
func normalize(w, p []float64) (float64, error) {
	wsum := floats.Sum(w)
	if wsum <= 0 {
		return wsum, ErrDegenerateData
	}
	for x := range w {
		p[x] = w[x] / wsum
	}
	return wsum, nil
}

// predictStump recomputes the raw (unsigned) stump prediction for
// example x under candidate lm, exactly as computeErrRange does, so the
// weight update (which must recompute it after a candidate is chosen)
// stays byte-for-byte consistent with the evaluator.
func predictStump(kp *kmer.CKPI, store feature.Store, ex *feature.Examples, lm uint32, x int) (uint8, error) {
	l1, m1, l2, m2 := int(kp.L1[lm]), int(kp.M1[lm]), int(kp.L2[lm]), int(kp.M2[lm])
	bi, bj := ex.HI[x], ex.HJ[x]
	f1, err := store.Freq(bi, l1)
	if err != nil {
		return 0, err
	}
	f2, err := store.Freq(bj, m1)
	if err != nil {
		return 0, err
	}
	f3, err := store.Freq(bi, l2)
	if err != nil {
		return 0, err
	}
	f4, err := store.Freq(bj, m2)
	if err != nil {
		return 0, err
	}
	score := int64(f1)*int64(f2) + int64(f3)*int64(f4)
	if score > 0 {
		return 1, nil
	}
	return 0, nil
}

// updateWeights computes beta = epsilon/(1-epsilon) and rescales w[x] by
// beta for every example the chosen stump classifies correctly under its
// sign. Misclassified examples keep their weight; w is not renormalized
// here (normalize does that at the top of the next round).
func updateWeights(kp *kmer.CKPI, store feature.Store, ex *feature.Examples, sel selection, w []float64) (float64, error) {
	beta := sel.epsilon / (1 - sel.epsilon)

	for x := 0; x < ex.N(); x++ {
		pred, err := predictStump(kp, store, ex, sel.axis, x)
		if err != nil {
			return 0, err
		}
		correct := (sel.sign == 0 && pred == ex.Y[x]) || (sel.sign == 1 && pred != ex.Y[x])
		if correct {
			w[x] *= beta
		}
	}

	return beta, nil
}
