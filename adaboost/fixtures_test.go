package adaboost_test

import (
	"github.com/tanigawalab/hicaboost/feature"
	"github.com/tanigawalab/hicaboost/kmer"
)

// newDenseStore1mer builds a feature.DenseStore for k=1 (alphabet 4) with
// bins bins, each row starting all-zero; callers poke individual codes.
func newDenseStore1mer(bins int) *feature.DenseStore {
	s, err := feature.NewDenseStore(bins, 1)
	if err != nil {
		panic(err)
	}
	for b := 0; b < bins; b++ {
		if err := s.SetRow(b, make([]uint32, 4)); err != nil {
			panic(err)
		}
	}
	return s
}

// singleCandidateCKPI builds a CKPI with exactly one candidate, whose
// l1=0, m1=0 carry the "useful" product term and l2=1, m2=1 are kept at
// zero frequency everywhere so they never contribute to the score.
func singleCandidateCKPI(k int) *kmer.CKPI {
	return &kmer.CKPI{
		K:  k,
		L1: []kmer.Code{0},
		M1: []kmer.Code{0},
		L2: []kmer.Code{1},
		M2: []kmer.Code{1},
	}
}

// separableFixture returns a 4-example fixture where a single candidate's
// score equals y exactly (trivial separability).
func separableFixture() (*kmer.CKPI, *feature.DenseStore, *feature.Examples) {
	kp := singleCandidateCKPI(1)
	store := newDenseStore1mer(4)
	freqs := []uint32{1, 1, 0, 0} // F[bin][code=0]
	for b, f := range freqs {
		row := make([]uint32, 4)
		row[0] = f
		if err := store.SetRow(b, row); err != nil {
			panic(err)
		}
	}
	ex, err := feature.BuildLabels([]int{0, 1, 2, 3}, []int{0, 1, 2, 3}, []float64{1, 1, 0, 0}, 0.5)
	if err != nil {
		panic(err)
	}
	return kp, store, ex
}

// invertedFixture is the inverted-optimum case: the candidate's raw
// score is the complement of y.
func invertedFixture() (*kmer.CKPI, *feature.DenseStore, *feature.Examples) {
	kp := singleCandidateCKPI(1)
	store := newDenseStore1mer(4)
	freqs := []uint32{0, 0, 1, 1} // score>0 exactly where y==0
	for b, f := range freqs {
		row := make([]uint32, 4)
		row[0] = f
		if err := store.SetRow(b, row); err != nil {
			panic(err)
		}
	}
	ex, err := feature.BuildLabels([]int{0, 1, 2, 3}, []int{0, 1, 2, 3}, []float64{1, 1, 0, 0}, 0.5)
	if err != nil {
		panic(err)
	}
	return kp, store, ex
}

// partialFixture is a 4-example, single-candidate fixture where exactly
// one example (index 3) is misclassified, giving epsilon=0.25.
func partialFixture() (*kmer.CKPI, *feature.DenseStore, *feature.Examples) {
	kp := singleCandidateCKPI(1)
	store := newDenseStore1mer(4)
	freqs := []uint32{1, 1, 0, 1} // x=3: y=0 but score>0 -> misclassified
	for b, f := range freqs {
		row := make([]uint32, 4)
		row[0] = f
		if err := store.SetRow(b, row); err != nil {
			panic(err)
		}
	}
	ex, err := feature.BuildLabels([]int{0, 1, 2, 3}, []int{0, 1, 2, 3}, []float64{1, 1, 0, 0}, 0.5)
	if err != nil {
		panic(err)
	}
	return kp, store, ex
}

// allMarkedFixture builds P=3 candidates over k=4, two of which contain
// the GATC forbidden motif, so training exhausts its only usable
// candidate and hits the all-candidates-marked error.
func allMarkedFixture() (*kmer.CKPI, *feature.DenseStore, *feature.Examples) {
	gatc, err := kmer.Encode("GATC")
	if err != nil {
		panic(err)
	}
	aaaa, err := kmer.Encode("AAAA")
	if err != nil {
		panic(err)
	}
	kp := &kmer.CKPI{
		K:  4,
		L1: []kmer.Code{gatc, aaaa, aaaa},
		M1: []kmer.Code{aaaa, gatc, aaaa},
		L2: []kmer.Code{aaaa, aaaa, aaaa},
		M2: []kmer.Code{aaaa, aaaa, aaaa},
	}

	store, err := feature.NewDenseStore(2, 4)
	if err != nil {
		panic(err)
	}
	for b := 0; b < 2; b++ {
		if err := store.SetRow(b, make([]uint32, 256)); err != nil {
			panic(err)
		}
	}

	ex, err := feature.BuildLabels([]int{0, 1}, []int{0, 1}, []float64{1, 0}, 0.5)
	if err != nil {
		panic(err)
	}
	return kp, store, ex
}
