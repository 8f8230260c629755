package adaboost

import (
	"sync"

	"github.com/tanigawalab/hicaboost/feature"
	"github.com/tanigawalab/hicaboost/kmer"
)

// computeErr fills err[lm] with the weighted error of candidate lm under
// distribution p, for every lm with marked[lm] == false. Entries where
// marked[lm] == true are left untouched (the selector skips them).
//
// Work is partitioned into W contiguous, disjoint ranges over [0,P):
// worker i owns [floor(P*i/W), floor(P*(i+1)/W)), and the last worker's
// range is extended to P exactly (no off-by-one past P). Each worker
// only writes the err slots in its own range and only reads shared,
// read-only inputs, so no synchronization beyond the join barrier is
// needed, the same WaitGroup fan-out shape used throughout this repo.
func computeErr(kp *kmer.CKPI, store feature.Store, ex *feature.Examples, p []float64, marked []bool, err []float64, workers int) error {
	n := kp.Len()
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	for w := 0; w < workers; w++ {
		begin := n * w / workers
		end := n * (w + 1) / workers
		if w == workers-1 {
			end = n
		}
		wg.Add(1)
		go func(begin, end int) {
			defer wg.Done()
			if e := computeErrRange(kp, store, ex, p, marked, err, begin, end); e != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = e
				}
				mu.Unlock()
			}
		}(begin, end)
	}
	wg.Wait()

	return firstErr
}

// computeErrRange computes err[lm] for lm in [begin,end), summing p[x]
// over every misclassified example x.
func computeErrRange(kp *kmer.CKPI, store feature.Store, ex *feature.Examples, p []float64, marked []bool, err []float64, begin, end int) error {
	for lm := begin; lm < end; lm++ {
		if marked[lm] {
			continue
		}
		var e float64
		l1, m1, l2, m2 := int(kp.L1[lm]), int(kp.M1[lm]), int(kp.L2[lm]), int(kp.M2[lm])
		for x := 0; x < ex.N(); x++ {
			bi, bj := ex.HI[x], ex.HJ[x]
			f1, err1 := store.Freq(bi, l1)
			f2, err2 := store.Freq(bj, m1)
			f3, err3 := store.Freq(bi, l2)
			f4, err4 := store.Freq(bj, m2)
			if err1 != nil {
				return err1
			}
			if err2 != nil {
				return err2
			}
			if err3 != nil {
				return err3
			}
			if err4 != nil {
				return err4
			}
			score := int64(f1)*int64(f2) + int64(f3)*int64(f4)
			var pred uint8
			if score > 0 {
				pred = 1
			}
			if pred != ex.Y[x] {
				e += p[x]
			}
		}
		err[lm] = e
	}
	return nil
}
