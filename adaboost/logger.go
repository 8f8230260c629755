package adaboost

import (
	"fmt"
	"io"

	"github.com/tanigawalab/hicaboost/kmer"
)

// IterationLogger appends one tab-separated line per round to w: t,
// beta, sign, axis, the four k-mer strings, elapsed and per-iteration
// wallclock time. kmerStrings indexes by k-mer Code (see
// kmer.Strings) and is shared across rounds.
type IterationLogger struct {
	w           io.Writer
	kp          *kmer.CKPI
	kmerStrings []string
}

// NewIterationLogger builds a logger writing to w.
func NewIterationLogger(w io.Writer, kp *kmer.CKPI, kmerStrings []string) *IterationLogger {
	return &IterationLogger{w: w, kp: kp, kmerStrings: kmerStrings}
}

// Log emits one line for round t, mirroring
// original_source/adaboost.h: adaboost_show_itr's format.
func (l *IterationLogger) Log(t int, beta float64, sign uint8, axis uint32, elapsedSec float64) error {
	_, err := fmt.Fprintf(l.w, "%d\t%e\t%d\t%d\t%s\t%s\t%s\t%s\t%f\t%f\n",
		t, beta, sign, axis,
		l.kmerStrings[l.kp.L1[axis]],
		l.kmerStrings[l.kp.M1[axis]],
		l.kmerStrings[l.kp.L2[axis]],
		l.kmerStrings[l.kp.M2[axis]],
		elapsedSec, elapsedSec/float64(t+1),
	)
	return err
}

// WriteModel emits the full trained model to w, one line per round,
// mirroring original_source/adaboost.h: adaboost_show_all's format
// (without the timing columns).
func WriteModel(w io.Writer, model *Model, kp *kmer.CKPI, kmerStrings []string) error {
	for t := 0; t < model.T; t++ {
		axis := model.Axis[t]
		_, err := fmt.Fprintf(w, "%d\t%e\t%d\t%d\t%s\t%s\t%s\t%s\n",
			t, model.Beta[t], model.Sign[t], axis,
			kmerStrings[kp.L1[axis]],
			kmerStrings[kp.M1[axis]],
			kmerStrings[kp.L2[axis]],
			kmerStrings[kp.M2[axis]],
		)
		if err != nil {
			return err
		}
	}
	return nil
}
