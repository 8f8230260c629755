package adaboost

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tanigawalab/hicaboost/feature"
	"github.com/tanigawalab/hicaboost/kmer"
)

// Learn drives the AdaBoost training loop over T = cfg.IterationNum
// rounds, searching the canonical k-mer-pair feature space kp against
// feature store and the pre-labeled examples ex. logW receives one
// iteration-log line per round; if cfg.OutputFile is set, the final
// model is also written there, otherwise to os.Stderr.
//
// ctx is checked once per iteration boundary (before each round begins);
// a cancellation is surfaced as ctx.Err() with no partial model emitted.
func Learn(ctx context.Context, cfg Config, kp *kmer.CKPI, store feature.Store, ex *feature.Examples, logW io.Writer) (*Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if kp == nil || kp.Len() == 0 {
		return nil, ErrInvalidConfig
	}
	if ex.N() == 0 {
		return nil, ErrDegenerateData
	}
	if allOneLabel(ex.Y) {
		return nil, ErrDegenerateData
	}

	n := ex.N()
	p := kp.Len()

	w := make([]float64, n)
	pDist := make([]float64, n)
	for x := range w {
		w[x] = 1.0 / float64(n)
	}

	marked := make([]bool, p)
	motifs := cfg.ForbiddenMotifs
	if motifs == nil {
		motifs = kmer.DefaultMotifs()
	}
	eliminated, err := kmer.Filter(kp, motifs, marked)
	if err != nil {
		return nil, err
	}

	kmerStrings, err := kmer.Strings(cfg.K)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(os.Stderr, "adaboost: info: %d out of %d k-mer pairs are filtered out\n", eliminated, p)

	model := &Model{
		T:    cfg.IterationNum,
		Axis: make([]uint32, cfg.IterationNum),
		Sign: make([]uint8, cfg.IterationNum),
		Beta: make([]float64, cfg.IterationNum),
	}

	errBuf := make([]float64, p)
	logger := NewIterationLogger(logW, kp, kmerStrings)

	t0 := timeNow()
	for t := 0; t < cfg.IterationNum; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := normalize(w, pDist); err != nil {
			return nil, err
		}

		if err := computeErr(kp, store, ex, pDist, marked, errBuf, cfg.ExecThreadNum); err != nil {
			return nil, err
		}

		sel, err := selectStump(errBuf, marked)
		if err != nil {
			return nil, err
		}
		marked[sel.axis] = true
		model.Axis[t] = sel.axis
		model.Sign[t] = sel.sign

		beta, err := updateWeights(kp, store, ex, sel, w)
		if err != nil {
			return nil, err
		}
		model.Beta[t] = beta

		if logW != nil {
			elapsed := timeSince(t0)
			if err := logger.Log(t, beta, sel.sign, sel.axis, elapsed); err != nil {
				return nil, err
			}
		}
	}

	out := io.Writer(os.Stderr)
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		out = f
	}
	if err := WriteModel(out, model, kp, kmerStrings); err != nil {
		return nil, err
	}

	return model, nil
}

// allOneLabel reports whether every label in y is identical, in which
// case the boosting problem is undefined.
func allOneLabel(y []uint8) bool {
	if len(y) == 0 {
		return true
	}
	first := y[0]
	for _, v := range y[1:] {
		if v != first {
			return false
		}
	}
	return true
}

// timeNow and timeSince isolate the one wallclock dependency in the
// package so the rest of the driver stays deterministic and testable.
func timeNow() time.Time { return time.Now() }

func timeSince(t0 time.Time) float64 { return time.Since(t0).Seconds() }
