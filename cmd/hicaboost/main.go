// Command hicaboost trains an AdaBoost ensemble predicting high-vs-low
// Hi-C contact frequency between genomic bin pairs from canonical
// k-mer-pair features, following original_source/prep.c and
// original_source/adaboost.h's main_sub pipeline: FASTA -> per-bin k-mer
// counts, raw Hi-C contacts -> normalized O/E values, then boosting.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/tanigawalab/hicaboost/adaboost"
	"github.com/tanigawalab/hicaboost/fastaprep"
	"github.com/tanigawalab/hicaboost/feature"
	"github.com/tanigawalab/hicaboost/hicio"
	"github.com/tanigawalab/hicaboost/kmer"
)

func main() {
	var (
		fastaName       = flag.String("fasta", "", "input FASTA file (required)")
		hicDir          = flag.String("hic", "", "Hi-C data directory (required)")
		outDir          = flag.String("out", "", "output directory for the trained model (required)")
		k               = flag.Int("k", 0, "k-mer length (required)")
		res             = flag.Int("res", 1000, "Hi-C resolution in base pairs")
		chr             = flag.Int("chr", 0, "chromosome number (required)")
		minDist         = flag.Int64("min", 10000, "minimum genomic distance between bins")
		maxDist         = flag.Int64("max", 1000000, "maximum genomic distance between bins")
		normalizeMethod = flag.String("norm", "KR", "Hi-C normalization method")
		expectedMethod  = flag.String("expected", "KR", "expected-value method")
		threshold       = flag.Float64("threshold", 0, "O/E threshold separating high/low contact labels")
		iterationNum    = flag.Int("iterations", 100, "number of AdaBoost rounds")
		execThreadNum   = flag.Int("threads", 1, "worker count for the weak-learner evaluator")
	)
	flag.Parse()

	if err := run(*fastaName, *hicDir, *outDir, *k, *res, *chr, *minDist, *maxDist,
		*normalizeMethod, *expectedMethod, *threshold, *iterationNum, *execThreadNum); err != nil {
		fmt.Fprintf(os.Stderr, "hicaboost: error: %v\n", err)
		os.Exit(1)
	}
}

func run(fastaName, hicDir, outDir string, k, res, chr int, minDist, maxDist int64,
	normalizeMethod, expectedMethod string, threshold float64, iterationNum, execThreadNum int) error {
	if fastaName == "" || hicDir == "" || outDir == "" || k == 0 || chr == 0 {
		return fmt.Errorf("hicaboost: -fasta, -hic, -out, -k and -chr are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(os.Stderr, "hicaboost: loading k-mer features from %s\n", fastaName)
	f, err := os.Open(fastaName)
	if err != nil {
		return fmt.Errorf("hicaboost: open fasta: %w", err)
	}
	store, err := fastaprep.BinKmerCounts(k, res, f)
	f.Close()
	if err != nil {
		return fmt.Errorf("hicaboost: compute k-mer features: %w", err)
	}
	fmt.Fprintf(os.Stderr, "hicaboost: %d bins loaded\n", store.Bins())

	names, err := hicio.ResolveFileNames(hicDir, res, chr, normalizeMethod, expectedMethod)
	if err != nil {
		return fmt.Errorf("hicaboost: resolve hi-c file names: %w", err)
	}

	normalize, expected, err := loadNormalizationVectors(names, store.Bins(), maxDist, res)
	if err != nil {
		return err
	}

	rawFile, err := os.Open(names.Raw)
	if err != nil {
		return fmt.Errorf("hicaboost: open raw hi-c contacts: %w", err)
	}
	defer rawFile.Close()

	var hi, hj []int
	var mij []float64
	err = hicio.NormalizeRaw(rawFile, res, minDist/int64(res), maxDist/int64(res), normalize, expected,
		store.Missing,
		func(c hicio.Contact) error {
			hi = append(hi, c.I)
			hj = append(hj, c.J)
			mij = append(mij, c.Mij)
			return nil
		},
	)
	if err != nil {
		return fmt.Errorf("hicaboost: normalize hi-c contacts: %w", err)
	}
	fmt.Fprintf(os.Stderr, "hicaboost: %d contacts survived filtering\n", len(mij))

	examples, err := feature.BuildLabels(hi, hj, mij, threshold)
	if err != nil {
		return fmt.Errorf("hicaboost: build training labels: %w", err)
	}

	kp, err := kmer.BuildCKPI(k)
	if err != nil {
		return fmt.Errorf("hicaboost: build k-mer-pair index: %w", err)
	}

	outFile := fmt.Sprintf("%schr%d.k%d.model.dat", ensureTrailingSlash(outDir), chr, k)
	cfg := adaboost.NewConfig(k, iterationNum, threshold,
		adaboost.WithExecThreadNum(execThreadNum),
		adaboost.WithOutputFile(outFile),
	)

	model, err := adaboost.Learn(ctx, cfg, kp, store, examples, os.Stderr)
	if err != nil {
		return fmt.Errorf("hicaboost: train: %w", err)
	}

	fmt.Fprintf(os.Stderr, "hicaboost: trained %d rounds, model written to %s\n", model.T, outFile)
	return nil
}

// loadNormalizationVectors reads the KR normalization and expected-value
// vectors, defaulting each entry to 1 (a no-op multiplier) when the
// corresponding method was left unset, so NormalizeRaw's division always
// has a well-defined denominator.
func loadNormalizationVectors(names hicio.FileNames, binNum int, maxDist int64, res int) (normalize, expected []float64, err error) {
	normalize = onesVector(binNum)
	if names.Normalize != "" {
		f, err := os.Open(names.Normalize)
		if err != nil {
			return nil, nil, fmt.Errorf("hicaboost: open normalization vector: %w", err)
		}
		defer f.Close()
		normalize, err = hicio.ReadVector(f, binNum)
		if err != nil {
			return nil, nil, fmt.Errorf("hicaboost: read normalization vector: %w", err)
		}
	}

	expectedLen := int(maxDist) / res
	expected = onesVector(expectedLen)
	if names.Expected != "" {
		f, err := os.Open(names.Expected)
		if err != nil {
			return nil, nil, fmt.Errorf("hicaboost: open expected vector: %w", err)
		}
		defer f.Close()
		expected, err = hicio.ReadVector(f, expectedLen)
		if err != nil {
			return nil, nil, fmt.Errorf("hicaboost: read expected vector: %w", err)
		}
	}

	return normalize, expected, nil
}

func onesVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

func ensureTrailingSlash(dir string) string {
	if dir == "" || dir[len(dir)-1] == '/' {
		return dir
	}
	return dir + "/"
}
