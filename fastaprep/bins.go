package fastaprep

import (
	"errors"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/tanigawalab/hicaboost/feature"
	"github.com/tanigawalab/hicaboost/kmer"
)

// BinKmerCounts reads one FASTA record from r and returns a feature.Store
// holding, for each non-overlapping bin of binSize bases, the k-mer
// frequency vector F[bin][code], per original_source/prep.c: sequencePrep
// / computeFeature / computeFeatureSub.
//
// Following computeFeatureSub, bin i counts every length-k window whose
// start position lies in [i*binSize, (i+1)*binSize] — binSize+1
// overlapping windows, one base into the next bin — and a bin is left
// missing (feature.Store.Missing reports true) if that span contains an
// ambiguity base ('N'/'n') or runs past the end of the sequence (the
// original C code has no such bound check for the final bin; BinKmerCounts
// marks it missing instead of reading out of range).
func BinKmerCounts(k, binSize int, r io.Reader) (*feature.DenseStore, error) {
	if k < 1 || k > 15 || binSize < k {
		return nil, ErrInvalidParams
	}

	template := linear.NewSeq("", nil, alphabet.DNA)
	in := fasta.NewReader(r, template)

	s, err := in.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRecord
		}
		return nil, err
	}

	n := s.Len()
	binNum := n / binSize
	store, err := feature.NewDenseStore(binNum, k)
	if err != nil {
		return nil, err
	}

	mask := (uint32(1) << uint(2*k)) - 1
	alphabetSize := 1 << uint(2*k)

	for b := 0; b < binNum; b++ {
		left := b * binSize
		right := left + binSize + k // exclusive, per computeFeatureSub

		if right > n {
			if err := store.MarkMissing(b); err != nil {
				return nil, err
			}
			continue
		}

		if containsAmbiguity(s, left, right) {
			if err := store.MarkMissing(b); err != nil {
				return nil, err
			}
			continue
		}

		row := make([]uint32, alphabetSize)
		var code uint32
		for i := left; i < left+k-1; i++ {
			base, err := kmer.BaseCode(byte(s.At(i).L))
			if err != nil {
				return nil, err
			}
			code = (code << 2) | base
		}
		for i := left + k - 1; i < right; i++ {
			base, err := kmer.BaseCode(byte(s.At(i).L))
			if err != nil {
				return nil, err
			}
			code = ((code << 2) | base) & mask
			row[code]++
		}

		if err := store.SetRow(b, row); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// containsAmbiguity reports whether sequence s contains an 'N' or 'n' base
// anywhere in [left, right).
func containsAmbiguity(s interface {
	At(i int) alphabet.QLetter
}, left, right int) bool {
	for i := left; i < right; i++ {
		l := byte(s.At(i).L)
		if l == 'N' || l == 'n' {
			return true
		}
	}
	return false
}
