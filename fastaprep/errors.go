package fastaprep

import "errors"

// ErrNoRecord indicates the FASTA input contained no sequence record.
var ErrNoRecord = errors.New("fastaprep: input contains no FASTA record")

// ErrInvalidParams indicates k or binSize was not a positive integer, or
// binSize < k (a bin cannot hold even one complete k-mer window).
var ErrInvalidParams = errors.New("fastaprep: k and binSize must be positive, with binSize >= k")
