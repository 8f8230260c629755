package adaboost

import "errors"

// Sentinel errors for package adaboost, checked with errors.Is. Per spec
// §7: configuration and degenerate-data errors are fatal and surface
// before round 0; ErrAllCandidatesMarked is fatal at the round it is
// detected. Numeric edges (epsilon == 0 or == 1/2) are not errors.
var (
	// ErrInvalidConfig indicates K<=0, IterationNum==0, ExecThreadNum<1,
	// or an empty CKPI.
	ErrInvalidConfig = errors.New("adaboost: invalid configuration")

	// ErrDegenerateData indicates N==0 or every example shares one label;
	// the boosting problem is undefined.
	ErrDegenerateData = errors.New("adaboost: degenerate training data")

	// ErrAllCandidatesMarked indicates the filter plus prior rounds
	// eliminated every stump before T rounds completed.
	ErrAllCandidatesMarked = errors.New("adaboost: all candidates marked before reaching T rounds")
)
