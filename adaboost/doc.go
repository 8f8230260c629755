// Package adaboost implements the AdaBoost training loop over the
// canonical k-mer-pair feature space: weight maintenance, parallel
// weak-learner selection, sign/polarity selection, and the bookkeeping
// that guarantees each candidate is chosen at most once.
//
// Learn drives T rounds. Each round:
//
//  1. normalize w -> p;
//  2. fan out computeErr across ExecThreadNum workers, one disjoint
//     range of candidates per worker, joined before selection;
//  3. selectStump picks the most informative unmarked candidate;
//  4. updateWeights rescales w for correctly-classified examples;
//  5. an iteration log line is emitted.
//
// Grounded on original_source/adaboost.h: adaboost_learn, with the
// pthread fan-out translated to a sync.WaitGroup fan-out and the
// per-iteration cancellation check translated to context.Context.
package adaboost
