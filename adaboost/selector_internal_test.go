package adaboost

import "testing"

// TestSelectStump_SignDuality verifies that for any single candidate lm
// with weighted error e, flipping every prediction (equivalent to
// considering it under sign=1) must be scored as 1-e, and selectStump
// must choose whichever polarity is more informative (epsilon further
// from 1/2).
func TestSelectStump_SignDuality(t *testing.T) {
	cases := []struct {
		name     string
		err      []float64
		wantAxis uint32
		wantSign uint8
		wantEps  float64
	}{
		{"low error favors sign 0", []float64{0.1, 0.9}, 0, 0, 0.1},
		{"high error favors sign 1 (inverted)", []float64{0.9, 0.5}, 0, 1, 0.1},
		{"exactly 1/2 total stays sign 0", []float64{0.5, 0.5}, 0, 0, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			marked := make([]bool, len(tc.err))
			sel, err := selectStump(tc.err, marked)
			if err != nil {
				t.Fatalf("selectStump failed: %v", err)
			}
			if sel.axis != tc.wantAxis {
				t.Errorf("axis = %d, want %d", sel.axis, tc.wantAxis)
			}
			if sel.sign != tc.wantSign {
				t.Errorf("sign = %d, want %d", sel.sign, tc.wantSign)
			}
			if diff := sel.epsilon - tc.wantEps; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("epsilon = %v, want %v", sel.epsilon, tc.wantEps)
			}
		})
	}
}

// TestSelectStump_TieBreakFirstSeen verifies ties are broken by first-seen
// index for both argmin and argmax, making selection a deterministic
// function of err and marked alone.
func TestSelectStump_TieBreakFirstSeen(t *testing.T) {
	err := []float64{0.2, 0.2, 0.2}
	marked := make([]bool, 3)
	sel, selErr := selectStump(err, marked)
	if selErr != nil {
		t.Fatalf("selectStump failed: %v", selErr)
	}
	if sel.axis != 0 {
		t.Errorf("axis = %d, want 0 (first-seen tie-break)", sel.axis)
	}
}

// TestSelectStump_SkipsMarked verifies marked candidates are never chosen.
func TestSelectStump_SkipsMarked(t *testing.T) {
	err := []float64{0.0, 0.1, 0.2}
	marked := []bool{true, false, true}
	sel, selErr := selectStump(err, marked)
	if selErr != nil {
		t.Fatalf("selectStump failed: %v", selErr)
	}
	if sel.axis != 1 {
		t.Errorf("axis = %d, want 1 (only unmarked candidate)", sel.axis)
	}
}

// TestSelectStump_AllMarked verifies the fatal case surfaces as
// ErrAllCandidatesMarked.
func TestSelectStump_AllMarked(t *testing.T) {
	err := []float64{0.1, 0.2}
	marked := []bool{true, true}
	_, selErr := selectStump(err, marked)
	if selErr != ErrAllCandidatesMarked {
		t.Errorf("err = %v, want ErrAllCandidatesMarked", selErr)
	}
}
