package kmer

// CKPI is the canonical k-mer-pair index: an immutable enumeration of all
// canonical k-mer pairs for a fixed k. For each index lm in [0,P) the
// four arrays give the stump's feature codes (l1,m1,l2,m2); see package
// doc for the canonicalization rule and the derivation of P.
//
// CKPI is built once via BuildCKPI and is safe for concurrent read-only
// use by any number of goroutines: nothing in package adaboost ever
// mutates it.
type CKPI struct {
	K  int
	L1 []Code
	M1 []Code
	L2 []Code
	M2 []Code
}

// Len returns P, the number of canonical k-mer pairs (= len(L1) etc).
func (kp *CKPI) Len() int {
	return len(kp.L1)
}

// BuildCKPI enumerates the canonical k-mer-pair index for k-mer length k.
//
// Construction: walk every ordered pair (a,b) of k-mer codes in row-major
// order idx(a,b) = a*n+b, n=4^k. Each pair's canonical partner is
// (RevComp(b,k), RevComp(a,k)); this map is an involution on [0,n)x[0,n),
// so pairs split into size-2 orbits plus fixed points where
// a == RevComp(b,k) (equivalently b == RevComp(a,k)). Keep (a,b) as a
// canonical representative iff idx(a,b) <= idx(partner) — this selects
// exactly one representative per orbit and every fixed point exactly
// once, yielding |P| = 2^(4k-1) + 2^(2k-1) representatives.
//
// Complexity: O(4^(2k)) time and O(P) memory.
func BuildCKPI(k int) (*CKPI, error) {
	if k < 1 || k > 15 {
		return nil, ErrInvalidK
	}
	n := 1 << uint(2*k)
	p := (1 << uint(4*k-1)) + (1 << uint(2*k-1))

	kp := &CKPI{
		K:  k,
		L1: make([]Code, 0, p),
		M1: make([]Code, 0, p),
		L2: make([]Code, 0, p),
		M2: make([]Code, 0, p),
	}

	for a := 0; a < n; a++ {
		rcA := uint32(RevComp(Code(a), k))
		for b := 0; b < n; b++ {
			idx := a*n + b
			rcB := uint32(RevComp(Code(b), k))
			partnerIdx := int(rcB)*n + int(rcA)
			if idx > partnerIdx {
				continue // represented by its partner instead
			}
			kp.L1 = append(kp.L1, Code(a))
			kp.M1 = append(kp.M1, Code(b))
			kp.L2 = append(kp.L2, Code(rcB))
			kp.M2 = append(kp.M2, Code(rcA))
		}
	}

	return kp, nil
}
