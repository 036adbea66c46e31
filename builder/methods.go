// Package builder defines the closed sets of construction methods. Each set
// is an int enum with a canonical name; dispatch is a switch over the enum.
package builder

import "fmt"

//-----------------------------------------------------------------------------
// Regular constructions
//-----------------------------------------------------------------------------

// RegularMethod enumerates the algorithms that build a full code from
// (length n, row weight r, column weight c).
type RegularMethod int

const (
	// Gallager stacks c random shuffles of [0,n), each cut into n/r rows of
	// weight r. Exact row weight; height c·(n/r).
	Gallager RegularMethod = iota

	// PopulateRows enforces exact row weight r by drawing every entry from a
	// budget of column indices, each repeated c times.
	PopulateRows

	// PopulateColumns enforces exact column weight c, built variable-major
	// and transposed at the end.
	PopulateColumns
)

var regularMethodNames = [...]string{
	Gallager:        "gallager",
	PopulateRows:    "populate-rows",
	PopulateColumns: "populate-columns",
}

// String returns the canonical name, e.g. "populate-rows".
func (m RegularMethod) String() string {
	if m < 0 || int(m) >= len(regularMethodNames) {
		return fmt.Sprintf("RegularMethod(%d)", int(m))
	}
	return regularMethodNames[m]
}

// ParseRegularMethod maps a canonical name to its RegularMethod.
// Unknown names return ErrInvalidConstruction.
func ParseRegularMethod(name string) (RegularMethod, error) {
	for m, n := range regularMethodNames {
		if n == name {
			return RegularMethod(m), nil
		}
	}
	return 0, fmt.Errorf("%s: unknown method %q: %w", methodRegular, name, ErrInvalidConstruction)
}

// RegularMethodNames lists the canonical names in enum order.
func RegularMethodNames() []string {
	return append([]string(nil), regularMethodNames[:]...)
}

//-----------------------------------------------------------------------------
// Protograph submatrix constructions
//-----------------------------------------------------------------------------

// SubmatrixMethod enumerates the ways an f×f block of multiplicity v is
// realized when lifting a protograph.
type SubmatrixMethod int

const (
	// PermutationSum adds v pairwise non-overlapping random permutations.
	PermutationSum SubmatrixMethod = iota

	// RegularBlock delegates to PopulateRows with n = f and r = c = v.
	RegularBlock

	// QuasiCyclic picks v distinct random columns for row 0; each following
	// row is the previous one shifted right by one (mod f).
	QuasiCyclic

	// PermutedQuasiCyclic seeds the circulant with 0..v-1 and then permutes
	// rows and columns independently at random.
	PermutedQuasiCyclic
)

var submatrixMethodNames = [...]string{
	PermutationSum:      "permutation",
	RegularBlock:        "regular",
	QuasiCyclic:         "quasi-cyclic",
	PermutedQuasiCyclic: "permuted-quasi-cyclic",
}

// String returns the canonical name, e.g. "quasi-cyclic".
func (m SubmatrixMethod) String() string {
	if m < 0 || int(m) >= len(submatrixMethodNames) {
		return fmt.Sprintf("SubmatrixMethod(%d)", int(m))
	}
	return submatrixMethodNames[m]
}

// ParseSubmatrixMethod maps a canonical name to its SubmatrixMethod.
// Unknown names return ErrInvalidConstruction.
func ParseSubmatrixMethod(name string) (SubmatrixMethod, error) {
	for m, n := range submatrixMethodNames {
		if n == name {
			return SubmatrixMethod(m), nil
		}
	}
	return 0, fmt.Errorf("%s: unknown method %q: %w", methodProtograph, name, ErrInvalidConstruction)
}

// SubmatrixMethodNames lists the canonical names in enum order.
func SubmatrixMethodNames() []string {
	return append([]string(nil), submatrixMethodNames[:]...)
}
