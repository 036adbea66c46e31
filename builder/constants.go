// Package builder defines shared constants used by the LDPC constructors,
// ensuring consistent defaults and error prefixes across all of them.
package builder

//-----------------------------------------------------------------------------
// Method tags
//   used to prefix errors and log lines with the constructor name.
//-----------------------------------------------------------------------------

const (
	methodBuildCode  = "BuildCode"
	methodBuildBatch = "BuildBatch"
	methodRegular    = "Regular"
	methodGallager   = "Gallager"
	methodPopRows    = "PopulateRows"
	methodPopCols    = "PopulateColumns"
	methodProtograph = "Protograph"
	methodSubmatrix  = "Submatrix"
	methodPermSum    = "PermutationSum"
	methodCyclic     = "QuasiCyclic"
)

//-----------------------------------------------------------------------------
// Parameter bounds
//-----------------------------------------------------------------------------

// RegularArgCount is the number of integer arguments RegularArgs expects:
// codeword length n, row weight r, column weight c.
const RegularArgCount = 3

// MinCodeLength is the smallest codeword length accepted by Regular.
const MinCodeLength = 1

// MinWeight is the smallest row or column weight accepted by Regular.
const MinWeight = 1

// MinLiftFactor is the smallest protograph lift factor.
const MinLiftFactor = 1

//-----------------------------------------------------------------------------
// Retry policy
//-----------------------------------------------------------------------------

// DefaultMaxAttempts caps the draws spent looking for each additional
// non-overlapping permutation in a permutation-sum block. At most f/2
// permutations are ever sampled per block and the draws needed per
// permutation grow roughly like e^(f/2), so blocks with f ≳ 20 and a
// multiplicity near f/2 may need a larger cap (WithMaxAttempts).
const DefaultMaxAttempts = 1 << 16
