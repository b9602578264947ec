// Package laplacian: core data model shared by the pipeline stages.

package laplacian

// Edge is one undirected weighted edge of the input list.
//
// Source and Target are node ids: strings that must parse as non-negative
// base-10 integers ("0", "1", "42"). Weight must be finite; negative weights
// are legal and enter the adjacency matrix signed (degrees take absolute
// values, and the adaptive normalizer counts only strictly positive entries
// as neighbors).
type Edge struct {
	Source string
	Target string
	Weight float64
}

// NodeProperties is one node's key→value record, the input unit of
// BuildFeatureMatrix. Eigenvector coordinates live under the keys
// "eigenvector_0" .. "eigenvector_{k-1}".
type NodeProperties map[string]float64

// EigenvectorPrefix is the property-key prefix carrying eigenvector
// coordinates; the suffix is the zero-based column index.
const EigenvectorPrefix = "eigenvector_"

// Normalization selects the Laplacian variant. Any value other than the
// three constants below (empty string included) makes the dispatcher fall
// back to NormSymmetric; the fallback is silent and part of the contract.
type Normalization string

const (
	// NormSymmetric is S·A·S with S[i][i] = 1/√D[i][i]; the default.
	NormSymmetric Normalization = "sym"

	// NormRandomWalk is R·A with R[i][i] = 1/D[i][i]; rows of the result sum
	// to 1 on uniform positive weights.
	NormRandomWalk Normalization = "rw"

	// NormAdaptive is T·A·T with the locally-scaled T of the adaptive
	// normalization; guarded against zero degrees by construction.
	NormAdaptive Normalization = "ad"
)

// resolve maps any selector onto the normalizer that will actually run,
// folding unknown values onto the symmetric default.
func (n Normalization) resolve() Normalization {
	switch n {
	case NormSymmetric, NormRandomWalk, NormAdaptive:
		return n
	default:
		return NormSymmetric
	}
}
