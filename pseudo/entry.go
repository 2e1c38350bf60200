package pseudo

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// LocalPotential is the local part of a GTH pseudopotential: a Gaussian
// expansion with decay radius RLoc and len(Coeffs) terms.
type LocalPotential struct {
	RLoc   float64
	Coeffs []float64
}

// Projector is the non-local part of a GTH pseudopotential for one angular
// momentum channel: the channel radius and the symmetric coupling matrix
// between the projectors of the channel. H is nil when the channel carries
// no projectors at all.
type Projector struct {
	RL float64
	H  *mat.SymDense
}

// Size returns the number of projectors in the channel (the dimension of H,
// or 0 for a channel with no non-local part).
func (P *Projector) Size() int {
	if P.H == nil {
		return 0
	}
	return P.H.SymmetricDim()
}

// Entry is one pseudopotential record: the parameters of one named
// potential for one element. Entries are built by Read and never modified
// afterwards, so they can be shared freely.
type Entry struct {
	Symbol   string
	Name     string
	Aliases  []string
	ElConfig []int //valence electrons per angular momentum channel (s, p, d, ...)
	Local    LocalPotential
	//one Projector per angular momentum channel, in channel order
	Projectors []Projector
}

// Key identifies the entry as "Symbol Name", the form used in error
// messages and as the uniqueness key within a database.
func (E *Entry) Key() string {
	return E.Symbol + " " + E.Name
}

// Qval returns the total number of valence electrons in the entry's
// electron configuration. For the usual naming convention it matches the
// number in the -qN suffix of the potential name.
func (E *Entry) Qval() int {
	q := 0
	for _, n := range E.ElConfig {
		q += n
	}
	return q
}

// Equal reports whether two entries hold exactly the same data, matrices
// included. Aliases must match in order as well as content.
func (E *Entry) Equal(other *Entry) bool {
	if E.Symbol != other.Symbol || E.Name != other.Name {
		return false
	}
	if !slices.Equal(E.Aliases, other.Aliases) || !slices.Equal(E.ElConfig, other.ElConfig) {
		return false
	}
	if E.Local.RLoc != other.Local.RLoc || !slices.Equal(E.Local.Coeffs, other.Local.Coeffs) {
		return false
	}
	if len(E.Projectors) != len(other.Projectors) {
		return false
	}
	for i, P := range E.Projectors {
		O := other.Projectors[i]
		if P.RL != O.RL {
			return false
		}
		if (P.H == nil) != (O.H == nil) {
			return false
		}
		if P.H != nil && !mat.Equal(P.H, O.H) {
			return false
		}
	}
	return true
}

// symFromUpper rebuilds the full n x n symmetric matrix from its upper
// triangle, read in row-major order, diagonal included: row 0 contributes n
// values, row 1 contributes n-1, and so on. Each value is stored once and
// mirrored, never read twice. n == 0 yields nil, not an empty matrix.
// The triangle must hold exactly n*(n+1)/2 values; anything else is a bug
// in the caller, not a property of the input text, so it panics.
func symFromUpper(n int, upper []float64) *mat.SymDense {
	if len(upper) != n*(n+1)/2 {
		panic(fmt.Sprintf("pseudo: upper triangle of a %d x %d matrix needs %d values, got %d", n, n, n*(n+1)/2, len(upper)))
	}
	if n == 0 {
		return nil
	}
	H := mat.NewSymDense(n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			H.SetSym(i, j, upper[k])
			k++
		}
	}
	return H
}
