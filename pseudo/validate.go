package pseudo

import (
	"strconv"
	"strings"

	"github.com/lichen5/pyscf"
)

// validate checks the invariants the grammar cannot express. The field
// counts themselves need no checking here: the parser consumed exactly as
// many values as the record declared, or it already failed.
func validate(E *Entry) error {
	semantic := func(format string, a ...any) error {
		return Error{sf(format, a...), KindSemantic, E.Key(), []string{"validate"}, true}
	}
	if E.Local.RLoc <= 0 {
		return semantic("non-positive local radius %g", E.Local.RLoc)
	}
	for l, P := range E.Projectors {
		if P.RL <= 0 {
			return semantic("non-positive radius %g for channel %d", P.RL, l)
		}
	}
	seen := map[string]bool{E.Name: true}
	for _, a := range E.Aliases {
		if seen[a] {
			return semantic("duplicate identifier %q", a)
		}
		seen[a] = true
	}
	if q, ok := chargeState(E.Name); ok && q != E.Qval() {
		return semantic("name promises %d valence electrons, electron configuration holds %d", q, E.Qval())
	}
	if z, ok := pyscf.AtomicNumber(E.Symbol); ok && E.Qval() > z {
		return semantic("%d valence electrons on an element with only %d electrons", E.Qval(), z)
	}
	return nil
}

// chargeState extracts N from the conventional -qN suffix of a potential
// name (as in GTH-BLYP-q4): the number of valence electrons the potential
// was parameterized for. Names without the suffix promise nothing.
func chargeState(name string) (int, bool) {
	i := strings.LastIndex(name, "-q")
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(name[i+2:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
