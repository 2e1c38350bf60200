package pyscf

import "testing"

func TestAtomicNumber(Te *testing.T) {
	cases := map[string]int{"H": 1, "C": 6, "P": 15, "Cl": 17, "Rn": 86}
	for symbol, z := range cases {
		got, ok := AtomicNumber(symbol)
		if !ok || got != z {
			Te.Errorf("AtomicNumber(%q) = %d, %v; want %d", symbol, got, ok, z)
		}
	}
	if _, ok := AtomicNumber("CL"); ok {
		Te.Error("symbols are case-sensitive, CL should be unknown")
	}
	if _, ok := AtomicNumber("Xx"); ok {
		Te.Error("Xx should be unknown")
	}
}
