package pseudo

import (
	"strings"
	"testing"
)

func TestLookupAll(Te *testing.T) {
	D := mustRead(Te, testDB)
	hs := D.LookupAll("H")
	if len(hs) != 2 {
		Te.Fatalf("got %d hydrogen entries, want 2", len(hs))
	}
	//insertion order must survive indexing
	if hs[0].Name != "GTH-HCTH120-q1" || hs[1].Name != "GTH-PADE-q1" {
		Te.Errorf("wrong order: %s, %s", hs[0].Name, hs[1].Name)
	}
	if got := D.LookupAll("Xx"); len(got) != 0 {
		Te.Errorf("unknown symbol returned %d entries", len(got))
	}
}

func TestLookupExactAliases(Te *testing.T) {
	D := mustRead(Te, testDB)
	canonical := D.LookupExact("H", "GTH-PADE-q1")
	if canonical == nil {
		Te.Fatal("canonical name not found")
	}
	for _, alias := range []string{"GTH-LDA-q1", "GTH-PADE", "GTH-LDA"} {
		if e := D.LookupExact("H", alias); e != canonical {
			Te.Errorf("alias %q resolved to %v, want the canonical entry", alias, e)
		}
	}
}

// An absent key is an answer, not a failure.
func TestLookupExactAbsent(Te *testing.T) {
	D := mustRead(Te, testDB)
	if e := D.LookupExact("Xx", "nonexistent"); e != nil {
		Te.Errorf("got %v for a nonexistent key", e)
	}
	if e := D.LookupExact("H", "GTH-BP-q1"); e != nil {
		Te.Errorf("got %v for a name the element does not carry", e)
	}
}

// The same name under different elements is no collision; GTH sets reuse
// their names across the whole periodic table.
func TestSameNameDifferentElements(Te *testing.T) {
	src := `#PSEUDOPOTENTIAL
H GTH-PADE-q1 GTH-PADE
    1
     0.20000000    2    -4.18023680     0.72507482
    0
#PSEUDOPOTENTIAL
He GTH-PADE-q2 GTH-PADE
    2
     0.20000000    2    -9.11202340     1.69836797
    0
`
	D, _, err := Read(strings.NewReader(src), false)
	if err != nil {
		Te.Fatal(err)
	}
	h := D.LookupExact("H", "GTH-PADE")
	he := D.LookupExact("He", "GTH-PADE")
	if h == nil || he == nil || h == he {
		Te.Error("the shared alias should resolve per element")
	}
}
