package pseudo

import (
	"io"
	"strings"
)

// Write serializes entries back to the GTH-POTENTIALS text format, each one
// preceded by its record separator line. Values are written with eight
// decimals, the precision the GTH parameter sets are published with, so an
// entry freshly produced by Read writes back to a text that parses to an
// equal entry.
func Write(out io.Writer, entries ...*Entry) error {
	var b strings.Builder
	for _, E := range entries {
		writeEntry(&b, E)
	}
	if _, err := io.WriteString(out, b.String()); err != nil {
		return Error{err.Error(), KindIO, "", []string{"Write"}, true}
	}
	return nil
}

// Write serializes the whole database, in source order.
func (D *Database) Write(out io.Writer) error {
	if err := Write(out, D.entries...); err != nil {
		return errDecorate(err, "Database.Write")
	}
	return nil
}

func writeEntry(b *strings.Builder, E *Entry) {
	b.WriteString(sentinel + "\n")
	b.WriteString(E.Symbol + " " + E.Name)
	for _, a := range E.Aliases {
		b.WriteString(" " + a)
	}
	b.WriteString("\n")
	for _, o := range E.ElConfig {
		b.WriteString(sf("%5d", o))
	}
	b.WriteString("\n")
	b.WriteString(sf("%15.8f%5d", E.Local.RLoc, len(E.Local.Coeffs)))
	for _, c := range E.Local.Coeffs {
		b.WriteString(sf("%16.8f", c))
	}
	b.WriteString("\n")
	b.WriteString(sf("%5d\n", len(E.Projectors)))
	for _, P := range E.Projectors {
		n := P.Size()
		b.WriteString(sf("%15.8f%5d", P.RL, n))
		//the upper triangle only, row-major, diagonal included
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				b.WriteString(sf("%16.8f", P.H.At(i, j)))
			}
		}
		b.WriteString("\n")
	}
}
