package pseudo

import (
	"fmt"
	"io"
	"strconv"
)

//this gets used a lot here
var sf = fmt.Sprintf

// Read parses a whole GTH pseudopotential database from r.
// In strict mode (lenient false, the default choice) the first malformed
// record aborts the load and comes back as the error, with no database.
// In lenient mode malformed records are skipped: the parser resynchronizes
// at the next record separator, the well-formed records still load, and
// every skipped record is reported in the returned diagnostics. An IO
// failure aborts the load in either mode.
func Read(r io.Reader, lenient bool) (*Database, []error, error) {
	tz := newTokenizer(r)
	D := newDatabase()
	var diags []error
	for n := 1; ; n++ {
		if _, ok, err := tz.peek(); err != nil {
			return nil, nil, errDecorate(err, "Read")
		} else if !ok {
			break
		}
		E, err := parseEntry(tz, n)
		if err == nil {
			err = validate(E)
		}
		if err == nil {
			err = D.add(E)
		}
		if err != nil {
			if e, ok := err.(Error); !lenient || (ok && e.Kind() == KindIO) {
				return nil, nil, errDecorate(err, "Read")
			}
			diags = append(diags, err)
			if err := resync(tz); err != nil {
				return nil, nil, errDecorate(err, "Read")
			}
		}
	}
	return D, diags, nil
}

// parser carries the token stream plus whatever currently identifies the
// record under construction, for error messages.
type parser struct {
	tz    *tokenizer
	ident string
}

func (p *parser) syntaxf(format string, a ...any) error {
	return Error{sf(format, a...), KindSyntax, p.ident, []string{"parseEntry"}, true}
}

func (p *parser) semanticf(format string, a ...any) error {
	return Error{sf(format, a...), KindSemantic, p.ident, []string{"parseEntry"}, true}
}

// demand consumes the next token, failing if the stream or the record ends
// before it. A record separator is never consumed here: it stays in the
// stream so lenient-mode recovery can restart cleanly at the record it
// opens.
func (p *parser) demand(field string) (token, error) {
	t, ok, err := p.tz.peek()
	if err != nil {
		return token{}, err
	}
	if !ok {
		return token{}, p.syntaxf("%s %q", EarlyEnd, field)
	}
	if t.kind == tokenSep {
		return token{}, p.syntaxf("next record starts before %q", field)
	}
	p.tz.next()
	return t, nil
}

func (p *parser) wrongClass(field string, t token) error {
	return p.syntaxf("%s %q: got %s %q at line %d", WrongFormat, field, t.kind, t.text, t.line)
}

func (p *parser) word(field string) (string, error) {
	t, err := p.demand(field)
	if err != nil {
		return "", err
	}
	if t.kind != tokenWord {
		return "", p.wrongClass(field, t)
	}
	return t.text, nil
}

func (p *parser) real(field string) (float64, error) {
	t, err := p.demand(field)
	if err != nil {
		return 0, err
	}
	//integers pass too: a coefficient may legally be printed without a decimal point
	if t.kind != tokenReal && t.kind != tokenInt {
		return 0, p.wrongClass(field, t)
	}
	v, _ := strconv.ParseFloat(t.text, 64)
	return v, nil
}

// count reads a non-negative integer field. A negative number has the right
// lexical class but can never be a count, so it is a semantic violation
// rather than a syntax one.
func (p *parser) count(field string) (int, error) {
	t, err := p.demand(field)
	if err != nil {
		return 0, err
	}
	if t.kind != tokenInt {
		return 0, p.wrongClass(field, t)
	}
	n, _ := strconv.Atoi(t.text)
	if n < 0 {
		return 0, p.semanticf("negative %s: %d", field, n)
	}
	return n, nil
}

// parseEntry reads one full record, separator included. The grammar has no
// fixed arity: every consumption count below was read earlier in the same
// record, and the end of the alias list and of the electron configuration
// is decided by the lexical class of the upcoming token. Physical lines
// play no role at all, which is what keeps wrapped coefficient lists from
// being a special case.
func parseEntry(tz *tokenizer, n int) (*Entry, error) {
	p := &parser{tz: tz, ident: sf("record %d", n)}
	t, ok, err := tz.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.syntaxf("%s %q", EarlyEnd, "record separator")
	}
	if t.kind != tokenSep {
		return nil, p.wrongClass("record separator", t)
	}
	E := new(Entry)
	if E.Symbol, err = p.word("element symbol"); err != nil {
		return nil, err
	}
	if E.Name, err = p.word("potential name"); err != nil {
		return nil, err
	}
	p.ident = E.Key()
	//aliases run until the first numeric token, which starts the electron configuration
	for {
		t, ok, err := tz.peek()
		if err != nil {
			return nil, err
		}
		if !ok || t.kind == tokenSep {
			return nil, p.syntaxf("%s %q", EarlyEnd, "electron configuration")
		}
		if t.kind != tokenWord {
			break
		}
		a, err := p.word("alias")
		if err != nil {
			return nil, err
		}
		E.Aliases = append(E.Aliases, a)
	}
	//channel occupations run until the first value with a decimal point, which is r_loc
	for {
		t, ok, err := tz.peek()
		if err != nil {
			return nil, err
		}
		if !ok || t.kind != tokenInt {
			break
		}
		o, err := p.count("channel occupation")
		if err != nil {
			return nil, err
		}
		E.ElConfig = append(E.ElConfig, o)
	}
	if len(E.ElConfig) == 0 {
		t, ok, err := tz.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.syntaxf("%s %q", EarlyEnd, "electron configuration")
		}
		return nil, p.wrongClass("electron configuration", t)
	}
	if E.Local.RLoc, err = p.real("r_loc"); err != nil {
		return nil, err
	}
	nexp, err := p.count("nexp_ppl")
	if err != nil {
		return nil, err
	}
	E.Local.Coeffs = make([]float64, nexp)
	for i := range E.Local.Coeffs {
		if E.Local.Coeffs[i], err = p.real(sf("local coefficient %d of %d", i+1, nexp)); err != nil {
			return nil, err
		}
	}
	nprj, err := p.count("nprj")
	if err != nil {
		return nil, err
	}
	E.Projectors = make([]Projector, 0, nprj)
	for l := 0; l < nprj; l++ {
		rl, err := p.real(sf("r_l of channel %d", l))
		if err != nil {
			return nil, err
		}
		size, err := p.count(sf("projector count of channel %d", l))
		if err != nil {
			return nil, err
		}
		upper := make([]float64, size*(size+1)/2)
		for k := range upper {
			if upper[k], err = p.real(sf("coupling coefficient %d of channel %d", k+1, l)); err != nil {
				return nil, err
			}
		}
		E.Projectors = append(E.Projectors, Projector{rl, symFromUpper(size, upper)})
	}
	return E, nil
}

// resync skips tokens until the next record separator (or the end of the
// stream), so in lenient mode one malformed record does not take down the
// records after it.
func resync(tz *tokenizer) error {
	for {
		t, ok, err := tz.peek()
		if err != nil || !ok {
			return err
		}
		if t.kind == tokenSep {
			return nil
		}
		tz.next()
	}
}
