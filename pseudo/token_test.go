package pseudo

import (
	"strings"
	"testing"
)

func TestClassify(Te *testing.T) {
	cases := map[string]tokenKind{
		"2":           tokenInt,
		"-4":          tokenInt,
		"0":           tokenInt,
		"0.20000000":  tokenReal,
		"-4.17956174": tokenReal,
		"1.0e-3":      tokenReal,
		"H":           tokenWord,
		"GTH-BLYP-q4": tokenWord,
		"q1":          tokenWord,
	}
	for text, want := range cases {
		if got := classify(text); got != want {
			Te.Errorf("classify(%q) = %v, want %v", text, got, want)
		}
	}
}

// Comments and blank lines disappear, the sentinel survives as its own
// token, and line boundaries leave no trace in the token sequence.
func TestTokenizer(Te *testing.T) {
	src := "# a comment line\n" +
		"#PSEUDOPOTENTIAL\n" +
		"H GTH-PADE-q1\n" +
		"    1\n" +
		"\n" +
		"     0.20000000    2\n"
	want := []token{
		{tokenSep, sentinel, 0},
		{tokenWord, "H", 0},
		{tokenWord, "GTH-PADE-q1", 0},
		{tokenInt, "1", 0},
		{tokenReal, "0.20000000", 0},
		{tokenInt, "2", 0},
	}
	tz := newTokenizer(strings.NewReader(src))
	for i, w := range want {
		t, ok, err := tz.next()
		if err != nil {
			Te.Fatal(err)
		}
		if !ok {
			Te.Fatalf("stream ended at token %d", i)
		}
		if t.kind != w.kind || t.text != w.text {
			Te.Errorf("token %d: got %v %q, want %v %q", i, t.kind, t.text, w.kind, w.text)
		}
	}
	if _, ok, _ := tz.next(); ok {
		Te.Error("expected the end of the stream")
	}
}

func TestTokenizerPeek(Te *testing.T) {
	tz := newTokenizer(strings.NewReader("0.43 1"))
	p, ok, err := tz.peek()
	if err != nil || !ok {
		Te.Fatal("peek failed", err)
	}
	t, _, _ := tz.next()
	if p != t {
		Te.Errorf("peek returned %v, next returned %v", p, t)
	}
}
