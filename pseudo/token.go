package pseudo

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

//The GTH-POTENTIALS lexical conventions: '#' starts a comment which runs to
//the end of the line, except for the one comment-looking line that acts as
//the record separator.
const (
	commentMark = "#"
	sentinel    = "#PSEUDOPOTENTIAL"
)

type tokenKind int

const (
	tokenSep tokenKind = iota
	tokenInt
	tokenReal
	tokenWord
)

func (k tokenKind) String() string {
	switch k {
	case tokenSep:
		return "record separator"
	case tokenInt:
		return "integer"
	case tokenReal:
		return "real"
	}
	return "identifier"
}

type token struct {
	kind tokenKind
	text string
	line int //1-based physical line, for error messages only
}

// classify assigns a lexical class on shape alone: a signed string of digits
// is an integer, anything else strconv can read as a float (so with a
// decimal point or an exponent) is a real, the rest are identifiers.
func classify(text string) tokenKind {
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return tokenInt
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return tokenReal
	}
	return tokenWord
}

// tokenizer turns raw text into a flat sequence of tokens, discarding
// comments and blank lines and erasing physical line boundaries. Only the
// record-separator sentinel survives as a distinguished token, so the
// parser can find record starts without counting lines. It buffers one
// physical line worth of tokens, which gives the single token of lookahead
// the grammar needs.
type tokenizer struct {
	r       *bufio.Reader
	pending []token
	line    int
	eof     bool
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r)}
}

func (tz *tokenizer) fill() error {
	for len(tz.pending) == 0 && !tz.eof {
		str, err := tz.r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return Error{err.Error(), KindIO, "", []string{"tokenizer.fill"}, true}
			}
			tz.eof = true
		}
		tz.line++
		str = strings.TrimSpace(str)
		if str == "" {
			continue
		}
		if strings.HasPrefix(str, commentMark) {
			if strings.Fields(str)[0] == sentinel {
				tz.pending = append(tz.pending, token{tokenSep, sentinel, tz.line})
			}
			continue
		}
		for _, f := range strings.Fields(str) {
			tz.pending = append(tz.pending, token{classify(f), f, tz.line})
		}
	}
	return nil
}

// next returns the next token; ok is false once the stream is exhausted.
func (tz *tokenizer) next() (t token, ok bool, err error) {
	if err := tz.fill(); err != nil {
		return token{}, false, err
	}
	if len(tz.pending) == 0 {
		return token{}, false, nil
	}
	t = tz.pending[0]
	tz.pending = tz.pending[1:]
	return t, true, nil
}

// peek returns the next token without consuming it.
func (tz *tokenizer) peek() (t token, ok bool, err error) {
	if err := tz.fill(); err != nil {
		return token{}, false, err
	}
	if len(tz.pending) == 0 {
		return token{}, false, nil
	}
	return tz.pending[0], true, nil
}
