package pseudo

import (
	"fmt"

	"github.com/lichen5/pyscf"
)

// Kind classifies what went wrong while loading a database.
type Kind int

const (
	// KindIO covers unreadable or unopenable sources.
	KindIO Kind = iota
	// KindSyntax covers token-stream and grammar failures: a premature end
	// of stream, or a token of the wrong lexical class.
	KindSyntax
	// KindSemantic covers records that parse but violate an invariant of
	// the format: non-positive radii, negative counts, duplicate keys.
	KindSemantic
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindSyntax:
		return "syntax"
	case KindSemantic:
		return "semantic"
	}
	return "unknown"
}

// Error is the general structure for pseudopotential database errors.
// It fulfills pyscf.Error.
type Error struct {
	message  string
	kind     Kind
	entry    string //identifies the offending record, or empty if none applies
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.entry == "" {
		return fmt.Sprintf("pseudopotential database %s error: %s", err.kind, err.message)
	}
	return fmt.Sprintf("pseudopotential database %s error in %s: %s", err.kind, err.entry, err.message)
}

func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Kind returns the error class (io, syntax or semantic).
func (err Error) Kind() Kind { return err.kind }

// Entry identifies the record the error was detected in, either as
// "Symbol Name" or as "record N" if it failed before the header was read.
// It is empty for errors not tied to any record.
func (err Error) Entry() string { return err.entry }

func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong lexical class for field"
	EarlyEnd     = "Stream ended before field"
)

// errDecorate is a helper for the decoration of errors.
// if used with a non-pyscf.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(pyscf.Error)
	err2.Decorate(caller)
	return err2
}
