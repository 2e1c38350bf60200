package pseudo

// Database is an index over the entries of one pseudopotential database
// file. It is built by Read in a single pass and never modified afterwards,
// so any number of goroutines may query it concurrently without locking.
type Database struct {
	entries  []*Entry
	bySymbol map[string][]*Entry
	byName   map[string]*Entry //keyed by "symbol identifier", for the canonical name and every alias
}

func newDatabase() *Database {
	return &Database{
		bySymbol: make(map[string][]*Entry),
		byName:   make(map[string]*Entry),
	}
}

func fullName(symbol, name string) string {
	return symbol + " " + name
}

// add indexes a validated entry under its canonical name and all of its
// aliases, refusing any identifier already taken for the same element.
func (D *Database) add(E *Entry) error {
	ids := append([]string{E.Name}, E.Aliases...)
	for _, id := range ids {
		if prev, taken := D.byName[fullName(E.Symbol, id)]; taken {
			return Error{sf("identifier %q already taken by %s", id, prev.Key()), KindSemantic, E.Key(), []string{"Database.add"}, true}
		}
	}
	for _, id := range ids {
		D.byName[fullName(E.Symbol, id)] = E
	}
	D.bySymbol[E.Symbol] = append(D.bySymbol[E.Symbol], E)
	D.entries = append(D.entries, E)
	return nil
}

// Len returns the number of entries in the database.
func (D *Database) Len() int {
	return len(D.entries)
}

// Entries returns every entry in the order they appeared in the source.
// The slice is the caller's to reorder; the entries themselves are shared
// and must be treated as read-only.
func (D *Database) Entries() []*Entry {
	return append([]*Entry{}, D.entries...)
}

// LookupAll returns every potential parameterized for the given element, in
// source order. An unknown symbol yields an empty slice.
func (D *Database) LookupAll(symbol string) []*Entry {
	return append([]*Entry{}, D.bySymbol[symbol]...)
}

// LookupExact returns the entry whose canonical name or one of whose
// aliases matches nameOrAlias for the given element, or nil if there is
// none. An absent key is a normal, representable outcome, not an error.
func (D *Database) LookupExact(symbol, nameOrAlias string) *Entry {
	return D.byName[fullName(symbol, nameOrAlias)]
}
