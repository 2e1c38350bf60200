package pyscf

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows adding and retrieving info from the
// error as it is passed up the call stack, without changing its type or
// wrapping it around something else. Each Decorate call returns the current
// "decoration" slice of strings; if passed an empty string, it just returns
// the current value without appending. The slice should contain the names of
// the functions in the calling stack, each optionally followed by extra
// information in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}
