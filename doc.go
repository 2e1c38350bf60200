// Package pyscf hosts the definitions shared by every package in the
// library: the library-wide error interface and basic per-element data.
// The actual functionality lives in the subpackages (currently only
// pseudo, the GTH pseudopotential database reader).
package pyscf
