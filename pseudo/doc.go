/*
Package pseudo reads GTH (Goedecker-Teter-Hutter) pseudopotential parameter
databases in the text format used by the GTH-POTENTIALS data files.

The format is line-oriented to the eye but not to the parser: the number of
values a record carries is declared inside the record itself, and long
coefficient lists wrap onto continuation lines with no marker whatsoever.
Reading is therefore done over a flat token stream, driven by the declared
counts and by one token of lookahead, never by counting physical lines.

A record looks like

	#PSEUDOPOTENTIAL
	C GTH-HCTH120-q4
	    2    2
	     0.33476327    2    -8.73799634     1.35592059
	    2
	     0.30224259    1     9.60562026
	     0.29150776    0

that is: a separator sentinel, the element symbol with the canonical
potential name and any aliases, the electron configuration per angular
momentum channel, the local part (radius, term count, that many
coefficients), the number of non-local channels, and per channel the radius,
the projector count and the upper triangle of the symmetric coupling matrix.

Read and FileRead build an immutable Database out of such records; once
built it may be queried from any number of goroutines without locking.
*/
package pseudo
