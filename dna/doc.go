// Package dna turns nucleotide strings into digit sequences and back.
//
// The pair scheme reads bases two at a time:
//
//	AA 0   AC/CA 1   AG/GA 2   AT/TA 3   CC 4
//	CG/GC 5   CT/TC 6   GG 7   GT/TG 8   TT 9
//
// A pair equal to the canonical pair of its digit (AA AC AG AT CC CG CT GG
// GT TT) is forward; its mirror is reverse and carries the mark "←", which
// makes Decode exact. The simple scheme maps each base to 0..3 and is not
// decodable.
//
// Input is upper-cased and stripped of whitespace; any other letter is an
// error. A trailing odd base is dropped and reported via Truncated.
package dna
