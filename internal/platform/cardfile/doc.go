// Package cardfile reads and writes the deck file format.
//
// A deck file holds one record per line:
//
//	{"term":"definition":mistakes},
//
// Reading is deliberately permissive. Quotes around the term and the
// definition may be double, single or missing, blanks after the separators
// are ignored, and a missing mistake count means zero. The term ends at the
// first separator and the count starts after the last one, so a definition
// may contain separators and quotes but a term may not contain a separator. Lines that cannot be
// read as a record are skipped, so a file without any record simply yields
// no cards.
package cardfile
