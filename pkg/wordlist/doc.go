// Package wordlist persists generated password candidates as plain
// newline-delimited text.
//
// It is the persistence collaborator of pkg/passgen: it receives a
// finalized ResultSet's candidates and writes them in order, reporting
// progress through an observer callback so interactive front ends can drive
// a progress bar without the writer knowing anything about display.
package wordlist
