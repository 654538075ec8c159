// Package console implements the line-oriented terminal exchange of a
// session. Every line printed and every line read is mirrored into a
// Transcript that can be saved to a file on request.
package console
