// Package pattern compiles numbering pattern strings and applies them
// to sequences of numbers.
//
// A pattern interleaves literal text with counting symbols, single
// characters that each select a numeral system (see package numeral):
//
//	"1.1)"  → two Arabic levels, "." between them, ")" after
//	"(I)"   → one UpperRoman level in parentheses
//	"1.a.i" → Arabic, LowerLatin, LowerRoman levels
//
// Counting symbols are recognized greedily left to right; the text
// before each symbol becomes that piece's prefix and the text after the
// last symbol becomes the suffix. A string with no counting symbol at
// all is rejected with ErrInvalidPattern.
//
// A Pattern is an immutable value. Applying it pairs numbers with
// pieces in order; surplus numbers repeat the last piece, surplus
// pieces are dropped. Trimmed returns a variant for composing nested
// levels, with the first prefix and the suffix suppressed.
package pattern
