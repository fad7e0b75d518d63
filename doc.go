// Package numbering renders sequences of counters as human-readable
// numerals — the engine behind automatic numbering of headings,
// figures, and list items across dozens of writing systems.
//
// 🚀 What is numbering?
//
//	A pure formatting core that turns a numbering scheme plus a list
//	of numbers into text:
//	  • Pattern schemes: "1.1)", "a.", "(I)", "1.a.i" — literal text
//	    interleaved with counting symbols
//	  • Callable schemes: an external function that receives the raw
//	    numbers and produces any value
//	  • ~25 numeral systems: Latin, Roman, Greek, Hebrew, Chinese,
//	    kana, Korean jamo and syllables, Arabic-script and Indic
//	    digits, circled glyphs, footnote marks
//
// ✨ Why choose numbering?
//
//   - Exact output – every system reproduces its canonical forms,
//     down to Hebrew gershayim placement and Greek myriad powers
//   - Total functions – zero, huge values, too few or too many
//     numbers all have defined results; the only error is a pattern
//     with no counting symbol
//   - Immutable values – patterns and schemes are value types; every
//     operation is safe for concurrent use without locks
//
// Everything is organized under three packages:
//
//	.         — the Numbering facade: scheme values, Format dispatch
//	numeral/  — the closed Kind registry and conversion algorithms
//	pattern/  — pattern compiling, serializing, and application
//
// Quick example:
//
//	s, _ := numbering.Format(ctx, "1.a)", 2, 3)
//	// s == "2.c)"
//
// See example_test.go for more.
package numbering
