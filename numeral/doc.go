// Package numeral converts non-negative integers into human-readable
// numerals across a closed set of writing systems: Latin and Greek
// letters, Roman and Hebrew numerals, CJK scripts, Arabic-script and
// Indic digits, and symbolic footnote marks.
//
// Every system is a Kind. A Kind is identified in pattern syntax by a
// single representative character ('1' → Arabic, 'i' → LowerRoman, …)
// and converts via Apply, a pure total function over uint64.
//
// Three algorithm families cover all kinds:
//   - zeroless bijective base-K (letters, kana, jamo, circled glyphs) —
//     the spreadsheet-column scheme: a, b, …, z, aa, ab, …
//   - zero-anchored positional decimal (Eastern Arabic, Persian,
//     Devanagari, Bengali digits) — contiguous digit codepoints.
//   - table-driven symbolic systems (Roman, Greek, Hebrew, Chinese,
//     footnote marks) — each with its own value table and emission rule.
//
// The set of kinds is intentionally closed: adding one means extending
// both directions of the representative-character table and the Apply
// dispatch. There is no dynamic registration.
//
// All functions are safe for unsynchronized concurrent use.
package numeral
