package numeral

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// romanTable is the descending subtractive value table. Values above
// 3999 use letters with a combining overline (U+0305), each worth a
// thousandfold of the plain letter; M̅ repeats greedily beyond
// 1,000,000, so the table is total over uint64.
//
// Adapted from Yann Villessuzanne's roman.rs under the Unlicense,
// at https://github.com/linfir/roman.rs/
var romanTable = []struct {
	name  string
	value uint64
}{
	{"M̅", 1000000},
	{"D̅", 500000},
	{"C̅", 100000},
	{"L̅", 50000},
	{"X̅", 10000},
	{"V̅", 5000},
	{"I̅V̅", 4000},
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// romanNumeral stringifies n as a Roman numeral: greedily subtract the
// largest table value that still fits, emitting its name each time.
// Zero, which Roman numerals famously lack, renders as the letter
// "n"/"N" (for nulla).
func romanNumeral(n uint64, c letterCase) string {
	if n == 0 {
		if c == uppercase {
			return "N"
		}

		return "n"
	}

	var b strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			n -= e.value
			b.WriteString(e.name)
		}
	}
	if c == uppercase {
		return b.String()
	}

	// Unicode case mapping keeps the combining overlines attached to
	// their lowered letters.
	return cases.Lower(language.Und).String(b.String())
}
