package numeral

import "strings"

// hebrewTable lists the 22 letter values in descending order; the
// additive scheme greedily subtracts them.
var hebrewTable = []struct {
	name  rune
	value uint64
}{
	{'ת', 400},
	{'ש', 300},
	{'ר', 200},
	{'ק', 100},
	{'צ', 90},
	{'פ', 80},
	{'ע', 70},
	{'ס', 60},
	{'נ', 50},
	{'מ', 40},
	{'ל', 30},
	{'כ', 20},
	{'י', 10},
	{'ט', 9},
	{'ח', 8},
	{'ז', 7},
	{'ו', 6},
	{'ה', 5},
	{'ד', 4},
	{'ג', 3},
	{'ב', 2},
	{'א', 1},
}

const (
	// hebrewGeresh follows a single-letter numeral.
	hebrewGeresh = '׳'

	// hebrewGershayim precedes the final letter of a multi-letter
	// numeral.
	hebrewGershayim = '״'

	// The regular spellings of 15 (יה) and 16 (יו) would spell a sacred
	// name; these fixed sequences are substituted instead.
	hebrewFifteen = "ט״ו"
	hebrewSixteen = "ט״ז"
)

// hebrewNumeral stringifies n as a Hebrew numeral, additive from the
// descending letter table, with the 15/16 substitutions and
// geresh/gershayim punctuation. Zero renders as "-".
func hebrewNumeral(n uint64) string {
	if n == 0 {
		return "-"
	}

	var b strings.Builder
outer:
	for _, e := range hebrewTable {
		for n >= e.value {
			// The substitutions cover whatever remains, so they end
			// the whole pass.
			switch n {
			case 15:
				b.WriteString(hebrewFifteen)

				break outer
			case 16:
				b.WriteString(hebrewSixteen)

				break outer
			}

			last := n == e.value
			first := b.Len() == 0
			if last && !first {
				b.WriteRune(hebrewGershayim)
			}
			b.WriteRune(e.name)
			if last && first {
				b.WriteRune(hebrewGeresh)
			}
			n -= e.value
		}
	}

	return b.String()
}
