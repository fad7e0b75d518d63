package numeral

import "strings"

// Greek numeral digit tables, indexed [digit-1][letterCase]. Thousands
// carry the lower numeral sign (U+0375); hundreds, tens and ones are
// plain letters, with the archaic koppa (ϙ/Ϟ) for 90 and sampi (ϡ/Ϡ)
// for 900.
var (
	greekThousands = [9][2]string{
		{"͵α", "͵Α"}, {"͵β", "͵Β"}, {"͵γ", "͵Γ"},
		{"͵δ", "͵Δ"}, {"͵ε", "͵Ε"}, {"͵ϛ", "͵Ϛ"},
		{"͵ζ", "͵Ζ"}, {"͵η", "͵Η"}, {"͵θ", "͵Θ"},
	}
	greekHundreds = [9][2]string{
		{"ρ", "Ρ"}, {"σ", "Σ"}, {"τ", "Τ"},
		{"υ", "Υ"}, {"φ", "Φ"}, {"χ", "Χ"},
		{"ψ", "Ψ"}, {"ω", "Ω"}, {"ϡ", "Ϡ"},
	}
	greekTens = [9][2]string{
		{"ι", "Ι"}, {"κ", "Κ"}, {"λ", "Λ"},
		{"μ", "Μ"}, {"ν", "Ν"}, {"ξ", "Ξ"},
		{"ο", "Ο"}, {"π", "Π"}, {"ϙ", "Ϟ"},
	}
	greekOnes = [9][2]string{
		{"α", "Α"}, {"β", "Β"}, {"γ", "Γ"},
		{"δ", "Δ"}, {"ε", "Ε"}, {"ϛ", "Ϛ"},
		{"ζ", "Ζ"}, {"η", "Η"}, {"θ", "Θ"},
	}
)

const (
	// greekZeroSign is the Greek zero (U+1018A).
	greekZeroSign = "𐆊"

	// greekKeraia (U+0374) marks a chunk without a thousands digit as a
	// numeral rather than a word.
	greekKeraia = "ʹ"

	// greekMyriadMark is the capital mu denoting a myriad (10000) power.
	greekMyriadMark = "Μ"

	// greekChunkSeparator joins multiple non-zero myriad chunks.
	greekChunkSeparator = ", "
)

// greekNumeral stringifies n as a Greek numeral using the single-digit
// myriad power representation: n is split into base-10000 chunks, and
// every chunk above the first myriad gets a lower-Greek digit prefix
// followed by Μ naming its power of 10000. Within a chunk, thousands,
// hundreds, tens and ones each map through their own digit table.
func greekNumeral(n uint64, c letterCase) string {
	if n == 0 {
		return greekZeroSign
	}

	// Decimal digits, most significant first, zero-padded on the left
	// so they split into exact groups of four.
	var digits []int
	for v := n; v > 0; v /= 10 {
		digits = append(digits, int(v%10))
	}
	for len(digits)%4 != 0 {
		digits = append(digits, 0)
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	var b strings.Builder
	power := len(digits) / 4
	wrote := false
	for i := 0; i < len(digits); i += 4 {
		power--

		th, h, t, o := digits[i], digits[i+1], digits[i+2], digits[i+3]
		if th+h+t+o == 0 {
			continue
		}

		if wrote {
			b.WriteString(greekChunkSeparator)
		}
		if power > 0 {
			// The myriad power prefix is a single lowercase digit,
			// capping the representable range at 10000^10 - 1.
			b.WriteString(greekOnes[power-1][lowercase])
			b.WriteString(greekMyriadMark)
		}
		if th != 0 {
			b.WriteString(greekThousands[th-1][c])
		}
		if h != 0 {
			b.WriteString(greekHundreds[h-1][c])
		}
		if t != 0 {
			b.WriteString(greekTens[t-1][c])
		}
		if o != 0 {
			b.WriteString(greekOnes[o-1][c])
		}
		// A chunk without thousands needs the keraia to read as a
		// numeral.
		if th == 0 {
			b.WriteString(greekKeraia)
		}
		wrote = true
	}

	return b.String()
}
