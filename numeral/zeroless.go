package numeral

// zeroless stringifies n in a bijective base-K system with no zero
// digit, K being the alphabet length. With digits A, B, C:
//
//	1 => "A"    4 => "AA"    7 => "BA"   10 => "CA"   13 => "AAA"
//	2 => "B"    5 => "AB"    8 => "BB"   11 => "CB"
//	3 => "C"    6 => "AC"    9 => "BC"   12 => "CC"
//
// The same scheme spreadsheet software uses for column labels: every
// positive integer gets a unique string regardless of alphabet size.
// Zero has no digit of its own and renders as "-".
func zeroless(alphabet []rune, n uint64) string {
	if n == 0 {
		return "-"
	}
	base := uint64(len(alphabet))
	var digits []rune
	for n > 0 {
		n--
		digits = append(digits, alphabet[n%base])
		n /= base
	}
	reverseRunes(digits)

	return string(digits)
}

// decimal stringifies n in base 10 using the contiguous run of ten
// digit codepoints starting at zeroDigit. Zero renders as the zero
// digit itself.
func decimal(zeroDigit rune, n uint64) string {
	if n == 0 {
		return string(zeroDigit)
	}
	var digits []rune
	for n > 0 {
		digits = append(digits, zeroDigit+rune(n%10))
		n /= 10
	}
	reverseRunes(digits)

	return string(digits)
}

// reverseRunes flips rs in place; conversions collect digits least
// significant first.
func reverseRunes(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
