package numeral

import "strings"

// symbolMarks cycle in the traditional footnote order.
var symbolMarks = []rune{'*', '†', '‡', '§', '¶', '‖'}

// symbolNumeral stringifies n with footnote marks: the mark at
// position (n-1) mod 6, repeated once per completed cycle (7 → "**",
// 13 → "***"). Zero renders as "-".
func symbolNumeral(n uint64) string {
	if n == 0 {
		return "-"
	}
	count := uint64(len(symbolMarks))
	mark := symbolMarks[(n-1)%count]
	repeat := (n-1)/count + 1

	return strings.Repeat(string(mark), int(repeat))
}
