package numeral

import "strings"

// chineseVariant distinguishes the Simplified and Traditional scripts.
// The standard (lowercase) digits are shared; the "banknote"
// (uppercase) digits and the group units 万/萬 and 亿/億 differ.
type chineseVariant int

const (
	simplifiedChinese chineseVariant = iota
	traditionalChinese
)

// Chinese numeral data (ten-thousand scale).
var (
	// chineseLowerDigits are the standard digits, shared by both
	// variants.
	chineseLowerDigits = []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

	// chineseUpperDigits are the fraud-resistant "banknote" digits,
	// indexed by variant.
	chineseUpperDigits = [2][]string{
		{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"},
		{"零", "壹", "貳", "參", "肆", "伍", "陸", "柒", "捌", "玖"},
	}

	// chineseSmallUnits are ten, hundred and thousand within a
	// four-digit group, indexed by letterCase.
	chineseSmallUnits = [2][3]string{
		{"十", "百", "千"},
		{"拾", "佰", "仟"},
	}

	// chineseGroupUnits name successive powers of 10000, indexed by
	// variant. 京 (10^16) covers the full uint64 range.
	chineseGroupUnits = [2][4]string{
		{"万", "亿", "兆", "京"},
		{"萬", "億", "兆", "京"},
	}
)

// chineseNumeral stringifies n in the ten-thousand scale: base-10000
// groups joined with 万/亿/兆/京, one 零 marking any interior run of
// zeros. The standard case elides the leading 一 of 10..19 (十一, not
// 一十一); the banknote case always spells the digit (壹拾壹).
func chineseNumeral(v chineseVariant, c letterCase, n uint64) string {
	digits := chineseLowerDigits
	if c == uppercase {
		digits = chineseUpperDigits[v]
	}
	if n == 0 {
		return digits[0]
	}

	// Base-10000 groups, most significant first.
	var groups []uint64
	for x := n; x > 0; x /= 10000 {
		groups = append(groups, x%10000)
	}
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}

	var b strings.Builder
	wrote := false
	skipped := false
	for i, g := range groups {
		unit := len(groups) - 1 - i
		if g == 0 {
			skipped = wrote

			continue
		}
		// A skipped group or leading zeros inside this group collapse
		// to a single 零.
		if wrote && (skipped || g < 1000) {
			b.WriteString(digits[0])
		}
		writeChineseGroup(&b, g, digits, chineseSmallUnits[c], !wrote && c == lowercase)
		if unit > 0 {
			b.WriteString(chineseGroupUnits[v][unit-1])
		}
		wrote = true
		skipped = false
	}

	return b.String()
}

// writeChineseGroup renders one group of up to four digits as
// digit+unit pairs, collapsing interior zeros to a single 零. elideTen
// drops the 一 of a group that starts the numeral with 10..19.
func writeChineseGroup(b *strings.Builder, g uint64, digits []string, units [3]string, elideTen bool) {
	wrote := false
	zero := false
	emit := func(d uint64, unit int) {
		if d == 0 {
			zero = zero || wrote

			return
		}
		if zero {
			b.WriteString(digits[0])
			zero = false
		}
		if !(unit == 0 && d == 1 && elideTen && !wrote) {
			b.WriteString(digits[d])
		}
		if unit >= 0 {
			b.WriteString(units[unit])
		}
		wrote = true
	}
	emit(g/1000, 2)
	emit(g/100%10, 1)
	emit(g/10%10, 0)
	emit(g%10, -1)
}
