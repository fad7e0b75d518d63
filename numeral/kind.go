package numeral

import "strconv"

// Kind identifies one numeral system.
//
// The set of kinds is closed. Each kind has exactly one representative
// character used in pattern syntax, and the Rune/KindFromRune mappings
// are exact inverses — except for the two Traditional Chinese kinds,
// which share their representative character with the Simplified ones
// and therefore can never be produced by KindFromRune, only constructed
// directly.
type Kind uint8

const (
	// Arabic numerals (1, 2, 3, …).
	Arabic Kind = iota

	// LowerLatin letters (a, b, c, …). Items beyond z use bijective base-26.
	LowerLatin

	// UpperLatin letters (A, B, C, …). Items beyond Z use bijective base-26.
	UpperLatin

	// LowerRoman numerals (i, ii, iii, …).
	LowerRoman

	// UpperRoman numerals (I, II, III, …).
	UpperRoman

	// LowerGreek letters (α, β, γ, …).
	LowerGreek

	// UpperGreek letters (Α, Β, Γ, …).
	UpperGreek

	// Symbol marks: *, †, ‡, §, ¶, ‖. Further items use repeated symbols.
	Symbol

	// Hebrew numerals, including geresh/gershayim punctuation.
	Hebrew

	// LowerSimplifiedChinese standard numerals (一, 二, 三, …).
	LowerSimplifiedChinese

	// UpperSimplifiedChinese "banknote" numerals (壹, 贰, 叁, …).
	UpperSimplifiedChinese

	// LowerTraditionalChinese standard numerals. Shares its
	// representative character with LowerSimplifiedChinese, so it is
	// unreachable from pattern syntax (known limitation: the script
	// cannot be told apart from the first character alone).
	LowerTraditionalChinese

	// UpperTraditionalChinese "banknote" numerals. Unreachable from
	// pattern syntax for the same reason as LowerTraditionalChinese.
	UpperTraditionalChinese

	// HiraganaAiueo in gojūon order. Includes n but excludes wi and we.
	HiraganaAiueo

	// HiraganaIroha in iroha order. Includes wi and we but excludes n.
	HiraganaIroha

	// KatakanaAiueo in gojūon order. Includes n but excludes wi and we.
	KatakanaAiueo

	// KatakanaIroha in iroha order. Includes wi and we but excludes n.
	KatakanaIroha

	// KoreanJamo consonants (ㄱ, ㄴ, ㄷ, …).
	KoreanJamo

	// KoreanSyllable blocks (가, 나, 다, …).
	KoreanSyllable

	// EasternArabic numerals, used in some Arabic-speaking countries.
	EasternArabic

	// EasternArabicPersian is the variant used in Persian and Urdu.
	EasternArabicPersian

	// DevanagariNumber digits.
	DevanagariNumber

	// BengaliNumber digits.
	BengaliNumber

	// BengaliLetter letters (ক, খ, গ, … then কক, কখ, …).
	BengaliLetter

	// CircledNumber glyphs (①, ②, ③, …), up to ㊿ before repeating
	// bijectively.
	CircledNumber

	// DoubleCircledNumber glyphs (⓵, ⓶, ⓷, …), up to ⓾.
	DoubleCircledNumber
)

// KindFromRune resolves a representative character to its Kind.
// The second result reports whether r is a counting symbol at all.
func KindFromRune(r rune) (Kind, bool) {
	switch r {
	case '1':
		return Arabic, true
	case 'a':
		return LowerLatin, true
	case 'A':
		return UpperLatin, true
	case 'i':
		return LowerRoman, true
	case 'I':
		return UpperRoman, true
	case 'α':
		return LowerGreek, true
	case 'Α':
		return UpperGreek, true
	case '*':
		return Symbol, true
	case 'א':
		return Hebrew, true
	case '一':
		return LowerSimplifiedChinese, true
	case '壹':
		return UpperSimplifiedChinese, true
	case 'あ':
		return HiraganaAiueo, true
	case 'い':
		return HiraganaIroha, true
	case 'ア':
		return KatakanaAiueo, true
	case 'イ':
		return KatakanaIroha, true
	case 'ㄱ':
		return KoreanJamo, true
	case '가':
		return KoreanSyllable, true
	case '١':
		return EasternArabic, true
	case '۱':
		return EasternArabicPersian, true
	case '१':
		return DevanagariNumber, true
	case '১':
		return BengaliNumber, true
	case 'ক':
		return BengaliLetter, true
	case '①':
		return CircledNumber, true
	case '⓵':
		return DoubleCircledNumber, true
	}

	return 0, false
}

// Rune returns the representative character for k.
func (k Kind) Rune() rune {
	switch k {
	case Arabic:
		return '1'
	case LowerLatin:
		return 'a'
	case UpperLatin:
		return 'A'
	case LowerRoman:
		return 'i'
	case UpperRoman:
		return 'I'
	case LowerGreek:
		return 'α'
	case UpperGreek:
		return 'Α'
	case Symbol:
		return '*'
	case Hebrew:
		return 'א'
	case LowerSimplifiedChinese, LowerTraditionalChinese:
		return '一'
	case UpperSimplifiedChinese, UpperTraditionalChinese:
		return '壹'
	case HiraganaAiueo:
		return 'あ'
	case HiraganaIroha:
		return 'い'
	case KatakanaAiueo:
		return 'ア'
	case KatakanaIroha:
		return 'イ'
	case KoreanJamo:
		return 'ㄱ'
	case KoreanSyllable:
		return '가'
	case EasternArabic:
		return '١'
	case EasternArabicPersian:
		return '۱'
	case DevanagariNumber:
		return '१'
	case BengaliNumber:
		return '১'
	case BengaliLetter:
		return 'ক'
	case CircledNumber:
		return '①'
	case DoubleCircledNumber:
		return '⓵'
	}

	return 0
}

// Apply converts n to a numeral of kind k.
// Total over all uint64 values; every kind defines its own zero form
// ("-" for zeroless and symbolic systems, the zero digit for positional
// ones, "n"/"N" for Roman, the Greek zero sign, 零 for Chinese).
func (k Kind) Apply(n uint64) string {
	switch k {
	case Arabic:
		return strconv.FormatUint(n, 10)
	case LowerLatin:
		return zeroless(lowerLatin, n)
	case UpperLatin:
		return zeroless(upperLatin, n)
	case LowerRoman:
		return romanNumeral(n, lowercase)
	case UpperRoman:
		return romanNumeral(n, uppercase)
	case LowerGreek:
		return greekNumeral(n, lowercase)
	case UpperGreek:
		return greekNumeral(n, uppercase)
	case Symbol:
		return symbolNumeral(n)
	case Hebrew:
		return hebrewNumeral(n)
	case LowerSimplifiedChinese:
		return chineseNumeral(simplifiedChinese, lowercase, n)
	case UpperSimplifiedChinese:
		return chineseNumeral(simplifiedChinese, uppercase, n)
	case LowerTraditionalChinese:
		return chineseNumeral(traditionalChinese, lowercase, n)
	case UpperTraditionalChinese:
		return chineseNumeral(traditionalChinese, uppercase, n)
	case HiraganaAiueo:
		return zeroless(hiraganaAiueo, n)
	case HiraganaIroha:
		return zeroless(hiraganaIroha, n)
	case KatakanaAiueo:
		return zeroless(katakanaAiueo, n)
	case KatakanaIroha:
		return zeroless(katakanaIroha, n)
	case KoreanJamo:
		return zeroless(koreanJamo, n)
	case KoreanSyllable:
		return zeroless(koreanSyllable, n)
	case EasternArabic:
		return decimal('٠', n)
	case EasternArabicPersian:
		return decimal('۰', n)
	case DevanagariNumber:
		return decimal('०', n)
	case BengaliNumber:
		return decimal('০', n)
	case BengaliLetter:
		return zeroless(bengaliLetters, n)
	case CircledNumber:
		return zeroless(circledNumbers, n)
	case DoubleCircledNumber:
		return zeroless(doubleCircledNumbers, n)
	}

	return ""
}

// String returns a debug name for k.
func (k Kind) String() string {
	switch k {
	case Arabic:
		return "Arabic"
	case LowerLatin:
		return "LowerLatin"
	case UpperLatin:
		return "UpperLatin"
	case LowerRoman:
		return "LowerRoman"
	case UpperRoman:
		return "UpperRoman"
	case LowerGreek:
		return "LowerGreek"
	case UpperGreek:
		return "UpperGreek"
	case Symbol:
		return "Symbol"
	case Hebrew:
		return "Hebrew"
	case LowerSimplifiedChinese:
		return "LowerSimplifiedChinese"
	case UpperSimplifiedChinese:
		return "UpperSimplifiedChinese"
	case LowerTraditionalChinese:
		return "LowerTraditionalChinese"
	case UpperTraditionalChinese:
		return "UpperTraditionalChinese"
	case HiraganaAiueo:
		return "HiraganaAiueo"
	case HiraganaIroha:
		return "HiraganaIroha"
	case KatakanaAiueo:
		return "KatakanaAiueo"
	case KatakanaIroha:
		return "KatakanaIroha"
	case KoreanJamo:
		return "KoreanJamo"
	case KoreanSyllable:
		return "KoreanSyllable"
	case EasternArabic:
		return "EasternArabic"
	case EasternArabicPersian:
		return "EasternArabicPersian"
	case DevanagariNumber:
		return "DevanagariNumber"
	case BengaliNumber:
		return "BengaliNumber"
	case BengaliLetter:
		return "BengaliLetter"
	case CircledNumber:
		return "CircledNumber"
	case DoubleCircledNumber:
		return "DoubleCircledNumber"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// letterCase selects between the lower- and uppercase renditions of a
// bicameral numeral system (Roman, Greek) or between the standard and
// "banknote" digit sets (Chinese).
type letterCase int

const (
	lowercase letterCase = iota
	uppercase
)
