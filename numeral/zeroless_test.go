package numeral_test

import (
	"testing"

	"github.com/katalvlaran/numbering/numeral"
	"github.com/stretchr/testify/assert"
)

// TestZeroless_LatinColumns verifies the spreadsheet-column scheme at
// its carry boundaries.
func TestZeroless_LatinColumns(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{1, "a"},
		{2, "b"},
		{26, "z"},
		{27, "aa"},
		{28, "ab"},
		{52, "az"},
		{53, "ba"},
		{702, "zz"},
		{703, "aaa"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeral.LowerLatin.Apply(tc.n), "LowerLatin(%d)", tc.n)
	}
	assert.Equal(t, "AA", numeral.UpperLatin.Apply(27))
	assert.Equal(t, "-", numeral.LowerLatin.Apply(0))
}

// TestZeroless_SmallAlphabets verifies wrap-around in the 14-symbol
// Korean and 10-symbol double-circled systems.
func TestZeroless_SmallAlphabets(t *testing.T) {
	assert.Equal(t, "ㄱ", numeral.KoreanJamo.Apply(1))
	assert.Equal(t, "ㅎ", numeral.KoreanJamo.Apply(14))
	assert.Equal(t, "ㄱㄱ", numeral.KoreanJamo.Apply(15))
	assert.Equal(t, "가", numeral.KoreanSyllable.Apply(1))
	assert.Equal(t, "하", numeral.KoreanSyllable.Apply(14))

	assert.Equal(t, "⓵", numeral.DoubleCircledNumber.Apply(1))
	assert.Equal(t, "⓾", numeral.DoubleCircledNumber.Apply(10))
	assert.Equal(t, "⓵⓵", numeral.DoubleCircledNumber.Apply(11))

	assert.Equal(t, "①", numeral.CircledNumber.Apply(1))
	assert.Equal(t, "㊿", numeral.CircledNumber.Apply(50))
	assert.Equal(t, "①①", numeral.CircledNumber.Apply(51))
}

// TestZeroless_Kana verifies the first symbols of both orderings.
func TestZeroless_Kana(t *testing.T) {
	assert.Equal(t, "あ", numeral.HiraganaAiueo.Apply(1))
	assert.Equal(t, "い", numeral.HiraganaIroha.Apply(1))
	assert.Equal(t, "ア", numeral.KatakanaAiueo.Apply(1))
	assert.Equal(t, "イ", numeral.KatakanaIroha.Apply(1))
	// ん closes gojūon (46 symbols); す closes iroha (47 symbols).
	assert.Equal(t, "ん", numeral.HiraganaAiueo.Apply(46))
	assert.Equal(t, "ああ", numeral.HiraganaAiueo.Apply(47))
	assert.Equal(t, "す", numeral.HiraganaIroha.Apply(47))
}

// TestDecimal_Digits verifies the positional systems over their
// contiguous codepoint runs.
func TestDecimal_Digits(t *testing.T) {
	assert.Equal(t, "٠", numeral.EasternArabic.Apply(0))
	assert.Equal(t, "١٩٩٠", numeral.EasternArabic.Apply(1990))
	assert.Equal(t, "۴۲", numeral.EasternArabicPersian.Apply(42))
	assert.Equal(t, "२०२४", numeral.DevanagariNumber.Apply(2024))
	assert.Equal(t, "৭", numeral.BengaliNumber.Apply(7))
	assert.Equal(t, "১০০", numeral.BengaliNumber.Apply(100))
}

// TestBengaliLetter verifies the 32-consonant alphabetic counting.
func TestBengaliLetter(t *testing.T) {
	assert.Equal(t, "ক", numeral.BengaliLetter.Apply(1))
	assert.Equal(t, "হ", numeral.BengaliLetter.Apply(32))
	assert.Equal(t, "কক", numeral.BengaliLetter.Apply(33))
	assert.Equal(t, "কখ", numeral.BengaliLetter.Apply(34))
}

// TestSymbol_Marks verifies the six-mark cycle with repetition for
// further items.
func TestSymbol_Marks(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{0, "-"},
		{1, "*"},
		{2, "†"},
		{3, "‡"},
		{4, "§"},
		{5, "¶"},
		{6, "‖"},
		{7, "**"},
		{8, "††"},
		{12, "‖‖"},
		{13, "***"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeral.Symbol.Apply(tc.n), "Symbol(%d)", tc.n)
	}
}
