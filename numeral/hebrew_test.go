package numeral_test

import (
	"testing"

	"github.com/katalvlaran/numbering/numeral"
	"github.com/stretchr/testify/assert"
)

// TestHebrew_Punctuation verifies geresh on single-letter numerals and
// gershayim before the final letter of longer ones.
func TestHebrew_Punctuation(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{1, "א׳"},
		{2, "ב׳"},
		{5, "ה׳"},
		{10, "י׳"},
		{11, "י״א"},
		{20, "כ׳"},
		{22, "כ״ב"},
		{100, "ק׳"},
		{123, "קכ״ג"},
		{400, "ת׳"},
		{769, "תשס״ט"},
		{800, "ת״ת"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeral.Hebrew.Apply(tc.n), "Hebrew(%d)", tc.n)
	}
}

// TestHebrew_SacredNameSubstitution verifies that 15 and 16 use the
// fixed ט-based sequences rather than spelling יה or יו, also when
// they occur as a remainder.
func TestHebrew_SacredNameSubstitution(t *testing.T) {
	assert.Equal(t, "ט״ו", numeral.Hebrew.Apply(15))
	assert.Equal(t, "ט״ז", numeral.Hebrew.Apply(16))
	assert.Equal(t, "קט״ו", numeral.Hebrew.Apply(115))
	assert.Equal(t, "תט״ז", numeral.Hebrew.Apply(416))
}

// TestHebrew_Zero verifies the placeholder dash.
func TestHebrew_Zero(t *testing.T) {
	assert.Equal(t, "-", numeral.Hebrew.Apply(0))
}
