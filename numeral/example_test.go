package numeral_test

import (
	"fmt"

	"github.com/katalvlaran/numbering/numeral"
)

// ExampleKind_Apply renders the same counter value across several
// writing systems.
func ExampleKind_Apply() {
	for _, k := range []numeral.Kind{
		numeral.Arabic,
		numeral.LowerLatin,
		numeral.UpperRoman,
		numeral.LowerGreek,
		numeral.Hebrew,
		numeral.Symbol,
		numeral.CircledNumber,
	} {
		fmt.Printf("%s: %s\n", k, k.Apply(7))
	}
	// Output:
	// Arabic: 7
	// LowerLatin: g
	// UpperRoman: VII
	// LowerGreek: ζʹ
	// Hebrew: ז׳
	// Symbol: **
	// CircledNumber: ⑦
}

// ExampleKindFromRune resolves counting symbols from pattern syntax.
func ExampleKindFromRune() {
	k, ok := numeral.KindFromRune('i')
	fmt.Println(k, ok)
	_, ok = numeral.KindFromRune('#')
	fmt.Println(ok)
	// Output:
	// LowerRoman true
	// false
}
