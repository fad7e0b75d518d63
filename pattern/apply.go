package pattern

import "strings"

// Apply renders numbers through the pattern.
//
// Numbers pair with pieces positionally. When numbers outnumber
// pieces, the last piece's kind repeats for the surplus, separated by
// the last prefix — or by the suffix text when that prefix is empty.
// When pieces outnumber numbers, the trailing pieces are dropped.
// The suffix is appended once at the end. A trimmed pattern skips the
// first prefix and the suffix.
func (p Pattern) Apply(numbers ...uint64) string {
	var b strings.Builder

	paired := min(len(p.pieces), len(numbers))
	for i := 0; i < paired; i++ {
		if i > 0 || !p.trimmed {
			b.WriteString(p.pieces[i].Prefix)
		}
		b.WriteString(p.pieces[i].Kind.Apply(numbers[i]))
	}

	if len(p.pieces) > 0 {
		last := p.pieces[len(p.pieces)-1]
		for _, n := range numbers[paired:] {
			if last.Prefix == "" {
				b.WriteString(p.suffix)
			} else {
				b.WriteString(last.Prefix)
			}
			b.WriteString(last.Kind.Apply(n))
		}
	}

	if !p.trimmed {
		b.WriteString(p.suffix)
	}

	return b.String()
}

// ApplyKth renders a single counter level in isolation: the first
// piece's prefix, the kind at zero-based position k (clamped to the
// last piece, matching Apply's repeat rule), and the suffix. Prefix
// and suffix are emitted even on trimmed patterns.
func (p Pattern) ApplyKth(k int, number uint64) string {
	var b strings.Builder
	if len(p.pieces) > 0 {
		b.WriteString(p.pieces[0].Prefix)
		if k < 0 {
			k = 0
		}
		if k >= len(p.pieces) {
			k = len(p.pieces) - 1
		}
		b.WriteString(p.pieces[k].Kind.Apply(number))
	}
	b.WriteString(p.suffix)

	return b.String()
}
