package pattern

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/numbering/numeral"
)

// ErrInvalidPattern is returned when a pattern contains no counting
// symbol, or when constructing a pattern with no pieces.
var ErrInvalidPattern = errors.New("pattern: invalid numbering pattern")

// Piece is one counter level: the literal text emitted before it and
// the numeral system that renders its number.
type Piece struct {
	Prefix string
	Kind   numeral.Kind
}

// Pattern is a compiled numbering pattern: an ordered, non-empty list
// of pieces followed by a suffix.
//
// Pattern is an immutable value; all methods are safe for
// unsynchronized concurrent use, and Trimmed returns a new value
// rather than mutating the receiver.
type Pattern struct {
	pieces  []Piece
	suffix  string
	trimmed bool
}

// Parse compiles text into a Pattern.
//
// The text is scanned rune by rune; every rune that is a counting
// symbol closes a piece whose prefix is the text accumulated since the
// previous symbol. Whatever follows the last counting symbol becomes
// the suffix. Parse fails with ErrInvalidPattern iff no counting
// symbol occurs anywhere in text.
func Parse(text string) (Pattern, error) {
	var pieces []Piece
	handled := 0
	for i, r := range text {
		kind, ok := numeral.KindFromRune(r)
		if !ok {
			continue
		}
		pieces = append(pieces, Piece{Prefix: text[handled:i], Kind: kind})
		handled = i + utf8.RuneLen(r)
	}
	if len(pieces) == 0 {
		return Pattern{}, fmt.Errorf("%w: no counting symbol in %q", ErrInvalidPattern, text)
	}

	return Pattern{pieces: pieces, suffix: text[handled:]}, nil
}

// New builds a Pattern directly from structured pieces. This is the
// only way to obtain a pattern with the Traditional Chinese kinds,
// whose representative characters parse as the Simplified ones.
// Fails with ErrInvalidPattern when pieces is empty.
func New(pieces []Piece, suffix string) (Pattern, error) {
	if len(pieces) == 0 {
		return Pattern{}, fmt.Errorf("%w: no pieces", ErrInvalidPattern)
	}
	own := make([]Piece, len(pieces))
	copy(own, pieces)

	return Pattern{pieces: own, suffix: suffix}, nil
}

// MustParse is Parse for compile-time-constant patterns; it panics on
// error.
func MustParse(text string) Pattern {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return p
}

// String serializes the pattern back to its syntax: every prefix
// followed by its kind's representative character, then the suffix.
// Exact inverse of Parse for all parseable kinds.
func (p Pattern) String() string {
	var b strings.Builder
	for _, pc := range p.pieces {
		b.WriteString(pc.Prefix)
		b.WriteRune(pc.Kind.Rune())
	}
	b.WriteString(p.suffix)

	return b.String()
}

// Trimmed returns a copy of p that omits the first piece's prefix and
// the suffix when applied. Used when a nesting context supplies its
// own surrounding text.
func (p Pattern) Trimmed() Pattern {
	p.trimmed = true

	return p
}

// IsTrimmed reports whether p was derived via Trimmed.
func (p Pattern) IsTrimmed() bool { return p.trimmed }

// Len returns the number of counting symbols the pattern declares.
func (p Pattern) Len() int { return len(p.pieces) }

// Pieces returns a copy of the pattern's pieces.
func (p Pattern) Pieces() []Piece {
	out := make([]Piece, len(p.pieces))
	copy(out, p.pieces)

	return out
}

// Suffix returns the literal text emitted after all pieces.
func (p Pattern) Suffix() string { return p.suffix }
