package moderation

import (
	"strings"
	"sync"
	"unicode"

	"github.com/forPelevin/gomoji"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// foldPool keeps transformer chains for reuse, a chain is stateful and can't be shared
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // zero-width joiners, bidi marks, BOM
			width.Fold,
			cases.Lower(language.Und),
		)
	},
}

// Normalize returns the canonical form of a message used for matching and classification.
// The result is lower-cased, has no punctuation, symbols or emoji, and has single spaces between words.
// Combining marks are kept so Devanagari and Tamil words stay intact.
func Normalize(s string) string {
	folded := fold(s)
	if folded == "" {
		return ""
	}
	folded = gomoji.RemoveEmojis(folded)

	var b strings.Builder
	b.Grow(len(folded))
	space := false
	for _, r := range folded {
		if !isWordRune(r) {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fold repairs utf-8 and applies compatibility normalization and lower-casing, punctuation is retained
func fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	tr := foldPool.Get().(transform.Transformer)
	res, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return res
}

// compact applies compatibility normalization without changing case and collapses whitespace.
// used for scanning terms which are case-sensitive.
func compact(s string) string {
	s = norm.NFKC.String(strings.ToValidUTF8(s, ""))
	return strings.Join(strings.Fields(s), " ")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// tokens splits the normalized text into words
func tokens(text string) []string {
	return strings.Fields(Normalize(text))
}
