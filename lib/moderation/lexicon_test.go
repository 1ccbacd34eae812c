package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()
	require.NotNil(t, lex)
	assert.Len(t, lex.severe, 13)
	require.Len(t, lex.Explicit, 3)
	assert.Equal(t, "english", lex.Explicit[0].Language)
	assert.Equal(t, []Form{FormRaw}, lex.Explicit[2].Scan)
	assert.Len(t, lex.Patterns, 4)
	assert.Equal(t, 3, lex.Punctuation.Limit)
	assert.Equal(t, 13+42+24+12+4, lex.Size())
}

func TestLoadLexicon(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		lex, err := LoadLexicon(strings.NewReader(`
severe: [forbidden]
explicit:
  - language: test
    scan: [raw]
    terms: [Promo]
patterns:
  - name: digits
    regex: '\d{6,}'
punctuation: {chars: "!", limit: 1}
`))
		require.NoError(t, err)
		assert.Equal(t, 3, lex.Size())
		assert.Equal(t, "!", lex.Punctuation.Chars)
		assert.Equal(t, map[Form]string{FormNormalized: "forbidden", FormLower: "forbidden"}, lex.severe[0].forms)
		assert.Equal(t, map[Form]string{FormRaw: "Promo"}, lex.Explicit[0].terms[0].forms)
	})

	tests := []struct {
		name string
		data string
		err  string
	}{
		{"empty", "", "empty lexicon"},
		{"not yaml", "severe: [broken", "can't decode lexicon"},
		{"unknown field", "severe: [a]\nextra: 1", "can't decode lexicon"},
		{"nothing to match", "punctuation: {chars: '!', limit: 3}", "no terms or patterns"},
		{"negative limit", "severe: [a]\npunctuation: {chars: '!', limit: -1}", "negative punctuation limit"},
		{"empty term", "severe: ['  ']", "empty term"},
		{"no scan forms", "explicit: [{language: x, terms: [a]}]", "no scan forms"},
		{"unknown form", "explicit: [{language: x, scan: [upper], terms: [a]}]", "unknown scan form"},
		{"bad regex", "patterns: [{name: p, regex: '(unclosed'}]", `pattern "p"`},
		{"regex and repeat", "patterns: [{name: p, regex: 'a', repeat: 3}]", "exclusive"},
		{"short repeat", "patterns: [{name: p, repeat: 1}]", "repeat must be at least 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLexicon(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestContainsTerm(t *testing.T) {
	tests := []struct {
		text, term string
		expected   bool
	}{
		{"hot deal", "hot", true},
		{"photographer", "hot", false},
		{"a shot of", "hot", false},
		{"it is hot", "hot", true},
		{"hot!", "hot", true},
		{"photo hot", "hot", true},
		{"kidney kid", "kid", true},
		{"kidney", "kid", false},
		{"just kidding", "kid", false},
		{"a kid, kidding", "kid", true},
		{"minors", "minor", false},
		{"sex chat now", "sex chat", true},
		{"sex chatting", "sex chat", false},
		{"dm me", "dm me", true},
		{"pay ₹500", "₹", true},
		{"", "hot", false},
		{"hot", "", false},
		{"भाभी से मिलो", "भाभी", true},
		{"भाभीजी", "भाभी", false},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.term, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsTerm(tt.text, tt.term))
		})
	}
}

func TestHasRepeatedRun(t *testing.T) {
	tests := []struct {
		text     string
		n        int
		expected bool
	}{
		{"heyyyyy", 5, true},
		{"heyyyy", 5, false},
		{"!!!!!", 5, true},
		{"aaaa aaaa", 5, false},
		{"a     b", 5, false},
		{"ааааа", 5, true},
		{"", 5, false},
		{"ab", 2, false},
		{"abb", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasRepeatedRun(tt.text, tt.n))
		})
	}
}
