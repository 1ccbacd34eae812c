package moderation

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yml
var defaultLexiconData []byte

var defaultLexicon = mustLexicon(defaultLexiconData)

// Form is a representation of a message a term is scanned against
type Form string

// enum of scan forms
const (
	FormNormalized Form = "normalized" // lower-cased, no punctuation
	FormLower      Form = "lower"      // lower-cased, punctuation kept
	FormRaw        Form = "raw"        // case-sensitive
)

// Lexicon is the static data used by the rule scorer.
type Lexicon struct {
	Severe      []string    `yaml:"severe"`
	Explicit    []TermGroup `yaml:"explicit"`
	Patterns    []Pattern   `yaml:"patterns"`
	Punctuation struct {
		Chars string `yaml:"chars"`
		Limit int    `yaml:"limit"`
	} `yaml:"punctuation"`

	severe []term
}

// TermGroup is a per-language list of explicit terms with the forms they are scanned in.
type TermGroup struct {
	Language string   `yaml:"language"`
	Scan     []Form   `yaml:"scan"`
	Terms    []string `yaml:"terms"`

	terms []term
}

// Pattern is either a regular expression or a repeated-character run of the given length.
type Pattern struct {
	Name   string `yaml:"name"`
	Regex  string `yaml:"regex"`
	Repeat int    `yaml:"repeat"`

	re *regexp.Regexp
}

// term keeps the original spelling and the prepared spelling for each scan form
type term struct {
	orig  string
	forms map[Form]string
}

// DefaultLexicon returns the built-in lexicon
func DefaultLexicon() *Lexicon { return defaultLexicon }

// LoadLexicon parses and validates a lexicon in yaml format
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	var lex Lexicon
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lex); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty lexicon")
		}
		return nil, fmt.Errorf("can't decode lexicon: %w", err)
	}
	if err := lex.prepare(); err != nil {
		return nil, fmt.Errorf("invalid lexicon: %w", err)
	}
	return &lex, nil
}

// Size returns the total number of terms and patterns
func (l *Lexicon) Size() int {
	res := len(l.severe) + len(l.Patterns)
	for _, g := range l.Explicit {
		res += len(g.terms)
	}
	return res
}

func (l *Lexicon) prepare() error {
	if len(l.Severe) == 0 && len(l.Explicit) == 0 && len(l.Patterns) == 0 {
		return fmt.Errorf("no terms or patterns")
	}
	if l.Punctuation.Limit < 0 {
		return fmt.Errorf("negative punctuation limit %d", l.Punctuation.Limit)
	}

	var err error
	if l.severe, err = prepareTerms(l.Severe, []Form{FormNormalized, FormLower}); err != nil {
		return fmt.Errorf("severe terms: %w", err)
	}

	for i := range l.Explicit {
		g := &l.Explicit[i]
		if len(g.Scan) == 0 {
			return fmt.Errorf("group %q: no scan forms", g.Language)
		}
		if g.terms, err = prepareTerms(g.Terms, g.Scan); err != nil {
			return fmt.Errorf("group %q: %w", g.Language, err)
		}
	}

	for i := range l.Patterns {
		p := &l.Patterns[i]
		switch {
		case p.Regex != "" && p.Repeat != 0:
			return fmt.Errorf("pattern %q: regex and repeat are exclusive", p.Name)
		case p.Regex != "":
			if p.re, err = regexp.Compile(p.Regex); err != nil {
				return fmt.Errorf("pattern %q: %w", p.Name, err)
			}
		case p.Repeat < 2:
			return fmt.Errorf("pattern %q: repeat must be at least 2, got %d", p.Name, p.Repeat)
		}
	}
	return nil
}

func prepareTerms(src []string, forms []Form) ([]term, error) {
	res := make([]term, 0, len(src))
	for _, s := range src {
		t := term{orig: strings.TrimSpace(s), forms: make(map[Form]string, len(forms))}
		if t.orig == "" {
			return nil, fmt.Errorf("empty term")
		}
		for _, f := range forms {
			var prepared string
			switch f {
			case FormNormalized:
				prepared = Normalize(t.orig)
			case FormLower:
				prepared = compact(fold(t.orig))
			case FormRaw:
				prepared = compact(t.orig)
			default:
				return nil, fmt.Errorf("unknown scan form %q", f)
			}
			if prepared != "" {
				t.forms[f] = prepared
			}
		}
		res = append(res, t)
	}
	return res, nil
}

// match checks the term against the text in every form it has a spelling for
func (t term) match(texts map[Form]string) bool {
	for f, spelling := range t.forms {
		if containsTerm(texts[f], spelling) {
			return true
		}
	}
	return false
}

// match reports whether the pattern hits the text
func (p Pattern) match(text string) bool {
	if p.re != nil {
		return p.re.MatchString(text)
	}
	return hasRepeatedRun(text, p.Repeat)
}

// containsTerm reports whether term occurs in text as a whole word or phrase
func containsTerm(text, term string) bool {
	if term == "" || len(term) > len(text) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)
	for from := 0; from <= len(text)-len(term); {
		idx := strings.Index(text[from:], term)
		if idx < 0 {
			return false
		}
		start, end := from+idx, from+idx+len(term)
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		leftOK := start == 0 || !isWordRune(first) || !isWordRune(before)
		rightOK := end == len(text) || !isWordRune(last) || !isWordRune(after)
		if leftOK && rightOK {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return false
}

// hasRepeatedRun reports whether text has a non-space rune repeated n or more times in a row
func hasRepeatedRun(text string, n int) bool {
	var prev rune
	count := 0
	for _, r := range text {
		if r == prev && r != ' ' && r != '\n' && r != '\t' {
			count++
		} else {
			prev, count = r, 1
		}
		if count >= n {
			return true
		}
	}
	return false
}

func mustLexicon(data []byte) *Lexicon {
	lex, err := LoadLexicon(strings.NewReader(string(data)))
	if err != nil {
		panic(fmt.Sprintf("built-in lexicon is broken: %v", err))
	}
	return lex
}
