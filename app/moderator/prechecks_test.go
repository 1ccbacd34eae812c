package moderator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsURL(t *testing.T) {
	tests := []struct {
		text     string
		wantKind string
		wantOk   bool
	}{
		{"go to https://example.com/path?x=1", "url_link", true},
		{"plain http://foo.bar", "url_link", true},
		{"WWW.Example.org is the place", "url_link", true},
		{"buy at cheap-stuff.online now", "domain_name", true},
		{"mail me at my.site.IO", "domain_name", true},
		{"nothing here", "", false},
		{"version 1.2 released", "", false},
		{"the company is fine", "", false},
		{"example.company", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			kind, ok := containsURL(tt.text)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestCountMentions(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"no mentions", 0},
		{"hi @bob", 0},
		{"hi @bobby", 1},
		{"@first_user and @second_user and @third", 3},
		{"@first_user and @second_user and @four", 2},
		{"@user_12345@other_one", 2},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, countMentions(tt.text))
		})
	}
}
