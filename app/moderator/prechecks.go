package moderator

import "regexp"

var (
	reURL     = regexp.MustCompile(`https?://\S+|(?i)\bwww\.[a-z0-9-]+\.[a-z]{2,}`)
	reDomain  = regexp.MustCompile(`(?i)\b[a-z0-9-]+\.(?:com|org|net|in|co|io|xyz|info|biz|me|tv|app|online)\b`)
	reMention = regexp.MustCompile(`@[a-zA-Z0-9_]{5,}`)
)

// containsURL reports whether text has a link ("url_link") or a bare domain name ("domain_name")
func containsURL(text string) (kind string, ok bool) {
	if reURL.MatchString(text) {
		return "url_link", true
	}
	if reDomain.MatchString(text) {
		return "domain_name", true
	}
	return "", false
}

// countMentions returns the number of @mentions, handles shorter than 5 characters are not counted
func countMentions(text string) int {
	return len(reMention.FindAllStringIndex(text, -1))
}
