package inject

import "regexp"

// placeholderPattern matches one placeholder occurrence. The tag accepts
// lowercase letters and digits; the key is any run of non-'%' characters.
// Matching is greedy, leftmost, non-overlapping, so an unterminated token
// (missing closing '%') is simply not matched.
var placeholderPattern = regexp.MustCompile(`%([a-z0-9]+):([^%]+)%`)

// Placeholder is one distinct %tag:key% token found in a template.
type Placeholder struct {
	// Text is the full literal token, including the surrounding '%'.
	// It is the anchor for the final substitution pass.
	Text string

	// Tag names the value source ("env", "awsssm", or a custom tag).
	Tag string

	// Key is passed verbatim to the source's loader.
	Key string
}

// Placeholders scans a template left to right and returns its distinct
// placeholders in first-occurrence order.
//
// Occurrences are deduplicated by full literal text, case-sensitively:
// %env:NAME% appearing three times is one placeholder, while %env:Name%
// and %env:NAME% are two. A template with no placeholders yields an empty
// slice.
func Placeholders(template string) []Placeholder {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)

	seen := make(map[string]bool, len(matches))
	found := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		if seen[m[0]] {
			continue
		}
		seen[m[0]] = true
		found = append(found, Placeholder{Text: m[0], Tag: m[1], Key: m[2]})
	}
	return found
}
