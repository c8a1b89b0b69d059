package filter

import (
	"regexp"
	"strings"
)

// NameMatcher tests an entry's base name against the name criterion.
// The two implementations are mutually exclusive: a Spec holds exactly one.
type NameMatcher interface {
	Match(name string) bool
	String() string
}

// NewNameMatcher builds a literal substring matcher, or a regular expression
// matcher when regex is true.
func NewNameMatcher(text string, regex bool) (NameMatcher, error) {
	if !regex {
		return literalMatcher{text: text}, nil
	}

	re, err := regexp.Compile(text)
	if err != nil {
		return nil, &PatternError{Pattern: text, Err: err}
	}
	return patternMatcher{re: re}, nil
}

// literalMatcher accepts names containing text (case-sensitive).
type literalMatcher struct {
	text string
}

func (m literalMatcher) Match(name string) bool {
	return strings.Contains(name, m.text)
}

func (m literalMatcher) String() string {
	return "literal " + m.text
}

// patternMatcher accepts names with a match anywhere, unanchored.
type patternMatcher struct {
	re *regexp.Regexp
}

func (m patternMatcher) Match(name string) bool {
	return m.re.MatchString(name)
}

func (m patternMatcher) String() string {
	return "pattern " + m.re.String()
}
