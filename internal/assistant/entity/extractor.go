package entity

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/oreana/assistant-server/internal/assistant/model"
)

var (
	emailRE = regexp.MustCompile(`\S+@\S+`)
	phoneRE = regexp.MustCompile(`\b\d{10}\b`)
)

// namePatterns is the ordered cascade tried against the lower-cased input.
// The first matching pattern wins; keeping the list as data lets patterns be
// tested and reordered independently. The trailing "hello" pattern is a very
// loose fallback inherited from the product behaviour: it can capture
// non-name trailing tokens, which is accepted rather than tightened.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`my name is (\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`i am (\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`call me (\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`i'm (\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`name:\s*(\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`this is (\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`hello.*?(\w+(?:\s+\w+)*?)(?:\s|$)`),
}

// nameStopWords rejects captures that are filler words rather than names.
var nameStopWords = map[string]struct{}{
	"the":   {},
	"a":     {},
	"an":    {},
	"this":  {},
	"that":  {},
	"here":  {},
	"there": {},
}

// Extract pulls name, email and phone out of free text. It is a pure
// function: no state, no side effects, absent fields stay nil.
func Extract(text string) model.EntityRecord {
	var rec model.EntityRecord

	if m := emailRE.FindString(text); m != "" {
		rec.Email = &m
	}
	if m := phoneRE.FindString(text); m != "" {
		rec.Phone = &m
	}
	if name := extractName(text); name != "" {
		rec.Name = &name
	}

	return rec
}

// extractName runs the pattern cascade over the lower-cased text and returns
// the first accepted capture, title-cased, or "" when nothing matched.
func extractName(text string) string {
	lowered := strings.ToLower(text)
	for _, re := range namePatterns {
		m := re.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if _, stop := nameStopWords[strings.ToLower(candidate)]; stop {
			continue
		}
		return titleCase(candidate)
	}
	return ""
}

// titleCase upper-cases the first letter of every whitespace-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
