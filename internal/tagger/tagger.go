// Package tagger assigns categories to transaction descriptions using
// literal substring rules. Rule order is significant: the first match wins.
// No fuzzy matching; a description no rule covers stays uncategorized.
package tagger

import "strings"

// Rule maps a literal description substring to a category.
type Rule struct {
	Match    string
	Category string
}

// Tagger applies an ordered rule list, case-insensitively.
type Tagger struct {
	rules []Rule
}

func New(rules []Rule) *Tagger {
	t := &Tagger{rules: make([]Rule, len(rules))}
	for i, r := range rules {
		t.rules[i] = Rule{Match: strings.ToLower(r.Match), Category: r.Category}
	}
	return t
}

// Category returns the category of the first matching rule, or "".
func (t *Tagger) Category(description string) string {
	lower := strings.ToLower(description)
	for _, r := range t.rules {
		if r.Match != "" && strings.Contains(lower, r.Match) {
			return r.Category
		}
	}
	return ""
}

// Categories maps each description through Category.
func (t *Tagger) Categories(descriptions []string) []string {
	out := make([]string, len(descriptions))
	for i, d := range descriptions {
		out[i] = t.Category(d)
	}
	return out
}
