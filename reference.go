package iconcss

import (
	"regexp"
	"strings"
)

// Reference names one icon inside one collection.
type Reference struct {
	Collection string
	Icon       string
}

// String returns the reference in "collection:icon" form.
func (r Reference) String() string {
	return r.Collection + ":" + r.Icon
}

// ParseReference builds a Reference from already split segments.
// Returns false if either segment is empty.
func ParseReference(collection, icon string) (Reference, bool) {
	if collection == "" || icon == "" {
		return Reference{}, false
	}
	return Reference{Collection: collection, Icon: icon}, true
}

// ParseClass splits a class name such as "i-mdi-home" into a Reference.
// After the prefix, the collection is a run of word characters
// ([0-9A-Za-z_]) ending at the first "-"; the icon id is the non-empty rest,
// without newlines. This is the same match as Pattern.
func ParseClass(class, prefix string) (Reference, bool) {
	rest, ok := strings.CutPrefix(class, prefix)
	if !ok {
		return Reference{}, false
	}
	collection, icon, ok := strings.Cut(rest, "-")
	if !ok || !isWord(collection) || strings.ContainsRune(icon, '\n') {
		return Reference{}, false
	}
	return ParseReference(collection, icon)
}

// Pattern returns the regular expression hosts can use to match class names
// for prefix. Group 1 is the collection, group 2 the icon id.
func Pattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\w+)-(.+)$`)
}

// isWord reports whether s is non-empty and only holds [0-9A-Za-z_].
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}
