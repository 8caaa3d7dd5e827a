// Package name handles Japanese staff-name decomposition and candidate
// extraction. Schedule documents print names as "surname given" with either a
// half-width or full-width space; the surname is 1-5 kanji and the given name
// 1-5 kanji, hiragana, or the long-vowel mark.
package name

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// namePattern must consume the entire string for a keyword to count as a
	// decomposable person name.
	namePattern = regexp.MustCompile(`^([\x{4E00}-\x{9FFF}]{1,5})[ 　]([\x{4E00}-\x{9FFF}\x{3040}-\x{309F}ー]{1,5})$`)

	// candidatePattern finds name-shaped substrings in free text.
	candidatePattern = regexp.MustCompile(`([\x{4E00}-\x{9FFF}]{1,5})[ 　]([\x{4E00}-\x{9FFF}\x{3040}-\x{309F}ー]{1,5})`)

	// titlePrefix rejects matches that are actually role labels or schedule
	// codes leaking into the name column (主任, 副, 代2, 振1, ...).
	titlePrefix = regexp.MustCompile(`^(主|副|助|代\d?|振\d?)`)
)

// PersonName is a staff name split into its components. Full keeps the
// original separator, so an exact-text page match stays possible.
type PersonName struct {
	Full    string
	Surname string
	Given   string
}

// Parse decomposes a full name string. ok is false when the string is not a
// decomposable name; such keywords are treated as opaque literals by the
// locator.
func Parse(s string) (PersonName, bool) {
	m := namePattern.FindStringSubmatch(s)
	if m == nil {
		return PersonName{}, false
	}
	return PersonName{Full: s, Surname: m[1], Given: m[2]}, true
}

// Literal wraps a non-decomposable keyword so it can flow through APIs that
// take a PersonName.
func Literal(s string) PersonName {
	return PersonName{Full: s}
}

// IsName reports whether the person was decomposed into surname and given
// components.
func (p PersonName) IsName() bool {
	return p.Surname != "" && p.Given != ""
}

// ExtractCandidates returns every name-shaped match in the given free text,
// normalized to a full-width-space separator, sorted and deduplicated. Role
// prefixes are excluded.
func ExtractCandidates(text string) []PersonName {
	seen := make(map[string]bool)
	var names []PersonName

	for _, m := range candidatePattern.FindAllStringSubmatch(text, -1) {
		full := m[1] + "　" + m[2]
		if titlePrefix.MatchString(full) {
			continue
		}
		if seen[full] {
			continue
		}
		seen[full] = true
		names = append(names, PersonName{Full: full, Surname: m[1], Given: m[2]})
	}

	sort.Slice(names, func(i, j int) bool {
		return strings.Compare(names[i].Full, names[j].Full) < 0
	})
	return names
}
