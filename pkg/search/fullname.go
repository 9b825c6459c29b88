package search

import (
	"regexp"
	"sort"
	"strings"
)

// fullnameItem holds the ranking fields for one candidate in wildcard mode.
type fullnameItem struct {
	name      string
	headScore float64
	tailScore float64
	tailExact int
}

// orderedCharPattern turns the head characters into a regexp that matches
// them all in order, with anything allowed in between and around.
func orderedCharPattern(head string) *regexp.Regexp {
	escaped := make([]string, 0, len(head))
	for _, r := range head {
		escaped = append(escaped, regexp.QuoteMeta(string(r)))
	}
	return regexp.MustCompile(strings.Join(escaped, ".*?"))
}

// SearchFullName ranks candidate names against a wildcard query. Nesting
// of the names doesn't matter here; dots in the query are ordinary
// characters.
//
// The first '*' splits the query into head and tail. A candidate must
// contain every head character in the given order to be included at all;
// the tail is then ranked against the part of the name after the head
// match. A query starting with '*' keeps every candidate and treats the
// whole name as tail. Literal containment of the tail outranks fuzzy tail
// similarity, which outranks head similarity.
func SearchFullName(query string, names []string, score Scorer) []string {
	qhead, qtail, _ := strings.Cut(strings.ToLower(query), Wildcard)

	var headPattern *regexp.Regexp
	if qhead != "" {
		headPattern = orderedCharPattern(qhead)
	}

	items := make([]fullnameItem, 0, len(names))

	for _, name := range names {
		nameLower := strings.ToLower(name)

		// Head and tail regions of the name never overlap: the tail
		// region starts where the head match ends.
		nameTail := nameLower
		if headPattern != nil {
			loc := headPattern.FindStringIndex(nameLower)
			if loc == nil {
				continue
			}
			nameTail = nameLower[loc[1]:]
		}

		item := fullnameItem{name: name}
		if qhead != "" {
			item.headScore = score(qhead, nameLower)
		}
		if qtail != "" {
			item.tailScore = score(qtail, nameTail)
		}
		if strings.Contains(nameTail, qtail) {
			item.tailExact = 1
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.tailExact != b.tailExact {
			return a.tailExact > b.tailExact
		}
		if a.tailScore != b.tailScore {
			return a.tailScore > b.tailScore
		}
		if a.headScore != b.headScore {
			return a.headScore > b.headScore
		}
		return a.name < b.name
	})

	ranked := make([]string, len(items))
	for i, item := range items {
		ranked[i] = item.name
	}
	return ranked
}
