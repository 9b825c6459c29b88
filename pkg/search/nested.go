package search

import (
	"sort"
	"strings"
)

// nestedItem holds the ranking fields for one candidate in nested mode.
// It only lives for the duration of a single SearchNested call.
type nestedItem struct {
	name          string
	depth         int
	nameExact     int
	basenameExact int
	basenameScore float64
	leafScore     float64
}

// SearchNested ranks candidate names against a dot-delimited query.
//
// Candidates with more segments than the query are filtered out, not just
// ranked low. A trailing delimiter means "show children of this exact
// prefix": the query "http." keeps http and http.client but drops
// http.client.boo.
//
// The returned flag reports whether some candidate matches the query
// exactly (case-insensitive, trailing delimiter stripped). Names come back
// in their original case, best match first.
func SearchNested(query string, names []string, score Scorer) (bool, []string) {
	lowered := strings.ToLower(query)
	queryChunks := strings.Split(lowered, Delimiter)
	exactMatchQuery := strings.TrimRight(lowered, Delimiter)

	// Basename means a similar thing it does for files: every segment of
	// the name except the very last one. For "mod.submod.blah" the
	// basename is "mod.submod".
	basenameQuery := strings.Join(queryChunks[:len(queryChunks)-1], Delimiter)
	leafQuery := queryChunks[len(queryChunks)-1]

	hasExactMatch := false
	items := make([]nestedItem, 0, len(names))

	for _, name := range names {
		nameLower := strings.ToLower(name)
		nameChunks := strings.Split(nameLower, Delimiter)

		// Names nested deeper than the query are noise.
		if len(nameChunks) > len(queryChunks) {
			continue
		}

		item := nestedItem{name: name, depth: len(nameChunks)}

		if nameLower == exactMatchQuery {
			item.nameExact = 1
			hasExactMatch = true
		}

		basename := strings.Join(nameChunks[:len(nameChunks)-1], Delimiter)
		if basename == basenameQuery {
			item.basenameExact = 1
		}

		// Basename similarity only matters if the query includes one.
		if len(queryChunks) > 1 && basenameQuery != "" {
			item.basenameScore = score(basenameQuery, basename)
		}

		// The leaf segment is only comparable when the name has at least
		// as many segments as the query. An empty leaf (trailing
		// delimiter) scores 0 so the scorer never sees an empty pattern.
		if len(nameChunks) >= len(queryChunks) && leafQuery != "" {
			item.leafScore = score(leafQuery, nameChunks[len(queryChunks)-1])
		}

		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.nameExact != b.nameExact {
			return a.nameExact > b.nameExact
		}
		if a.basenameExact != b.basenameExact {
			return a.basenameExact > b.basenameExact
		}
		if a.basenameScore != b.basenameScore {
			return a.basenameScore > b.basenameScore
		}
		if a.leafScore != b.leafScore {
			return a.leafScore > b.leafScore
		}
		// Shallower names rank above deeper ones, names break final ties.
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		return a.name < b.name
	})

	ranked := make([]string, len(items))
	for i, item := range items {
		ranked[i] = item.name
	}
	return hasExactMatch, ranked
}
