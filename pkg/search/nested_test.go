package search

import (
	"reflect"
	"strings"
	"testing"

	"github.com/fenlog/pydex/pkg/fuzzy"
)

// Tests the nested engine against the behavior the launcher relies on:
// depth filtering, exact match detection and the ranking priorities.
func TestSearchNested(t *testing.T) {
	testCases := []struct {
		query       string
		names       []string
		wantExact   bool
		wantRanked  []string
		description string
	}{
		{
			query:       "htt",
			names:       []string{"http", "http.client", "http.client.boo"},
			wantExact:   false,
			wantRanked:  []string{"http"},
			description: "Deeper names dropped by the depth filter",
		},
		{
			query:       "http",
			names:       []string{"http", "http.client"},
			wantExact:   true,
			wantRanked:  []string{"http"},
			description: "Exact match sets the flag",
		},
		{
			query:       "http.",
			names:       []string{"http", "http.client", "http.client.boo"},
			wantExact:   true,
			wantRanked:  []string{"http", "http.client"},
			description: "Trailing dot shows children of the exact prefix",
		},
		{
			query:       "http",
			names:       []string{"http2lib", "http"},
			wantExact:   true,
			wantRanked:  []string{"http", "http2lib"},
			description: "Exact match ranked first",
		},
		{
			query:       "http.se",
			names:       []string{"http.cli", "httplib2.boo"},
			wantExact:   false,
			wantRanked:  []string{"http.cli", "httplib2.boo"},
			description: "Exact basename match beats fuzzy basename match",
		},
		{
			query:       "Http",
			names:       []string{"HTTP", "httplib2"},
			wantExact:   true,
			wantRanked:  []string{"HTTP", "httplib2"},
			description: "Matching is case folded, output keeps original case",
		},
		{
			query:       "http",
			names:       []string{},
			wantExact:   false,
			wantRanked:  []string{},
			description: "Empty candidate set yields empty results",
		},
		{
			query:       "",
			names:       []string{"b", "a", "a.b"},
			wantExact:   false,
			wantRanked:  []string{"a", "b"},
			description: "Empty query keeps top-level names only",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			exact, ranked := SearchNested(tc.query, tc.names, fuzzy.Score)
			if exact != tc.wantExact {
				t.Errorf("Query '%s': expected exact=%v, got %v", tc.query, tc.wantExact, exact)
			}
			if len(ranked) == 0 && len(tc.wantRanked) == 0 {
				return
			}
			if !reflect.DeepEqual(ranked, tc.wantRanked) {
				t.Errorf("Query '%s': expected %v, got %v", tc.query, tc.wantRanked, ranked)
			}
		})
	}
}

// No returned name may ever have more segments than the query.
func TestSearchNestedDepthFilter(t *testing.T) {
	names := []string{
		"os", "os.path", "http", "http.client", "http.client.boo",
		"xml.etree.ElementTree", "collections.abc", "json",
	}
	queries := []string{"o", "os", "os.p", "http.client", "x.e.e", "a.b.c.d"}

	for _, query := range queries {
		queryDepth := len(strings.Split(query, "."))
		_, ranked := SearchNested(query, names, fuzzy.Score)
		for _, name := range ranked {
			if depth := len(strings.Split(name, ".")); depth > queryDepth {
				t.Errorf("Query '%s' (depth %d) returned '%s' (depth %d)", query, queryDepth, name, depth)
			}
		}
	}
}

// An exact match among surviving candidates is always the first element.
func TestSearchNestedExactMatchFirst(t *testing.T) {
	names := []string{"jsonlib", "json2", "json", "jso"}
	exact, ranked := SearchNested("json", names, fuzzy.Score)
	if !exact {
		t.Fatal("Expected exact match for 'json'")
	}
	if len(ranked) == 0 || ranked[0] != "json" {
		t.Errorf("Expected 'json' first, got %v", ranked)
	}
}

// Identical input must produce identical output, every time.
func TestSearchNestedDeterminism(t *testing.T) {
	names := []string{"http", "html", "heapq", "hashlib", "hmac", "http.client"}
	_, first := SearchNested("h", names, fuzzy.Score)
	for i := 0; i < 10; i++ {
		_, again := SearchNested("h", names, fuzzy.Score)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Run %d differs: %v vs %v", i, first, again)
		}
	}
}

// The sort key is total, so candidate order must not leak into results.
func TestSearchNestedInputOrderIndependent(t *testing.T) {
	names := []string{"http", "html", "heapq", "hashlib", "hmac"}
	reversed := make([]string, len(names))
	for i, name := range names {
		reversed[len(names)-1-i] = name
	}

	_, a := SearchNested("h", names, fuzzy.Score)
	_, b := SearchNested("h", reversed, fuzzy.Score)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Ranking depends on candidate order: %v vs %v", a, b)
	}
}
