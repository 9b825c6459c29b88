package search

import (
	"reflect"
	"testing"

	"github.com/fenlog/pydex/pkg/fuzzy"
)

// Tests the wildcard engine: head subsequence filtering, tail region
// ranking and the literal-containment priority.
func TestSearchFullName(t *testing.T) {
	testCases := []struct {
		query       string
		names       []string
		wantFirst   string
		wantAll     []string
		description string
	}{
		{
			query:       "ht*error",
			names:       []string{"http", "http.cli.error", "http.cli"},
			wantFirst:   "http.cli.error",
			description: "Literal tail containment ranks first",
		},
		{
			query:       "ul*action",
			names:       []string{"ulauncher.shared.action", "cozmo.actions"},
			wantAll:     []string{"ulauncher.shared.action"},
			description: "Head characters must appear in order",
		},
		{
			query:       "ht.c*t.",
			names:       []string{"http.client.err", "http.server.request"},
			wantAll:     []string{"http.client.err"},
			description: "Dots are ordinary characters in wildcard mode",
		},
		{
			query:       "*widg",
			names:       []string{"ulauncher.api.itemwidget", "wedge"},
			wantFirst:   "ulauncher.api.itemwidget",
			description: "Exact tail containment outranks fuzzy closeness",
		},
		{
			query:       "HT*ERROR",
			names:       []string{"http.cli.error", "zlib"},
			wantAll:     []string{"http.cli.error"},
			description: "Matching is case folded",
		},
		{
			query:       "xyz*",
			names:       []string{"http", "json"},
			wantAll:     []string{},
			description: "No head match means no results, not an error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			ranked := SearchFullName(tc.query, tc.names, fuzzy.Score)
			if tc.wantFirst != "" {
				if len(ranked) == 0 || ranked[0] != tc.wantFirst {
					t.Errorf("Query '%s': expected first result '%s', got %v", tc.query, tc.wantFirst, ranked)
				}
			}
			if tc.wantAll != nil {
				if len(ranked) == 0 && len(tc.wantAll) == 0 {
					return
				}
				if !reflect.DeepEqual(ranked, tc.wantAll) {
					t.Errorf("Query '%s': expected %v, got %v", tc.query, tc.wantAll, ranked)
				}
			}
		})
	}
}

// A leading wildcard makes the head constraint vacuous.
func TestSearchFullNameLeadingWildcard(t *testing.T) {
	ranked := SearchFullName("*action", []string{"http.cli.action", "boo.action"}, fuzzy.Score)
	if len(ranked) != 2 {
		t.Errorf("Expected both candidates to match, got %v", ranked)
	}
}

// A candidate survives iff every head character appears in order,
// case-insensitively, as a possibly non-contiguous subsequence.
func TestSearchFullNameHeadExclusivity(t *testing.T) {
	names := []string{
		"http.client", "httplib2", "html.parser", "heapq", "zlib",
	}

	ranked := SearchFullName("htcl*", names, fuzzy.Score)
	want := map[string]bool{"http.client": true}
	if len(ranked) != len(want) {
		t.Fatalf("Expected %d results, got %v", len(want), ranked)
	}
	for _, name := range ranked {
		if !want[name] {
			t.Errorf("Unexpected result '%s' for head 'htcl'", name)
		}
	}
}

// Without a wildcard the whole query acts as head and the tail is empty.
func TestSearchFullNameNoWildcard(t *testing.T) {
	ranked := SearchFullName("json", []string{"json", "zlib"}, fuzzy.Score)
	if !reflect.DeepEqual(ranked, []string{"json"}) {
		t.Errorf("Expected ['json'], got %v", ranked)
	}
}

func TestSearchFullNameDeterminism(t *testing.T) {
	names := []string{"http.cli.action", "boo.action", "ulauncher.api.action", "act"}
	first := SearchFullName("*act", names, fuzzy.Score)
	for i := 0; i < 10; i++ {
		again := SearchFullName("*act", names, fuzzy.Score)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Run %d differs: %v vs %v", i, first, again)
		}
	}
}

// Regex metacharacters in the query must be treated literally.
func TestSearchFullNameEscapesQuery(t *testing.T) {
	ranked := SearchFullName("a+b*", []string{"a+b.mod", "aXb.mod"}, fuzzy.Score)
	if !reflect.DeepEqual(ranked, []string{"a+b.mod"}) {
		t.Errorf("Expected ['a+b.mod'], got %v", ranked)
	}
}
