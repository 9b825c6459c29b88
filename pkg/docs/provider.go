/*
Package docs resolves documentation metadata for ranked module names:
result descriptions, documentation page URLs, and module source paths.

Everything here is best effort. A missing source file or an unparseable
docstring yields an empty description, never an error, so a lookup failure
can't affect what the ranking engines returned.
*/
package docs

import "strings"

// DescriptionProvider supplies a short human-readable description for a
// module name, or "" when none can be found.
type DescriptionProvider interface {
	Description(name string) string
}

// NoDescriptions is a DescriptionProvider that always comes up empty.
type NoDescriptions struct{}

// Description implements DescriptionProvider.
func (NoDescriptions) Description(string) string { return "" }

// PageURL builds the documentation page address for a module name, served
// by the local pydoc HTTP server.
func PageURL(baseURL, name string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + name + ".html"
}
