package docs

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

const (
	// descMaxLines caps how many docstring lines end up in a description.
	descMaxLines = 5
	// descCacheCap bounds the memoization cache, FIFO eviction.
	descCacheCap = 128
	// srcReadCap bounds how much of a source file gets read for a docstring.
	srcReadCap = 256 * 1024
)

// PathLookup resolves a module name to its source file path.
type PathLookup interface {
	SourcePath(name string) (string, bool)
}

// DocstringProvider extracts descriptions from the leading docstring of a
// module's source file. Results are memoized since the launcher re-queries
// the same names on every keystroke.
type DocstringProvider struct {
	paths PathLookup

	mu    sync.Mutex
	cache map[string]string
	order []string
}

// NewDocstringProvider builds a provider over the given path lookup,
// normally a registry.
func NewDocstringProvider(paths PathLookup) *DocstringProvider {
	return &DocstringProvider{
		paths: paths,
		cache: make(map[string]string, descCacheCap),
	}
}

// Description returns up to the first few docstring lines of the module,
// or "" when the source is missing or has no docstring.
func (p *DocstringProvider) Description(name string) string {
	p.mu.Lock()
	if desc, ok := p.cache[name]; ok {
		p.mu.Unlock()
		return desc
	}
	p.mu.Unlock()

	desc := p.lookup(name)

	p.mu.Lock()
	if len(p.order) >= descCacheCap {
		delete(p.cache, p.order[0])
		p.order = p.order[1:]
	}
	p.cache[name] = desc
	p.order = append(p.order, name)
	p.mu.Unlock()

	return desc
}

func (p *DocstringProvider) lookup(name string) string {
	path, ok := p.paths.SourcePath(name)
	if !ok || !strings.HasSuffix(path, ".py") {
		return ""
	}
	file, err := os.Open(path)
	if err != nil {
		log.Debugf("Cannot read source for %s: %v", name, err)
		return ""
	}
	defer file.Close()

	src, err := io.ReadAll(io.LimitReader(file, srcReadCap))
	if err != nil {
		log.Debugf("Cannot read source for %s: %v", name, err)
		return ""
	}
	return firstDocstringLines(string(src), descMaxLines)
}

// firstDocstringLines extracts the module-level docstring from Python
// source and returns at most maxLines of it, stopping at the first blank
// line once some content has been collected.
func firstDocstringLines(src string, maxLines int) string {
	doc, ok := leadingDocstring(src)
	if !ok {
		return ""
	}

	lines := strings.Split(doc, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	var desc strings.Builder
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" && desc.Len() > 0 {
			break
		}
		if desc.Len() > 0 {
			desc.WriteString("\n")
		}
		desc.WriteString(line)
	}
	return strings.TrimSpace(desc.String())
}

// leadingDocstring finds the triple-quoted string literal that opens a
// Python module, skipping shebang, encoding and comment lines.
func leadingDocstring(src string) (string, bool) {
	lines := strings.Split(src, "\n")
	start := -1
	var quote string
	var remainder string

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// String prefixes like r""" or u''' still open a docstring.
		trimmed := strings.TrimLeft(line, "rRuUbB")
		switch {
		case strings.HasPrefix(trimmed, `"""`):
			quote = `"""`
		case strings.HasPrefix(trimmed, "'''"):
			quote = "'''"
		default:
			// First statement is not a string literal: no docstring.
			return "", false
		}
		start = i
		remainder = trimmed[len(quote):]
		break
	}
	if start < 0 {
		return "", false
	}

	// Single-line docstring: """text"""
	if idx := strings.Index(remainder, quote); idx >= 0 {
		return remainder[:idx], true
	}

	// The remainder joins the body even when empty: a docstring opening
	// with a bare quote line starts with a newline, and that blank first
	// line counts toward the line cap just like it does in __doc__.
	body := []string{remainder}
	for _, raw := range lines[start+1:] {
		if idx := strings.Index(raw, quote); idx >= 0 {
			if head := raw[:idx]; strings.TrimSpace(head) != "" {
				body = append(body, head)
			}
			return strings.Join(body, "\n"), true
		}
		body = append(body, raw)
	}

	// Unterminated literal, treat as no docstring.
	return "", false
}
