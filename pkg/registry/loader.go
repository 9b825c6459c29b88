package registry

import (
	"bufio"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// FileSource reads module entries from a plain text file: one name per
// line, optionally followed by a tab and the module's source file path.
// Blank lines and lines starting with '#' are skipped. Useful for frozen
// environments and for testing without a Python interpreter around.
type FileSource struct {
	Path string
}

// Entries parses the names file.
func (f FileSource) Entries() ([]Entry, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, path, _ := strings.Cut(line, "\t")
		name = strings.TrimSpace(name)
		if name == "" {
			log.Debugf("Skipping malformed names line %d in %s", lineNo, f.Path)
			continue
		}
		entries = append(entries, Entry{Name: name, SourcePath: strings.TrimSpace(path)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
