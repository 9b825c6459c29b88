package registry

import (
	"bufio"
	"bytes"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// enumScript prints every accessible module name, one per line, followed
// by a tab and the source file path when one can be resolved. Builtins
// come first, then everything pkgutil can walk, mirroring what the pydoc
// index page would show.
const enumScript = `
import importlib.util
import pkgutil
import sys

def origin(name):
    try:
        spec = importlib.util.find_spec(name)
    except Exception:
        return ''
    if spec is None or not spec.origin or spec.origin in ('built-in', 'frozen'):
        return ''
    return spec.origin

for name in sys.builtin_module_names:
    if name != '__main__':
        print(name)
for _, name, _ in pkgutil.walk_packages(onerror=lambda e: None):
    print(name + '\t' + origin(name))
`

// Enumerator shells out to a Python interpreter to list every module and
// package importable in that environment. The walk is slow on cold caches,
// so callers load the result into a Registry once and reuse it.
type Enumerator struct {
	Python string
}

// Entries runs the enumeration script and parses its output.
func (e Enumerator) Entries() ([]Entry, error) {
	python := e.Python
	if python == "" {
		python = "python3"
	}

	cmd := exec.Command(python, "-c", enumScript)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	var entries []Entry
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		name, path, _ := strings.Cut(scanner.Text(), "\t")
		if name == "" {
			continue
		}
		entries = append(entries, Entry{Name: name, SourcePath: path})
	}
	scanErr := scanner.Err()

	if err := cmd.Wait(); err != nil {
		log.Warnf("Module enumeration via %s exited with error: %v (%s)",
			python, err, strings.TrimSpace(stderr.String()))
		// A partial walk is still usable; only fail with nothing to show.
		if len(entries) == 0 {
			return nil, err
		}
	}
	if scanErr != nil {
		return nil, scanErr
	}

	log.Debugf("Enumerated %d module names via %s", len(entries), python)
	return entries, nil
}
