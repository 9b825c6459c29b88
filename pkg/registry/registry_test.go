package registry

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestRegistryAdd(t *testing.T) {
	reg := New()

	if !reg.Add("http", "") {
		t.Error("First insert should succeed")
	}
	if reg.Add("http", "/usr/lib/python3/http/__init__.py") {
		t.Error("Duplicate insert should report false")
	}
	if reg.Add("", "whatever") {
		t.Error("Empty name should be rejected")
	}
	if reg.Len() != 1 {
		t.Errorf("Expected 1 name, got %d", reg.Len())
	}
}

func TestRegistryNamesSortedSnapshot(t *testing.T) {
	reg := New()
	for _, name := range []string{"zlib", "http.client", "http", "abc"} {
		reg.Add(name, "")
	}

	want := []string{"abc", "http", "http.client", "zlib"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Snapshot refreshes after inserts.
	reg.Add("json", "")
	want = []string{"abc", "http", "http.client", "json", "zlib"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v after insert, got %v", want, got)
	}
}

func TestRegistryTopLevelCount(t *testing.T) {
	reg := New()
	for _, name := range []string{"os", "os.path", "http", "http.client", "http.client.boo"} {
		reg.Add(name, "")
	}
	if got := reg.TopLevelCount(); got != 2 {
		t.Errorf("Expected 2 top-level names, got %d", got)
	}
}

func TestRegistrySourcePath(t *testing.T) {
	reg := New()
	reg.Add("http", "/usr/lib/python3.12/http/__init__.py")
	reg.Add("sys", "")

	if path, ok := reg.SourcePath("http"); !ok || path != "/usr/lib/python3.12/http/__init__.py" {
		t.Errorf("Expected recorded path, got %q (%v)", path, ok)
	}
	if _, ok := reg.SourcePath("sys"); ok {
		t.Error("Builtin without source should report no path")
	}
	if _, ok := reg.SourcePath("nosuchmod"); ok {
		t.Error("Unknown name should report no path")
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	content := "# frozen module list\n" +
		"http\t/usr/lib/python3.12/http/__init__.py\n" +
		"http.client\n" +
		"\n" +
		"   json  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := FileSource{Path: path}.Entries()
	if err != nil {
		t.Fatal(err)
	}

	want := []Entry{
		{Name: "http", SourcePath: "/usr/lib/python3.12/http/__init__.py"},
		{Name: "http.client"},
		{Name: "json"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Expected %v, got %v", want, entries)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	if _, err := (FileSource{Path: "/nonexistent/names.txt"}).Entries(); err == nil {
		t.Error("Expected error for missing names file")
	}
}

func TestRegistryReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("http\nhttp\njson\n"), 0644); err != nil {
		t.Fatal(err)
	}

	reg := New()
	reg.Add("stale", "")

	count, err := reg.Reload(FileSource{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("Expected 2 unique names, got %d", count)
	}
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"http", "json"}) {
		t.Errorf("Stale entries should be gone, got %v", got)
	}
}

func TestRegistryReloadKeepsIndexOnError(t *testing.T) {
	reg := New()
	reg.Add("http", "")

	if _, err := reg.Reload(FileSource{Path: "/nonexistent/names.txt"}); err == nil {
		t.Fatal("Expected reload error")
	}
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"http"}) {
		t.Errorf("Failed reload should keep the old index, got %v", got)
	}
}
