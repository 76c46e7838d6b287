package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tally/internal/core"
)

func agg(pairs ...core.CategoryTotal) core.Aggregation {
	return core.Aggregation{Totals: pairs}
}

func ct(name string, cents int64) core.CategoryTotal {
	return core.CategoryTotal{Category: name, Total: core.Money{Cents: cents}}
}

func TestRender(t *testing.T) {
	doc, err := Render(agg(ct("B", 27000), ct("A", 60000), ct("C", 13000)))
	if err != nil {
		t.Fatalf("render err: %v", err)
	}
	want := "{\n  \"A\": 600,\n  \"B\": 270,\n  \"C\": 130\n}\n"
	if string(doc) != want {
		t.Fatalf("got:\n%s\nwant:\n%s", doc, want)
	}
}

func TestRender_Empty(t *testing.T) {
	doc, err := Render(agg())
	if err != nil {
		t.Fatalf("render err: %v", err)
	}
	if string(doc) != "{}\n" {
		t.Fatalf("got %q, want {}\\n", doc)
	}
}

func TestRender_FractionalSums(t *testing.T) {
	doc, err := Render(agg(ct("A", 1250)))
	if err != nil {
		t.Fatalf("render err: %v", err)
	}
	if !strings.Contains(string(doc), "\"A\": 12.5") {
		t.Fatalf("fractional sum not rendered minimally: %s", doc)
	}
}

func TestWrite_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "totals.json")
	a := agg(ct("A", 60000), ct("B", 27000))

	if err := Write(a, path); err != nil {
		t.Fatalf("first write: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if err := Write(a, path); err != nil {
		t.Fatalf("second write: %v", err)
	}
	second, _ := os.ReadFile(path)
	if string(first) != string(second) {
		t.Fatal("two runs over the same aggregation differ byte for byte")
	}
}

func TestWrite_NoPartialFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing-subdir", "totals.json")

	// Destination directory does not exist: the write must fail without
	// creating anything at the output path.
	if err := Write(agg(ct("A", 100)), path); err == nil {
		t.Fatal("expected write failure")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("output path should not exist, stat err=%v", err)
	}

	// No stray temp files either.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("leftover files: %v", entries)
	}
}

func TestWrite_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "totals.json")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Write(agg(ct("A", 100)), path); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, _ := os.ReadFile(path)
	if strings.Contains(string(b), "old") {
		t.Fatal("existing file was not replaced")
	}
}
