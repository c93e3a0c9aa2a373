package web

import (
	"testing"
	"time"

	"cloudbox/storage"
)

func sampleObjects() []storage.FileObject {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []storage.FileObject{
		{Key: "Bravo.txt", Size: 300, Uploaded: base.Add(2 * time.Hour)},
		{Key: "alpha.md", Size: 100, Uploaded: base.Add(3 * time.Hour)},
		{Key: "charlie.pdf", Size: 200, Uploaded: base.Add(1 * time.Hour)},
	}
}

func keys(objects []storage.FileObject) []string {
	result := make([]string, len(objects))
	for i, obj := range objects {
		result[i] = obj.Key
	}
	return result
}

func TestFilterObjects(t *testing.T) {
	objects := filterObjects(sampleObjects(), "ALPHA")
	if len(objects) != 1 || objects[0].Key != "alpha.md" {
		t.Errorf("case-insensitive filter failed: %v", keys(objects))
	}
	objects = filterObjects(sampleObjects(), "")
	if len(objects) != 3 {
		t.Errorf("empty search must keep everything, got %v", keys(objects))
	}
	objects = filterObjects(sampleObjects(), "zzz")
	if len(objects) != 0 {
		t.Errorf("no-match search must be empty, got %v", keys(objects))
	}
}

func TestSortObjects(t *testing.T) {
	cases := []struct {
		sortBy, order string
		want          []string
	}{
		{"name", "asc", []string{"alpha.md", "Bravo.txt", "charlie.pdf"}},
		{"name", "desc", []string{"charlie.pdf", "Bravo.txt", "alpha.md"}},
		{"size", "asc", []string{"alpha.md", "charlie.pdf", "Bravo.txt"}},
		{"size", "desc", []string{"Bravo.txt", "charlie.pdf", "alpha.md"}},
		{"date", "asc", []string{"charlie.pdf", "Bravo.txt", "alpha.md"}},
		{"date", "desc", []string{"alpha.md", "Bravo.txt", "charlie.pdf"}},
	}
	for _, c := range cases {
		objects := sampleObjects()
		sortObjects(objects, c.sortBy, c.order)
		got := keys(objects)
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Errorf("sort=%s order=%s: got %v, want %v", c.sortBy, c.order, got, c.want)
				break
			}
		}
	}
}

func TestSortObjectsStableTieBreak(t *testing.T) {
	objects := []storage.FileObject{
		{Key: "first", Size: 10},
		{Key: "second", Size: 10},
		{Key: "third", Size: 10},
	}
	sortObjects(objects, "size", "asc")
	got := keys(objects)
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("equal sizes must keep source order, got %v", got)
		}
	}
}

func TestNormalizeObjects(t *testing.T) {
	objects := normalizeObjects([]storage.FileObject{
		{Key: "", Size: 5},
		{Key: "negative.bin", Size: -1},
		{Key: "nodate.txt", Size: 12},
	})
	if len(objects) != 2 {
		t.Fatalf("keyless entries must be dropped, got %d entries", len(objects))
	}
	if objects[0].Size != 0 {
		t.Errorf("negative size must become 0, got %d", objects[0].Size)
	}
	if objects[1].Uploaded.IsZero() {
		t.Error("missing upload time must be substituted")
	}
}
