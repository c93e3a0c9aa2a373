package storage

import (
	"io"
	"strings"
	"testing"
)

func newTestDisk(t *testing.T) StorageAPI {
	t.Helper()
	return NewDiskStorage(&Bucket{
		Name:        "test",
		StorageType: StorageTypeFile,
		Path:        t.TempDir(),
	})
}

func TestDiskStorageRoundTrip(t *testing.T) {
	store := newTestDisk(t)

	n, err := store.Put("docs/readme.txt", strings.NewReader("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("Put reported %d bytes, want 5", n)
	}

	objects, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(objects) != 1 || objects[0].Key != "docs/readme.txt" || objects[0].Size != 5 {
		t.Fatalf("unexpected listing: %+v", objects)
	}
	if objects[0].Uploaded.IsZero() {
		t.Error("listing must carry the upload time")
	}

	body, object, err := store.Open("docs/readme.txt")
	if err != nil {
		t.Fatal(err)
	}
	if object.Size != 5 {
		t.Errorf("object size = %d, want 5", object.Size)
	}
	content, _ := io.ReadAll(body)
	body.Close()
	if string(content) != "hello" {
		t.Errorf("content = %q, want hello", content)
	}

	if err := store.Delete("docs/readme.txt"); err != nil {
		t.Fatal(err)
	}
	objects, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(objects) != 0 {
		t.Errorf("listing after delete should be empty, got %+v", objects)
	}
}

func TestDiskStorageMissingKey(t *testing.T) {
	store := newTestDisk(t)
	body, object, err := store.Open("nope.txt")
	if body != nil || object != nil || err != nil {
		t.Errorf("missing key must be (nil, nil, nil), got (%v, %v, %v)", body, object, err)
	}
}

func TestDiskStorageRejectsEscapes(t *testing.T) {
	store := newTestDisk(t)
	if _, err := store.Put("../escape.txt", strings.NewReader("x")); err == nil {
		t.Error("keys containing .. must be rejected")
	}
	if _, _, err := store.Open("a/../../etc/passwd"); err == nil {
		t.Error("keys containing .. must be rejected")
	}
	if err := store.Delete(""); err == nil {
		t.Error("empty key must be rejected")
	}
}

func TestDiskStorageEmptyListing(t *testing.T) {
	store := newTestDisk(t)
	objects, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(objects) != 0 {
		t.Errorf("fresh bucket should list empty, got %+v", objects)
	}
}
