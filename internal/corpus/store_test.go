package corpus

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddAndListDocuments(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	doc, err := store.AddDocument(ctx, "صحيح مسلم", []string{"صفحة اولى", "صفحة ثانية"})
	if err != nil {
		t.Fatalf("AddDocument() error: %v", err)
	}
	if doc.ID == "" {
		t.Error("expected a generated document ID")
	}
	if doc.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", doc.PageCount)
	}

	docs, err := store.Documents(ctx)
	if err != nil {
		t.Fatalf("Documents() error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if docs[0].ID != doc.ID || docs[0].Name != "صحيح مسلم" || docs[0].PageCount != 2 {
		t.Errorf("listed document = %+v", docs[0])
	}
	if docs[0].CreatedAt.IsZero() {
		t.Error("expected a parsed creation time")
	}
}

func TestPages(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	want := []string{"الحمد لله", "رب العالمين", "الرحمن الرحيم"}
	doc, err := store.AddDocument(ctx, "فاتحة", want)
	if err != nil {
		t.Fatalf("AddDocument() error: %v", err)
	}

	pages, err := store.Pages(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Pages() error: %v", err)
	}
	if len(pages) != len(want) {
		t.Fatalf("got %d pages, want %d", len(pages), len(want))
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Errorf("page %d = %q, want %q", i+1, pages[i], want[i])
		}
	}
}

func TestPagesUnknownDocument(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Pages(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Pages() error = %v, want ErrNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	doc, err := store.AddDocument(ctx, "مؤقت", []string{"نص"})
	if err != nil {
		t.Fatalf("AddDocument() error: %v", err)
	}
	if err := store.Remove(ctx, doc.ID); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, err := store.Pages(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Pages() after remove = %v, want ErrNotFound", err)
	}
	if err := store.Remove(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove() = %v, want ErrNotFound", err)
	}
}

func TestEmptyDocumentHasNoPages(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	doc, err := store.AddDocument(ctx, "فارغ", nil)
	if err != nil {
		t.Fatalf("AddDocument() error: %v", err)
	}
	pages, err := store.Pages(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Pages() error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("got %d pages, want 0", len(pages))
	}
}
