package logostore_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	logostore "github.com/cafehubapp/cafehub/internal/app/store/logos"
	"github.com/cafehubapp/cafehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newStore(t *testing.T) *logostore.Store {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store, err := logostore.New(db)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestPutAndDownload(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	payload := []byte("\x89PNG fake image body")
	id, err := store.Put(ctx, "a1b2c3.png", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		t.Fatalf("Put returned non-ObjectID id %q: %v", id, err)
	}

	var buf bytes.Buffer
	n, err := store.Download(ctx, id, &buf)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if n != int64(len(payload)) {
		t.Errorf("Download wrote %d bytes, want %d", n, len(payload))
	}
	if !bytes.Equal(buf.Bytes(), payload) {
		t.Errorf("downloaded bytes differ from uploaded")
	}
}

func TestPutEmpty(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Put(ctx, "empty.png", strings.NewReader("")); !errors.Is(err, logostore.ErrEmptyUpload) {
		t.Errorf("got %v, want ErrEmptyUpload", err)
	}
}

func TestPutSingleByte(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Exactly one byte exercises the peek path's short-read handling.
	id, err := store.Put(ctx, "dot.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	var buf bytes.Buffer
	if _, err := store.Download(ctx, id, &buf); err != nil {
		t.Fatalf("Download: %v", err)
	}
	if buf.String() != "x" {
		t.Errorf("got %q, want %q", buf.String(), "x")
	}
}

func TestDownloadMissing(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	var buf bytes.Buffer
	if _, err := store.Download(ctx, primitive.NewObjectID().Hex(), &buf); !errors.Is(err, logostore.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if _, err := store.Download(ctx, "not-a-hex-id", &buf); !errors.Is(err, logostore.ErrBadID) {
		t.Errorf("got %v, want ErrBadID", err)
	}
}

func TestDelete(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Put(ctx, "gone.jpg", strings.NewReader("jpeg bytes"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var buf bytes.Buffer
	if _, err := store.Download(ctx, id, &buf); !errors.Is(err, logostore.ErrNotFound) {
		t.Errorf("blob still downloadable after delete: %v", err)
	}

	// Idempotent: absent blobs and malformed ids delete without error.
	if err := store.Delete(ctx, id); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	if err := store.Delete(ctx, "not-a-hex-id"); err != nil {
		t.Errorf("Delete with bad id: %v", err)
	}
}
