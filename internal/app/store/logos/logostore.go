// Package logostore is the blob store for café logo images, backed by a
// GridFS bucket named "uploads".
//
// Blob ids are the GridFS file ObjectIDs in hex, generated independently
// of any business key. The bucket is not part of the record-store
// transaction scope: callers sequence blob writes before record writes
// (orphaned blobs are tolerable) and blob deletes after record commits
// (best effort).
package logostore

import (
	"bytes"
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bucketName = "uploads"

type Store struct {
	bucket *gridfs.Bucket
}

func New(db *mongo.Database) (*Store, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, err
	}
	return &Store{bucket: bucket}, nil
}

var (
	// ErrEmptyUpload is returned for a zero-byte or missing upload,
	// rejected before anything reaches the bucket.
	ErrEmptyUpload = errors.New("uploaded file is empty")

	// ErrNotFound is returned when no blob exists with the given id.
	ErrNotFound = errors.New("logo not found")

	// ErrBadID is returned when the id is not a valid blob reference.
	ErrBadID = errors.New("invalid logo id")
)

// Put streams src into the bucket under filename and returns the new blob
// id. The filename carries the upload's original extension; the id is
// what café records reference.
func (s *Store) Put(ctx context.Context, filename string, src io.Reader) (string, error) {
	// Peek one byte so empty uploads never create a zero-length file.
	var first [1]byte
	n, err := io.ReadFull(src, first[:])
	if err == io.EOF || n == 0 {
		return "", ErrEmptyUpload
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", err
	}

	s.applyDeadlines(ctx)
	id, err := s.bucket.UploadFromStream(filename, io.MultiReader(bytes.NewReader(first[:n]), src))
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Download copies the blob with the given id to w, returning the number of
// bytes written. Returns ErrNotFound for absent blobs and ErrBadID for ids
// that were never blob references.
func (s *Store) Download(ctx context.Context, id string, w io.Writer) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrBadID
	}

	s.applyDeadlines(ctx)
	n, err := s.bucket.DownloadToStream(oid, w)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return n, ErrNotFound
		}
		return n, err
	}
	return n, nil
}

// Delete removes the blob with the given id. Deleting an absent blob is
// not an error: delete cascades must not fail because the blob is already
// gone. Malformed ids are likewise ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	s.applyDeadlines(ctx)
	if err := s.bucket.Delete(oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// applyDeadlines propagates the context deadline onto the bucket, whose
// stream operations are deadline- rather than context-driven.
func (s *Store) applyDeadlines(ctx context.Context) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = s.bucket.SetWriteDeadline(deadline)
		_ = s.bucket.SetReadDeadline(deadline)
	}
}
