package store

import (
	"context"
	"fmt"

	"github.com/lshigami/QuizDraft/internal/repository"
)

const (
	BackendFile     = "file"
	BackendDatabase = "database"
	BackendS3       = "s3"
	BackendMemory   = "memory"
)

type Options struct {
	Backend string
	SlotKey string
	FileDir string
	S3      S3Options
}

// OpenSlot picks the slot backend named by opts.Backend.
func OpenSlot(ctx context.Context, opts Options, slots repository.SlotRepository) (Slot, error) {
	key := opts.SlotKey
	if key == "" {
		key = "questions"
	}
	switch opts.Backend {
	case "", BackendFile:
		return NewFileSlot(opts.FileDir, key)
	case BackendDatabase:
		return NewDatabaseSlot(slots, key), nil
	case BackendS3:
		client, err := NewS3Client(ctx, opts.S3)
		if err != nil {
			return nil, err
		}
		return NewS3Slot(client, opts.S3.Bucket, key), nil
	case BackendMemory:
		return NewMemorySlot(nil), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
