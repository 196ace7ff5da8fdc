package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lshigami/QuizDraft/internal/repository"
)

// ErrSlotEmpty is returned by Slot.Load when nothing was ever saved.
var ErrSlotEmpty = errors.New("slot is empty")

// Slot is a single named value holding the serialized question sequence.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

type MemorySlot struct {
	mu   sync.Mutex
	data []byte
}

func NewMemorySlot(initial []byte) *MemorySlot {
	return &MemorySlot{data: initial}
}

func (s *MemorySlot) Load(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

// FileSlot keeps the value in <dir>/<key>.json and replaces it atomically.
type FileSlot struct {
	path string
}

func NewFileSlot(dir, key string) (*FileSlot, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create slot directory: %w", err)
	}
	return &FileSlot{path: filepath.Join(dir, slotFileName(key))}, nil
}

func slotFileName(key string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, key)
	return strings.TrimLeft(clean, ".") + ".json"
}

func (s *FileSlot) Load(context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return data, nil
}

func (s *FileSlot) Save(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write slot file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync slot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close slot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}

// DatabaseSlot keeps the value in a storage_slots row.
type DatabaseSlot struct {
	repo repository.SlotRepository
	key  string
}

func NewDatabaseSlot(repo repository.SlotRepository, key string) *DatabaseSlot {
	return &DatabaseSlot{repo: repo, key: key}
}

func (s *DatabaseSlot) Load(ctx context.Context) ([]byte, error) {
	row, err := s.repo.Get(ctx, s.key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", s.key, err)
	}
	return []byte(row.Value), nil
}

func (s *DatabaseSlot) Save(ctx context.Context, data []byte) error {
	if err := s.repo.Put(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("save slot %q: %w", s.key, err)
	}
	return nil
}
