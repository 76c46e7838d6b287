// Package memory provides an in-memory record source, used for tests and
// for seeding without touching the filesystem.
package memory

import (
	"context"
	"sync"

	"tally/internal/core"
)

type Store struct {
	mu   sync.Mutex
	rows []core.RawRecord
}

func New(rows ...core.RawRecord) *Store {
	return &Store{rows: append([]core.RawRecord(nil), rows...)}
}

// Append adds rows to the store.
func (s *Store) Append(rows ...core.RawRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, rows...)
}

// ReadRecords implements source.RecordReader.
func (s *Store) ReadRecords(_ context.Context) ([]core.RawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.RawRecord(nil), s.rows...), nil
}
