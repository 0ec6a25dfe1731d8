package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/store"
)

var ErrUnavailable = errors.New("memory store unavailable")

type rowKey struct {
	kind store.Kind
	date string
	key  string
}

// Store keeps records in process memory. Used in tests and with the
// "memory" store driver.
type Store struct {
	mu          sync.RWMutex
	rows        map[rowKey]store.Record
	version     int64
	unavailable bool
}

var _ store.Backend = (*Store)(nil)

func New() *Store {
	return &Store{
		rows: map[rowKey]store.Record{},
	}
}

// SetUnavailable makes every following call fail with ErrUnavailable.
func (s *Store) SetUnavailable(unavailable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = unavailable
}

func (s *Store) Get(_ context.Context, kind store.Kind, date, key string) (*store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.unavailable {
		return nil, ErrUnavailable
	}

	rec, ok := s.rows[rowKey{kind, date, key}]
	if !ok {
		return nil, apperr.NotFound("%s %s/%s", kind, date, key)
	}
	rec.Data = append([]byte(nil), rec.Data...)
	return &rec, nil
}

func (s *Store) List(_ context.Context, kind store.Kind, q store.Query) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.unavailable {
		return nil, ErrUnavailable
	}

	var recs []store.Record
	for k, rec := range s.rows {
		if k.kind != kind || !q.Matches(k.date) {
			continue
		}
		rec.Data = append([]byte(nil), rec.Data...)
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Date != recs[j].Date {
			return recs[i].Date < recs[j].Date
		}
		return recs[i].Key < recs[j].Key
	})
	return recs, nil
}

func (s *Store) Put(_ context.Context, rec store.Record) (*store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return nil, ErrUnavailable
	}

	k := rowKey{rec.Kind, rec.Date, rec.Key}
	if existing, ok := s.rows[k]; ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}
	rec.Data = append([]byte(nil), rec.Data...)
	s.rows[k] = rec
	s.version++
	return &rec, nil
}

func (s *Store) Delete(_ context.Context, kind store.Kind, date, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return ErrUnavailable
	}

	k := rowKey{kind, date, key}
	if _, ok := s.rows[k]; !ok {
		return apperr.NotFound("%s %s/%s", kind, date, key)
	}
	delete(s.rows, k)
	s.version++
	return nil
}

func (s *Store) ReplaceAll(_ context.Context, records []store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return ErrUnavailable
	}

	rows := make(map[rowKey]store.Record, len(records))
	for _, rec := range records {
		k := rowKey{rec.Kind, rec.Date, rec.Key}
		if _, dup := rows[k]; dup {
			return apperr.Validation("duplicate record %s %s/%s", rec.Kind, rec.Date, rec.Key)
		}
		rec.Data = append([]byte(nil), rec.Data...)
		rows[k] = rec
	}
	s.rows = rows
	s.version++
	return nil
}

func (s *Store) Version(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.unavailable {
		return 0, ErrUnavailable
	}
	return s.version, nil
}

// Len returns the number of stored records across all kinds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func (s *Store) Close() error {
	return nil
}
