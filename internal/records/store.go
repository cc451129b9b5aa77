// Package records implements the record store: the explicitly owned,
// date-keyed in-memory collection with write-through persistence to a
// local key-value store.
package records

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"alzes/internal/core"
	"alzes/internal/log"
	"alzes/internal/storage"
)

// Storage keys. Versioned so a future format change can migrate the
// old blob instead of guessing.
const (
	RecordsKey = "alzes_records_v1"
	ThemeKey   = "alzes_theme_v1"
)

// ErrPersist marks a storage write failure. The in-memory mutation is
// kept, so memory and persisted state diverge until the next
// successful save.
var ErrPersist = errors.New("persist failed")

// Patch carries the fields of a partial update; nil fields keep their
// prior values.
type Patch struct {
	BR    *int
	NA    *int
	Notes *string
}

// Store owns the in-memory record collection, ordered most recent
// first, and writes it through after every mutation. At most one
// record exists per date. A single process is assumed; the mutex only
// guards in-process sharing, not concurrent external writers.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	logger  *log.Logger
	records []core.Record
}

func New(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Store{
		kv:     kv,
		logger: logger.WithComponent(log.ComponentRecords),
	}
}

// Load reads the persisted blob into memory and returns the loaded
// records. Missing, unreadable or malformed content yields an empty
// collection with a logged warning; numeric fields of surviving
// entries are coerced parse-or-zero and entries with unusable dates
// are dropped. Load never fails.
func (s *Store) Load(ctx context.Context) []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, found, err := s.kv.Get(ctx, RecordsKey)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read records, starting empty",
			log.FieldOperation, log.OpLoad,
			log.FieldError, err, log.FieldKey, RecordsKey)
		s.records = nil
		return nil
	}
	if !found {
		s.records = nil
		return nil
	}

	records := core.DecodeRecords([]byte(blob))
	core.SortRecordsDesc(records)
	s.records = records
	s.logger.DebugContext(ctx, "Loaded records",
		log.FieldOperation, log.OpLoad, log.FieldCount, len(records))
	return s.snapshotLocked()
}

// Save serializes the whole collection and overwrites the persisted
// blob. On failure the error is logged and reported as ErrPersist; the
// in-memory state stands either way.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// Upsert replaces the record sharing the same date or appends a new
// one, then re-sorts and saves.
func (s *Store) Upsert(ctx context.Context, rec core.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.records {
		if s.records[i].Date.Equal(rec.Date) {
			s.records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		s.records = append(s.records, rec)
	}
	core.SortRecordsDesc(s.records)

	s.logger.DebugContext(ctx, "Upserted record",
		log.FieldDate, rec.Date.String(), "replaced", replaced)
	return s.saveLocked(ctx)
}

// Update shallow-merges patch onto the record with the given date and
// saves. The found result reports whether such a record existed; when
// false nothing is written.
func (s *Store) Update(ctx context.Context, date core.Date, patch Patch) (bool, error) {
	if patch.BR != nil && *patch.BR < 0 {
		return false, core.ErrNegativeCounter
	}
	if patch.NA != nil && *patch.NA < 0 {
		return false, core.ErrNegativeCounter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if !s.records[i].Date.Equal(date) {
			continue
		}
		if patch.BR != nil {
			s.records[i].BR = *patch.BR
		}
		if patch.NA != nil {
			s.records[i].NA = *patch.NA
		}
		if patch.Notes != nil {
			s.records[i].Notes = *patch.Notes
		}
		core.SortRecordsDesc(s.records)
		s.logger.DebugContext(ctx, "Updated record", log.FieldDate, date.String())
		return true, s.saveLocked(ctx)
	}
	return false, nil
}

// Delete removes the record with the given date if present and saves
// either way; deleting an absent date is an idempotent save.
func (s *Store) Delete(ctx context.Context, date core.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.removeLocked(date)
	s.logger.DebugContext(ctx, "Deleted record",
		log.FieldOperation, log.OpDelete,
		log.FieldDate, date.String(), "removed", removed)
	return s.saveLocked(ctx)
}

// DeleteMany removes every record whose date is in dates and persists
// the final state once.
func (s *Store) DeleteMany(ctx context.Context, dates []core.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, d := range dates {
		if s.removeLocked(d) {
			removed++
		}
	}
	s.logger.DebugContext(ctx, "Deleted records", log.FieldCount, removed)
	return s.saveLocked(ctx)
}

// Records returns a copy of the collection in its canonical order.
func (s *Store) Records() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the record stored for the given date.
func (s *Store) Get(date core.Date) (core.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.Date.Equal(date) {
			return r, true
		}
	}
	return core.Record{}, false
}

// Theme reads the persisted theme, defaulting to light when the key is
// missing or holds an unknown value.
func (s *Store) Theme(ctx context.Context) core.Theme {
	value, found, err := s.kv.Get(ctx, ThemeKey)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read theme",
			log.FieldError, err, log.FieldKey, ThemeKey)
		return core.DefaultTheme
	}
	if !found {
		return core.DefaultTheme
	}
	theme, err := core.ParseTheme(value)
	if err != nil {
		return core.DefaultTheme
	}
	return theme
}

// SetTheme validates and persists the theme value.
func (s *Store) SetTheme(ctx context.Context, theme core.Theme) error {
	if !theme.IsValid() {
		return core.ErrInvalidTheme
	}
	if err := s.kv.Set(ctx, ThemeKey, theme.String()); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist theme",
			log.FieldError, err, log.FieldKey, ThemeKey)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (s *Store) saveLocked(ctx context.Context) error {
	blob, err := core.EncodeRecords(s.records)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode records",
			log.FieldOperation, log.OpSave, log.FieldError, err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := s.kv.Set(ctx, RecordsKey, string(blob)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist records, in-memory state kept",
			log.FieldOperation, log.OpSave,
			log.FieldError, err, log.FieldKey, RecordsKey)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (s *Store) removeLocked(date core.Date) bool {
	for i := range s.records {
		if s.records[i].Date.Equal(date) {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) snapshotLocked() []core.Record {
	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out
}
