// Package records holds the in-memory contact sequence and converts it to and
// from the flat row format of the backing file.
//
// Records are addressed by index. Position is assigned from the line index at
// load time or supplied by the caller on Create, and nothing reorders or
// removes records, so an index stays valid for the lifetime of a Store.
package records

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is returned by Update for an index outside the sequence.
var ErrOutOfRange = errors.New("records: index out of range")

// Store owns the ordered sequence of records. It performs no I/O and is not
// safe for concurrent use.
type Store struct {
	records []Record
}

// New parses raw lines into a Store. Blank lines and lines that do not split
// into exactly FieldCount values are skipped, but still consume a position.
func New(lines []string) *Store {
	s := &Store{records: make([]Record, 0, len(lines))}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		f, ok := FieldsFromValues(strings.Split(line, Separator))
		if !ok {
			continue
		}
		s.records = append(s.records, newRecord(i, f))
	}
	return s
}

// Create appends a record with the given position and returns it. The store
// does not pick positions; callers pass Len() by convention.
func (s *Store) Create(position int, f Fields) Record {
	r := newRecord(position, f)
	s.records = append(s.records, r)
	return r
}

// Update replaces the record at index with a new one whose Position is index.
func (s *Store) Update(index int, f Fields) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, index, len(s.records))
	}
	s.records[index] = newRecord(index, f)
	return nil
}

// Replace puts r back at index unchanged, Position included.
func (s *Store) Replace(index int, r Record) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, index, len(s.records))
	}
	s.records[index] = r
	return nil
}

// Truncate drops every record from index n on. It does nothing when n is not
// below Len.
func (s *Store) Truncate(n int) {
	if n >= 0 && n < len(s.records) {
		s.records = s.records[:n]
	}
}

// Len reports the number of records.
func (s *Store) Len() int { return len(s.records) }

// At returns the record stored at index.
func (s *Store) At(index int) (Record, bool) {
	if index < 0 || index >= len(s.records) {
		return Record{}, false
	}
	return s.records[index], true
}

// IndexOf returns the slice index of the first record carrying position, or -1.
func (s *Store) IndexOf(position int) int {
	for i, r := range s.records {
		if r.Position == position {
			return i
		}
	}
	return -1
}

// All returns a copy of the sequence in order.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Page returns the 1-based page of at most size records. Pages before the
// first or past the last are empty.
func (s *Store) Page(page, size int) []Record {
	if page < 1 || size < 1 {
		return nil
	}
	offset := (page - 1) * size
	n := len(s.records)
	out := s.records[min(offset, n):min(offset+size, n)]
	if len(out) == 0 {
		return nil
	}
	return append([]Record(nil), out...)
}

// Find returns the first record accepted by match.
func (s *Store) Find(match func(Record) bool) (Record, bool) {
	for _, r := range s.records {
		if match(r) {
			return r, true
		}
	}
	return Record{}, false
}

// Filter returns every record accepted by match, in order.
func (s *Store) Filter(match func(Record) bool) []Record {
	var out []Record
	for _, r := range s.records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// ToRows serializes records into file rows, dropping Position.
func ToRows(records []Record) []string {
	rows := make([]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	return rows
}
