// Package directory implements the user-facing phone book operations on top
// of the record store and the backing file.
package directory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"go.uber.org/zap"

	"github.com/jeanpaul/phonebook/internal/records"
	"github.com/jeanpaul/phonebook/internal/storage"
)

// DefaultPageSize is the number of records shown per page.
const DefaultPageSize = 10

// ErrNotFound is returned when no record carries the requested position.
var ErrNotFound = errors.New("directory: record not found")

// Persister durably reflects store mutations.
type Persister interface {
	Append(rows []string) error
	Rewrite(rows []string) error
}

var _ Persister = storage.File{}

// Directory couples a record store with the file it was loaded from.
type Directory struct {
	store    *records.Store
	file     Persister
	name     string
	pageSize int
	log      *zap.Logger
}

// Option configures a Directory.
type Option func(*Directory)

// WithPageSize overrides DefaultPageSize. Values below 1 are ignored.
func WithPageSize(n int) Option {
	return func(d *Directory) {
		if n > 0 {
			d.pageSize = n
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Directory) {
		if l != nil {
			d.log = l
		}
	}
}

// WithName sets the file name shown in edit diffs.
func WithName(name string) Option {
	return func(d *Directory) { d.name = name }
}

// New wraps an already loaded store.
func New(store *records.Store, file Persister, opts ...Option) *Directory {
	d := &Directory{
		store:    store,
		file:     file,
		name:     "data.txt",
		pageSize: DefaultPageSize,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open loads path, creating it when missing, and returns a Directory over it.
func Open(path string, opts ...Option) (*Directory, error) {
	f := storage.File{Path: path}
	lines, err := f.Load()
	if err != nil {
		return nil, err
	}
	store := records.New(lines)
	d := New(store, f, append([]Option{WithName(path)}, opts...)...)
	d.log.Info("directory loaded",
		zap.String("path", path),
		zap.Int("lines", len(lines)),
		zap.Int("records", store.Len()),
	)
	return d, nil
}

// Len reports the number of records.
func (d *Directory) Len() int { return d.store.Len() }

// PageSize reports the configured page size.
func (d *Directory) PageSize() int { return d.pageSize }

// Pages reports how many non-empty pages there are.
func (d *Directory) Pages() int {
	return (d.store.Len() + d.pageSize - 1) / d.pageSize
}

// All returns every record in order.
func (d *Directory) All() []records.Record { return d.store.All() }

// ListPage returns the 1-based page. Out-of-range pages are empty.
func (d *Directory) ListPage(page int) []records.Record {
	return d.store.Page(page, d.pageSize)
}

// Get returns the record carrying position.
func (d *Directory) Get(position int) (records.Record, error) {
	idx := d.store.IndexOf(position)
	if idx < 0 {
		return records.Record{}, fmt.Errorf("%w: position %d", ErrNotFound, position)
	}
	r, _ := d.store.At(idx)
	return r, nil
}

// Add normalizes f, appends it to the store at position Len() and appends its
// row to the file. The store is left unchanged when the append fails.
func (d *Directory) Add(f records.Fields) (records.Record, error) {
	n := d.store.Len()
	r := d.store.Create(n, f.Normalized())
	if err := d.file.Append(records.ToRows([]records.Record{r})); err != nil {
		d.store.Truncate(n)
		return r, fmt.Errorf("append record %d: %w", r.Position, err)
	}
	d.log.Info("record added", zap.Int("position", r.Position), zap.String("last_name", r.LastName))
	return r, nil
}

// FindByLastName returns every record whose last name equals the normalized
// input.
func (d *Directory) FindByLastName(lastName string) []records.Record {
	want := records.Normalize(lastName)
	return d.store.Filter(func(r records.Record) bool { return r.LastName == want })
}

// Edit replaces the record carrying position with the normalized f and
// rewrites the whole file. It returns a unified diff of the file content. The
// old record is restored when the rewrite fails.
func (d *Directory) Edit(position int, f records.Fields) (string, error) {
	idx := d.store.IndexOf(position)
	if idx < 0 {
		return "", fmt.Errorf("%w: position %d", ErrNotFound, position)
	}

	prev, _ := d.store.At(idx)
	before := joinRows(records.ToRows(d.store.All()))
	if err := d.store.Update(idx, f.Normalized()); err != nil {
		return "", err
	}
	rows := records.ToRows(d.store.All())
	if err := d.file.Rewrite(rows); err != nil {
		_ = d.store.Replace(idx, prev)
		return "", fmt.Errorf("rewrite after editing record %d: %w", position, err)
	}
	after := joinRows(rows)

	d.log.Info("record edited", zap.Int("position", position), zap.Int("index", idx), zap.Int("rows", len(rows)))
	return unifiedDiff(d.name, before, after), nil
}

func joinRows(rows []string) string {
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}

func unifiedDiff(name, before, after string) string {
	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(name, name, before, edits))
}
