package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"slices"
	"time"
)

// Store owns the ordered list of items backed by a JSON file.
//
// Items are identified by their position: deleting an item shifts the
// following ones down by one. Every mutation is recorded in the transaction
// log and then written to disk before the call returns.
//
// A Store is meant to be opened once per process and is not safe for concurrent use.
type Store struct {
	path   string
	items  []Item
	txlog  *TransactionLog
	logger *log.Logger

	loadErr  error
	preserve bool // the file on disk failed to load and must be preserved before the first save.
}

// Option configures a Store.
type Option func(*options)

type options struct {
	logger *log.Logger
	now    func() time.Time
}

// WithLogger sets the logger receiving load warnings and transaction log entries.
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }

// WithClock sets the clock used to timestamp transaction log entries.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// Open returns a store backed by the file at path, loading its items.
//
// Open never fails: a missing file is a fresh start, and a file that cannot
// be decoded is logged and replaced by an empty inventory. In the latter case
// LoadErr returns the reason, and the unreadable file is copied to
// CorruptPath(path) before it is first overwritten.
func Open(path string, opts ...Option) *Store {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store{
		path:   path,
		items:  []Item{},
		txlog:  NewTransactionLog(o.logger, o.now),
		logger: o.logger,
	}

	items, err := LoadItems(path)
	switch {
	case err == nil:
		s.items = items
		s.logf("inventory loaded from %q (%d items)", path, len(items))
	case errors.Is(err, fs.ErrNotExist):
		s.logf("inventory %q does not exist, starting with an empty inventory", path)
	default:
		s.loadErr = err
		s.preserve = true
		s.logf("warning, starting with an empty inventory: %v", err)
	}
	return s
}

func (s *Store) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Path returns the path of the backing file.
func (s *Store) Path() string { return s.path }

// LoadErr returns the error that prevented loading the backing file, if any.
// A missing file is not an error.
func (s *Store) LoadErr() error { return s.loadErr }

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// Log returns a copy of the transaction log entries.
func (s *Store) Log() []Entry { return s.txlog.Entries() }

// Item returns the item at index.
func (s *Store) Item(index int) (Item, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return s.items[index], nil
}

// AddItem appends it at the end of the inventory.
func (s *Store) AddItem(it Item) error {
	if err := Validate(it); err != nil {
		return err
	}
	s.items = append(s.items, it)
	s.txlog.Record(fmt.Sprintf("Added item: %s", it.Name()))
	return s.Save()
}

// ViewItems returns a snapshot of all items in order.
func (s *Store) ViewItems() []Item {
	s.txlog.Record("Viewed all items.")
	return slices.Clone(s.items)
}

// UpdateItem replaces the item at index, keeping its position.
func (s *Store) UpdateItem(index int, it Item) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if err := Validate(it); err != nil {
		return err
	}
	s.items[index] = it
	s.txlog.Record(fmt.Sprintf("Updated item: %s", it.Name()))
	return s.Save()
}

// DeleteItem removes the item at index; later items shift down by one.
func (s *Store) DeleteItem(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	removed := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)
	s.txlog.Record(fmt.Sprintf("Deleted item: %s", removed.Name()))
	return s.Save()
}

// Save writes all items to the backing file.
//
// Mutations call Save themselves. When they fail with ErrPersist the change
// is kept in memory, and Save can be called again to retry the write.
func (s *Store) Save() error {
	if s.preserve {
		if err := preserve(s.path); err != nil {
			return err
		}
		s.logf("warning, the unreadable inventory was preserved as %q", CorruptPath(s.path))
		s.preserve = false
	}
	return SaveItems(s.path, s.items)
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.items) {
		return &IndexError{Index: index, Len: len(s.items)}
	}
	return nil
}
