package inventory

import (
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Entry is a single record of the transaction log.
type Entry struct {
	ID      uuid.UUID
	Time    time.Time
	Message string
}

// ShortID returns the first 8 hex digits of the entry ID, enough to tell
// entries of a session apart.
func (e Entry) ShortID() string { return e.ID.String()[:8] }

// String formats the entry as "<RFC3339 time> <short id>: <message>".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s: %s", e.Time.UTC().Format(time.RFC3339), e.ShortID(), e.Message)
}

// TransactionLog is an append-only, in-memory list of entries.
// Entries are never persisted nor pruned; each one is also printed to a logger.
type TransactionLog struct {
	entries []Entry
	logger  *log.Logger
	now     func() time.Time
}

// NewTransactionLog returns an empty log. A nil logger discards the output,
// a nil now defaults to time.Now.
func NewTransactionLog(logger *log.Logger, now func() time.Time) *TransactionLog {
	if now == nil {
		now = time.Now
	}
	return &TransactionLog{logger: logger, now: now}
}

// Record appends a new entry stamped with the current time and returns it.
func (l *TransactionLog) Record(message string) Entry {
	e := Entry{ID: uuid.New(), Time: l.now(), Message: message}
	l.entries = append(l.entries, e)
	if l.logger != nil {
		l.logger.Println(e)
	}
	return e
}

// Entries returns a copy of all entries, oldest first.
func (l *TransactionLog) Entries() []Entry { return slices.Clone(l.entries) }

// Len returns the number of entries.
func (l *TransactionLog) Len() int { return len(l.entries) }
