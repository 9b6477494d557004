package renderer

import (
	"time"

	"github.com/etnz/inventory"
)

// Log is the data behind the transaction log report.
type Log struct {
	Entries []LogEntry `json:"entries"`
}

// LogEntry is a single transaction, with its short ID and time already formatted.
type LogEntry struct {
	ID      string `json:"id"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// NewLog converts transaction log entries, oldest first.
func NewLog(entries []inventory.Entry) *Log {
	l := &Log{Entries: make([]LogEntry, 0, len(entries))}
	for _, e := range entries {
		l.Entries = append(l.Entries, LogEntry{
			ID:      e.ShortID(),
			Time:    e.Time.Local().Format(time.DateTime),
			Message: e.Message,
		})
	}
	return l
}
