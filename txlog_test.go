package inventory

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"
	"time"
)

func TestTransactionLog(t *testing.T) {
	var out bytes.Buffer
	now := time.Date(2025, time.August, 1, 9, 30, 0, 0, time.UTC)
	l := NewTransactionLog(log.New(&out, "", 0), func() time.Time { return now })

	first := l.Record("Added item: Laptop")
	now = now.Add(time.Minute)
	second := l.Record("Viewed all items.")

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if first.ID == second.ID {
		t.Errorf("entries share the same ID %v", first.ID)
	}
	if id := first.ShortID(); len(id) != 8 || !strings.HasPrefix(first.ID.String(), id) {
		t.Errorf("ShortID() = %q, want the first 8 digits of %v", id, first.ID)
	}
	if !second.Time.After(first.Time) {
		t.Errorf("entries are not stamped with the clock: %v, %v", first.Time, second.Time)
	}

	want := fmt.Sprintf("2025-08-01T09:30:00Z %s: Added item: Laptop\n2025-08-01T09:31:00Z %s: Viewed all items.\n",
		first.ShortID(), second.ShortID())
	if got := out.String(); got != want {
		t.Errorf("logger output = %q, want %q", got, want)
	}

	entries := l.Entries()
	entries[0].Message = "tampered"
	if got := l.Entries()[0].Message; got != "Added item: Laptop" {
		t.Errorf("Entries() is not a copy, entry 0 is now %q", got)
	}
}

func TestTransactionLogDefaults(t *testing.T) {
	l := NewTransactionLog(nil, nil)
	before := time.Now()
	e := l.Record("Deleted item: Pen")
	if e.Time.Before(before) {
		t.Errorf("default clock is not time.Now: %v < %v", e.Time, before)
	}
	if !strings.HasSuffix(e.String(), ": Deleted item: Pen") {
		t.Errorf("String() = %q", e.String())
	}
}
