package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/date"
)

// newTestSession returns a session reading the given input lines, over a store in a temp dir.
func newTestSession(t *testing.T, input ...string) (*session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	store := inventory.Open(filepath.Join(t.TempDir(), "inventory.json"), inventory.WithLogger(nil))
	s := &session{
		store:  store,
		prompt: newPrompter(strings.NewReader(strings.Join(input, "\n")+"\n"), &out),
		out:    &out,
		today:  func() date.Date { return date.New(2026, 1, 1) },
		print:  func(md string) { out.WriteString(md) },
	}
	return s, &out
}

func TestSessionAddViewExit(t *testing.T) {
	s, out := newTestSession(t,
		"1", "Laptop", "10", "1500", "n",
		"1", "Milk", "2", "3", "y", "2025-12-31",
		"2",
		"6",
	)
	if err := s.run(); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	items := s.store.ViewItems()
	if len(items) != 2 {
		t.Fatalf("store has %d items, want 2", len(items))
	}
	if _, ok := items[1].(inventory.Perishable); !ok {
		t.Errorf("item 1 is a %T, want a Perishable", items[1])
	}
	for _, want := range []string{
		"Non-perishable item added successfully!",
		"Perishable item added successfully!",
		"| 1 | Perishable | Milk | 2 | 3 | 6 | 2025-12-31 ⚠️ expired |",
		"Exiting...",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}

	// The session persisted its changes.
	saved, err := inventory.LoadItems(s.store.Path())
	if err != nil || len(saved) != 2 {
		t.Errorf("LoadItems() = %d items, %v, want 2", len(saved), err)
	}
}

func TestSessionUpdateKeepsDefaults(t *testing.T) {
	s, _ := newTestSession(t,
		"1", "Milk", "2", "3", "y", "2025-12-31",
		// update item 0: keep the name, new quantity, keep price and expiry.
		"3", "0", "", "5", "", "",
		"6",
	)
	if err := s.run(); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	got, err := s.store.Item(0)
	if err != nil {
		t.Fatal(err)
	}
	want := inventory.MustPerishable("Milk", inventory.Q(5), inventory.P(3), date.New(2025, 12, 31))
	if !inventory.Equal(got, want) {
		t.Errorf("item 0 = %q, want %q", got.Description(), want.Description())
	}
}

func TestSessionDelete(t *testing.T) {
	s, out := newTestSession(t,
		"1", "Laptop", "10", "1500", "n",
		"1", "Pen", "100", "0.5", "n",
		"4", "0", "n", // cancelled
		"4", "0", "y",
		"5",
		"6",
	)
	if err := s.run(); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	items := s.store.ViewItems()
	if len(items) != 1 || items[0].Name() != "Pen" {
		t.Errorf("store items = %v, want [Pen]", items)
	}
	for _, want := range []string{
		"Deletion cancelled.",
		"Item deleted successfully!",
		`Are you sure you want to delete "Laptop"?`,
		"Deleted item: Laptop",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestSessionEmptyInventory(t *testing.T) {
	s, out := newTestSession(t, "3", "4", "2", "6")
	if err := s.run(); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	for _, want := range []string{"No items to update.", "No items to delete.", "No items in inventory."} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestSessionInputClosed(t *testing.T) {
	// The input ends in the middle of an add.
	s, out := newTestSession(t, "1", "Laptop")
	if err := s.run(); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if s.store.Len() != 0 {
		t.Errorf("an interrupted add must not add anything")
	}
	if !strings.Contains(out.String(), "Exiting...") {
		t.Errorf("output does not contain %q:\n%s", "Exiting...", out.String())
	}
}

func TestSessionRejectsInvalidAnswers(t *testing.T) {
	s, out := newTestSession(t,
		"7",
		"1", "", "Laptop", "-1", "10", "abc", "1500", "n",
		"6",
	)
	if err := s.run(); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if s.store.Len() != 1 {
		t.Fatalf("store has %d items, want 1", s.store.Len())
	}
	for _, want := range []string{"Please enter a number between 1 and 6", "Please enter a value", "Please enter a number, zero or more"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}
