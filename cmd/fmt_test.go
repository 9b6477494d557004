package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/date"
	"github.com/google/subcommands"
)

func TestFmtCmd(t *testing.T) {
	var canonical bytes.Buffer
	err := inventory.EncodeItems(&canonical, []inventory.Item{
		inventory.MustNonPerishable("Laptop", inventory.Q(10), inventory.P(1500)),
		inventory.MustPerishable("Milk", inventory.Q(2), inventory.P(3), date.New(2025, 12, 31)),
	})
	if err != nil {
		t.Fatalf("EncodeItems() error: %v", err)
	}

	tests := []struct {
		name    string
		content string // written as is, a missing file when empty.
		status  subcommands.ExitStatus
		want    string // file content after the command, "" for no file.
	}{
		{
			name:    "reorders keys and indents",
			content: `[{"type":"NonPerishable","price":1500,"quantity":10,"name":"Laptop"},{"expiryDate":"2025-12-31","name":"Milk","type":"Perishable","quantity":"2","price":3.0}]`,
			status:  subcommands.ExitSuccess,
			want:    canonical.String(),
		},
		{
			name:    "already canonical",
			content: canonical.String(),
			status:  subcommands.ExitSuccess,
			want:    canonical.String(),
		},
		{
			name:    "corrupt file is left untouched",
			content: `[{"name":"Pen","quantity":1,"price":1,"type":"Frozen"}]`,
			status:  subcommands.ExitFailure,
			want:    `[{"name":"Pen","quantity":1,"price":1,"type":"Frozen"}]`,
		},
		{
			name:   "missing file",
			status: subcommands.ExitFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := useInventoryFile(t, nil)
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}

			if got := execute(t, &fmtCmd{}); got != tt.status {
				t.Errorf("fmt = exit status %v, want %v", got, tt.status)
			}

			if tt.want == "" {
				if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("fmt created %q: %v", path, err)
				}
				return
			}
			if got := fileContent(t, path); got != tt.want {
				t.Errorf("fmt wrote:\n%s\nwant:\n%s", got, tt.want)
			}
			if _, err := os.Stat(inventory.CorruptPath(path)); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("fmt should not preserve a copy of the file: %v", err)
			}
		})
	}
}
