package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// useInventoryFile points the -inventory-file flag to a file in a temp dir, for the duration of the test.
// The file is written with items unless items is nil, then it does not exist.
func useInventoryFile(t *testing.T, items []inventory.Item) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	if items != nil {
		if err := inventory.SaveItems(path, items); err != nil {
			t.Fatalf("SaveItems() error: %v", err)
		}
	}
	old := *inventoryFile
	*inventoryFile = path
	t.Cleanup(func() { *inventoryFile = old })
	return path
}

// execute parses args with the command flags and runs it.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse %q: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

// savedNames returns the names of the items stored at path.
func savedNames(t *testing.T, path string) []string {
	t.Helper()
	items, err := inventory.LoadItems(path)
	if err != nil {
		t.Fatalf("LoadItems() error: %v", err)
	}
	var names []string
	for _, it := range items {
		names = append(names, it.Name())
	}
	return names
}

func fileContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	return string(data)
}
