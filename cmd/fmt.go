package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the inventory file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `inv fmt

  Validates and formats the inventory file. This command reads all items,
  validates them, and writes them back in the canonical JSON form (two
  spaces indentation, fixed key order). Unlike the other commands, a file
  that cannot be decoded is reported and left untouched.

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	items, err := inventory.LoadItems(*inventoryFile)
	if err != nil {
		return exitStatus(err)
	}
	if err := inventory.SaveItems(*inventoryFile, items); err != nil {
		return exitStatus(err)
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q (%d items).\n", *inventoryFile, len(items))
	return subcommands.ExitSuccess
}
