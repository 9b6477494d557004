package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	index int
	yes   bool

	in io.Reader // confirmation answers, os.Stdin when nil.
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an item from the inventory" }
func (*deleteCmd) Usage() string {
	return `inv delete -i <index> [-y]

  Removes the item at the given index (see inv view). The following items
  move up by one position. Asks for a confirmation unless -y is given.

`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the item to delete (required)")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return exitStatus(fmt.Errorf("%w: no arguments expected", errUsage))
	}

	store := OpenStore()
	it, err := store.Item(c.index)
	if err != nil {
		return exitStatus(err)
	}

	if !c.yes {
		in := c.in
		if in == nil {
			in = os.Stdin
		}
		ok, err := newPrompter(in, os.Stdout).Confirm(fmt.Sprintf("Are you sure you want to delete %q?", it.Name()), false)
		if err != nil {
			return exitStatus(err)
		}
		if !ok {
			fmt.Println("Deletion cancelled.")
			return subcommands.ExitSuccess
		}
	}

	if err := store.DeleteItem(c.index); err != nil {
		return exitStatus(err)
	}
	fmt.Printf("✅ Successfully deleted %q.\n", it.Name())
	return subcommands.ExitSuccess
}
