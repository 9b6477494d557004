package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type updateCmd struct {
	index int
	itemFlags
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "replace an item of the inventory" }
func (*updateCmd) Usage() string {
	return `inv update -i <index> [-name <name>] [-quantity <quantity>] [-price <price>] [-expiry <YYYY-MM-DD>]

  Replaces the item at the given index (see inv view). Fields that are not
  given keep their current value. An item keeps its kind: -expiry is only
  accepted for perishable items.

`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the item to update (required)")
	c.itemFlags.SetFlags(f)
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return exitStatus(fmt.Errorf("%w: no arguments expected", errUsage))
	}

	store := OpenStore()
	old, err := store.Item(c.index)
	if err != nil {
		return exitStatus(err)
	}
	it, err := c.merge(old)
	if err != nil {
		return exitStatus(err)
	}
	if err := store.UpdateItem(c.index, it); err != nil {
		return exitStatus(err)
	}

	fmt.Printf("✅ Successfully updated item %d: %s\n", c.index, it.Description())
	return subcommands.ExitSuccess
}
