package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addCmd struct {
	itemFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item at the end of the inventory" }
func (*addCmd) Usage() string {
	return `inv add -name <name> -quantity <quantity> -price <price> [-expiry <YYYY-MM-DD>]

  Adds a new item to the inventory:
  - name: The item name (e.g., "Laptop"). Must not be empty.
  - quantity: The number of units in stock, zero or more (e.g., 10 or 2.5).
  - price: The unit price, zero or more (e.g., 1500).
  - expiry: The expiry date. When given, the item is perishable.

`
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return exitStatus(fmt.Errorf("%w: no arguments expected", errUsage))
	}
	it, err := c.newItem()
	if err != nil {
		return exitStatus(err)
	}

	store := OpenStore()
	if err := store.AddItem(it); err != nil {
		return exitStatus(err)
	}

	fmt.Printf("✅ Successfully added %q at index %d.\n", it.Name(), store.Len()-1)
	return subcommands.ExitSuccess
}
