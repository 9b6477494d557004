package cmd

import (
	"context"
	"flag"

	"github.com/etnz/inventory/date"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct {
	date    string
	noTotal bool
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display all items in the inventory" }
func (*viewCmd) Usage() string {
	return `inv view [-d <date>] [-no-total]

  Displays all items in inventory order. The index column is the one to use
  with update and delete. Perishable items that expired before the report
  date are flagged.

`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date used to flag expired items (defaults to today).")
	f.BoolVar(&c.noTotal, "no-total", false, "Do not display the total value of the inventory.")
}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := date.Today()
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			return exitStatus(err)
		}
	}
	cur, err := displayCurrency()
	if err != nil {
		return exitStatus(err)
	}

	store := OpenStore()
	stock := renderer.NewStock(store.ViewItems(), on, cur)
	printMarkdown(renderer.RenderStock(stock, renderer.StockRenderOptions{HideTotal: c.noTotal}))
	return subcommands.ExitSuccess
}
