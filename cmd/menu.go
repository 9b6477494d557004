package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/date"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "manage the inventory interactively" }
func (*menuCmd) Usage() string {
	return `inv menu

  Starts an interactive session: add, view, update and delete items from a
  numbered menu. The inventory is opened once for the whole session, so the
  transaction log covers every operation of the session.

`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, err := displayCurrency()
	if err != nil {
		return exitStatus(err)
	}
	s := &session{
		store:    OpenStore(),
		prompt:   newPrompter(os.Stdin, os.Stdout),
		out:      os.Stdout,
		currency: cur,
		today:    date.Today,
		print:    printMarkdown,
	}
	return exitStatus(s.run())
}

// session is an interactive menu over a single store.
type session struct {
	store    *inventory.Store
	prompt   *prompter
	out      io.Writer
	currency string
	today    func() date.Date
	print    func(md string)
}

const menuText = `
Welcome to the Inventory Management System
1. Add Item
2. View Items
3. Update Item
4. Delete Item
5. Transaction Log
6. Exit
`

// run loops over the menu until the user exits or the input is closed.
func (s *session) run() error {
	for {
		fmt.Fprint(s.out, menuText)
		choice, err := s.prompt.AskInt("Please select an option (1-6)", 1, 6)
		if err != nil {
			return s.ended(err)
		}

		switch choice {
		case 1:
			err = s.add()
		case 2:
			s.view()
		case 3:
			err = s.update()
		case 4:
			err = s.remove()
		case 5:
			s.print(renderer.RenderLog(renderer.NewLog(s.store.Log())))
		case 6:
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}
		if errors.Is(err, errAborted) {
			return s.ended(err)
		}
		if err != nil {
			// Report and go back to the menu, the store is still usable.
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// ended turns a closed input into a normal exit.
func (s *session) ended(err error) error {
	if errors.Is(err, errAborted) {
		fmt.Fprintln(s.out, "\nExiting...")
		return nil
	}
	return err
}

func (s *session) add() error {
	var f itemFlags
	var err error
	if f.name, err = s.prompt.AskValid("Enter item name", "", notEmpty); err != nil {
		return err
	}
	if f.quantity, err = s.prompt.AskValid("Enter item quantity", "", isQuantity); err != nil {
		return err
	}
	if f.price, err = s.prompt.AskValid("Enter item price", "", isPrice); err != nil {
		return err
	}
	perishable, err := s.prompt.Confirm("Is the item perishable?", false)
	if err != nil {
		return err
	}
	if perishable {
		if f.expiry, err = s.prompt.AskValid("Enter expiry date (YYYY-MM-DD)", "", isDate); err != nil {
			return err
		}
	}

	it, err := f.newItem()
	if err != nil {
		return err
	}
	if err := s.store.AddItem(it); err != nil {
		return err
	}
	if perishable {
		fmt.Fprintln(s.out, "Perishable item added successfully!")
	} else {
		fmt.Fprintln(s.out, "Non-perishable item added successfully!")
	}
	return nil
}

func (s *session) view() {
	stock := renderer.NewStock(s.store.ViewItems(), s.today(), s.currency)
	s.print(renderer.RenderStock(stock, renderer.StockRenderOptions{}))
}

// choose lists the items and asks for an index. ok is false when there is nothing to choose from.
func (s *session) choose(action string) (index int, ok bool, err error) {
	items := s.store.ViewItems()
	if len(items) == 0 {
		fmt.Fprintf(s.out, "No items to %s.\n", action)
		return 0, false, nil
	}
	for i, it := range items {
		fmt.Fprintf(s.out, "%d. %s\n", i, it.Description())
	}
	index, err = s.prompt.AskInt(fmt.Sprintf("Select an item to %s", action), 0, len(items)-1)
	return index, err == nil, err
}

func (s *session) update() error {
	index, ok, err := s.choose("update")
	if !ok {
		return err
	}
	old, err := s.store.Item(index)
	if err != nil {
		return err
	}

	f := itemFlags{}
	if f.name, err = s.prompt.AskValid("Enter new item name", old.Name(), notEmpty); err != nil {
		return err
	}
	if f.quantity, err = s.prompt.AskValid("Enter new item quantity", old.Quantity().String(), isQuantity); err != nil {
		return err
	}
	if f.price, err = s.prompt.AskValid("Enter new item price", old.Price().String(), isPrice); err != nil {
		return err
	}
	if p, isPerishable := old.(inventory.Perishable); isPerishable {
		if f.expiry, err = s.prompt.AskValid("Enter new expiry date (YYYY-MM-DD)", p.Expiry().String(), isDate); err != nil {
			return err
		}
	}

	it, err := f.merge(old)
	if err != nil {
		return err
	}
	if err := s.store.UpdateItem(index, it); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Item updated successfully!")
	return nil
}

func (s *session) remove() error {
	index, ok, err := s.choose("delete")
	if !ok {
		return err
	}
	it, err := s.store.Item(index)
	if err != nil {
		return err
	}
	confirmed, err := s.prompt.Confirm(fmt.Sprintf("Are you sure you want to delete %q?", it.Name()), false)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(s.out, "Deletion cancelled.")
		return nil
	}
	if err := s.store.DeleteItem(index); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Item deleted successfully!")
	return nil
}

// answer validators

func notEmpty(s string) error {
	if s == "" {
		return errors.New("Please enter a value")
	}
	return nil
}

func isQuantity(s string) error {
	q, err := inventory.ParseQuantity(s)
	if err != nil || q.IsNegative() {
		return errors.New("Please enter a number, zero or more")
	}
	return nil
}

func isPrice(s string) error {
	p, err := inventory.ParsePrice(s)
	if err != nil || p.IsNegative() {
		return errors.New("Please enter a number, zero or more")
	}
	return nil
}

func isDate(s string) error {
	_, err := date.Parse(s)
	return err
}
