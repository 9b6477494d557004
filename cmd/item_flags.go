package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/date"
)

// errUsage marks errors caused by invalid flags.
var errUsage = errors.New("usage error")

// itemFlags are the item fields shared by the add and update commands.
// Empty values mean "not provided".
type itemFlags struct {
	name     string
	quantity string
	price    string
	expiry   string
}

func (c *itemFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.StringVar(&c.quantity, "quantity", "", "Number of units in stock (e.g. 10 or 2.5)")
	f.StringVar(&c.price, "price", "", "Unit price (e.g. 1500 or 2.99)")
	f.StringVar(&c.expiry, "expiry", "", "Expiry date (YYYY-MM-DD), only for perishable items")
}

// newItem builds a new item: perishable when an expiry date is given.
func (c *itemFlags) newItem() (inventory.Item, error) {
	if c.name == "" || c.quantity == "" || c.price == "" {
		return nil, fmt.Errorf("%w: -name, -quantity and -price are required", errUsage)
	}
	return c.merge(nil)
}

// merge builds an item from old, replacing the fields that were provided.
// A nil old item is a new item. The variant of old is always kept.
func (c *itemFlags) merge(old inventory.Item) (inventory.Item, error) {
	name, quantity, price := c.name, inventory.Q(0), inventory.P(0)
	if old != nil {
		quantity, price = old.Quantity(), old.Price()
		if name == "" {
			name = old.Name()
		}
	}
	var err error
	if c.quantity != "" {
		if quantity, err = inventory.ParseQuantity(c.quantity); err != nil {
			return nil, fmt.Errorf("%w: invalid -quantity %q: %v", errUsage, c.quantity, err)
		}
	}
	if c.price != "" {
		if price, err = inventory.ParsePrice(c.price); err != nil {
			return nil, fmt.Errorf("%w: invalid -price %q: %v", errUsage, c.price, err)
		}
	}

	var expiry date.Date
	if c.expiry != "" {
		if expiry, err = date.Parse(c.expiry); err != nil {
			return nil, fmt.Errorf("%w: invalid -expiry: %v", errUsage, err)
		}
	}

	switch v := old.(type) {
	case nil:
		if c.expiry != "" {
			return inventory.NewPerishable(name, quantity, price, expiry)
		}
		return inventory.NewNonPerishable(name, quantity, price)
	case inventory.Perishable:
		if c.expiry == "" {
			expiry = v.Expiry()
		}
		return inventory.NewPerishable(name, quantity, price, expiry)
	default:
		if c.expiry != "" {
			return nil, fmt.Errorf("%w: -expiry is only valid for perishable items, %q is not", errUsage, old.Name())
		}
		return inventory.NewNonPerishable(name, quantity, price)
	}
}
