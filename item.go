package inventory

import (
	"fmt"
	"strings"

	"github.com/etnz/inventory/date"
)

// ItemType is the discriminant persisted with each item.
type ItemType string

const (
	TypePerishable    ItemType = "Perishable"
	TypeNonPerishable ItemType = "NonPerishable"
)

// Item is a single inventory record. The set of implementations is closed:
// only NonPerishable and Perishable satisfy it.
type Item interface {
	Name() string
	Quantity() Quantity
	Price() Price
	Type() ItemType
	Description() string

	common() item
}

// item holds the fields shared by every variant.
type item struct {
	name     string
	quantity Quantity
	price    Price
}

func (i item) Name() string       { return i.name }
func (i item) Quantity() Quantity { return i.quantity }
func (i item) Price() Price       { return i.price }
func (i item) common() item       { return i }

func (i item) Description() string {
	return fmt.Sprintf("Item: %s, Quantity: %s, Price: %s", i.name, i.quantity, i.price)
}

func (i item) validate() error {
	var errs []string
	if strings.TrimSpace(i.name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if i.quantity.IsNegative() {
		errs = append(errs, fmt.Sprintf("quantity %s must not be negative", i.quantity))
	}
	if i.price.IsNegative() {
		errs = append(errs, fmt.Sprintf("price %s must not be negative", i.price))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidItem, i.name, strings.Join(errs, ", "))
	}
	return nil
}

// NonPerishable is an item without an expiry date.
type NonPerishable struct {
	item
}

// NewNonPerishable returns a validated non-perishable item.
func NewNonPerishable(name string, quantity Quantity, price Price) (NonPerishable, error) {
	it := NonPerishable{item{name: name, quantity: quantity, price: price}}
	return it, it.validate()
}

// MustNonPerishable is like NewNonPerishable but panics on error.
func MustNonPerishable(name string, quantity Quantity, price Price) NonPerishable {
	it, err := NewNonPerishable(name, quantity, price)
	if err != nil {
		panic(err.Error())
	}
	return it
}

func (NonPerishable) Type() ItemType { return TypeNonPerishable }

// Perishable is an item that expires on a given day.
type Perishable struct {
	item
	expiry date.Date
}

// NewPerishable returns a validated perishable item.
func NewPerishable(name string, quantity Quantity, price Price, expiry date.Date) (Perishable, error) {
	it := Perishable{item: item{name: name, quantity: quantity, price: price}, expiry: expiry}
	return it, it.validate()
}

// MustPerishable is like NewPerishable but panics on error.
func MustPerishable(name string, quantity Quantity, price Price, expiry date.Date) Perishable {
	it, err := NewPerishable(name, quantity, price, expiry)
	if err != nil {
		panic(err.Error())
	}
	return it
}

func (Perishable) Type() ItemType { return TypePerishable }

// Expiry returns the last day the item can be sold.
func (p Perishable) Expiry() date.Date { return p.expiry }

// Expired reports whether the item expired strictly before day on.
func (p Perishable) Expired(on date.Date) bool { return p.expiry.Before(on) }

// Description extends the common description with the expiry date.
func (p Perishable) Description() string {
	return fmt.Sprintf("%s, Expiry Date: %s", p.item.Description(), p.expiry.Display())
}

func (p Perishable) validate() error {
	if err := p.item.validate(); err != nil {
		return err
	}
	if p.expiry.IsZero() {
		return fmt.Errorf("%w %q: expiry date is required", ErrInvalidItem, p.name)
	}
	return nil
}

// Describe renders the human readable description of any item.
func Describe(it Item) string { return it.Description() }

// Validate checks it against the item contract. It is useful for items
// that did not go through a constructor (e.g. zero values).
func Validate(it Item) error {
	switch v := it.(type) {
	case NonPerishable:
		return v.validate()
	case Perishable:
		return v.validate()
	case nil:
		return fmt.Errorf("%w: nil item", ErrInvalidItem)
	default:
		return fmt.Errorf("%w: unsupported item type %T", ErrInvalidItem, it)
	}
}

// WithFields returns a copy of it, same variant, with the common fields replaced.
// The copy is not validated.
func WithFields(it Item, name string, quantity Quantity, price Price) Item {
	switch v := it.(type) {
	case Perishable:
		v.item = item{name: name, quantity: quantity, price: price}
		return v
	default:
		return NonPerishable{item{name: name, quantity: quantity, price: price}}
	}
}

// WithExpiry returns a copy of p with a new expiry date.
func (p Perishable) WithExpiry(expiry date.Date) Perishable {
	p.expiry = expiry
	return p
}

// Equal reports whether a and b are the same variant with equal fields.
func Equal(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	ca, cb := a.common(), b.common()
	if ca.name != cb.name || !ca.quantity.Equal(cb.quantity) || !ca.price.Equal(cb.price) {
		return false
	}
	pa, aok := a.(Perishable)
	pb, bok := b.(Perishable)
	if aok != bok {
		return false
	}
	return !aok || pa.expiry == pb.expiry
}
