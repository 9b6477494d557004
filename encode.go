package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/inventory/date"
)

// The inventory document is a JSON array of records:
//
//	{"name":"Milk","quantity":2,"price":3,"type":"Perishable","expiryDate":"2025-12-31"}
//
// "type" is the discriminant, "expiryDate" is present iff type is "Perishable".
// Keys are written in a fixed order so that the file diffs nicely.

const indent = "  "

func (i item) appendTo(w *jsonObjectWriter, t ItemType) *jsonObjectWriter {
	return w.Append("name", i.name).
		Append("quantity", i.quantity).
		Append("price", i.price).
		Append("type", t)
}

// MarshalJSON implements json.Marshaler with a stable key order.
func (n NonPerishable) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	return n.item.appendTo(&w, TypeNonPerishable).MarshalJSON()
}

// MarshalJSON implements json.Marshaler with a stable key order.
func (p Perishable) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	return p.item.appendTo(&w, TypePerishable).
		Append("expiryDate", p.expiry).
		MarshalJSON()
}

var (
	_ json.Marshaler = NonPerishable{}
	_ json.Marshaler = Perishable{}
)

// EncodeItems writes items as an indented JSON array.
func EncodeItems(w io.Writer, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(items, "", indent)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}

// DecodeItems reads a JSON array of records and returns the items in document order.
// A document made only of white spaces is an empty inventory.
// Any record that cannot be turned into an item fails the whole decoding with a *DecodeError.
func DecodeItems(r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []Item{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: not a JSON array of items: %w", ErrDecode, err)
	}

	items := make([]Item, 0, len(records))
	for i, raw := range records {
		it, err := decodeItem(raw)
		if err != nil {
			return nil, &DecodeError{Record: i, Err: err}
		}
		items = append(items, it)
	}
	return items, nil
}

// recordKeys are the properties of a record, spelled exactly as written by EncodeItems.
var recordKeys = []string{"name", "quantity", "price", "type", "expiryDate"}

// checkKeys rejects keys that only differ from a record property by case,
// encoding/json would silently accept them. Other unknown keys are ignored.
func checkKeys(raw json.RawMessage) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return err
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	for _, k := range sorted {
		for _, known := range recordKeys {
			if k != known && strings.EqualFold(k, known) {
				return fmt.Errorf("property %q must be spelled %q", k, known)
			}
		}
	}
	return nil
}

// decodeItem decodes a single record, switching on its "type".
func decodeItem(raw json.RawMessage) (Item, error) {
	if err := checkKeys(raw); err != nil {
		return nil, err
	}

	// Use a temporary type that has all possible fields.
	// Pointers tell a missing field from a zero one.
	var temp struct {
		Type       ItemType   `json:"type"`
		Name       *string    `json:"name"`
		Quantity   *Quantity  `json:"quantity"`
		Price      *Price     `json:"price"`
		ExpiryDate *date.Date `json:"expiryDate"`
	}
	if err := json.Unmarshal(raw, &temp); err != nil {
		return nil, err
	}

	var missing []string
	if temp.Name == nil {
		missing = append(missing, "name")
	}
	if temp.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if temp.Price == nil {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing properties %q", missing)
	}

	switch temp.Type {
	case TypeNonPerishable:
		if temp.ExpiryDate != nil {
			return nil, fmt.Errorf("property %q is only allowed on %q items", "expiryDate", TypePerishable)
		}
		return NewNonPerishable(*temp.Name, *temp.Quantity, *temp.Price)
	case TypePerishable:
		if temp.ExpiryDate == nil {
			return nil, fmt.Errorf("missing property %q on a %q item", "expiryDate", TypePerishable)
		}
		return NewPerishable(*temp.Name, *temp.Quantity, *temp.Price, *temp.ExpiryDate)
	case "":
		return nil, errors.New(`missing property "type"`)
	default:
		return nil, fmt.Errorf("unknown item type %q, want %q or %q", temp.Type, TypePerishable, TypeNonPerishable)
	}
}
