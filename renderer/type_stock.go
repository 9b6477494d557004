package renderer

import (
	"github.com/etnz/inventory"
	"github.com/etnz/inventory/date"
)

// Stock is the data behind the inventory report.
// Prices are already formatted so that templates stay free of currency logic.
type Stock struct {
	// Date of the report, used to flag expired items.
	Date date.Date `json:"date"`
	// Currency used to format prices, empty for plain numbers.
	Currency string `json:"currency,omitempty"`
	// Items in inventory order.
	Items []StockItem `json:"items"`
	// Total is the value of all items.
	Total string `json:"total"`
}

// StockItem represents a single line of the inventory.
type StockItem struct {
	Index    int                `json:"index"`
	Type     inventory.ItemType `json:"type"`
	Name     string             `json:"name"`
	Quantity string             `json:"quantity"`
	Price    string             `json:"price"`
	Value    string             `json:"value"`
	Expiry   string             `json:"expiry,omitempty"`
	Expired  bool               `json:"expired,omitempty"`
}

// NewStock builds the report data for items as of day on.
func NewStock(items []inventory.Item, on date.Date, currency string) *Stock {
	format := func(p inventory.Price) string {
		if currency == "" {
			return p.String()
		}
		return p.Money(currency)
	}

	s := &Stock{Date: on, Currency: currency, Items: make([]StockItem, 0, len(items))}
	total := inventory.P(0)
	for i, it := range items {
		value := it.Price().Total(it.Quantity())
		total = total.Add(value)
		line := StockItem{
			Index:    i,
			Type:     it.Type(),
			Name:     it.Name(),
			Quantity: it.Quantity().String(),
			Price:    format(it.Price()),
			Value:    format(value),
		}
		if p, ok := it.(inventory.Perishable); ok {
			line.Expiry = p.Expiry().String()
			line.Expired = p.Expired(on)
		}
		s.Items = append(s.Items, line)
	}
	s.Total = format(total)
	return s
}
