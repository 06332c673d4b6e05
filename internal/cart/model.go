package cart

import (
	"github.com/shopspring/decimal"

	"kioskqr/internal/catalog"
)

// SubLine is one resolved combo choice under a combo line. Price is
// the item's extra price per unit, resolved for the cart's order type
// when the line was committed.
type SubLine struct {
	ItemID   string          `json:"item_id"`
	Label    string          `json:"label"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Line is one cart entry. Name, Price, and SubLines are frozen at the
// moment the line is created; later catalog or price changes never
// touch a committed line. Product is the last-known-good catalog
// record and is kept for reference only, never re-read for pricing.
type Line struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"product_id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Quantity    int              `json:"quantity"`
	IsMainCombo bool             `json:"is_main_combo"`
	SubLines    []SubLine        `json:"sub_lines,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Product     *catalog.Product `json:"-"`
}

// Cart is the ordered set of lines for one kiosk session, plus
// order-level notes and the order type fixed at session start.
type Cart struct {
	Lines     []Line            `json:"lines"`
	Notes     string            `json:"notes,omitempty"`
	OrderType catalog.OrderType `json:"order_type"`
}
