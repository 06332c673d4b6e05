package catalog

import "github.com/shopspring/decimal"

// OrderType is the fulfillment channel picked at session start.
// It selects which of the two price fields on a product (and which
// extra price on a combo item) applies.
type OrderType string

const (
	OrderTypeTakeout  OrderType = "takeout"
	OrderTypeDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeTakeout || t == OrderTypeDelivery
}

// Product is a sellable menu item as delivered by the menu source.
// Products are read-only once loaded; the ordering engine never
// mutates them.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PriceTakeout  decimal.Decimal `json:"price_takeout"`
	PriceDelivery decimal.Decimal `json:"price_delivery"`
	IsCombo       bool            `json:"is_combo"`
	ComboGroups   []ComboGroup    `json:"combo_groups,omitempty"`
}

// PriceFor returns the base price for the given order type.
func (p *Product) PriceFor(t OrderType) decimal.Decimal {
	if t == OrderTypeDelivery {
		return p.PriceDelivery
	}
	return p.PriceTakeout
}

// GroupKind says how a combo group constrains the total selected
// quantity across its items.
type GroupKind string

const (
	// KindForced requires exactly ForcedQuantity units in total.
	KindForced GroupKind = "forced"
	// KindBounded allows up to MaxQuantity units in total.
	KindBounded GroupKind = "bounded"
	// KindUnconstrained allows any non-negative total.
	KindUnconstrained GroupKind = "unconstrained"
)

// ComboGroup is one named constraint scope inside a combo product.
// Group names are unique within a product; groups keep the order the
// menu source defines them in.
type ComboGroup struct {
	Name           string      `json:"name"`
	Kind           GroupKind   `json:"kind"`
	ForcedQuantity int         `json:"forced_quantity,omitempty"`
	MaxQuantity    int         `json:"max_quantity,omitempty"`
	Items          []ComboItem `json:"items"`
}

// Item returns the group's item with the given ID, or nil.
func (g *ComboGroup) Item(id string) *ComboItem {
	for i := range g.Items {
		if g.Items[i].ID == id {
			return &g.Items[i]
		}
	}
	return nil
}

// ComboItem is one selectable option inside a combo group. The extra
// prices are added on top of the combo's base price per unit selected.
// Badges are informational only.
type ComboItem struct {
	ID              string          `json:"id"`
	Label           string          `json:"label"`
	ExtraTakeout    decimal.Decimal `json:"extra_takeout"`
	ExtraDelivery   decimal.Decimal `json:"extra_delivery"`
	DefaultQuantity int             `json:"default_quantity"`
	DefaultSelected bool            `json:"default_selected"`
	Badges          []string        `json:"badges,omitempty"`
}

// ExtraFor returns the extra price for the given order type.
func (i *ComboItem) ExtraFor(t OrderType) decimal.Decimal {
	if t == OrderTypeDelivery {
		return i.ExtraDelivery
	}
	return i.ExtraTakeout
}

// Group returns the product's combo group with the given name, or nil.
func (p *Product) Group(name string) *ComboGroup {
	for i := range p.ComboGroups {
		if p.ComboGroups[i].Name == name {
			return &p.ComboGroups[i]
		}
	}
	return nil
}
