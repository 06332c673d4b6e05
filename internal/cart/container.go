package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kioskqr/internal/catalog"
	"kioskqr/internal/combo"
)

var (
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrLineNotFound       = errors.New("cart line not found")
	ErrComboNotConfigured = errors.New("combo product requires a configuration")
	ErrNotCombo           = errors.New("product is not a combo")
	ErrInvalidSelections  = errors.New("combo selections are invalid")
)

// Container owns one session's cart and is its only mutation surface.
// Every mutation is a single atomic line operation; the total is
// recomputed from current state on every read, never cached.
type Container struct {
	mu   sync.Mutex
	cart Cart
}

func NewContainer(orderType catalog.OrderType) *Container {
	return &Container{cart: Cart{OrderType: orderType}}
}

func (c *Container) OrderType() catalog.OrderType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.OrderType
}

// AddLine appends a simple (non-combo) product line. Combo products
// must go through CommitComboLine so their selections are validated.
func (c *Container) AddLine(p *catalog.Product, quantity int, notes string) (*Line, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if p.IsCombo {
		return nil, ErrComboNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	line := Line{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.PriceFor(c.cart.OrderType),
		Quantity:  quantity,
		Notes:     notes,
		Product:   p,
	}
	c.cart.Lines = append(c.cart.Lines, line)
	return &line, nil
}

// CommitComboLine validates the selections against the product's
// groups and, on success, freezes them into a combo line. The
// validation verdict is the sole gate; an invalid configuration is a
// caller bug surfaced as ErrInvalidSelections.
func (c *Container) CommitComboLine(p *catalog.Product, quantity int, sel combo.Selections, notes string) (*Line, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if !p.IsCombo {
		return nil, ErrNotCombo
	}

	if result := combo.ValidateSelections(p.ComboGroups, sel); !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSelections, result.Message)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	line := Line{
		ID:          uuid.New().String(),
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.PriceFor(c.cart.OrderType),
		Quantity:    quantity,
		IsMainCombo: true,
		SubLines:    materialize(p, sel, c.cart.OrderType),
		Notes:       notes,
		Product:     p,
	}
	c.cart.Lines = append(c.cart.Lines, line)
	return &line, nil
}

// materialize resolves the selections into frozen sub-lines, walking
// groups in definition order. Zero-quantity entries are dropped.
func materialize(p *catalog.Product, sel combo.Selections, orderType catalog.OrderType) []SubLine {
	var subs []SubLine
	for gi := range p.ComboGroups {
		group := &p.ComboGroups[gi]
		for _, entry := range sel[group.Name] {
			if entry.Quantity <= 0 {
				continue
			}
			subs = append(subs, SubLine{
				ItemID:   entry.Item.ID,
				Label:    entry.Item.Label,
				Price:    entry.Item.ExtraFor(orderType),
				Quantity: entry.Quantity,
			})
		}
	}
	return subs
}

// UpdateQuantity sets a line's quantity. Zero removes the line; a
// negative quantity is a caller bug.
func (c *Container) UpdateQuantity(lineID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(lineID)
	if idx < 0 {
		return ErrLineNotFound
	}
	if quantity == 0 {
		c.cart.Lines = append(c.cart.Lines[:idx], c.cart.Lines[idx+1:]...)
		return nil
	}
	c.cart.Lines[idx].Quantity = quantity
	return nil
}

func (c *Container) SetLineNotes(lineID, notes string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(lineID)
	if idx < 0 {
		return ErrLineNotFound
	}
	c.cart.Lines[idx].Notes = notes
	return nil
}

func (c *Container) SetNotes(notes string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Notes = notes
}

func (c *Container) RemoveLine(lineID string) error {
	return c.UpdateQuantity(lineID, 0)
}

// Clear drops every line and the cart notes. The order type survives;
// it belongs to the session, not to the cart contents.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Lines = nil
	c.cart.Notes = ""
}

// Snapshot returns a copy of the cart safe to hand to the UI layer.
func (c *Container) Snapshot() Cart {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.cart
	snap.Lines = make([]Line, len(c.cart.Lines))
	copy(snap.Lines, c.cart.Lines)
	return snap
}

// Total recomputes the payable total from the current lines.
func (c *Container) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CartTotal(&c.cart)
}

// indexOf must be called with c.mu held.
func (c *Container) indexOf(lineID string) int {
	for i := range c.cart.Lines {
		if c.cart.Lines[i].ID == lineID {
			return i
		}
	}
	return -1
}
