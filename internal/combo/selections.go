package combo

import "kioskqr/internal/catalog"

// Entry is one (combo item, quantity) pair recorded against a group.
// A quantity of zero is equivalent to the entry being absent.
type Entry struct {
	Item     *catalog.ComboItem `json:"item"`
	Quantity int                `json:"quantity"`
}

// Selections maps a combo group name to the entries the customer has
// picked in it. A missing key reads as an empty group. Selections
// belong to the one combo configuration in progress and are discarded
// when the line is committed or the configuration is cancelled.
type Selections map[string][]Entry

// GroupTotal sums the selected quantities in one group.
func (s Selections) GroupTotal(group string) int {
	total := 0
	for _, e := range s[group] {
		total += e.Quantity
	}
	return total
}

// Set records the quantity for an item in a group, replacing any
// previous entry for the same item. Setting zero removes the entry.
func (s Selections) Set(group string, item *catalog.ComboItem, quantity int) {
	entries := s[group]
	for i := range entries {
		if entries[i].Item.ID == item.ID {
			if quantity <= 0 {
				s[group] = append(entries[:i], entries[i+1:]...)
				return
			}
			entries[i].Quantity = quantity
			return
		}
	}
	if quantity <= 0 {
		return
	}
	s[group] = append(entries, Entry{Item: item, Quantity: quantity})
}

// DefaultSelections pre-populates a fresh working set from the
// product's default-selected combo items.
func DefaultSelections(p *catalog.Product) Selections {
	sel := make(Selections, len(p.ComboGroups))
	for gi := range p.ComboGroups {
		group := &p.ComboGroups[gi]
		for ii := range group.Items {
			item := &group.Items[ii]
			if !item.DefaultSelected {
				continue
			}
			qty := item.DefaultQuantity
			if qty < 1 {
				qty = 1
			}
			sel.Set(group.Name, item, qty)
		}
	}
	return sel
}
