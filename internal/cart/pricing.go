package cart

import "github.com/shopspring/decimal"

// LinePrice computes the monetary value of one cart line: the resolved
// unit price times quantity, plus every sub-line's extra price times
// its quantity when the line is a combo. Sub-lines are at most one
// level deep; nothing below them is priced.
func LinePrice(l *Line) decimal.Decimal {
	total := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
	if !l.IsMainCombo {
		return total
	}
	for i := range l.SubLines {
		s := &l.SubLines[i]
		total = total.Add(s.Price.Mul(decimal.NewFromInt(int64(s.Quantity))))
	}
	return total
}

// CartTotal sums LinePrice over every line. The result does not depend
// on line order.
func CartTotal(c *Cart) decimal.Decimal {
	total := decimal.Zero
	for i := range c.Lines {
		total = total.Add(LinePrice(&c.Lines[i]))
	}
	return total
}
