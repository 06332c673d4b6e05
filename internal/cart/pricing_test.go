package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSimpleLinePrice(t *testing.T) {
	line := Line{Price: dec("20.00"), Quantity: 3}

	got := LinePrice(&line)
	if !got.Equal(dec("60.00")) {
		t.Errorf("expected 60.00, got %s", got)
	}
}

func TestComboLinePrice(t *testing.T) {
	line := Line{
		Price:       dec("50.00"),
		Quantity:    2,
		IsMainCombo: true,
		SubLines: []SubLine{
			{ItemID: "cheese", Price: dec("5.00"), Quantity: 1},
		},
	}

	// 50*2 + 5*1
	got := LinePrice(&line)
	if !got.Equal(dec("105.00")) {
		t.Errorf("expected 105.00, got %s", got)
	}
}

func TestComboLinePriceMultipleSubLines(t *testing.T) {
	line := Line{
		Price:       dec("30.00"),
		Quantity:    1,
		IsMainCombo: true,
		SubLines: []SubLine{
			{ItemID: "e1", Price: dec("2.50"), Quantity: 2},
			{ItemID: "e2", Price: dec("1.25"), Quantity: 4},
		},
	}

	// 30*1 + 2.50*2 + 1.25*4
	got := LinePrice(&line)
	if !got.Equal(dec("40.00")) {
		t.Errorf("expected 40.00, got %s", got)
	}
}

func TestSubLinesIgnoredOnNonComboLine(t *testing.T) {
	line := Line{
		Price:    dec("10.00"),
		Quantity: 1,
		SubLines: []SubLine{{ItemID: "stray", Price: dec("99.00"), Quantity: 1}},
	}

	if got := LinePrice(&line); !got.Equal(dec("10.00")) {
		t.Errorf("expected 10.00, got %s", got)
	}
}

func TestCartTotal(t *testing.T) {
	c := Cart{Lines: []Line{
		{
			Price:       dec("50.00"),
			Quantity:    2,
			IsMainCombo: true,
			SubLines:    []SubLine{{ItemID: "cheese", Price: dec("5.00"), Quantity: 1}},
		},
		{Price: dec("20.00"), Quantity: 3},
	}}

	got := CartTotal(&c)
	if !got.Equal(dec("165.00")) {
		t.Errorf("expected 165.00, got %s", got)
	}
}

func TestCartTotalIndependentOfLineOrder(t *testing.T) {
	lines := []Line{
		{Price: dec("12.50"), Quantity: 1},
		{Price: dec("0.10"), Quantity: 7},
		{
			Price:       dec("45.00"),
			Quantity:    2,
			IsMainCombo: true,
			SubLines:    []SubLine{{ItemID: "x", Price: dec("3.33"), Quantity: 3}},
		},
	}

	forward := CartTotal(&Cart{Lines: lines})

	reversed := make([]Line, len(lines))
	for i := range lines {
		reversed[len(lines)-1-i] = lines[i]
	}
	backward := CartTotal(&Cart{Lines: reversed})

	if !forward.Equal(backward) {
		t.Errorf("total depends on line order: %s vs %s", forward, backward)
	}
}

func TestManySmallExtrasStayExact(t *testing.T) {
	// 100 sub-lines of 0.10 each would drift under float64 addition.
	line := Line{Price: dec("0.00"), Quantity: 1, IsMainCombo: true}
	for i := 0; i < 100; i++ {
		line.SubLines = append(line.SubLines, SubLine{Price: dec("0.10"), Quantity: 1})
	}

	if got := LinePrice(&line); !got.Equal(dec("10.00")) {
		t.Errorf("expected exactly 10.00, got %s", got)
	}
}

func TestEmptyCartTotalIsZero(t *testing.T) {
	if got := CartTotal(&Cart{}); !got.Equal(decimal.Zero) {
		t.Errorf("expected 0, got %s", got)
	}
}
