package combo

import (
	"strings"
	"testing"

	"kioskqr/internal/catalog"
)

func forcedGroup(name string, n int, items ...catalog.ComboItem) catalog.ComboGroup {
	return catalog.ComboGroup{Name: name, Kind: catalog.KindForced, ForcedQuantity: n, Items: items}
}

func boundedGroup(name string, max int, items ...catalog.ComboItem) catalog.ComboGroup {
	return catalog.ComboGroup{Name: name, Kind: catalog.KindBounded, MaxQuantity: max, Items: items}
}

func entry(id string, qty int) Entry {
	return Entry{Item: &catalog.ComboItem{ID: id, Label: id}, Quantity: qty}
}

func TestForcedGroupSatisfied(t *testing.T) {
	group := forcedGroup("Drink", 1)
	sel := Selections{"Drink": {entry("cola", 1)}}

	result := ValidateSelections([]catalog.ComboGroup{group}, sel)
	if !result.Valid {
		t.Fatalf("expected valid result, got failure: %s", result.Message)
	}

	if progress := GroupProgress(&group, sel); progress != 100 {
		t.Errorf("expected progress 100, got %v", progress)
	}
}

func TestForcedGroupUnmet(t *testing.T) {
	group := forcedGroup("Drink", 1)
	sel := Selections{}

	result := ValidateSelections([]catalog.ComboGroup{group}, sel)
	if result.Valid {
		t.Fatal("expected validation failure for empty forced group")
	}
	if result.GroupName != "Drink" {
		t.Errorf("expected failure to name group Drink, got %q", result.GroupName)
	}
	if !strings.Contains(result.Message, "Drink") || !strings.Contains(result.Message, "1") {
		t.Errorf("message should reference group and required count, got %q", result.Message)
	}

	if progress := GroupProgress(&group, sel); progress != 0 {
		t.Errorf("expected progress 0, got %v", progress)
	}
}

func TestBoundedGroupExceeded(t *testing.T) {
	group := boundedGroup("Extras", 2)
	sel := Selections{"Extras": {entry("cheese", 1), entry("bacon", 2)}}

	result := ValidateSelections([]catalog.ComboGroup{group}, sel)
	if result.Valid {
		t.Fatal("expected validation failure for total 3 > max 2")
	}
	if result.GroupName != "Extras" {
		t.Errorf("expected failure to name group Extras, got %q", result.GroupName)
	}
	if !strings.Contains(result.Message, "2") {
		t.Errorf("message should reference the maximum, got %q", result.Message)
	}

	// 150% clamps to 100
	if progress := GroupProgress(&group, sel); progress != 100 {
		t.Errorf("expected clamped progress 100, got %v", progress)
	}
}

func TestBoundedGroupWithinLimit(t *testing.T) {
	group := boundedGroup("Extras", 4)
	sel := Selections{"Extras": {entry("cheese", 1)}}

	if result := ValidateSelections([]catalog.ComboGroup{group}, sel); !result.Valid {
		t.Fatalf("expected valid result, got failure: %s", result.Message)
	}
	if progress := GroupProgress(&group, sel); progress != 25 {
		t.Errorf("expected progress 25, got %v", progress)
	}
}

func TestBoundedProgressNeverExceedsRange(t *testing.T) {
	group := boundedGroup("Extras", 3)
	for total := 0; total <= 10; total++ {
		sel := Selections{}
		if total > 0 {
			sel["Extras"] = []Entry{entry("cheese", total)}
		}
		progress := GroupProgress(&group, sel)
		if progress < 0 || progress > 100 {
			t.Fatalf("progress out of range for total %d: %v", total, progress)
		}
	}
}

func TestUnconstrainedGroupProgress(t *testing.T) {
	group := catalog.ComboGroup{Name: "Sauces", Kind: catalog.KindUnconstrained}

	if progress := GroupProgress(&group, Selections{}); progress != 0 {
		t.Errorf("expected progress 0 for empty group, got %v", progress)
	}
	sel := Selections{"Sauces": {entry("ketchup", 3)}}
	if progress := GroupProgress(&group, sel); progress != 100 {
		t.Errorf("expected progress 100, got %v", progress)
	}
	if result := ValidateSelections([]catalog.ComboGroup{group}, sel); !result.Valid {
		t.Errorf("unconstrained group should never fail validation")
	}
}

func TestForcedGroupOverSelectionNotFlagged(t *testing.T) {
	group := forcedGroup("Drink", 1)
	sel := Selections{"Drink": {entry("cola", 2)}}

	// Over-selection past the forced count is the configuration UI's
	// problem; validation only checks for falling short.
	if result := ValidateSelections([]catalog.ComboGroup{group}, sel); !result.Valid {
		t.Errorf("over-selected forced group should pass validation, got %q", result.Message)
	}
}

func TestValidationReportsOnlyFirstViolation(t *testing.T) {
	groups := []catalog.ComboGroup{
		forcedGroup("Drink", 1),
		boundedGroup("Extras", 1),
	}
	sel := Selections{"Extras": {entry("cheese", 5)}}

	result := ValidateSelections(groups, sel)
	if result.Valid {
		t.Fatal("expected validation failure")
	}
	if result.GroupName != "Drink" {
		t.Errorf("expected first violated group Drink to be reported, got %q", result.GroupName)
	}
}

func TestForcedZeroQuantityGroupIsComplete(t *testing.T) {
	group := forcedGroup("Legacy", 0)

	if progress := GroupProgress(&group, Selections{}); progress != 100 {
		t.Errorf("expected progress 100 for zero forced quantity, got %v", progress)
	}
	if result := ValidateSelections([]catalog.ComboGroup{group}, Selections{}); !result.Valid {
		t.Errorf("zero forced quantity group should always validate")
	}
}

func TestZeroQuantityEntryEquivalentToAbsent(t *testing.T) {
	group := forcedGroup("Drink", 1)
	sel := Selections{"Drink": {entry("cola", 0)}}

	if result := ValidateSelections([]catalog.ComboGroup{group}, sel); result.Valid {
		t.Error("zero-quantity entry should not satisfy a forced group")
	}
	if progress := GroupProgress(&group, sel); progress != 0 {
		t.Errorf("expected progress 0, got %v", progress)
	}
}

func TestSelectionsSetReplacesAndRemoves(t *testing.T) {
	item := &catalog.ComboItem{ID: "cola", Label: "Cola"}
	sel := Selections{}

	sel.Set("Drink", item, 2)
	if got := sel.GroupTotal("Drink"); got != 2 {
		t.Fatalf("expected total 2, got %d", got)
	}

	sel.Set("Drink", item, 1)
	if got := sel.GroupTotal("Drink"); got != 1 {
		t.Fatalf("expected replaced total 1, got %d", got)
	}
	if len(sel["Drink"]) != 1 {
		t.Fatalf("expected a single entry, got %d", len(sel["Drink"]))
	}

	sel.Set("Drink", item, 0)
	if len(sel["Drink"]) != 0 {
		t.Fatalf("expected entry removed, got %d entries", len(sel["Drink"]))
	}
}

func TestDefaultSelectionsPrefill(t *testing.T) {
	product := &catalog.Product{
		ID:      "menu",
		IsCombo: true,
		ComboGroups: []catalog.ComboGroup{
			forcedGroup("Drink", 1,
				catalog.ComboItem{ID: "cola", Label: "Cola", DefaultSelected: true, DefaultQuantity: 1},
				catalog.ComboItem{ID: "ayran", Label: "Ayran"},
			),
			boundedGroup("Extras", 2,
				catalog.ComboItem{ID: "cheese", Label: "Extra Cheese"},
			),
		},
	}

	sel := DefaultSelections(product)
	if got := sel.GroupTotal("Drink"); got != 1 {
		t.Errorf("expected default drink quantity 1, got %d", got)
	}
	if got := sel.GroupTotal("Extras"); got != 0 {
		t.Errorf("expected no default extras, got %d", got)
	}
	if result := ValidateSelections(product.ComboGroups, sel); !result.Valid {
		t.Errorf("defaults should produce a valid configuration, got %q", result.Message)
	}
}
