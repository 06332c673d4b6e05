package combo

import (
	"fmt"

	"kioskqr/internal/catalog"
)

// Result is the verdict of validating a combo configuration. On
// failure it names the first violated group, in definition order, with
// a user-facing message. Only the first violation is reported.
type Result struct {
	Valid     bool   `json:"valid"`
	GroupName string `json:"group_name,omitempty"`
	Message   string `json:"message,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(group, message string) Result {
	return Result{Valid: false, GroupName: group, Message: message}
}

// GroupProgress reports how complete one group's selection is, as a
// percentage clamped to [0,100]. It drives the per-group completion
// indicator in the UI and is not a checkout gate on its own.
func GroupProgress(g *catalog.ComboGroup, sel Selections) float64 {
	total := sel.GroupTotal(g.Name)

	switch g.Kind {
	case catalog.KindForced:
		// A zero forced quantity is a catalog authoring artifact;
		// the group counts as complete.
		if g.ForcedQuantity <= 0 {
			return 100
		}
		return clampPercent(100 * float64(total) / float64(g.ForcedQuantity))
	case catalog.KindBounded:
		if g.MaxQuantity <= 0 {
			return 100
		}
		return clampPercent(100 * float64(total) / float64(g.MaxQuantity))
	default:
		if total > 0 {
			return 100
		}
		return 0
	}
}

// ValidateSelections checks every group in definition order and stops
// at the first violation. A successful result is the sole gate for
// committing the configuration into a cart line.
//
// Forced groups are only checked for falling short: over-selecting
// past the forced quantity is the configuration UI's job to prevent,
// not a validation failure here.
func ValidateSelections(groups []catalog.ComboGroup, sel Selections) Result {
	for i := range groups {
		g := &groups[i]
		total := sel.GroupTotal(g.Name)

		switch g.Kind {
		case catalog.KindForced:
			if total < g.ForcedQuantity {
				return fail(g.Name, fmt.Sprintf(
					"%q requires exactly %d selection(s), you have %d",
					g.Name, g.ForcedQuantity, total,
				))
			}
		case catalog.KindBounded:
			if total > g.MaxQuantity {
				return fail(g.Name, fmt.Sprintf(
					"%q allows at most %d selection(s), you have %d",
					g.Name, g.MaxQuantity, total,
				))
			}
		}
	}
	return ok()
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
