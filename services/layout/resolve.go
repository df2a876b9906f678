package layout

import "fieldcal/models"

// Item is an entry waiting to be positioned inside a column.
type Item struct {
	Kind models.RefKind
	ID   string
	Slot Slot
}

// ScheduleItem wraps a schedule entry's raw slot.
func ScheduleItem(e models.ScheduleEntry) Item {
	return Item{Kind: models.RefSchedule, ID: e.ID, Slot: ParseSlot(e.TimeSlot)}
}

func ExclusionItem(e models.ExclusionEntry) Item {
	return Item{Kind: models.RefExclusion, ID: e.ID, Slot: ExclusionSlot(e.TimeType, e.StartTime, e.EndTime)}
}

// ResolveColumn positions the exclusions and schedules of one column.
//
// When both groups are present exclusions take the left half and schedules the
// right half; a lone group takes the whole width. Inside a group each item is
// placed greedily in the order given: its index is the number of earlier items
// whose rendered extent (after the minimum height clamp) it overlaps, its width is groupWidth/(1+index) and it starts at index*width.
// This is not exact interval-graph coloring; with three or more simultaneous
// overlaps rectangles may still cross. Z-order follows placement, exclusions
// first.
func ResolveColumn(exclusions, schedules []Item) []models.LayoutItem {
	exLeft, exWidth := 0.0, 100.0
	schLeft, schWidth := 0.0, 100.0
	if len(exclusions) > 0 && len(schedules) > 0 {
		exWidth = 50
		schLeft, schWidth = 50, 50
	}

	out := make([]models.LayoutItem, 0, len(exclusions)+len(schedules))
	z := 1
	out, z = placeGroup(out, exclusions, exLeft, exWidth, z)
	out, _ = placeGroup(out, schedules, schLeft, schWidth, z)
	return out
}

func placeGroup(out []models.LayoutItem, group []Item, left, width float64, z int) ([]models.LayoutItem, int) {
	placed := make([]Slot, 0, len(group))
	for _, it := range group {
		extent := it.Slot.Rendered()
		index := 0
		for _, p := range placed {
			if p.Overlaps(extent) {
				index++
			}
		}
		w := width / float64(1+index)
		out = append(out, models.LayoutItem{
			RefKind: it.Kind,
			RefID:   it.ID,
			Top:     TopOffset(it.Slot),
			Height:  Height(it.Slot),
			Left:    left + float64(index)*w,
			Width:   w,
			ZOrder:  z,
		})
		z++
		placed = append(placed, extent)
	}
	return out, z
}
