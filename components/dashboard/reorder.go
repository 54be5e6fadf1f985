package dashboard

import "math"

// DragActivationDistance is the pointer travel, in device pixels, required
// before a press is recognized as a drag rather than a click.
const DragActivationDistance = 8.0

// MoveID returns a new ordering with sourceID removed from its old slot and
// reinserted at targetID's slot (array move, not swap). The result is always a
// total reordering of the input: no id is duplicated or dropped. When sourceID
// equals targetID, or either id is absent, the input order is returned
// unchanged; absence simply means the drag target moved concurrently.
func MoveID(order []string, sourceID, targetID string) []string {
	if sourceID == targetID {
		return order
	}
	src, tgt := -1, -1
	for i, id := range order {
		switch id {
		case sourceID:
			src = i
		case targetID:
			tgt = i
		}
	}
	if src < 0 || tgt < 0 {
		return order
	}
	result := make([]string, 0, len(order))
	for i, id := range order {
		if i == src {
			continue
		}
		result = append(result, id)
	}
	// Reinsert at the target's original index: past the target on a forward
	// move, ahead of it on a backward move.
	result = append(result, "")
	copy(result[tgt+1:], result[tgt:])
	result[tgt] = sourceID
	return result
}

// MoveUp moves the widget one slot toward the front. No-op at the front or
// when id is absent.
func MoveUp(order []string, id string) []string {
	for i, candidate := range order {
		if candidate != id {
			continue
		}
		if i == 0 {
			return order
		}
		return MoveID(order, id, order[i-1])
	}
	return order
}

// MoveDown moves the widget one slot toward the back. No-op at the back or
// when id is absent.
func MoveDown(order []string, id string) []string {
	for i, candidate := range order {
		if candidate != id {
			continue
		}
		if i == len(order)-1 {
			return order
		}
		return MoveID(order, id, order[i+1])
	}
	return order
}

// applyOrder re-sequences widgets to match order. Ids missing from order keep
// their relative position at the tail; ids in order without a matching widget
// are skipped.
func applyOrder(widgets []WidgetInstance, order []string) []WidgetInstance {
	if len(order) == 0 {
		return widgets
	}
	index := make(map[string]WidgetInstance, len(widgets))
	for _, w := range widgets {
		index[w.ID] = w
	}
	result := make([]WidgetInstance, 0, len(widgets))
	seen := make(map[string]struct{}, len(order))
	for _, id := range order {
		if w, ok := index[id]; ok {
			result = append(result, w)
			seen[id] = struct{}{}
		}
	}
	for _, w := range widgets {
		if _, ok := seen[w.ID]; !ok {
			result = append(result, w)
		}
	}
	return result
}

func widgetIDs(widgets []WidgetInstance) []string {
	ids := make([]string, len(widgets))
	for i, w := range widgets {
		ids[i] = w.ID
	}
	return ids
}

// DragTracker is the impure gesture-capture half of the reorder engine. It
// consumes raw pointer events and reports a completed (source, target) move
// only once the press has travelled past DragActivationDistance; the pure
// MoveID function does the actual reordering. One tracker serves one pointer.
type DragTracker struct {
	sourceID string
	originX  float64
	originY  float64
	active   bool
	pressed  bool
}

// Press records the start of a pointer press on a widget's drag handle.
func (t *DragTracker) Press(sourceID string, x, y float64) {
	t.sourceID = sourceID
	t.originX = x
	t.originY = y
	t.pressed = true
	t.active = false
}

// Move feeds pointer motion and reports whether a drag is now active.
func (t *DragTracker) Move(x, y float64) bool {
	if !t.pressed {
		return false
	}
	if !t.active {
		dx := x - t.originX
		dy := y - t.originY
		if math.Hypot(dx, dy) >= DragActivationDistance {
			t.active = true
		}
	}
	return t.active
}

// Active reports whether the current press has been promoted to a drag.
func (t *DragTracker) Active() bool {
	return t.pressed && t.active
}

// Release ends the press over targetID. It returns the move endpoints and
// whether a drag actually completed; a release before the activation
// threshold is an ordinary click and reports ok=false.
func (t *DragTracker) Release(targetID string) (sourceID, target string, ok bool) {
	defer t.Cancel()
	if !t.pressed || !t.active {
		return "", "", false
	}
	return t.sourceID, targetID, true
}

// Cancel resets the tracker without completing a move.
func (t *DragTracker) Cancel() {
	t.sourceID = ""
	t.pressed = false
	t.active = false
}
