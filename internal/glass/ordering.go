package glass

// internalLayers is the number of children the container reserves at the
// bottom of its child list: the snapshot layer and the overlay layer.
const internalLayers = 2

// NextInsertionIndex returns where an externally added child lands given the
// requested index and the current child count. Children never land below the
// internal layers; while those are not both present the child is appended.
// A negative request means append, and requests past the end are clamped.
func NextInsertionIndex(requested, count int) int {
	if requested < 0 || requested > count {
		requested = count
	}
	floor := count
	if count >= internalLayers {
		floor = internalLayers
	}
	if requested < floor {
		return floor
	}
	return requested
}
