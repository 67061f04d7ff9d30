package discovery

// Progress returns the fundraising completion percentage, clamped to
// [0, 100]. A goal of zero (or less) yields 0 rather than dividing by
// zero, and negative stored amounts clamp to 0; the store is treated
// as authoritative and a bad amount never fails the record render.
func Progress(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	pct := current / goal * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
