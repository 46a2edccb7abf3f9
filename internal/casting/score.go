package casting

// scoreField computes the [0,1] proximity of a parsed measurement to its
// target range. Inside the range the score is 1. Outside it decays linearly
// at a rate proportional to the range's span, so a tight range penalizes the
// same absolute deviation more steeply than a wide one. Single-bound ranges
// decay against the bound itself. Degenerate divisors (zero span, zero
// bound) are treated as 1.
//
// Only called for constrained ranges with a successfully parsed value.
func scoreField(value float64, r Range) float64 {
	switch {
	case r.Min != nil && r.Max != nil:
		min, max := *r.Min, *r.Max
		if value >= min && value <= max {
			return 1
		}
		span := max - min
		if span <= 0 {
			span = 1
		}
		if value < min {
			return clamp01(1 - (min-value)/span)
		}
		return clamp01(1 - (value-max)/span)

	case r.Min != nil:
		min := *r.Min
		if value >= min {
			return 1
		}
		base := min
		if base == 0 {
			base = 1
		}
		return clamp01(1 - (min-value)/base)

	case r.Max != nil:
		max := *r.Max
		if value <= max {
			return 1
		}
		base := max
		if base == 0 {
			base = 1
		}
		return clamp01(1 - (value-max)/base)
	}

	return 1
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
