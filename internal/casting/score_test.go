package casting

import "testing"

func fptr(f float64) *float64 {
	return &f
}

func TestScoreFieldBothBounds(t *testing.T) {
	t.Parallel()

	r := Range{Min: fptr(66), Max: fptr(70)}

	for _, v := range []float64{66, 68, 70} {
		if got := scoreField(v, r); got != 1 {
			t.Fatalf("expected in-range value %v to score 1, got %v", v, got)
		}
	}

	// 1 inch below min with span 4 decays by 1/4.
	if got := scoreField(65, r); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}

	// 2 inches above max with span 4 decays by 2/4.
	if got := scoreField(72, r); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}

	// Far outside the range clamps at 0.
	if got := scoreField(100, r); got != 0 {
		t.Fatalf("expected clamp at 0, got %v", got)
	}
}

func TestScoreFieldSpanProportionalDecay(t *testing.T) {
	t.Parallel()

	tight := Range{Min: fptr(30), Max: fptr(31)}
	wide := Range{Min: fptr(30), Max: fptr(40)}

	// The same absolute deviation below min costs more against a tight range.
	if scoreField(29, tight) >= scoreField(29, wide) {
		t.Fatalf("expected tighter range to penalize harder: tight=%v wide=%v",
			scoreField(29, tight), scoreField(29, wide))
	}
}

func TestScoreFieldDegenerateSpan(t *testing.T) {
	t.Parallel()

	r := Range{Min: fptr(34), Max: fptr(34)}

	if got := scoreField(34, r); got != 1 {
		t.Fatalf("expected exact match to score 1, got %v", got)
	}

	// Zero span falls back to a divisor of 1.
	if got := scoreField(33.5, r); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestScoreFieldMinOnly(t *testing.T) {
	t.Parallel()

	r := Range{Min: fptr(60)}

	if got := scoreField(65, r); got != 1 {
		t.Fatalf("expected value above min to score 1, got %v", got)
	}

	if got := scoreField(45, r); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}

	zero := Range{Min: fptr(0)}
	if got := scoreField(-0.5, zero); got != 0.5 {
		t.Fatalf("expected zero bound to use divisor 1, got %v", got)
	}
}

func TestScoreFieldMaxOnly(t *testing.T) {
	t.Parallel()

	r := Range{Max: fptr(30)}

	if got := scoreField(28, r); got != 1 {
		t.Fatalf("expected value below max to score 1, got %v", got)
	}

	if got := scoreField(45, r); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}

	zero := Range{Max: fptr(0)}
	if got := scoreField(0.25, zero); got != 0.75 {
		t.Fatalf("expected zero bound to use divisor 1, got %v", got)
	}
}

func TestScoreFieldAlwaysInBounds(t *testing.T) {
	t.Parallel()

	ranges := []Range{
		{Min: fptr(10), Max: fptr(20)},
		{Min: fptr(10)},
		{Max: fptr(20)},
		{Min: fptr(5), Max: fptr(5)},
	}
	values := []float64{-100, -1, 0, 5, 10, 15, 20, 25, 1000}

	for _, r := range ranges {
		for _, v := range values {
			got := scoreField(v, r)
			if got < 0 || got > 1 {
				t.Fatalf("score out of bounds for value %v range %+v: %v", v, r, got)
			}
		}
	}
}
