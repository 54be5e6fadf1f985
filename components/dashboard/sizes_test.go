package dashboard

import "testing"

func TestNextSizeCycles(t *testing.T) {
	cases := []struct {
		from SizePreset
		want SizePreset
	}{
		{SizeSmall, SizeMedium},
		{SizeMedium, SizeLarge},
		{SizeLarge, SizeFull},
		{SizeFull, SizeSmall},
	}
	for _, tc := range cases {
		if got := NextSize(tc.from); got != tc.want {
			t.Fatalf("NextSize(%s) = %s, want %s", tc.from, got, tc.want)
		}
	}
}

func TestNextSizeClosesAfterFourSteps(t *testing.T) {
	for _, start := range []SizePreset{SizeSmall, SizeMedium, SizeLarge, SizeFull} {
		size := start
		for i := 0; i < 4; i++ {
			size = NextSize(size)
		}
		if size != start {
			t.Fatalf("cycle from %s did not close, ended at %s", start, size)
		}
	}
}

func TestNextSizeUnknownEntersCycle(t *testing.T) {
	got := NextSize(SizePreset("banana"))
	if !ValidSize(got) {
		t.Fatalf("expected unknown size to map into the cycle, got %s", got)
	}
}

func TestSpanForMapsPresets(t *testing.T) {
	cases := []struct {
		size SizePreset
		want GridSpan
	}{
		{SizeSmall, GridSpan{Columns: 1, Rows: 1}},
		{SizeMedium, GridSpan{Columns: 2, Rows: 1}},
		{SizeLarge, GridSpan{Columns: 2, Rows: 2}},
		{SizeFull, GridSpan{Columns: 4, Rows: 2}},
	}
	for _, tc := range cases {
		if got := SpanFor(tc.size); got != tc.want {
			t.Fatalf("SpanFor(%s) = %+v, want %+v", tc.size, got, tc.want)
		}
	}
}

func TestSpanForUnknownDefaultsToSmall(t *testing.T) {
	if got := SpanFor(SizePreset("weird")); got != SpanFor(SizeSmall) {
		t.Fatalf("expected small span for unknown preset, got %+v", got)
	}
}

func TestSpanNeverExceedsGridColumns(t *testing.T) {
	for _, size := range []SizePreset{SizeSmall, SizeMedium, SizeLarge, SizeFull} {
		if span := SpanFor(size); span.Columns > GridColumns {
			t.Fatalf("span for %s exceeds grid width: %d > %d", size, span.Columns, GridColumns)
		}
	}
}
