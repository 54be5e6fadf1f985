package dashboard

// SizePreset is one of four fixed spans controlling a widget's grid footprint.
type SizePreset string

const (
	SizeSmall  SizePreset = "small"
	SizeMedium SizePreset = "medium"
	SizeLarge  SizePreset = "large"
	SizeFull   SizePreset = "full"
)

// GridColumns is the width of the dashboard grid in columns.
const GridColumns = 4

// GridSpan is a widget footprint expressed in grid cells.
type GridSpan struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

var sizeCycle = map[SizePreset]SizePreset{
	SizeSmall:  SizeMedium,
	SizeMedium: SizeLarge,
	SizeLarge:  SizeFull,
	SizeFull:   SizeSmall,
}

var sizeSpans = map[SizePreset]GridSpan{
	SizeSmall:  {Columns: 1, Rows: 1},
	SizeMedium: {Columns: 2, Rows: 1},
	SizeLarge:  {Columns: 2, Rows: 2},
	SizeFull:   {Columns: 4, Rows: 2},
}

// NextSize advances a preset one step through the fixed cycle
// small → medium → large → full → small. Unknown values are normalized to
// small first so every input has a defined successor.
func NextSize(current SizePreset) SizePreset {
	if next, ok := sizeCycle[current]; ok {
		return next
	}
	return sizeCycle[SizeSmall]
}

// SpanFor maps a preset to its grid footprint. Unknown presets render small.
func SpanFor(size SizePreset) GridSpan {
	if span, ok := sizeSpans[size]; ok {
		return span
	}
	return sizeSpans[SizeSmall]
}

// ValidSize reports whether size is one of the four presets.
func ValidSize(size SizePreset) bool {
	_, ok := sizeSpans[size]
	return ok
}

// normalizeSize coerces unknown or empty presets to small.
func normalizeSize(size SizePreset) SizePreset {
	if ValidSize(size) {
		return size
	}
	return SizeSmall
}
