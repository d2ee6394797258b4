package ui

// Default dimensions.
const (
	// DefaultWidth and DefaultHeight are used until the first resize.
	DefaultWidth  = 80
	DefaultHeight = 24

	// MaxColumnWidth caps a single centered column.
	MaxColumnWidth = 88

	// MinPanelWidth is the narrowest side-by-side panel; below twice this
	// the two panels are stacked.
	MinPanelWidth = 30

	// DefaultDragThreshold is the mouse drag, in columns, that counts as a
	// swipe.
	DefaultDragThreshold = 8
)
