package ui

// Mode is the responsive layout mode derived from the viewport width.
type Mode int

const (
	// Narrow stacks every section in a single column.
	Narrow Mode = iota
	// Wide renders the counter and todo cards side by side.
	Wide
)

// LayoutMode is a pure function of the current width against the
// breakpoint: Wide at or above, Narrow below. It is recomputed on
// every window-size message.
func LayoutMode(width, breakpoint int) Mode {
	if width >= breakpoint {
		return Wide
	}
	return Narrow
}
