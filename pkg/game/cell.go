package game

// Cell is a single board slot. Each team has its own keycard color for the
// word and its own exposure flag; a guess by one team never touches the other
// team's flag. Cells are value types: mutating operations return a new cell.
type Cell struct {
	Index      int    `json:"index"`
	Word       string `json:"word"`
	OneColor   Color  `json:"one_color"`
	OneExposed bool   `json:"one_exposed"`
	TwoColor   Color  `json:"two_color"`
	TwoExposed bool   `json:"two_exposed"`
}

// Tapped returns a copy of the cell with the exposure flag for the given side
// set. Tapping for SideNone is a no-op.
func (c Cell) Tapped(side Side) Cell {
	switch side {
	case SideOne:
		c.OneExposed = true
	case SideTwo:
		c.TwoExposed = true
	}
	return c
}

// IsExposed reports whether the given side has tapped this cell.
func (c Cell) IsExposed(side Side) bool {
	switch side {
	case SideOne:
		return c.OneExposed
	case SideTwo:
		return c.TwoExposed
	}
	return false
}

// SideColor returns the cell's color on the given side's keycard. SideNone has
// no keycard and sees tan.
func (c Cell) SideColor(side Side) Color {
	switch side {
	case SideOne:
		return c.OneColor
	case SideTwo:
		return c.TwoColor
	}
	return ColorTan
}

// Display derives the board-facing state of the cell. A cell is green as soon
// as either team has exposed a green slot, black as soon as either team has
// exposed a black slot. The green check runs first.
func (c Cell) Display() DisplayState {
	if (c.OneExposed && c.OneColor == ColorGreen) || (c.TwoExposed && c.TwoColor == ColorGreen) {
		return DisplayGreen
	}
	if (c.OneExposed && c.OneColor == ColorBlack) || (c.TwoExposed && c.TwoColor == ColorBlack) {
		return DisplayBlack
	}
	return DisplayUnexposed
}
