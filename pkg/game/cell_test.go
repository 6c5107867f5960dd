package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellTapped(t *testing.T) {
	cell := Cell{Index: 3, Word: "piano", OneColor: ColorGreen, TwoColor: ColorTan}

	tapped := cell.Tapped(SideOne)
	assert.True(t, tapped.IsExposed(SideOne))
	assert.False(t, tapped.IsExposed(SideTwo))
	assert.Equal(t, ColorGreen, tapped.OneColor)
	assert.Equal(t, "piano", tapped.Word)

	// The original cell is untouched.
	assert.False(t, cell.IsExposed(SideOne))

	// Tapping an already-tapped cell is a fixed point.
	assert.Equal(t, tapped, tapped.Tapped(SideOne))

	// Tapping for no team does nothing.
	assert.Equal(t, cell, cell.Tapped(SideNone))
}

func TestCellSideColor(t *testing.T) {
	cell := Cell{OneColor: ColorBlack, TwoColor: ColorGreen}
	assert.Equal(t, ColorBlack, cell.SideColor(SideOne))
	assert.Equal(t, ColorGreen, cell.SideColor(SideTwo))
	assert.Equal(t, ColorTan, cell.SideColor(SideNone))
}

func TestCellDisplay(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want DisplayState
	}{
		{
			name: "untapped cell is unexposed",
			cell: Cell{OneColor: ColorGreen, TwoColor: ColorBlack},
			want: DisplayUnexposed,
		},
		{
			name: "green exposed by side one",
			cell: Cell{OneColor: ColorGreen, OneExposed: true, TwoColor: ColorTan},
			want: DisplayGreen,
		},
		{
			name: "green exposed by side two",
			cell: Cell{OneColor: ColorTan, TwoColor: ColorGreen, TwoExposed: true},
			want: DisplayGreen,
		},
		{
			name: "black exposed by side one",
			cell: Cell{OneColor: ColorBlack, OneExposed: true, TwoColor: ColorGreen},
			want: DisplayBlack,
		},
		{
			name: "tan exposure stays unexposed",
			cell: Cell{OneColor: ColorTan, OneExposed: true, TwoColor: ColorGreen},
			want: DisplayUnexposed,
		},
		{
			// Cannot arise from a standard keycard distribution; the green
			// check wins when it does.
			name: "green beats black",
			cell: Cell{OneColor: ColorGreen, OneExposed: true, TwoColor: ColorBlack, TwoExposed: true},
			want: DisplayGreen,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.Display())
			// Derivation is pure.
			assert.Equal(t, tt.want, tt.cell.Display())
		})
	}
}
