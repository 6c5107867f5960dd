package game

import (
	"encoding/json"
	"fmt"
)

// Side identifies one of the two teams. SideNone is a spectator or a player
// that has not picked a team yet.
type Side int

const (
	SideNone Side = iota
	SideOne
	SideTwo
)

func (s Side) String() string {
	switch s {
	case SideOne:
		return "one"
	case SideTwo:
		return "two"
	case SideNone:
		return "none"
	}
	return "unknown"
}

// Opposite returns the other team. SideNone has no opposite and maps to itself.
func (s Side) Opposite() Side {
	switch s {
	case SideOne:
		return SideTwo
	case SideTwo:
		return SideOne
	}
	return SideNone
}

// ParseSide parses a wire token into a Side.
// Valid tokens are: one, two, none.
func ParseSide(token string) (Side, error) {
	switch token {
	case "one":
		return SideOne, nil
	case "two":
		return SideTwo, nil
	case "none":
		return SideNone, nil
	default:
		return SideNone, fmt.Errorf("unknown side token: %q", token)
	}
}

func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(b []byte) error {
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return fmt.Errorf("failed to unmarshal side: %v", err)
	}
	side, err := ParseSide(token)
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Color is the secret affiliation of a word on one team's keycard.
type Color int

const (
	ColorTan Color = iota
	ColorGreen
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorGreen:
		return "g"
	case ColorBlack:
		return "b"
	case ColorTan:
		return "t"
	}
	return "unknown"
}

// ParseColor parses a wire token into a Color.
// Valid tokens are: g, b, t.
func ParseColor(token string) (Color, error) {
	switch token {
	case "g":
		return ColorGreen, nil
	case "b":
		return ColorBlack, nil
	case "t":
		return ColorTan, nil
	default:
		return ColorTan, fmt.Errorf("unknown color token: %q", token)
	}
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(b []byte) error {
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return fmt.Errorf("failed to unmarshal color: %v", err)
	}
	color, err := ParseColor(token)
	if err != nil {
		return err
	}
	*c = color
	return nil
}

// DisplayState is the board-facing state of a cell, derived from both teams'
// exposure flags and keycard colors.
type DisplayState int

const (
	DisplayUnexposed DisplayState = iota
	DisplayGreen
	DisplayBlack
)

func (d DisplayState) String() string {
	switch d {
	case DisplayUnexposed:
		return "unexposed"
	case DisplayGreen:
		return "green"
	case DisplayBlack:
		return "black"
	}
	return "unknown"
}
