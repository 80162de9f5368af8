/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package lineup

// Position is a defensive role abbreviation.
type Position string

const (
	Catcher          Position = "C"
	FirstBase        Position = "1B"
	SecondBase       Position = "2B"
	ThirdBase        Position = "3B"
	Shortstop        Position = "SS"
	LeftField        Position = "LF"
	CenterField      Position = "CF"
	RightField       Position = "RF"
	DesignatedHitter Position = "DH"
)

// Positions lists every recognized position in canonical scoring order.
var Positions = []Position{
	Catcher,
	FirstBase,
	SecondBase,
	ThirdBase,
	Shortstop,
	LeftField,
	CenterField,
	RightField,
	DesignatedHitter,
}

var positionNames = map[Position]string{
	Catcher:          "Catcher",
	FirstBase:        "First Base",
	SecondBase:       "Second Base",
	ThirdBase:        "Third Base",
	Shortstop:        "Shortstop",
	LeftField:        "Left Field",
	CenterField:      "Center Field",
	RightField:       "Right Field",
	DesignatedHitter: "Designated Hitter",
}

// Valid reports whether p is one of the nine recognized codes.
func (p Position) Valid() bool {
	_, ok := positionNames[p]
	return ok
}

// Name returns the display name for p, or the raw code if unrecognized.
func (p Position) Name() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return string(p)
}
