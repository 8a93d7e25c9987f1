// Package levelio reads levels from their text form, renders them with an
// optional path overlay, and exports cost maps as CSV.
//
// Text format, one line per row y and one rune per column x:
//
//	A-Z       wall
//	0         wall
//	1-9       space with that base cost
//	a-z       waypoint with that label, base cost 1
//	' ', '.'  space with base cost 1
//
// Any other rune is rejected with ErrBadGlyph. Trailing carriage returns are
// ignored.
//
// Example:
//
//	XXXXXXX
//	Xa  3 X
//	X X9X X
//	X    dX
//	XXXXXXX
package levelio
