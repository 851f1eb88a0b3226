// Package layout computes the tiled placement of clocks on a rectangular
// canvas. The partition is a near-square grid recomputed every tick, so a
// resized canvas is picked up on the next frame without extra bookkeeping.
package layout

import "math"

// Rect is a rectangle on the render canvas, in cells or pixels depending on
// the surface.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Dimensions returns the grid shape for the given clock count:
// cols = ceil(sqrt(count)), rows = ceil(count/cols). Together these satisfy
// cols*rows >= count with no fully empty row.
func Dimensions(count int) (cols, rows int) {
	if count <= 0 {
		return 0, 0
	}

	cols = int(math.Ceil(math.Sqrt(float64(count))))
	rows = (count + cols - 1) / cols

	return cols, rows
}

// Grid partitions the canvas into one rectangle per clock. The canvas is cut
// into rows equal-height bands and each band into cols equal-width cells;
// the last band and the last column absorb the integer-division remainder.
// Clock i lands in band i/cols, cell i%cols. When the count does not fill the
// last band, its trailing cells are simply unused. A count of zero yields an
// empty result.
func Grid(count int, canvas Rect) []Rect {
	if count <= 0 {
		return nil
	}

	cols, rows := Dimensions(count)

	bandHeight := canvas.Height / rows
	cellWidth := canvas.Width / cols

	rects := make([]Rect, 0, count)

	for i := 0; i < count; i++ {
		band := i / cols
		cell := i % cols

		r := Rect{
			X:      canvas.X + cell*cellWidth,
			Y:      canvas.Y + band*bandHeight,
			Width:  cellWidth,
			Height: bandHeight,
		}

		// Remainder cells stretch to the canvas edge.
		if cell == cols-1 {
			r.Width = canvas.Width - cell*cellWidth
		}

		if band == rows-1 {
			r.Height = canvas.Height - band*bandHeight
		}

		rects = append(rects, r)
	}

	return rects
}

// VerticalPad returns the number of blank rows above the content block when
// centering contentLines within innerHeight. Integer division leaves the
// remainder below the block; a block taller than the space gets no padding.
func VerticalPad(innerHeight, contentLines int) int {
	pad := (innerHeight - contentLines) / 2
	if pad < 0 {
		return 0
	}

	return pad
}
