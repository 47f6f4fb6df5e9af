package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// flowLayout places objects at their minimum size left to right in the order
// added, wrapping onto a new row when the container width is exceeded. Each
// row is centered horizontally.
type flowLayout struct{}

// NewFlowLayout returns a wrapping, row-centered layout
func NewFlowLayout() fyne.Layout {
	return &flowLayout{}
}

func (l *flowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pad := theme.Padding()
	y := float32(0)

	for _, row := range l.rows(objects, size.Width) {
		rowWidth, rowHeight := float32(0), float32(0)
		for i, o := range row {
			min := o.MinSize()
			if i > 0 {
				rowWidth += pad
			}
			rowWidth += min.Width
			rowHeight = fyne.Max(rowHeight, min.Height)
		}

		x := fyne.Max(0, (size.Width-rowWidth)/2)
		for _, o := range row {
			min := o.MinSize()
			o.Move(fyne.NewPos(x, y))
			o.Resize(min)
			x += min.Width + pad
		}
		y += rowHeight + pad
	}
}

// MinSize is the fully wrapped size: one object per row.
func (l *flowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	pad := theme.Padding()
	size := fyne.NewSize(0, 0)
	visible := 0

	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		min := o.MinSize()
		size.Width = fyne.Max(size.Width, min.Width)
		if visible > 0 {
			size.Height += pad
		}
		size.Height += min.Height
		visible++
	}
	return size
}

func (l *flowLayout) rows(objects []fyne.CanvasObject, width float32) [][]fyne.CanvasObject {
	pad := theme.Padding()
	var rows [][]fyne.CanvasObject
	var current []fyne.CanvasObject
	x := float32(0)

	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		w := o.MinSize().Width
		if len(current) > 0 && x+pad+w > width {
			rows = append(rows, current)
			current = nil
			x = 0
		}
		if len(current) > 0 {
			x += pad
		}
		x += w
		current = append(current, o)
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows
}
