// Package render draws sprite frames and text onto ebiten images.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is a single sprite cell that frames are blitted into from a sheet.
// It implements sprite.Surface.
type Canvas struct {
	img   *ebiten.Image
	sheet *ebiten.Image
	cell  int
}

// NewCanvas creates a cell x cell canvas drawing from sheet
func NewCanvas(sheet *ebiten.Image, cell int) (*Canvas, error) {
	if err := ValidateSheet(sheet.Bounds(), cell); err != nil {
		return nil, err
	}
	return &Canvas{
		img:   ebiten.NewImage(cell, cell),
		sheet: sheet,
		cell:  cell,
	}, nil
}

// Clear erases the canvas
func (c *Canvas) Clear() {
	c.img.Clear()
}

// Blit copies the src region of the sheet onto dst, scaling when sizes differ
func (c *Canvas) Blit(src, dst image.Rectangle) {
	src = src.Intersect(c.sheet.Bounds())
	if src.Empty() || dst.Empty() {
		return
	}

	frame := c.sheet.SubImage(src).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	c.img.DrawImage(frame, op)
}

// SetSheet swaps the sheet used by later blits. The current picture is kept.
func (c *Canvas) SetSheet(sheet *ebiten.Image) error {
	if err := ValidateSheet(sheet.Bounds(), c.cell); err != nil {
		return err
	}
	c.sheet = sheet
	return nil
}

// Image returns the canvas image for compositing
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// CellSize returns the canvas edge in pixels
func (c *Canvas) CellSize() int {
	return c.cell
}
