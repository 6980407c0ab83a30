package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // sheets are PNG files
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"
)

const (
	// SheetRows is one row per direction: RIGHT, LEFT, UP, DOWN
	SheetRows = 4
	// SheetColumns is the minimum number of frame columns
	SheetColumns = 4
)

// ErrSheetTooSmall is returned when a sheet cannot hold every frame
var ErrSheetTooSmall = errors.New("sprite sheet too small")

// ValidateSheet checks that bounds holds SheetRows x SheetColumns cells
func ValidateSheet(bounds image.Rectangle, cell int) error {
	if cell <= 0 {
		return fmt.Errorf("invalid cell size %d", cell)
	}
	if bounds.Dx() < SheetColumns*cell || bounds.Dy() < SheetRows*cell {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrSheetTooSmall,
			bounds.Dx(), bounds.Dy(), SheetColumns*cell, SheetRows*cell)
	}
	return nil
}

// LoadSheet decodes and validates a sheet from fsys
func LoadSheet(fsys fs.FS, name string, cell int) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet %s: %w", name, err)
	}
	if err := ValidateSheet(img.Bounds(), cell); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", name, err)
	}
	return img, nil
}

// rowColors tint the placeholder rows RIGHT, LEFT, UP, DOWN
var rowColors = [SheetRows]color.RGBA{
	colornames.Tomato,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Cornflowerblue,
}

// PlaceholderImage draws a sheet with one colour per row and a marker
// whose position differs per column, so frames are told apart on screen.
func PlaceholderImage(cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SheetColumns*cell, SheetRows*cell))
	marker := max(cell/4, 1)

	for row := 0; row < SheetRows; row++ {
		for col := 0; col < SheetColumns; col++ {
			r := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
			inset := r.Inset(max(cell/8, 1))
			draw.Draw(img, inset, image.NewUniform(rowColors[row]), image.Point{}, draw.Src)

			mx := inset.Min.X + col*(inset.Dx()-marker)/(SheetColumns-1)
			m := image.Rect(mx, inset.Max.Y-marker, mx+marker, inset.Max.Y)
			draw.Draw(img, m, image.NewUniform(colornames.White), image.Point{}, draw.Src)
		}
	}
	return img
}

// PlaceholderSheet is PlaceholderImage as an ebiten image
func PlaceholderSheet(cell int) *ebiten.Image {
	return ebiten.NewImageFromImage(PlaceholderImage(cell))
}
