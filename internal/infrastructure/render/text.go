package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is used for panel text
const DefaultFontSize = 10

// NewFace builds a Go Regular face of the given size
func NewFace(size float64) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// DrawText draws s with its top-left corner at (x, y)
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent + 2
	text.Draw(dst, s, face, op)
}

// Wrap breaks s into lines no wider than maxWidth according to measure.
// A single word wider than maxWidth gets its own line.
func Wrap(s string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// Measurer returns a measure func for Wrap backed by face
func Measurer(face text.Face) func(string) float64 {
	return func(s string) float64 {
		return text.Advance(s, face)
	}
}
