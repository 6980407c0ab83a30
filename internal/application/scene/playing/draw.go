package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/render"
)

const (
	dialogueHeight = 56
	inventoryWidth = 96
	panelPadding   = 6
)

// Colors for rendering
var (
	colorBG        = color.RGBA{41, 38, 52, 255}
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorSign      = color.RGBA{150, 110, 60, 255}
	colorSignPost  = color.RGBA{90, 60, 30, 255}
	colorPanel     = color.RGBA{20, 18, 28, 230}
	colorPanelEdge = color.RGBA{200, 190, 160, 255}
	colorText      = colornames.Antiquewhite
	colorHint      = colornames.Gray
)

// parseColor accepts "#rrggbb" or an SVG colour name; empty means the default
func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return colorBG, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{r, g, b, 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("invalid background colour %q", s)
}

// Draw renders the stage, the avatar and the panels
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)

	camX, camY := p.camera()

	p.drawTiles(screen, camX, camY)
	p.drawAvatar(screen, camX, camY)

	if p.dialogue.OnScreen() {
		p.drawDialogue(screen)
	}
	if p.inventory.OnScreen() {
		p.drawInventory(screen)
	}

	if p.debug {
		p.drawDebug(screen)
	}
}

// camera centres the avatar and clamps to the stage bounds
func (p *Playing) camera() (int, int) {
	px, py := p.session.Avatar.PixelPos(p.tileSize)
	camX := px - p.screenW/2 + p.tileSize/2
	camY := py - p.screenH/2 + p.tileSize/2

	stageW, stageH := p.stage.PixelSize()
	camX = clamp(camX, 0, max(stageW-p.screenW, 0))
	camY = clamp(camY, 0, max(stageH-p.screenH, 0))
	return camX, camY
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	startTileX := camX / p.tileSize
	startTileY := camY / p.tileSize
	endTileX := (camX+p.screenW)/p.tileSize + 1
	endTileY := (camY+p.screenH)/p.tileSize + 1
	ts := float64(p.tileSize)

	for ty := startTileY; ty <= endTileY && ty < p.stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < p.stage.Width; tx++ {
			tile := p.stage.GetTile(tx, ty)
			x := float64(tx*p.tileSize - camX)
			y := float64(ty*p.tileSize - camY)

			switch tile.Type {
			case entity.TileWall:
				ebitenutil.DrawRect(screen, x, y, ts, ts, colorWall)
			case entity.TileSign:
				ebitenutil.DrawRect(screen, x+ts/2-1, y+ts/2, 2, ts/2, colorSignPost)
				ebitenutil.DrawRect(screen, x+2, y+2, ts-4, ts/2, colorSign)
			}
		}
	}
}

// drawAvatar scales the sprite cell to one tile, raised by drawOffsetY
func (p *Playing) drawAvatar(screen *ebiten.Image, camX, camY int) {
	px, py := p.session.Avatar.PixelPos(p.tileSize)
	scale := float64(p.tileSize) / float64(p.canvas.CellSize())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(px-camX), float64(py-camY+p.drawOffsetY))
	screen.DrawImage(p.canvas.Image(), op)
}

func (p *Playing) drawDialogue(screen *ebiten.Image) {
	y := float64(p.dialogue.Position())
	w := float64(p.screenW - 2*panelPadding)
	drawPanel(screen, panelPadding, y, w, dialogueHeight-panelPadding)

	lines := render.Wrap(p.session.Dialogue.Context, w-2*panelPadding, render.Measurer(p.face))
	render.DrawText(screen, strings.Join(lines, "\n"), p.face, 2*panelPadding, y+panelPadding, colorText)
	render.DrawText(screen, "click to close", p.face, w-70, y+dialogueHeight-panelPadding-14, colorHint)
}

func (p *Playing) drawInventory(screen *ebiten.Image) {
	x := float64(p.inventory.Position())
	drawPanel(screen, x, panelPadding, inventoryWidth-panelPadding, float64(p.screenH-2*panelPadding))

	render.DrawText(screen, "INVENTORY", p.face, x+panelPadding, 2*panelPadding, colorText)
	render.DrawText(screen, "(empty)", p.face, x+panelPadding, 2*panelPadding+18, colorHint)
}

func drawPanel(screen *ebiten.Image, x, y, w, h float64) {
	ebitenutil.DrawRect(screen, x-1, y-1, w+2, h+2, colorPanelEdge)
	ebitenutil.DrawRect(screen, x, y, w, h, colorPanel)
}

func (p *Playing) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  %s", ebiten.ActualFPS(), p.debugText()))
}

// debugText describes the input mode, avatar and gate for the overlay
func (p *Playing) debugText() string {
	a := p.session.Avatar
	mode := "LIVE"
	switch {
	case p.replayer != nil:
		mode = fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	case p.recorder != nil && p.recorder.IsRecording():
		mode = fmt.Sprintf("REC %d", p.recorder.FrameCount())
	}

	step := "none"
	if last, ok := p.gate.LastStep(); ok {
		step = fmt.Sprintf("%dms ago", p.Now().Sub(last).Milliseconds())
	}
	return fmt.Sprintf("%s\nStage: %s  Tile: (%d,%d) %s\nFrame: %d  Walking: %v  Last step: %s",
		mode, p.stageName, a.X, a.Y, a.Facing, p.animator.Frame(), p.animator.Running(), step)
}
