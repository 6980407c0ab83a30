// Package ui animates the overlay panels (dialogue box, inventory).
package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Panel slides between a hidden and a shown position along one axis
type Panel struct {
	hidden   float32
	shown    float32
	duration float32 // Seconds for a full slide

	pos     float32
	visible bool
	tween   *gween.Tween
}

// NewPanel creates a hidden panel
func NewPanel(hidden, shown, duration float32) *Panel {
	return &Panel{
		hidden:   hidden,
		shown:    shown,
		duration: duration,
		pos:      hidden,
	}
}

// SetVisible starts sliding toward the shown or hidden position.
// A reversal mid-slide continues from the current position.
func (p *Panel) SetVisible(visible bool) {
	if visible == p.visible {
		return
	}
	p.visible = visible

	target := p.hidden
	if visible {
		target = p.shown
	}

	span := p.shown - p.hidden
	if span < 0 {
		span = -span
	}
	dist := target - p.pos
	if dist < 0 {
		dist = -dist
	}
	if span == 0 || p.duration <= 0 || dist == 0 {
		p.pos = target
		p.tween = nil
		return
	}

	p.tween = gween.New(p.pos, target, p.duration*dist/span, ease.OutQuad)
}

// Update advances the slide by dt seconds
func (p *Panel) Update(dt float32) {
	if p.tween == nil {
		return
	}
	pos, finished := p.tween.Update(dt)
	p.pos = pos
	if finished {
		p.tween = nil
	}
}

// Position returns the current offset
func (p *Panel) Position() float32 {
	return p.pos
}

// OnScreen reports whether any part of the slide should be drawn
func (p *Panel) OnScreen() bool {
	return p.visible || p.tween != nil
}

// Settled reports whether the panel has stopped moving
func (p *Panel) Settled() bool {
	return p.tween == nil
}
