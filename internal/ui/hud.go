//go:build ebiten

package ui

import (
	"image/color"

	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the board status panel to the right of the LED matrix.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Update replaces the cached status snapshot.
func (h *HUD) Update(snapshot core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.snapshot = snapshot
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "[A] random  [B] invert", face, panelPadding, y, headerColor)
	if len(h.snapshot.Groups) == 0 {
		text.Draw(h.panel, "Waiting for first frame", face, panelPadding, y+groupSpacing, dimColor)
		return
	}
	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		for _, param := range group.Params {
			y += lineHeight
			text.Draw(h.panel, param.Label, face, panelPadding+indent, y, labelColor)
			bounds := text.BoundString(face, param.Value)
			valueColor := labelColor
			if param.Type == core.ParamTypeString && param.Value != "normal" {
				valueColor = activeColor
			}
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
		}
	}
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	activeColor = color.RGBA{R: 255, G: 120, B: 90, A: 255}
)

const (
	panelPadding   = 12
	headerBaseline = 18
	groupSpacing   = 28
	lineHeight     = 16
	indent         = 8
)
