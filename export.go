package main

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// panelLine is the text export of one panel: label, committed tiles, AM/PM
// and unit, separated by two spaces.
func (m *model) panelLine(p *panel) string {
	var parts []string
	if m.config.ShowName && p.name != "" {
		parts = append(parts, p.name)
	}
	parts = append(parts, p.board.Text())
	if p.amPm != nil && p.amPm.Len() > 0 {
		parts = append(parts, p.amPm.Text())
	}
	if m.config.ShowUnit && p.unit != "" && !p.pinned {
		parts = append(parts, p.unit)
	}
	return strings.Join(parts, "  ")
}

func (m *model) exportText(filename string) error {
	if len(m.panels) == 0 {
		return fmt.Errorf("nothing to export")
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, p := range m.panels {
		fmt.Fprintln(w, m.panelLine(p))
	}
	return w.Flush()
}

// exportPNG draws the committed characters of every board as flap tiles.
func (m *model) exportPNG(filename string) error {
	if len(m.panels) == 0 {
		return fmt.Errorf("nothing to export")
	}

	// Tile cell dimensions in pixels
	tileWidth := 28.0
	tileHeight := 40.0
	gap := 4.0
	labelHeight := 20.0
	rowGap := 16.0
	unitWidth := 64.0
	padding := 16.0

	maxTiles := 0
	for _, p := range m.panels {
		n := p.board.Len()
		if p.amPm != nil && p.amPm.Len() > 0 {
			n += 1 + p.amPm.Len()
		}
		if n > maxTiles {
			maxTiles = n
		}
	}
	if maxTiles == 0 {
		return fmt.Errorf("nothing to export")
	}

	imageWidth := int(2*padding + float64(maxTiles)*(tileWidth+gap) + unitWidth)
	imageHeight := int(2*padding + float64(len(m.panels))*(labelHeight+tileHeight+rowGap))

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.Black)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	labelFace := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	tileFace := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    26,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	y := padding
	for _, p := range m.panels {
		if m.config.ShowName && p.name != "" {
			dc.SetFontFace(labelFace)
			dc.SetRGB(0.6, 0.6, 0.6)
			dc.DrawStringAnchored(p.name, padding, y+labelHeight/2, 0, 0.5)
		}

		dc.SetFontFace(tileFace)
		x := padding
		for _, r := range p.board.Text() {
			drawTilePNG(dc, r, x, y+labelHeight, tileWidth, tileHeight)
			x += tileWidth + gap
		}
		if p.amPm != nil && p.amPm.Len() > 0 {
			x += tileWidth + gap
			for _, r := range p.amPm.Text() {
				drawTilePNG(dc, r, x, y+labelHeight, tileWidth, tileHeight)
				x += tileWidth + gap
			}
		}
		if m.config.ShowUnit && p.unit != "" && !p.pinned {
			dc.SetFontFace(labelFace)
			dc.SetRGB(0.6, 0.6, 0.6)
			dc.DrawStringAnchored(p.unit, x, y+labelHeight+tileHeight, 0, 0)
		}

		y += labelHeight + tileHeight + rowGap
	}

	return dc.SavePNG(filename)
}

func drawTilePNG(dc *gg.Context, r rune, x, y, w, h float64) {
	dc.SetRGB(0.16, 0.16, 0.16)
	dc.DrawRoundedRectangle(x, y, w, h, 3)
	dc.Fill()

	dc.SetRGB(1, 0.96, 0.85)
	dc.DrawStringAnchored(string(r), x+w/2, y+h/2, 0.5, 0.35)

	// Hinge
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	dc.DrawLine(x, y+h/2, x+w, y+h/2)
	dc.Stroke()
}
