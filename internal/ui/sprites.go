// Package ui implements the chess game UI using Ebitengine.
package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessrules/internal/board"
)

// Piece outlines on a 45x45 canvas, drawn over a shared pedestal.
var pieceShapes = map[board.PieceType]string{
	board.Pawn: `<circle cx="22.5" cy="13" r="5"/>` +
		`<path d="M16 34 Q17 22 22.5 19 Q28 22 29 34 Z"/>`,
	board.Knight: `<path d="M14 34 L16 25 L11 21 L13 15 L18 9 L21 5 L23 9 L29 11 L33 19 L33 34 Z"/>` +
		`<circle cx="20" cy="14" r="1.5" fill="{detail}"/>`,
	board.Bishop: `<circle cx="22.5" cy="8" r="2.5"/>` +
		`<ellipse cx="22.5" cy="22" rx="7" ry="10"/>` +
		`<path d="M20 18 L25 23" stroke="{detail}"/>` +
		`<rect x="15" y="31" width="15" height="3"/>`,
	board.Rook: `<path d="M11 9 h5 v3 h4.5 v-3 h4 v3 h4.5 v-3 h5 v7 h-23 Z"/>` +
		`<rect x="14" y="16" width="17" height="15"/>` +
		`<rect x="12" y="31" width="21" height="3"/>`,
	board.Queen: `<path d="M10 34 L8 14 L15 24 L17 9 L22.5 23 L28 9 L30 24 L37 14 L35 34 Z"/>` +
		`<circle cx="8" cy="12" r="2"/><circle cx="17" cy="8" r="2"/>` +
		`<circle cx="28" cy="8" r="2"/><circle cx="37" cy="12" r="2"/>`,
	board.King: `<rect x="21" y="4" width="3" height="12"/>` +
		`<rect x="17" y="7" width="11" height="3"/>` +
		`<path d="M11 34 L12 22 Q22.5 13 33 22 L34 34 Z"/>`,
}

// pieceSVG returns the SVG document for a piece.
func pieceSVG(p board.Piece) (string, error) {
	shape, ok := pieceShapes[p.Type()]
	if !ok {
		return "", fmt.Errorf("no shape for piece %v", p)
	}

	fill, stroke := "#ffffff", "#000000"
	if p.Color() == board.Black {
		fill, stroke = "#222222", "#000000"
	}
	// Details drawn in the opposite tone so they show on both colors.
	detail := stroke
	if p.Color() == board.Black {
		detail = "#dddddd"
	}

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">`)
	fmt.Fprintf(&sb, `<g fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round">`, fill, stroke)
	sb.WriteString(`<rect x="9" y="35" width="27" height="5" rx="1"/>`)
	sb.WriteString(strings.ReplaceAll(shape, "{detail}", detail))
	sb.WriteString(`</g></svg>`)
	return sb.String(), nil
}

// rasterizePiece renders a piece into a size x size RGBA image.
func rasterizePiece(p board.Piece, size int) (*image.RGBA, error) {
	doc, err := pieceSVG(p)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.Code(), err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
	scale       float64 // HiDPI scale factor
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
		scale:       1.0,
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterizes all twelve pieces.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			piece := board.NewPiece(pt, c)
			rgba, err := rasterizePiece(piece, renderSize)
			if err != nil {
				log.Printf("Warning: Failed to render piece %s: %v", piece.Code(), err)
				continue
			}
			sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// SetScale sets the HiDPI scale factor.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y float64) {
	if p.IsEmpty() {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := sm.scale / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
