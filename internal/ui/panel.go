package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 24
	ButtonHeight   = 36
	SectionLabelH  = 20
	StatusBarH     = 90
)

// Panel colors
var (
	panelBg        = color.RGBA{38, 40, 45, 255}
	buttonBg       = color.RGBA{50, 54, 60, 255}
	buttonHoverBg  = color.RGBA{65, 70, 78, 255}
	buttonBorder   = color.RGBA{70, 75, 82, 255}
	accentColor    = color.RGBA{76, 175, 120, 255}
	accentHover    = color.RGBA{96, 195, 140, 255}
	textPrimary    = color.RGBA{240, 240, 245, 255}
	textSecondary  = color.RGBA{160, 165, 175, 255}
	textMuted      = color.RGBA{120, 125, 135, 255}
	dividerColor   = color.RGBA{60, 65, 72, 255}
	moveRowAlt     = color.RGBA{44, 48, 54, 255}
	statusCheck    = color.RGBA{255, 120, 120, 255}
	statusGameOver = color.RGBA{255, 200, 80, 255}
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	Active     func() bool // toggles only
	hovered    bool
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// Panel is the side panel with controls, move list and status.
type Panel struct {
	game    *Game
	primary *Button
	actions []*Button
	toggles []*Button

	// Move history scroll
	scrollY int
	follow  bool
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g, follow: true}

	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2
	y := PanelPadding

	p.primary = &Button{X: contentX, Y: y, W: contentW, H: ButtonHeight, Label: "New Game", OnClick: g.NewGameAction}
	y += ButtonHeight + 8

	half := (contentW - 8) / 2
	p.actions = []*Button{
		{X: contentX, Y: y, W: half, H: ButtonHeight - 6, Label: "Undo (Z)", OnClick: g.UndoAction},
		{X: contentX + half + 8, Y: y, W: half, H: ButtonHeight - 6, Label: "Flip (F)", OnClick: g.FlipAction},
	}
	y += ButtonHeight + 2

	p.toggles = []*Button{
		{X: contentX, Y: y, W: half, H: ButtonHeight - 10, Label: "Show moves",
			OnClick: g.ToggleLegalMoves, Active: func() bool { return g.prefs.ShowLegalMoves }},
		{X: contentX + half + 8, Y: y, W: half, H: ButtonHeight - 10, Label: "Animate",
			OnClick: g.ToggleAnimation, Active: func() bool { return g.prefs.AnimateMoves }},
	}

	return p
}

func (p *Panel) buttons() []*Button {
	all := []*Button{p.primary}
	all = append(all, p.actions...)
	return append(all, p.toggles...)
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	if _, wheelY := ebiten.Wheel(); wheelY != 0 && mx >= BoardSize {
		p.scrollY -= int(wheelY * 22)
		p.follow = false
		if p.scrollY < 0 {
			p.scrollY = 0
		}
	}

	handled := false
	for _, btn := range p.buttons() {
		btn.hovered = btn.contains(mx, my)
		if btn.hovered && input.IsLeftJustPressed() && !handled {
			btn.OnClick()
			handled = true
		}
	}
	return handled
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons() {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image, scale float64) {
	p.fillRect(screen, BoardSize, 0, PanelWidth, ScreenHeight, panelBg, scale)

	p.drawButton(screen, p.primary, true, scale)
	for _, btn := range p.actions {
		p.drawButton(screen, btn, false, scale)
	}
	for _, btn := range p.toggles {
		p.drawButton(screen, btn, btn.Active(), scale)
	}

	historyY := p.toggles[0].Y + p.toggles[0].H + SectionSpacing
	p.text(screen, "Moves", BoardSize+PanelPadding, historyY, textMuted, scale)
	p.drawMoveHistory(screen, historyY+SectionLabelH+4, scale)

	p.drawStatusBar(screen, scale)
}

func (p *Panel) drawButton(screen *ebiten.Image, btn *Button, accent bool, scale float64) {
	bg := buttonBg
	switch {
	case accent && btn.hovered:
		bg = accentHover
	case accent:
		bg = accentColor
	case btn.hovered:
		bg = buttonHoverBg
	}
	p.fillRect(screen, btn.X, btn.Y, btn.W, btn.H, bg, scale)
	vector.StrokeRect(screen, float32(float64(btn.X)*scale), float32(float64(btn.Y)*scale),
		float32(float64(btn.W)*scale), float32(float64(btn.H)*scale), 1, buttonBorder, false)

	c := textSecondary
	if accent {
		c = textPrimary
	}
	drawTextCentered(screen, btn.Label, GetRegularFace(), float64(btn.X+btn.W/2), float64(btn.Y+btn.H/2), scale, c)
}

func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int, scale float64) {
	moves := p.game.session.SANHistory()
	if len(moves) == 0 {
		p.text(screen, "No moves yet", BoardSize+PanelPadding, startY+5, textMuted, scale)
		return
	}

	x := BoardSize + PanelPadding
	rowHeight := 22
	maxY := ScreenHeight - StatusBarH
	visibleRows := (maxY - startY) / rowHeight

	totalRows := (len(moves) + 1) / 2
	maxScroll := (totalRows - visibleRows) * rowHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	// Follow the newest move unless the user scrolled up.
	if p.follow || p.scrollY >= maxScroll {
		p.scrollY = maxScroll
		p.follow = true
	}

	first := p.scrollY / rowHeight
	y := startY
	for row := first; row < totalRows && y+rowHeight <= maxY; row++ {
		if row%2 == 1 {
			p.fillRect(screen, x-4, y-2, PanelWidth-PanelPadding*2+8, rowHeight, moveRowAlt, scale)
		}
		i := row * 2
		p.text(screen, fmt.Sprintf("%d.", row+1), x, y, textMuted, scale)
		p.text(screen, moves[i], x+40, y, textPrimary, scale)
		if i+1 < len(moves) {
			p.text(screen, moves[i+1], x+130, y, textPrimary, scale)
		}
		y += rowHeight
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image, scale float64) {
	statusY := ScreenHeight - StatusBarH + 10
	x := BoardSize + PanelPadding

	p.fillRect(screen, x, statusY-10, PanelWidth-PanelPadding*2, 1, dividerColor, scale)

	username := p.game.prefs.Username
	if len(username) > 12 {
		username = username[:12] + "..."
	}
	p.text(screen, username, x, statusY, textPrimary, scale)
	p.text(screen, p.game.session.ID(), x+130, statusY, textSecondary, scale)

	statusText, statusColor := p.game.StatusLine()
	p.text(screen, statusText, x, statusY+22, statusColor, scale)

	if st := p.game.stats; st != nil {
		line := fmt.Sprintf("Games %d  W %d  B %d  D %d", st.GamesPlayed, st.WhiteWins, st.BlackWins, st.Stalemates)
		p.text(screen, line, x, statusY+44, textMuted, scale)
	}
}

func (p *Panel) text(screen *ebiten.Image, s string, x, y int, c color.Color, scale float64) {
	drawText(screen, s, GetRegularFace(), float64(x), float64(y), scale, c)
}

func (p *Panel) fillRect(screen *ebiten.Image, x, y, w, h int, c color.Color, scale float64) {
	vector.DrawFilledRect(screen, float32(float64(x)*scale), float32(float64(y)*scale),
		float32(float64(w)*scale), float32(float64(h)*scale), c, false)
}
