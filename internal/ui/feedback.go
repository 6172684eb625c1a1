package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/board"
)

// framesPerSquare is how many ticks a piece spends crossing one square.
const framesPerSquare = 10

// MoveAnimation slides the last moved piece from its origin to its
// destination, one tick per frame.
type MoveAnimation struct {
	Move   board.Move
	frame  int
	frames int
}

// NewMoveAnimation creates an animation whose length grows with the
// Manhattan distance travelled.
func NewMoveAnimation(m board.Move) *MoveAnimation {
	dr := m.To.Row() - m.From.Row()
	dc := m.To.Col() - m.From.Col()
	return &MoveAnimation{
		Move:   m,
		frames: (absInt(dr) + absInt(dc)) * framesPerSquare,
	}
}

// Step advances one frame. It returns false once the piece has arrived.
func (a *MoveAnimation) Step() bool {
	a.frame++
	return a.frame <= a.frames
}

// Position returns the fractional row and column of the moving piece.
func (a *MoveAnimation) Position() (row, col float64) {
	from, to := a.Move.From, a.Move.To
	if a.frames == 0 {
		return float64(to.Row()), float64(to.Col())
	}
	t := float64(a.frame) / float64(a.frames)
	if t > 1 {
		t = 1
	}
	row = float64(from.Row()) + float64(to.Row()-from.Row())*t
	col = float64(from.Col()) + float64(to.Col()-from.Col())*t
	return row, col
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts centered over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image, scale float64) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := 50.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}

		var bgColor color.RGBA
		switch t.Type {
		case ToastWarning:
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
		case ToastSuccess:
			bgColor = color.RGBA{50, 150, 50, uint8(220 * alpha)}
		default:
			bgColor = color.RGBA{50, 100, 150, uint8(220 * alpha)}
		}
		textColor := color.RGBA{255, 255, 255, uint8(255 * alpha)}

		w, h := MeasureText(t.Message, face)
		padding := 12.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x*scale), float32(y*scale), float32(boxW*scale), float32(boxH*scale), bgColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate((x+padding)*scale, (y+padding)*scale)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, t.Message, scaledFace(face, scale), op)

		y += boxH + 8
	}
}

// ShakeAnimation represents a piece shake effect.
type ShakeAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Intensity float64
}

// shakeOffset returns the horizontal offset of a damped oscillation at
// the given progress through the animation.
func (s *ShakeAnimation) shakeOffset(progress float64) float64 {
	if progress >= 1.0 {
		return 0
	}
	decay := 5.0
	freq := 40.0
	amplitude := s.Intensity * math.Exp(-decay*progress)
	return amplitude * math.Sin(freq*progress)
}

// FeedbackManager coordinates toasts and the rejected-move shake.
type FeedbackManager struct {
	toasts *ToastManager
	shake  *ShakeAnimation
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{toasts: NewToastManager()}
}

// Update expires finished effects.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	if fm.shake != nil && time.Since(fm.shake.StartTime) >= fm.shake.Duration {
		fm.shake = nil
	}
}

// Draw renders feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, scale float64) {
	fm.toasts.Draw(screen, scale)
}

// ShakeOffset returns the current shake offset for a square.
func (fm *FeedbackManager) ShakeOffset(sq board.Square) float64 {
	if fm.shake == nil || fm.shake.Square != sq {
		return 0
	}
	progress := time.Since(fm.shake.StartTime).Seconds() / fm.shake.Duration.Seconds()
	return fm.shake.shakeOffset(progress)
}

// OnRejected shakes the piece whose move was refused.
func (fm *FeedbackManager) OnRejected(from board.Square) {
	fm.shake = &ShakeAnimation{
		Square:    from,
		StartTime: time.Now(),
		Duration:  300 * time.Millisecond,
		Intensity: 8.0,
	}
}

// OnCheck announces a check.
func (fm *FeedbackManager) OnCheck() {
	fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
}

// OnGameOver announces the result.
func (fm *FeedbackManager) OnGameOver(result string) {
	fm.toasts.Show(result, ToastSuccess, 5*time.Second)
}

// OnInfo shows a short informational message.
func (fm *FeedbackManager) OnInfo(msg string) {
	fm.toasts.Show(msg, ToastInfo, 2*time.Second)
}
