package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a keyboard shortcut action.
type Command int

const (
	CmdNone Command = iota
	CmdUndo
	CmdRestart
	CmdFlip
	CmdMute
)

// keyBindings maps keys to commands.
var keyBindings = map[ebiten.Key]Command{
	ebiten.KeyZ: CmdUndo,
	ebiten.KeyR: CmdRestart,
	ebiten.KeyF: CmdFlip,
	ebiten.KeyM: CmdMute,
}

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY  int // Logical coordinates (unscaled)
	scale           float64
	leftJustPressed bool
	command         Command
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{scale: 1.0}
}

// SetScale sets the HiDPI factor used to convert cursor positions.
func (ih *InputHandler) SetScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	ih.scale = scale
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	rawX, rawY := ebiten.CursorPosition()
	ih.mouseX = int(float64(rawX) / ih.scale)
	ih.mouseY = int(float64(rawY) / ih.scale)

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	ih.command = CmdNone
	for key, cmd := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			ih.command = cmd
			break
		}
	}
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// Command returns the shortcut pressed this frame, if any.
func (ih *InputHandler) Command() Command {
	return ih.command
}

// IsInBounds returns true if the mouse is within the given rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.mouseX >= x && ih.mouseX < x+w && ih.mouseY >= y && ih.mouseY < y+h
}

// ClickedInBounds returns true if the mouse was just clicked within the given rectangle.
func (ih *InputHandler) ClickedInBounds(x, y, w, h int) bool {
	return ih.leftJustPressed && ih.IsInBounds(x, y, w, h)
}
