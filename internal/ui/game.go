package ui

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/session"
	"github.com/hailam/chessrules/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// Options configures a new Game.
type Options struct {
	DataDir string // storage directory override
	NoStore bool   // run without persistence
	Flip    bool   // start with black at the bottom
}

// Game implements ebiten.Game interface.
type Game struct {
	session *session.Session

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences
	stats   *storage.GameStats

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager
	audio    *AudioManager

	anim *MoveAnimation

	// HiDPI scaling
	scale float64
}

// NewGame creates a new chess game window state.
func NewGame(opts Options) *Game {
	g := &Game{
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		feedback: NewFeedbackManager(),
		scale:    1.0,
	}

	if !opts.NoStore {
		var err error
		g.storage, err = storage.Open(opts.DataDir)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage: %v", err)
		}
	}

	g.loadPreferences()
	if opts.Flip {
		g.prefs.FlipBoard = true
	}
	g.renderer.SetFlipped(g.prefs.FlipBoard)
	g.loadStats()
	g.audio = NewAudioManager(g.prefs.SoundEnabled)

	// A nil *Storage must not become a non-nil Recorder.
	var rec session.Recorder
	if g.storage != nil {
		rec = g.storage
	}
	g.session = session.New(rec)

	g.panel = NewPanel(g)
	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// loadStats refreshes the statistics shown in the panel.
func (g *Game) loadStats() {
	if g.storage == nil {
		return
	}
	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
		return
	}
	g.stats = stats
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.SetScale(g.scale)
	g.input.Update()
	g.feedback.Update()

	// Input waits for the slide to finish.
	if g.anim != nil {
		if !g.anim.Step() {
			g.anim = nil
		}
		return nil
	}

	switch g.input.Command() {
	case CmdUndo:
		g.UndoAction()
		return nil
	case CmdRestart:
		g.NewGameAction()
		return nil
	case CmdFlip:
		g.FlipAction()
		return nil
	case CmdMute:
		g.ToggleSound()
		return nil
	}

	if !g.panel.HandleInput(g.input) {
		g.handleBoardInput()
	}

	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	return nil
}

// handleBoardInput feeds board clicks to the session.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() || g.session.Over() {
		return
	}

	sq := g.renderer.ScreenToSquare(g.input.MousePosition())
	if sq == board.NoSquare {
		return
	}

	before := g.session.Selected()
	m, ok := g.session.Click(sq)
	if !ok {
		// A completed pair that was refused leaves the second click selected.
		if before != board.NoSquare && before != sq && g.session.Selected() == sq {
			g.feedback.OnRejected(before)
			g.audio.Play(SoundRejected)
		}
		return
	}
	g.afterMove(m)
}

// afterMove starts the slide and announces check or the result.
func (g *Game) afterMove(m board.Move) {
	if g.prefs.AnimateMoves {
		g.anim = NewMoveAnimation(m)
	}

	g.audio.Play(soundFor(m, g.session.Status()))

	switch g.session.Status() {
	case session.StatusCheck:
		g.feedback.OnCheck()
	case session.StatusCheckmate, session.StatusStalemate:
		g.feedback.OnGameOver(g.session.ResultText())
		g.loadStats()
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)

	if g.session.Status() != session.StatusPlaying && g.session.Status() != session.StatusStalemate {
		g.renderer.DrawCheck(screen, g.session.KingSquare(g.session.SideToMove()))
	}

	last, hasLast := g.session.LastMove()
	selected := g.session.Selected()
	var targets []board.Move
	b := g.session.Board()
	// Only a selected piece of the side to move gets its targets shown.
	if selected != board.NoSquare {
		if p := b.At(selected); !p.IsEmpty() && p.Color() == g.session.SideToMove() {
			if g.prefs.ShowLegalMoves {
				targets = g.session.LegalMovesFrom(selected)
			}
		} else {
			selected = board.NoSquare
		}
	}
	g.renderer.DrawHighlights(screen, selected, targets, last, hasLast)

	if g.anim != nil {
		g.renderer.DrawAnimatedMove(screen, &b, g.anim)
	} else {
		g.renderer.DrawPieces(screen, &b, g.feedback.ShakeOffset)
	}

	if result := g.session.ResultText(); result != "" && g.anim == nil {
		g.drawResult(screen, result)
	}

	g.feedback.Draw(screen, g.scale)
	g.panel.Draw(screen, g.scale)
}

// drawResult draws the end-of-game message over the board with a shadow.
func (g *Game) drawResult(screen *ebiten.Image, result string) {
	face := GetBoldFace()
	cx, cy := float64(BoardSize)/2, float64(BoardSize)/2
	drawTextCentered(screen, result, face, cx, cy, g.scale, g.renderer.Theme().ResultShadow)
	drawTextCentered(screen, result, face, cx+2, cy+2, g.scale, g.renderer.Theme().TextColor)
}

// Layout returns the game's screen dimensions in device pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// NewGameAction abandons the current game and starts over.
func (g *Game) NewGameAction() {
	g.session.Reset()
	g.anim = nil
	g.panel.follow = true
	g.feedback.OnInfo("New game " + g.session.ID())
}

// UndoAction takes back the last move.
func (g *Game) UndoAction() {
	g.anim = nil
	if err := g.session.Undo(); err != nil {
		g.feedback.OnInfo("Nothing to undo")
	}
}

// FlipAction turns the board around and remembers the choice.
func (g *Game) FlipAction() {
	g.prefs.FlipBoard = !g.prefs.FlipBoard
	g.renderer.SetFlipped(g.prefs.FlipBoard)
	g.savePreferences()
}

// ToggleLegalMoves switches legal destination highlighting.
func (g *Game) ToggleLegalMoves() {
	g.prefs.ShowLegalMoves = !g.prefs.ShowLegalMoves
	g.savePreferences()
}

// ToggleAnimation switches the move slide.
func (g *Game) ToggleAnimation() {
	g.prefs.AnimateMoves = !g.prefs.AnimateMoves
	g.savePreferences()
}

// ToggleSound mutes or unmutes move sounds.
func (g *Game) ToggleSound() {
	g.prefs.SoundEnabled = !g.prefs.SoundEnabled
	g.audio.SetEnabled(g.prefs.SoundEnabled)
	if g.prefs.SoundEnabled {
		g.feedback.OnInfo("Sound on")
	} else {
		g.feedback.OnInfo("Sound off")
	}
	g.savePreferences()
}

// StatusLine returns the text and color for the panel status line.
func (g *Game) StatusLine() (string, color.Color) {
	switch g.session.Status() {
	case session.StatusCheckmate, session.StatusStalemate:
		return g.session.ResultText(), statusGameOver
	case session.StatusCheck:
		return g.session.SideToMove().String() + " to move, check", statusCheck
	default:
		return g.session.SideToMove().String() + " to move", textPrimary
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			log.Printf("Warning: Failed to close storage: %v", err)
		}
	}
}
