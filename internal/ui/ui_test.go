package ui

import (
	"strings"
	"testing"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/session"
)

func TestScreenSquareMapping(t *testing.T) {
	tests := []struct {
		name    string
		flipped bool
		sq      board.Square
		x, y    int
	}{
		{"a8 top left", false, board.A8, 0, 0},
		{"h1 bottom right", false, board.H1, 560, 560},
		{"e2", false, board.E2, 320, 480},
		{"flipped h1 top left", true, board.H1, 0, 0},
		{"flipped a8 bottom right", true, board.A8, 560, 560},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &Renderer{boardSize: BoardSize, squareSize: SquareSize, flipped: tc.flipped, scale: 1}
			x, y := r.SquareToScreen(tc.sq)
			if x != tc.x || y != tc.y {
				t.Errorf("SquareToScreen(%v) = (%d, %d), want (%d, %d)", tc.sq, x, y, tc.x, tc.y)
			}
			// Any point inside the square maps back to it.
			if got := r.ScreenToSquare(x+SquareSize/2, y+SquareSize-1); got != tc.sq {
				t.Errorf("ScreenToSquare = %v, want %v", got, tc.sq)
			}
		})
	}

	r := &Renderer{boardSize: BoardSize, squareSize: SquareSize, scale: 1}
	for _, p := range [][2]int{{-1, 0}, {0, BoardSize}, {BoardSize + 5, 10}} {
		if got := r.ScreenToSquare(p[0], p[1]); got != board.NoSquare {
			t.Errorf("ScreenToSquare(%d, %d) = %v, want off board", p[0], p[1], got)
		}
	}
}

func TestMoveAnimation(t *testing.T) {
	b := board.StartingBoard()
	m := board.NewMove(board.G1, board.F3, &b)
	anim := NewMoveAnimation(m)

	// Two rows and one column: three squares of travel.
	if anim.frames != 3*framesPerSquare {
		t.Fatalf("frames = %d, want %d", anim.frames, 3*framesPerSquare)
	}

	row, col := anim.Position()
	if row != float64(board.G1.Row()) || col != float64(board.G1.Col()) {
		t.Errorf("start position = (%v, %v)", row, col)
	}

	steps := 0
	for anim.Step() {
		steps++
	}
	if steps != anim.frames {
		t.Errorf("animation ran %d frames, want %d", steps, anim.frames)
	}

	row, col = anim.Position()
	if row != float64(board.F3.Row()) || col != float64(board.F3.Col()) {
		t.Errorf("end position = (%v, %v)", row, col)
	}
}

func TestPieceSprites(t *testing.T) {
	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			p := board.NewPiece(pt, c)
			t.Run(p.Code(), func(t *testing.T) {
				doc, err := pieceSVG(p)
				if err != nil {
					t.Fatal(err)
				}
				if strings.Contains(doc, "{detail}") {
					t.Error("unreplaced placeholder in SVG")
				}

				img, err := rasterizePiece(p, 90)
				if err != nil {
					t.Fatalf("rasterizePiece: %v", err)
				}
				// The pedestal always covers the bottom middle.
				if _, _, _, a := img.At(45, 75).RGBA(); a == 0 {
					t.Error("expected an opaque pedestal pixel")
				}
				if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
					t.Error("expected a transparent corner")
				}
			})
		}
	}
}

func TestShakeDecays(t *testing.T) {
	s := &ShakeAnimation{Intensity: 8}
	if got := s.shakeOffset(1.0); got != 0 {
		t.Errorf("offset after the end = %v, want 0", got)
	}
	if got := s.shakeOffset(0.05); got == 0 {
		t.Error("expected movement early in the shake")
	}
}

func TestSoundFor(t *testing.T) {
	quiet := board.Move{From: board.G1, To: board.F3, Moved: board.WhiteKnight, Captured: board.NoPiece}
	capture := board.Move{From: board.E4, To: board.D5, Moved: board.WhitePawn, Captured: board.BlackPawn}
	castle := board.Move{From: board.E1, To: board.G1, Moved: board.WhiteKing, Captured: board.NoPiece, IsCastle: true}

	tests := []struct {
		name string
		m    board.Move
		st   session.Status
		want Sound
	}{
		{"quiet", quiet, session.StatusPlaying, SoundMove},
		{"capture", capture, session.StatusPlaying, SoundCapture},
		{"castle", castle, session.StatusPlaying, SoundCastle},
		{"check wins over capture", capture, session.StatusCheck, SoundCheck},
		{"mate", quiet, session.StatusCheckmate, SoundGameOver},
		{"stalemate", capture, session.StatusStalemate, SoundGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := soundFor(tt.m, tt.st); got != tt.want {
				t.Errorf("soundFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSynthesizedClips(t *testing.T) {
	clips := synthesize()
	for s := SoundMove; s <= SoundGameOver; s++ {
		data, ok := clips[s]
		if !ok {
			t.Fatalf("no clip for sound %d", s)
		}
		if len(data) == 0 || len(data)%4 != 0 {
			t.Errorf("sound %d: %d bytes is not whole stereo frames", s, len(data))
		}
		silent := true
		for _, b := range data {
			if b != 0 {
				silent = false
				break
			}
		}
		if silent {
			t.Errorf("sound %d is silent", s)
		}
	}

	if got, want := len(clips[SoundMove]), int(sampleRate*0.08)*4; got != want {
		t.Errorf("move clip = %d bytes, want %d", got, want)
	}
}

func TestNilAudioManagerIsSilent(t *testing.T) {
	var am *AudioManager
	am.Play(SoundMove)
	am.SetEnabled(true)
}
