// ChessRules - a two-player chess board built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessrules/internal/ui"
)

var (
	dataDir = flag.String("data", "", "directory for the game database (default: user data dir)")
	noStore = flag.Bool("nostore", false, "do not persist preferences or game results")
	flip    = flag.Bool("flip", false, "start with black at the bottom")
)

func main() {
	flag.Parse()

	game := ui.NewGame(ui.Options{
		DataDir: *dataDir,
		NoStore: *noStore,
		Flip:    *flip,
	})
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("ChessRules")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
