package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/hailam/chessrules/internal/session"
	"github.com/hailam/chessrules/internal/storage"
	"github.com/hailam/chessrules/internal/term"
)

var (
	dataDir = flag.String("data", "", "directory for the game database (default: user data dir)")
	noStore = flag.Bool("nostore", false, "do not record finished games")
	flip    = flag.Bool("flip", false, "start with black at the bottom")
	logFile = flag.String("log", "", "log file (default: term.log in the data dir)")
)

// initLog sends log output to a file; the terminal belongs to the board.
func initLog(dest, prefix string) {
	if dest == "" {
		dest = os.DevNull
		if dir, err := storage.GetDataDir(); err == nil {
			dest = filepath.Join(dir, "term.log")
		}
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}

func main() {
	flag.Parse()
	initLog(*logFile, "chessrules-term ")

	var rec session.Recorder
	if !*noStore {
		store, err := storage.Open(*dataDir)
		if err != nil {
			log.Printf("Warning: could not open storage: %v", err)
		} else {
			defer store.Close()
			rec = store
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	app := term.New(screen, session.New(rec), *flip)
	if err := app.Run(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}
