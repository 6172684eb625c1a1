package term

import "github.com/gdamore/tcell/v2"

// Theme holds the terminal colors.
type Theme struct {
	Name         string
	MoveLabelBg  tcell.Color
	MoveLabelFg  tcell.Color
	SquareDark   tcell.Color
	SquareLight  tcell.Color
	SquareHigh   tcell.Color
	SquareTarget tcell.Color
	SquareSelect tcell.Color
	SquareCursor tcell.Color
	SquareCheck  tcell.Color
	White        tcell.Color
	Black        tcell.Color
	Msg          tcell.Color
	Result       tcell.Color
	Rank         tcell.Color
	File         tcell.Color
	MoveBox      tcell.Color
	Help         tcell.Color
}

// DefaultTheme is a brown board that reads on dark and light terminals.
var DefaultTheme = Theme{
	Name:         "default",
	MoveLabelBg:  tcell.NewHexColor(0x3c4048),
	MoveLabelFg:  tcell.ColorWhite,
	SquareDark:   tcell.NewHexColor(0xb58863),
	SquareLight:  tcell.NewHexColor(0xf0d9b5),
	SquareHigh:   tcell.NewHexColor(0xcdd26a),
	SquareTarget: tcell.NewHexColor(0x82a05a),
	SquareSelect: tcell.NewHexColor(0x6a8ad2),
	SquareCursor: tcell.NewHexColor(0xe8a040),
	SquareCheck:  tcell.NewHexColor(0xe05a5a),
	White:        tcell.NewHexColor(0xffffff),
	Black:        tcell.NewHexColor(0x000000),
	Msg:          tcell.ColorSilver,
	Result:       tcell.ColorYellow,
	Rank:         tcell.ColorGray,
	File:         tcell.ColorGray,
	MoveBox:      tcell.ColorSilver,
	Help:         tcell.ColorGray,
}
