package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	HiddenFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	MarkedFg    tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	WarningFg   tcell.Color
	ErrorFg     tcell.Color
	PromptFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		MarkedFg:    tcell.Color208,
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		WarningFg:   tcell.ColorYellow,
		ErrorFg:     tcell.ColorRed,
		PromptFg:    tcell.ColorDefault,
	}
}
