package theme

import "os"

// Nerd Font icons
const (
	nerdIconLive      = "\uF0E7"     // fa-bolt (U+F0E7)
	nerdIconProject   = "\uF487"     // oct-package (U+F487)
	nerdIconConfig    = "\uF013"     // fa-cog (U+F013)
	nerdIconDirectory = "\uF07B"     // fa-folder (U+F07B)
	nerdIconFocus     = "\U000F01A4" // md-crosshairs (U+F01A4)
	nerdIconSuccess   = "\U000F012C" // md-check (U+F012C)
	nerdIconError     = "\uEA87"     // cod-error (U+EA87)
)

// Plain fallbacks
const (
	plainIconLive      = "⚡"
	plainIconProject   = "📦"
	plainIconConfig    = "⚙"
	plainIconDirectory = "📁"
	plainIconFocus     = "◎"
	plainIconSuccess   = "✓"
	plainIconError     = "✗"
)

var (
	IconLive      string
	IconProject   string
	IconConfig    string
	IconDirectory string
	IconFocus     string
	IconSuccess   string
	IconError     string
)

// Nerd Font glyphs are opt-in through SESHCONNECT_ICONS=nerd.
func init() {
	if os.Getenv("SESHCONNECT_ICONS") == "nerd" {
		IconLive = nerdIconLive
		IconProject = nerdIconProject
		IconConfig = nerdIconConfig
		IconDirectory = nerdIconDirectory
		IconFocus = nerdIconFocus
		IconSuccess = nerdIconSuccess
		IconError = nerdIconError
		return
	}

	IconLive = plainIconLive
	IconProject = plainIconProject
	IconConfig = plainIconConfig
	IconDirectory = plainIconDirectory
	IconFocus = plainIconFocus
	IconSuccess = plainIconSuccess
	IconError = plainIconError
}

