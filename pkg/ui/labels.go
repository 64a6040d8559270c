package ui

import (
	"github.com/ideamans/go-l10n"

	"github.com/user/hairline/pkg/ports"
)

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Flip H":     "左右反転",
		"Flip V":     "上下反転",
		"Rotate CW":  "右回転",
		"Rotate CCW": "左回転",
		"Invert":     "色反転",
	})
}

// Label returns the caption of a button in the current language.
func Label(b ports.Button) string {
	switch b {
	case ports.ButtonFlipHorizontal:
		return l10n.T("Flip H")
	case ports.ButtonFlipVertical:
		return l10n.T("Flip V")
	case ports.ButtonRotateClockwise:
		return l10n.T("Rotate CW")
	case ports.ButtonRotateCounterClockwise:
		return l10n.T("Rotate CCW")
	case ports.ButtonInvert:
		return l10n.T("Invert")
	default:
		return b.String()
	}
}
