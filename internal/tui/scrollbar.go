package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

const (
	ScrollbarWidth = 1

	scrollbarThumb = "█"
	scrollbarTrack = "░"
)

var scrollbarStyle = Regular.Foreground(Muted)

// Scrollbar renders a vertical scrollbar for the viewport, as tall as the
// viewport. The thumb fills the track when all the content is visible.
func Scrollbar(vp viewport.Model) string {
	height := vp.Height
	if height < 1 {
		return ""
	}
	total := max(1, vp.TotalLineCount())
	ratio := float64(height) / float64(total)
	thumbHeight := max(1, min(height, int(math.Round(float64(height)*ratio))))
	thumbOffset := max(0, min(height-thumbHeight, int(math.Round(float64(vp.YOffset)*ratio))))

	rows := make([]string, height)
	for i := range rows {
		if i >= thumbOffset && i < thumbOffset+thumbHeight {
			rows[i] = scrollbarThumb
		} else {
			rows[i] = scrollbarTrack
		}
	}
	return scrollbarStyle.Render(strings.Join(rows, "\n"))
}
