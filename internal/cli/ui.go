package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleBoard   = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"

	keyWidth = 14
)

// printer writes styled status lines. In plain mode no styling is applied.
type printer struct {
	w     io.Writer
	plain bool
}

func (p printer) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

func (p printer) line(text string) {
	fmt.Fprintln(p.w, text)
}

func (p printer) success(format string, args ...any) {
	p.line(p.render(styleIconSuccess, iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func (p printer) error(format string, args ...any) {
	p.line(p.render(styleIconError, iconError) + " " + fmt.Sprintf(format, args...))
}

func (p printer) warning(format string, args ...any) {
	p.line(p.render(styleIconWarning, iconWarning) + " " + p.render(styleWarning, fmt.Sprintf(format, args...)))
}

func (p printer) info(format string, args ...any) {
	p.line(p.render(styleIconInfo, iconInfo) + " " + fmt.Sprintf(format, args...))
}

// detail prints an indented secondary line.
func (p printer) detail(format string, args ...any) {
	p.line("  " + p.render(styleDim, fmt.Sprintf(format, args...)))
}

func (p printer) title(text string) {
	p.line(p.render(styleTitle, text))
}

// file prints a written output path.
func (p printer) file(path string) {
	p.line("  " + p.render(styleDim, iconArrow) + " " + p.render(styleValue, path))
}

// keyValue prints a labeled value with the key padded to a fixed width.
func (p printer) keyValue(key, value string) {
	p.line(p.render(styleKey, fmt.Sprintf("%-*s", keyWidth, key)) + " " + p.render(styleValue, value))
}

// board prints the multi-line ASCII rendering one styled line at a time.
func (p printer) board(text string) {
	for _, l := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		p.line(p.render(styleBoard, l))
	}
}
