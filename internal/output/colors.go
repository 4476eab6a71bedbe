package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for rendered log entries
type ColorScheme struct {
	Debug     *color.Color
	Info      *color.Color
	Warn      *color.Color
	Error     *color.Color
	Fatal     *color.Color
	Timestamp *color.Color
	Logger    *color.Color
	Duration  *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Debug:     color.New(color.FgMagenta),
		Info:      color.New(color.FgGreen, color.Bold),
		Warn:      color.New(color.FgYellow, color.Bold),
		Error:     color.New(color.FgRed, color.Bold),
		Fatal:     color.New(color.FgRed, color.Bold, color.BgWhite),
		Timestamp: color.New(color.FgWhite),
		Logger:    color.New(color.FgCyan),
		Duration:  color.New(color.FgBlue, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Debug.DisableColor()
	scheme.Info.DisableColor()
	scheme.Warn.DisableColor()
	scheme.Error.DisableColor()
	scheme.Fatal.DisableColor()
	scheme.Timestamp.DisableColor()
	scheme.Logger.DisableColor()
	scheme.Duration.DisableColor()

	return scheme
}

// LevelColor returns the color for a level string. Unknown levels render
// like info.
func (s *ColorScheme) LevelColor(level string) *color.Color {
	switch level {
	case "debug":
		return s.Debug
	case "warn", "warning":
		return s.Warn
	case "error":
		return s.Error
	case "fatal", "critical":
		return s.Fatal
	default:
		return s.Info
	}
}
