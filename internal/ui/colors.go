package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/be-smiley2/glados-launcher/internal/core"
)

// Color scheme for the launcher
var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)

	Highlight = color.New(color.FgHiCyan, color.Bold)
	Muted     = color.New(color.Faint)
	Bold      = color.New(color.Bold)

	CheckMark = color.GreenString("✓")
	CrossMark = color.RedString("✗")
	Arrow     = color.CyanString("→")
	Bullet    = color.HiBlackString("•")

	// Persona prefixes from the Aperture Science facility intercom
	gladosColor   = color.New(color.FgHiYellow, color.Bold)
	wheatleyColor = color.New(color.FgHiBlue)
	systemColor   = color.New(color.FgHiCyan)
	errorColor    = color.New(color.FgHiMagenta, color.Bold)

	// Platform colors
	PlatformSteamColor   = color.New(color.FgBlue)
	PlatformEpicColor    = color.New(color.FgMagenta)
	PlatformUbisoftColor = color.New(color.FgCyan)
	PlatformGOGColor     = color.New(color.FgYellow)
)

// InitColors initializes color settings based on environment
func InitColors() {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	if os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// GLaDOS prints a line in the GLaDOS voice
func GLaDOS(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, "%s %s\n", gladosColor.Sprint("(GLaDOS)"), fmt.Sprintf(format, args...))
}

// Wheatley prints a line in the Wheatley voice
func Wheatley(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, "%s %s\n", wheatleyColor.Sprint("(Wheatley)"), fmt.Sprintf(format, args...))
}

// System prints a facility-system line
func System(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, "%s %s\n", systemColor.Sprint("(APERTURE-SYS)"), fmt.Sprintf(format, args...))
}

// Failure prints an error-persona line to stderr
func Failure(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorColor.Sprint("(ERROR)"), fmt.Sprintf(format, args...))
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(os.Stdout, "%s %s\n", CheckMark, fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, "%s Error: %s\n", CrossMark, fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(os.Stderr, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(os.Stdout, "%s %s\n", Arrow, fmt.Sprintf(format, args...))
}

// PrintKeyValue prints a key-value pair with color
func PrintKeyValue(key, value string) {
	Bold.Fprintf(os.Stdout, "%s: ", key)
	fmt.Fprintln(os.Stdout, value)
}

// PrintSeparator prints a separator line
func PrintSeparator() {
	Muted.Fprintln(os.Stdout, "──────────────────────────────────────────────────")
}

// PrintHeader prints a section header
func PrintHeader(text string) {
	fmt.Fprintln(os.Stdout)
	Bold.Fprintln(os.Stdout, text)
	Muted.Fprintln(os.Stdout, "──────────────────────────────────────────────────")
}

// ColorizePlatform returns a colored platform name
func ColorizePlatform(p core.Platform) string {
	switch p {
	case core.PlatformSteam:
		return PlatformSteamColor.Sprint(string(p))
	case core.PlatformEpic:
		return PlatformEpicColor.Sprint(string(p))
	case core.PlatformUbisoft:
		return PlatformUbisoftColor.Sprint(string(p))
	case core.PlatformGOG:
		return PlatformGOGColor.Sprint(string(p))
	default:
		return string(p)
	}
}

// DisableColors disables all color output
func DisableColors() {
	color.NoColor = true
}

// EnableColors re-enables color output
func EnableColors() {
	color.NoColor = false
}

// AreColorsEnabled returns whether colors are currently enabled
func AreColorsEnabled() bool {
	return !color.NoColor
}
