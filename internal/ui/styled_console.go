package ui

import (
	"errors"
	"io"
	"sync"

	"github.com/fatih/color"
)

const (
	consoleWriterNotConfiguredMessageConstant = "styled console writer not configured"
)

// ErrConsoleWriterNotConfigured indicates a StyledConsole without an output writer.
var ErrConsoleWriterNotConfigured = errors.New(consoleWriterNotConfiguredMessageConstant)

var stylePalette = map[Style][]color.Attribute{
	StylePlain:       {color.FgWhite},
	StyleOrigin:      {color.FgBlue},
	StyleDestination: {color.FgGreen},
	StyleGlobal:      {color.FgHiBlack},
	StyleSuccess:     {color.FgGreen, color.Bold},
	StyleWarning:     {color.FgYellow},
	StyleError:       {color.FgRed, color.Bold},
}

// StyledConsole writes one line per call, colorized according to its Style.
type StyledConsole struct {
	writer       io.Writer
	colorEnabled bool
	mutex        sync.Mutex
	colorizers   map[Style]*color.Color
}

// NewStyledConsole constructs a console. When colorEnabled is false every line is written without escape sequences;
// otherwise colors follow the terminal detection performed by fatih/color.
func NewStyledConsole(writer io.Writer, colorEnabled bool) *StyledConsole {
	colorizers := make(map[Style]*color.Color, len(stylePalette))
	for style, attributes := range stylePalette {
		colorizer := color.New(attributes...)
		if !colorEnabled {
			colorizer.DisableColor()
		}
		colorizers[style] = colorizer
	}
	return &StyledConsole{writer: writer, colorEnabled: colorEnabled, colorizers: colorizers}
}

// WriteLine renders text followed by a newline using style.
func (console *StyledConsole) WriteLine(text string, style Style) error {
	if console == nil || console.writer == nil {
		return ErrConsoleWriterNotConfigured
	}

	console.mutex.Lock()
	defer console.mutex.Unlock()

	colorizer, known := console.colorizers[style]
	if !known {
		colorizer = console.colorizers[StylePlain]
	}
	_, writeError := colorizer.Fprintln(console.writer, text)
	return writeError
}
