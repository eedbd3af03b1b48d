package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/mongo-migrate/internal/ui"
)

func TestStyledConsoleWritesPlainLinesWhenColorDisabled(testInstance *testing.T) {
	styles := []ui.Style{
		ui.StylePlain,
		ui.StyleOrigin,
		ui.StyleDestination,
		ui.StyleGlobal,
		ui.StyleSuccess,
		ui.StyleWarning,
		ui.StyleError,
		ui.Style(42),
	}

	outputBuffer := &bytes.Buffer{}
	console := ui.NewStyledConsole(outputBuffer, false)

	for _, style := range styles {
		require.NoError(testInstance, console.WriteLine("line", style))
	}

	require.Equal(testInstance, "line\nline\nline\nline\nline\nline\nline\nline\n", outputBuffer.String())
}

func TestStyledConsoleRequiresWriter(testInstance *testing.T) {
	console := ui.NewStyledConsole(nil, false)

	require.ErrorIs(testInstance, console.WriteLine("line", ui.StylePlain), ui.ErrConsoleWriterNotConfigured)

	var missingConsole *ui.StyledConsole
	require.ErrorIs(testInstance, missingConsole.WriteLine("line", ui.StylePlain), ui.ErrConsoleWriterNotConfigured)
}
