package ui

// Style is a presentation hint attached to an operator-facing line.
type Style int

// Supported styles.
const (
	StylePlain Style = iota
	StyleOrigin
	StyleDestination
	StyleGlobal
	StyleSuccess
	StyleWarning
	StyleError
)
