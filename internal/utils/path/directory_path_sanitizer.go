package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	homeShortcutConstant = "~"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// DirectoryPathSanitizer normalizes a configured directory path, expanding a leading "~" to the home directory.
type DirectoryPathSanitizer struct {
	homeDirectory func() (string, error)
}

// NewDirectoryPathSanitizer constructs a DirectoryPathSanitizer using the operating system home lookup.
func NewDirectoryPathSanitizer() *DirectoryPathSanitizer {
	return NewDirectoryPathSanitizerWithHomeProvider(os.UserHomeDir)
}

// NewDirectoryPathSanitizerWithHomeProvider constructs a DirectoryPathSanitizer that asks provider for the home
// directory at most once.
func NewDirectoryPathSanitizerWithHomeProvider(provider HomeDirectoryProvider) *DirectoryPathSanitizer {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &DirectoryPathSanitizer{homeDirectory: sync.OnceValues(func() (string, error) {
		return provider()
	})}
}

// Sanitize trims whitespace, expands a leading tilde, and cleans the path. Blank input yields an empty string.
func (sanitizer *DirectoryPathSanitizer) Sanitize(candidatePath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		return ""
	}
	return filepath.Clean(sanitizer.expandHome(trimmedPath))
}

// expandHome handles "~" and "~/rest"; "~user" forms and failed lookups are returned unchanged.
func (sanitizer *DirectoryPathSanitizer) expandHome(candidatePath string) string {
	if sanitizer == nil || sanitizer.homeDirectory == nil || !strings.HasPrefix(candidatePath, homeShortcutConstant) {
		return candidatePath
	}

	remainder := strings.TrimPrefix(candidatePath, homeShortcutConstant)
	if len(remainder) > 0 && remainder[0] != '/' && remainder[0] != os.PathSeparator {
		return candidatePath
	}

	homeDirectory, lookupError := sanitizer.homeDirectory()
	if lookupError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}
	return filepath.Join(homeDirectory, remainder)
}
