package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	homeShortcutConstant           = "~"
	currentDirectoryNameConstant   = "."
	homeShortcutSeparatorsConstant = "/" + string(os.PathSeparator)
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// PathSanitizer normalizes directory and file name inputs consistently across commands.
type PathSanitizer struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectoryOnce     sync.Once
	homeDirectory         string
}

// NewPathSanitizer constructs a PathSanitizer backed by the operating system home directory lookup.
func NewPathSanitizer() *PathSanitizer {
	return NewPathSanitizerWithHomeProvider(nil)
}

// NewPathSanitizerWithHomeProvider constructs a PathSanitizer using the provided home directory lookup.
func NewPathSanitizerWithHomeProvider(provider HomeDirectoryProvider) *PathSanitizer {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &PathSanitizer{homeDirectoryProvider: provider}
}

// Directory trims whitespace, expands a leading ~ to the user's home directory, and cleans the path.
// The fallback is used when the candidate is blank.
func (sanitizer *PathSanitizer) Directory(candidatePath string, fallbackPath string) string {
	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 {
		trimmedCandidate = strings.TrimSpace(fallbackPath)
	}
	if len(trimmedCandidate) == 0 {
		return ""
	}

	return filepath.Clean(sanitizer.expandHome(trimmedCandidate))
}

// BaseNames reduces each entry to its base name, dropping blanks and duplicates while keeping order.
func (sanitizer *PathSanitizer) BaseNames(candidateNames []string) []string {
	sanitizedNames := make([]string, 0, len(candidateNames))
	seen := make(map[string]struct{}, len(candidateNames))

	for _, candidateName := range candidateNames {
		trimmedName := strings.TrimSpace(candidateName)
		if len(trimmedName) == 0 {
			continue
		}

		baseName := filepath.Base(filepath.FromSlash(trimmedName))
		if baseName == currentDirectoryNameConstant || baseName == string(filepath.Separator) {
			continue
		}
		if _, alreadySeen := seen[baseName]; alreadySeen {
			continue
		}

		seen[baseName] = struct{}{}
		sanitizedNames = append(sanitizedNames, baseName)
	}

	if len(sanitizedNames) == 0 {
		return nil
	}

	return sanitizedNames
}

// expandHome rewrites "~" and "~/..." prefixes. Other tilde forms such as "~user" are left alone.
func (sanitizer *PathSanitizer) expandHome(candidatePath string) string {
	remainder, hasShortcut := strings.CutPrefix(candidatePath, homeShortcutConstant)
	if !hasShortcut || sanitizer == nil {
		return candidatePath
	}
	if len(remainder) > 0 && !strings.ContainsRune(homeShortcutSeparatorsConstant, rune(remainder[0])) {
		return candidatePath
	}

	homeDirectory := sanitizer.resolveHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	return filepath.Join(homeDirectory, remainder)
}

func (sanitizer *PathSanitizer) resolveHomeDirectory() string {
	sanitizer.homeDirectoryOnce.Do(func() {
		if sanitizer.homeDirectoryProvider == nil {
			return
		}
		homeDirectory, lookupError := sanitizer.homeDirectoryProvider()
		if lookupError == nil {
			sanitizer.homeDirectory = homeDirectory
		}
	})
	return sanitizer.homeDirectory
}
