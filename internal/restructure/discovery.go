package restructure

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/temirov/postlayout/internal/filesystem"
)

const (
	postFilePatternConstant                        = "*.html"
	postsDirectoryAccessErrorTemplateConstant      = "unable to access posts directory %s: %w"
	postsDirectoryEnumerationErrorTemplateConstant = "unable to enumerate posts in %s: %w"
	postsDirectoryNotDirectoryMessageConstant      = "posts path is not a directory"
	postsDirectoryNotDirectoryTemplateConstant     = "%w: %s"
	fileSystemMissingMessageConstant               = "file system not configured"
)

var (
	errPostsDirectoryNotDirectory = errors.New(postsDirectoryNotDirectoryMessageConstant)
	errFileSystemMissing          = errors.New(fileSystemMissingMessageConstant)
)

// DiscoveredPost is one *.html file found in the posts directory.
type DiscoveredPost struct {
	Path     string
	Excluded bool
}

// PostDiscovery lists every post in glob order, flagged when the exclusion set holds it back.
type PostDiscovery struct {
	Posts []DiscoveredPost
}

// Candidates returns the paths selected for migration in glob order.
func (discovery PostDiscovery) Candidates() []string {
	return discovery.paths(false)
}

// Excluded returns the paths held back by the exclusion set in glob order.
func (discovery PostDiscovery) Excluded() []string {
	return discovery.paths(true)
}

func (discovery PostDiscovery) paths(excluded bool) []string {
	var paths []string
	for _, post := range discovery.Posts {
		if post.Excluded == excluded {
			paths = append(paths, post.Path)
		}
	}
	return paths
}

// PostDiscoverer enumerates post files beneath a posts directory.
type PostDiscoverer struct {
	fileSystem filesystem.FileSystem
}

// NewPostDiscoverer constructs a PostDiscoverer backed by the provided file system.
func NewPostDiscoverer(fileSystem filesystem.FileSystem) *PostDiscoverer {
	return &PostDiscoverer{fileSystem: fileSystem}
}

// DiscoverPosts returns every *.html file directly inside postsDirectory in glob order,
// flagging those whose base name appears in excludedNames. Excluded files are never opened.
func (discoverer *PostDiscoverer) DiscoverPosts(postsDirectory string, excludedNames []string) (PostDiscovery, error) {
	if discoverer == nil || discoverer.fileSystem == nil {
		return PostDiscovery{}, errFileSystemMissing
	}

	directoryInfo, statError := discoverer.fileSystem.Stat(postsDirectory)
	if statError != nil {
		return PostDiscovery{}, fmt.Errorf(postsDirectoryAccessErrorTemplateConstant, postsDirectory, statError)
	}
	if !directoryInfo.IsDir() {
		return PostDiscovery{}, fmt.Errorf(postsDirectoryNotDirectoryTemplateConstant, errPostsDirectoryNotDirectory, postsDirectory)
	}

	matches, globError := discoverer.fileSystem.Glob(filepath.Join(postsDirectory, postFilePatternConstant))
	if globError != nil {
		return PostDiscovery{}, fmt.Errorf(postsDirectoryEnumerationErrorTemplateConstant, postsDirectory, globError)
	}

	exclusionSet := make(map[string]struct{}, len(excludedNames))
	for _, excludedName := range excludedNames {
		exclusionSet[excludedName] = struct{}{}
	}

	discovery := PostDiscovery{Posts: make([]DiscoveredPost, 0, len(matches))}
	for _, matchedPath := range matches {
		_, excluded := exclusionSet[filepath.Base(matchedPath)]
		discovery.Posts = append(discovery.Posts, DiscoveredPost{Path: matchedPath, Excluded: excluded})
	}

	return discovery, nil
}
