package pathutils_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/postlayout/internal/utils/path"
)

const (
	testHomeDirectoryConstant       = "/home/writer"
	pathSanitizerSubtestTemplate    = "%d_%s"
	testFallbackDirectoryConstant   = "posts"
	testConfiguredDirectoryConstant = "site/posts/"
)

func TestPathSanitizerDirectory(testInstance *testing.T) {
	sanitizer := pathutils.NewPathSanitizerWithHomeProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})

	testCases := []struct {
		name          string
		candidatePath string
		fallbackPath  string
		expectedPath  string
	}{
		{
			name:          "blank_candidate_uses_fallback",
			candidatePath: "  ",
			fallbackPath:  testFallbackDirectoryConstant,
			expectedPath:  testFallbackDirectoryConstant,
		},
		{
			name:          "trailing_separator_is_cleaned",
			candidatePath: testConfiguredDirectoryConstant,
			fallbackPath:  testFallbackDirectoryConstant,
			expectedPath:  filepath.Clean(testConfiguredDirectoryConstant),
		},
		{
			name:          "home_prefix_is_expanded",
			candidatePath: "~/blog/posts",
			fallbackPath:  testFallbackDirectoryConstant,
			expectedPath:  filepath.Join(testHomeDirectoryConstant, "blog", "posts"),
		},
		{
			name:          "bare_home_shortcut",
			candidatePath: "~",
			fallbackPath:  testFallbackDirectoryConstant,
			expectedPath:  testHomeDirectoryConstant,
		},
		{
			name:          "named_user_shortcut_is_kept",
			candidatePath: "~editor/posts",
			fallbackPath:  testFallbackDirectoryConstant,
			expectedPath:  "~editor/posts",
		},
		{
			name:          "blank_candidate_and_fallback",
			candidatePath: "",
			fallbackPath:  "",
			expectedPath:  "",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(pathSanitizerSubtestTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedPath, sanitizer.Directory(testCase.candidatePath, testCase.fallbackPath))
		})
	}
}

func TestPathSanitizerBaseNames(testInstance *testing.T) {
	sanitizer := pathutils.NewPathSanitizer()

	sanitized := sanitizer.BaseNames([]string{" 11395.html ", "posts/manifest.json", "", "11395.html", "."})
	require.Equal(testInstance, []string{"11395.html", "manifest.json"}, sanitized)

	require.Nil(testInstance, sanitizer.BaseNames([]string{" ", ""}))
}

func TestPathSanitizerKeepsTildeWhenHomeUnavailable(testInstance *testing.T) {
	sanitizer := pathutils.NewPathSanitizerWithHomeProvider(func() (string, error) {
		return "", errors.New("no home directory")
	})

	require.Equal(testInstance, "~/posts", sanitizer.Directory("~/posts", testFallbackDirectoryConstant))
	require.Equal(testInstance, "posts", sanitizer.Directory("posts", testFallbackDirectoryConstant))
}
