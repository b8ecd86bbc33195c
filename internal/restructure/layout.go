package restructure

import (
	"regexp"
	"strings"
)

const (
	// whitespaceRunPatternConstant matches every Unicode whitespace character.
	// RE2's \s alone is ASCII-only and misses \v, NBSP, U+0085 and the line separators.
	whitespaceRunPatternConstant = `[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]+`

	legacyOpeningPatternConstant           = `    <div class="wrapper">` + whitespaceRunPatternConstant + `        <main class="main-content">`
	duplicateArticleClosingPatternConstant = `</article>` + whitespaceRunPatternConstant + `</article>`
	legacyClosingPatternConstant           = `            </article>` + whitespaceRunPatternConstant + `</main>` + whitespaceRunPatternConstant + `        <div data-include="\.\./partials/sidebar-post\.html"></div>` + whitespaceRunPatternConstant + `    </div>`

	mainContentOpeningTagConstant     = `<main class="main-content">`
	wrapperOpeningTagConstant         = `<div class="wrapper">`
	articleClosingTagConstant         = `</article>`
	wrapperClosingTagConstant         = `</div>`
	mainClosingTagConstant            = `</main>`
	sidebarIncludePlaceholderConstant = `<div data-include="../partials/sidebar-post.html"></div>`

	mainIndentationConstant    = "    "
	wrapperIndentationConstant = "        "
	sidebarIndentationConstant = "        "
	articleIndentationConstant = "            "

	lineFeedConstant               = "\n"
	carriageReturnLineFeedConstant = "\r\n"
)

var (
	legacyOpeningPattern           = regexp.MustCompile(legacyOpeningPatternConstant)
	duplicateArticleClosingPattern = regexp.MustCompile(duplicateArticleClosingPatternConstant)
	legacyClosingPattern           = regexp.MustCompile(legacyClosingPatternConstant)
)

// LayoutTransformer rewrites post markup from the legacy wrapper-outside layout
// to the main-outside layout.
type LayoutTransformer struct{}

// NewLayoutTransformer constructs a LayoutTransformer.
func NewLayoutTransformer() LayoutTransformer {
	return LayoutTransformer{}
}

// Transform applies the opening rewrite, the duplicate </article> collapse, and
// the closing rewrite in that order. Each step runs over the output of the
// previous one. Emitted line breaks follow the content's own convention.
func (LayoutTransformer) Transform(content string) string {
	lineBreak := detectLineBreak(content)

	transformed := legacyOpeningPattern.ReplaceAllLiteralString(content, migratedOpening(lineBreak))
	transformed = duplicateArticleClosingPattern.ReplaceAllLiteralString(transformed, articleClosingTagConstant)
	transformed = legacyClosingPattern.ReplaceAllLiteralString(transformed, migratedClosing(lineBreak))

	return transformed
}

// HasMigratedSignature reports whether content contains the canonical opening of the new layout.
func HasMigratedSignature(content string) bool {
	return strings.Contains(content, migratedSignature(lineFeedConstant)) ||
		strings.Contains(content, migratedSignature(carriageReturnLineFeedConstant))
}

func detectLineBreak(content string) string {
	if strings.Contains(content, carriageReturnLineFeedConstant) {
		return carriageReturnLineFeedConstant
	}
	return lineFeedConstant
}

func migratedSignature(lineBreak string) string {
	return mainContentOpeningTagConstant + lineBreak + wrapperIndentationConstant + wrapperOpeningTagConstant
}

func migratedOpening(lineBreak string) string {
	return mainIndentationConstant + migratedSignature(lineBreak)
}

func migratedClosing(lineBreak string) string {
	return strings.Join([]string{
		articleIndentationConstant + articleClosingTagConstant,
		wrapperIndentationConstant + wrapperClosingTagConstant,
		"",
		sidebarIndentationConstant + sidebarIncludePlaceholderConstant,
		mainIndentationConstant + mainClosingTagConstant,
	}, lineBreak)
}
