package restructure

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	classAttributeNameConstant          = "class"
	mainContentClassNameConstant        = "main-content"
	wrapperClassNameConstant            = "wrapper"
	structureParseErrorTemplateConstant = "unable to parse post markup: %w"
)

// StructureInspector examines parsed post markup for the new layout.
type StructureInspector struct{}

// NewStructureInspector constructs a StructureInspector.
func NewStructureInspector() StructureInspector {
	return StructureInspector{}
}

// HasMigratedLayout reports whether a main.main-content element holds a
// div.wrapper as its first element child, regardless of surrounding whitespace.
func (StructureInspector) HasMigratedLayout(content string) (bool, error) {
	document, parseError := html.Parse(strings.NewReader(content))
	if parseError != nil {
		return false, fmt.Errorf(structureParseErrorTemplateConstant, parseError)
	}
	return containsMigratedLayout(document), nil
}

func containsMigratedLayout(node *html.Node) bool {
	if isElementWithClass(node, atom.Main, mainContentClassNameConstant) {
		if isElementWithClass(firstElementChild(node), atom.Div, wrapperClassNameConstant) {
			return true
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if containsMigratedLayout(child) {
			return true
		}
	}

	return false
}

func firstElementChild(node *html.Node) *html.Node {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			return child
		}
	}
	return nil
}

func isElementWithClass(node *html.Node, elementAtom atom.Atom, className string) bool {
	if node == nil || node.Type != html.ElementNode || node.DataAtom != elementAtom {
		return false
	}

	for _, attribute := range node.Attr {
		if attribute.Namespace != "" || attribute.Key != classAttributeNameConstant {
			continue
		}
		for _, candidateClass := range strings.Fields(attribute.Val) {
			if candidateClass == className {
				return true
			}
		}
	}

	return false
}
