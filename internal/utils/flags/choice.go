package flags

import (
	"strings"
)

const (
	choiceUsageQuoteConstant     = "`"
	choiceUsageOpenConstant      = "<"
	choiceUsageCloseConstant     = ">"
	choiceUsageSeparatorConstant = "|"
	choiceUsageSpacingConstant   = " "
)

// FormatChoiceUsage renders a flag usage string such as "`<debug|INFO>` description".
// The default choice is upper-cased; blank and case-insensitive duplicate choices are dropped.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	renderedChoices := make([]string, 0, len(choices))
	renderedKeys := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		choiceKey := strings.ToLower(trimmedChoice)
		if len(choiceKey) == 0 {
			continue
		}
		if _, rendered := renderedKeys[choiceKey]; rendered {
			continue
		}
		renderedKeys[choiceKey] = struct{}{}

		if choiceKey == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		renderedChoices = append(renderedChoices, trimmedChoice)
	}

	var usageBuilder strings.Builder
	usageBuilder.WriteString(choiceUsageQuoteConstant + choiceUsageOpenConstant)
	usageBuilder.WriteString(strings.Join(renderedChoices, choiceUsageSeparatorConstant))
	usageBuilder.WriteString(choiceUsageCloseConstant + choiceUsageQuoteConstant)

	if trimmedDescription := strings.TrimSpace(description); len(trimmedDescription) > 0 {
		usageBuilder.WriteString(choiceUsageSpacingConstant)
		usageBuilder.WriteString(description)
	}

	return usageBuilder.String()
}
