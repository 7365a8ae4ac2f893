package ticktick

import "strings"

// ShorthandFilters is the result of scanning free text (a task title or a search query) for inline
// shorthand markers. Every token consumed as a marker or temporal word is removed; whatever is left lands
// in Terms, in its original order.
type ShorthandFilters struct {
	Priority *int
	List     string
	Tags     []string
	When     WhenFilter
	Terms    []string
}

// WhenFilter is a relative date window used to filter tasks. The zero value means no filter.
type WhenFilter int

const (
	WhenNone WhenFilter = iota
	WhenToday
	WhenTomorrow
	WhenThisWeek
)

// whenAliases is the only place spellings of the window filters are interpreted.
var whenAliases = map[string]WhenFilter{
	"today":     WhenToday,
	"tomorrow":  WhenTomorrow,
	"week":      WhenThisWeek,
	"thisweek":  WhenThisWeek,
	"this-week": WhenThisWeek,
}

// ParseWhenFilter maps a token like "today" or "this-week" to its window filter, case-insensitively.
func ParseWhenFilter(token string) (WhenFilter, bool) {
	when, ok := whenAliases[strings.ToLower(token)]
	return when, ok
}

func (w WhenFilter) String() string {
	switch w {
	case WhenToday:
		return "today"
	case WhenTomorrow:
		return "tomorrow"
	case WhenThisWeek:
		return "this week"
	default:
		return ""
	}
}

// priorityShorthand maps a !level token to the numeric priority TickTick uses. An unknown level does not
// consume the token, so "!urgent" survives into the title or search terms.
func priorityShorthand(token string) (int, bool) {
	value, found := strings.CutPrefix(token, "!")
	if !found {
		return 0, false
	}
	switch strings.ToLower(value) {
	case "high":
		return 5, true
	case "medium":
		return 3, true
	case "low":
		return 1, true
	case "none", "normal":
		return 0, true
	default:
		return 0, false
	}
}

// ExtractShorthand scans raw left to right over whitespace-split tokens, consuming !priority markers,
// ~list markers (the last one wins) and #tag markers (duplicates kept; MergeTags drops them later). With
// recognizeWhen set it also consumes temporal words ("today", "tomorrow", the "week" aliases and the
// two-token phrase "this week"), which a search query means as a filter window. The add path passes
// false: there the temporal words were already handled by ExtractDueDate on the raw input, and anything
// remaining belongs to the title.
func ExtractShorthand(raw string, recognizeWhen bool) ShorthandFilters {
	var parsed ShorthandFilters
	tokens := strings.Fields(raw)
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if priority, ok := priorityShorthand(token); ok {
			parsed.Priority = &priority
			continue
		}

		if name, ok := strings.CutPrefix(token, "~"); ok && name != "" {
			parsed.List = name
			continue
		}

		if tag, ok := strings.CutPrefix(token, "#"); ok && tag != "" {
			parsed.Tags = append(parsed.Tags, tag)
			continue
		}

		if recognizeWhen {
			if strings.EqualFold(token, "this") && i+1 < len(tokens) && strings.EqualFold(tokens[i+1], "week") {
				parsed.When = WhenThisWeek
				i++
				continue
			}
			if when, ok := ParseWhenFilter(token); ok {
				parsed.When = when
				continue
			}
		}

		parsed.Terms = append(parsed.Terms, token)
	}
	return parsed
}
