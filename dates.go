package ticktick

import (
	"strconv"
	"strings"
	"time"
)

// dueDateMatchers are tried in priority order at each candidate token position; the first match wins and
// ends the scan. Adding a recognizer means appending a function here, not growing a conditional.
var dueDateMatchers = []func(tokens []string, index int, today Date) (consumed int, date Date, ok bool){
	matchNextWeek,
	matchMonthSequence,
	matchNumericDate,
	matchRelativeKeyword,
}

// ExtractDueDate scans raw for an embedded date or relative-day expression. On a match it returns the
// input with the matched tokens removed, rejoined with single spaces, plus the resolved date; with no
// match it returns the trimmed input and ok=false. Marker tokens (#tag, ~list, !priority) are never
// considered, so a tag like "#friday" does not become a due date.
func ExtractDueDate(raw string, today Date) (title string, due Date, ok bool) {
	tokens := strings.Fields(raw)
	for index, token := range tokens {
		if strings.HasPrefix(token, "#") || strings.HasPrefix(token, "~") || strings.HasPrefix(token, "!") {
			continue
		}
		if normalizeDateToken(token) == "" {
			continue
		}
		for _, match := range dueDateMatchers {
			consumed, date, matched := match(tokens, index, today)
			if matched {
				return joinWithout(tokens, index, consumed), date, true
			}
		}
	}
	return strings.TrimSpace(raw), Date{}, false
}

// joinWithout rejoins tokens with the span [index, index+consumed) removed.
func joinWithout(tokens []string, index, consumed int) string {
	kept := make([]string, 0, len(tokens)-consumed)
	kept = append(kept, tokens[:index]...)
	kept = append(kept, tokens[index+consumed:]...)
	return strings.Join(kept, " ")
}

// normalizeDateToken strips punctuation stuck to a date word ("friday," becomes "friday") while keeping
// the separators numeric dates use, and lowercases the result.
func normalizeDateToken(token string) string {
	trimmed := strings.TrimFunc(token, func(r rune) bool {
		return !isASCIIAlphanumeric(r) && r != '/' && r != '-'
	})
	return strings.ToLower(trimmed)
}

func isASCIIAlphanumeric(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// matchNextWeek recognizes the two-token phrase "next week" as the Monday of the week after today's week.
func matchNextWeek(tokens []string, index int, today Date) (int, Date, bool) {
	if normalizeDateToken(tokens[index]) != "next" {
		return 0, Date{}, false
	}
	if index+1 >= len(tokens) || normalizeDateToken(tokens[index+1]) != "week" {
		return 0, Date{}, false
	}
	return 2, startOfNextWeek(today), true
}

// matchMonthSequence recognizes "jun 3", "jun 3rd 2027" and the month-year form "jan 2029", which maps to
// the first of that month. A month name with nothing usable after it does not match.
func matchMonthSequence(tokens []string, index int, today Date) (int, Date, bool) {
	month, ok := parseMonthToken(normalizeDateToken(tokens[index]))
	if !ok || index+1 >= len(tokens) {
		return 0, Date{}, false
	}
	second := normalizeDateToken(tokens[index+1])

	if year, ok := parseYearToken(second); ok {
		date, valid := NewDate(year, month, 1)
		return 2, date, valid
	}

	day, ok := parseDayToken(second)
	if !ok {
		return 0, Date{}, false
	}

	if index+2 < len(tokens) {
		if year, ok := parseYearToken(normalizeDateToken(tokens[index+2])); ok {
			date, valid := NewDate(year, month, day)
			return 3, date, valid
		}
	}

	date, valid := inferYearForMonthDay(month, day, today)
	return 2, date, valid
}

// matchNumericDate recognizes a single token holding an exact ISO date, a month/day pair, or a
// month/day/year triple split on "/" or on exactly two "-" separators.
func matchNumericDate(tokens []string, index int, today Date) (int, Date, bool) {
	token := normalizeDateToken(tokens[index])
	if t, err := time.Parse("2006-01-02", token); err == nil {
		return 1, DateOf(t), true
	}

	var separator string
	switch {
	case strings.Contains(token, "/"):
		separator = "/"
	case strings.Count(token, "-") == 2:
		separator = "-"
	default:
		return 0, Date{}, false
	}

	parts := strings.Split(token, separator)
	switch len(parts) {
	case 2:
		month, err1 := strconv.Atoi(parts[0])
		day, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0, Date{}, false
		}
		date, valid := inferYearForMonthDay(time.Month(month), day, today)
		return 1, date, valid
	case 3:
		month, err1 := strconv.Atoi(parts[0])
		day, err2 := strconv.Atoi(parts[1])
		year, yearOK := parseYearToken(parts[2])
		if err1 != nil || err2 != nil || !yearOK {
			return 0, Date{}, false
		}
		date, valid := NewDate(year, time.Month(month), day)
		return 1, date, valid
	default:
		return 0, Date{}, false
	}
}

// matchRelativeKeyword recognizes "today", "tomorrow" and weekday names. A weekday resolves to the next
// date on or after today with that weekday, so naming today's own weekday means today.
func matchRelativeKeyword(tokens []string, index int, today Date) (int, Date, bool) {
	switch token := normalizeDateToken(tokens[index]); token {
	case "today":
		return 1, today, true
	case "tomorrow":
		return 1, today.AddDays(1), true
	default:
		weekday, ok := parseWeekdayToken(token)
		if !ok {
			return 0, Date{}, false
		}
		return 1, nextOrSameWeekday(today, weekday), true
	}
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

func parseMonthToken(token string) (time.Month, bool) {
	month, ok := monthNames[token]
	return month, ok
}

var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

func parseWeekdayToken(token string) (time.Weekday, bool) {
	weekday, ok := weekdayNames[token]
	return weekday, ok
}

// parseYearToken accepts bare two- or four-digit years; two digits mean 20xx. Anything else, including
// three- and five-digit numbers, is not a year.
func parseYearToken(token string) (int, bool) {
	if len(token) != 2 && len(token) != 4 {
		return 0, false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	if len(token) == 2 {
		year += 2000
	}
	return year, true
}

// parseDayToken accepts a day number with an optional ordinal suffix (1st, 2nd, 3rd, 4th, ...).
func parseDayToken(token string) (int, bool) {
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if trimmed, ok := strings.CutSuffix(token, suffix); ok {
			token = trimmed
			break
		}
	}
	day, err := strconv.Atoi(token)
	if err != nil || day < 1 || day > 31 {
		return 0, false
	}
	return day, true
}

// inferYearForMonthDay resolves a month/day pair with no explicit year: today's year if the resulting
// date is on or after today, otherwise next year.
func inferYearForMonthDay(month time.Month, day int, today Date) (Date, bool) {
	date, ok := NewDate(today.Year, month, day)
	if !ok {
		return Date{}, false
	}
	if date.Before(today) {
		return NewDate(today.Year+1, month, day)
	}
	return date, true
}

// nextOrSameWeekday returns the first date on or after today whose weekday is target.
func nextOrSameWeekday(today Date, target time.Weekday) Date {
	targetIndex := (int(target) + 6) % 7
	offset := (targetIndex - today.weekdayFromMonday() + 7) % 7
	return today.AddDays(offset)
}

// startOfNextWeek returns the Monday after the Monday-start week containing today.
func startOfNextWeek(today Date) Date {
	return today.AddDays(7 - today.weekdayFromMonday())
}

// FormatDueDate renders date at midnight in loc, converted to UTC, in the exact form the TickTick API
// expects for dueDate and startDate. Callers submitting user input pass time.Local; under a DST
// transition time.Date resolves an ambiguous or skipped midnight to a valid instant.
func FormatDueDate(date Date, loc *time.Location) string {
	midnight := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, loc)
	return midnight.UTC().Format("2006-01-02T15:04:05.000-0700")
}
