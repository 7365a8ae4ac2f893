package ticktick

import (
	"strconv"
	"time"
)

// DateWindowFor maps a window filter to an inclusive [start, end] range around today. ThisWeek is the
// Monday-start week containing today.
func DateWindowFor(when WhenFilter, today Date) (start, end Date) {
	switch when {
	case WhenTomorrow:
		day := today.AddDays(1)
		return day, day
	case WhenThisWeek:
		monday := today.AddDays(-today.weekdayFromMonday())
		return monday, monday.AddDays(6)
	default:
		return today, today
	}
}

// recordDateLayouts are the timestamp encodings observed in TickTick's dueDate and startDate fields,
// tried in order after the integer-epoch form.
var recordDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02",
}

// ParseRecordDate parses one of the several date encodings a stored task may carry. Integer values are
// epoch timestamps, milliseconds when longer than ten digits, else seconds. As a last resort the first
// ten characters are tried as a bare date, which covers zone-less timestamps like
// "2026-03-01T00:00:00". Unparseable values yield ok=false, never an error.
func ParseRecordDate(value string) (Date, bool) {
	if epoch, err := strconv.ParseInt(value, 10, 64); err == nil {
		if len(value) > 10 {
			return DateOf(time.UnixMilli(epoch).UTC()), true
		}
		return DateOf(time.Unix(epoch, 0).UTC()), true
	}
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOf(t), true
		}
	}
	if len(value) >= 10 {
		if t, err := time.Parse("2006-01-02", value[:10]); err == nil {
			return DateOf(t), true
		}
	}
	return Date{}, false
}

// TaskDate resolves the calendar date a task is filtered on: the due date when it parses, the start date
// otherwise.
func TaskDate(t *Task) (Date, bool) {
	if date, ok := ParseRecordDate(t.DueDate); ok {
		return date, true
	}
	return ParseRecordDate(t.StartDate)
}

// MatchesWhenFilter reports whether the task's resolved date falls inside the inclusive window for when.
// A task with no parseable date never matches.
func MatchesWhenFilter(t *Task, when WhenFilter, today Date) bool {
	date, ok := TaskDate(t)
	if !ok {
		return false
	}
	start, end := DateWindowFor(when, today)
	return !date.Before(start) && !date.After(end)
}
