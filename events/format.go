package events

import "unicode/utf8"

const (
	summaryLength = 100
	invalidDate   = "Invalid Date"
)

// ShortDate formats a stored date as "15 Aug 2025".
func ShortDate(date string) string {
	return formatDate(date, "02 Jan 2006")
}

// LongDate formats a stored date as "Friday, 15 August 2025".
func LongDate(date string) string {
	return formatDate(date, "Monday, 2 January 2006")
}

// ListDate formats a stored date as "15/08/2025".
func ListDate(date string) string {
	return formatDate(date, "02/01/2006")
}

// CardDate is the date line of an event card, with " at <time>" for upcoming
// events that have a time.
func CardDate(r Record) string {
	s := ShortDate(r.Date)
	if r.Kind == KindUpcoming && r.Time != "" {
		s += " at " + r.Time
	}
	return s
}

// DetailDate is the date line of the detail view.
func DetailDate(r Record) string {
	s := LongDate(r.Date)
	if r.Time != "" {
		s += " at " + r.Time
	}
	return s
}

// CardTitle is the card heading; past events are shown as highlights.
func CardTitle(r Record) string {
	if r.Kind == KindPast {
		return r.Name + " Highlights"
	}
	return r.Name
}

// Summary truncates a description to its first 100 characters followed by "...".
func Summary(description string) string {
	if utf8.RuneCountInString(description) <= summaryLength {
		return description + "..."
	}
	runes := []rune(description)
	return string(runes[:summaryLength]) + "..."
}

func formatDate(date, layout string) string {
	t, ok := Record{Date: date}.When()
	if !ok {
		return invalidDate
	}
	return t.Format(layout)
}
