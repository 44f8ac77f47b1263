// Package events manages the club event list shown on the event board.
package events

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("event not found")
	// ErrInvalidKind is returned for a record type other than upcoming or past.
	ErrInvalidKind = errors.New("invalid event type")
)

// Kind classifies an event as upcoming or past.
type Kind string

const (
	KindUpcoming Kind = "upcoming"
	KindPast     Kind = "past"
)

// DateLayout is the stored date format.
const DateLayout = "2006-01-02"

// ParseKind validates a record type string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindUpcoming, KindPast:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Label returns the capitalized kind for list display.
func (k Kind) Label() string {
	switch k {
	case KindUpcoming:
		return "Upcoming"
	case KindPast:
		return "Past"
	}
	return string(k)
}

// Record is a single club event. Time is free-form ("10:00 AM") and may be empty.
type Record struct {
	ID          string `json:"id" csv:"id"`
	Name        string `json:"name" csv:"name"`
	Date        string `json:"date" csv:"date"`
	Time        string `json:"time" csv:"time"`
	Venue       string `json:"venue" csv:"venue"`
	Description string `json:"description" csv:"description"`
	Kind        Kind   `json:"type" csv:"type"`
}

// When parses the record date. ok is false for an empty or malformed date.
func (r Record) When() (t time.Time, ok bool) {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
