package events

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"
)

// Board is the event list backed by a Store. Every mutation is saved
// immediately.
type Board struct {
	store   Store
	records []Record
	now     func() time.Time
}

// NewBoard loads the event list from store.
func NewBoard(store Store) (*Board, error) {
	b := &Board{store: store, now: time.Now}
	if err := b.Reload(); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload replaces the in-memory list with the stored one.
func (b *Board) Reload() error {
	records, err := b.store.Load()
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}
	b.records = records
	return nil
}

// Len returns the number of records.
func (b *Board) Len() int {
	return len(b.records)
}

// All returns every record in stored order.
func (b *Board) All() []Record {
	return append([]Record(nil), b.records...)
}

// Upcoming returns upcoming events, soonest first.
func (b *Board) Upcoming() []Record {
	out := b.filter(KindUpcoming)
	sortByDate(out, false)
	return out
}

// Past returns past events, most recent first.
func (b *Board) Past() []Record {
	out := b.filter(KindPast)
	sortByDate(out, true)
	return out
}

// Find returns the record with the given ID.
func (b *Board) Find(id string) (Record, error) {
	if i := b.index(id); i >= 0 {
		return b.records[i], nil
	}
	return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Add appends a record and saves the list. An empty ID is replaced with
// "e" followed by the current Unix time in milliseconds.
func (b *Board) Add(r Record) (Record, error) {
	kind, err := ParseKind(string(r.Kind))
	if err != nil {
		return Record{}, err
	}
	r.Kind = kind

	if r.ID == "" {
		r.ID = b.nextID()
	}

	b.records = append(b.records, r)
	if err := b.store.Save(b.records); err != nil {
		b.records = b.records[:len(b.records)-1]
		return Record{}, fmt.Errorf("saving events: %w", err)
	}

	slog.Debug("event_added", "id", r.ID, "name", r.Name, "type", r.Kind)
	return r, nil
}

// Delete removes the record with the given ID and saves the list.
func (b *Board) Delete(id string) error {
	i := b.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	prev := b.records
	next := make([]Record, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)

	if err := b.store.Save(next); err != nil {
		return fmt.Errorf("saving events: %w", err)
	}
	b.records = next

	slog.Debug("event_deleted", "id", id)
	return nil
}

// Replace swaps the whole list for records and saves it.
func (b *Board) Replace(records []Record) error {
	next := make([]Record, len(records))
	for i, r := range records {
		kind, err := ParseKind(string(r.Kind))
		if err != nil {
			return err
		}
		r.Kind = kind
		next[i] = r
	}

	if err := b.store.Save(next); err != nil {
		return fmt.Errorf("saving events: %w", err)
	}
	b.records = next

	slog.Debug("events_replaced", "count", len(next))
	return nil
}

func (b *Board) filter(kind Kind) []Record {
	var out []Record
	for _, r := range b.records {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func (b *Board) index(id string) int {
	for i := range b.records {
		if b.records[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID derives an ID from the clock, stepping forward past collisions.
func (b *Board) nextID() string {
	ms := b.now().UnixMilli()
	for {
		id := "e" + strconv.FormatInt(ms, 10)
		if b.index(id) < 0 {
			return id
		}
		ms++
	}
}

// sortByDate orders records by date. Records with unparseable dates keep
// their relative order after all dated ones.
func sortByDate(records []Record, newestFirst bool) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, oki := records[i].When()
		tj, okj := records[j].When()
		if !oki || !okj {
			return oki && !okj
		}
		if newestFirst {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
}
