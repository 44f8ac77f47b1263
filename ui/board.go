package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pthm-cable/aurora/events"
)

// BoardView selects what the board panel shows.
type BoardView int

const (
	ViewClosed BoardView = iota
	ViewEvents           // Public event list
	ViewLogin            // Admin login form
	ViewManage           // Event management after login
	ViewMembership       // Join-the-club application form
)

const (
	// Frames the add-event confirmation stays visible (3s at 60 FPS)
	messageFrames = 180

	emptyBoardText = "No events currently scheduled or recorded. Check back soon!"
	emptyListText  = "No events to display."
	addedText      = "Event added successfully!"
	loginErrorText = "Invalid username or password."
)

// Card is one entry of the public event list.
type Card struct {
	ID      string
	Title   string
	Date    string
	Venue   string
	Summary string
}

// EventForm holds the add-event form fields.
type EventForm struct {
	Name        string
	Date        string
	Time        string
	Venue       string
	Description string
	Kind        events.Kind
}

// Record converts the form to an event record. Name, date and kind are
// required; the date must be YYYY-MM-DD.
func (f EventForm) Record() (events.Record, error) {
	rec := events.Record{
		Name:        strings.TrimSpace(f.Name),
		Date:        strings.TrimSpace(f.Date),
		Time:        strings.TrimSpace(f.Time),
		Venue:       strings.TrimSpace(f.Venue),
		Description: strings.TrimSpace(f.Description),
		Kind:        f.Kind,
	}
	if rec.Name == "" {
		return events.Record{}, errors.New("event name is required")
	}
	if _, ok := rec.When(); !ok {
		return events.Record{}, fmt.Errorf("date %q must be YYYY-MM-DD", rec.Date)
	}
	return rec, nil
}

// BoardPanel is the event board with its admin login and management views.
// State changes are plain methods so they can be driven without a window.
type BoardPanel struct {
	renderer *Renderer
	board    *events.Board
	creds    events.Credentials

	view BoardView

	// Detail modal
	detail     events.Record
	showDetail bool

	// Login form
	username    string
	password    string
	loginFailed bool

	// Management view
	form   EventForm
	status statusLine

	// Membership view
	membership MembershipForm
	joinStatus statusLine

	// Which text box is being edited, -1 for none
	editing int
	// First card shown in the public list
	scroll int
}

// NewBoardPanel creates a board panel over board.
func NewBoardPanel(board *events.Board, creds events.Credentials) *BoardPanel {
	return &BoardPanel{
		renderer: NewRenderer(),
		board:    board,
		creds:    creds,
		form:     EventForm{Kind: events.KindUpcoming},
		editing:  -1,
	}
}

// View returns the current view.
func (b *BoardPanel) View() BoardView {
	return b.view
}

// IsOpen reports whether any view is showing.
func (b *BoardPanel) IsOpen() bool {
	return b.view != ViewClosed
}

// Open shows the public event list.
func (b *BoardPanel) Open() {
	b.view = ViewEvents
	b.scroll = 0
}

// OpenAdmin shows the login form. Management stays hidden until a
// successful login, even after a previous one.
func (b *BoardPanel) OpenAdmin() {
	b.view = ViewLogin
	b.loginFailed = false
	b.editing = -1
}

// Toggle opens view, or closes the panel when view is already showing.
// The management view counts as the admin view.
func (b *BoardPanel) Toggle(view BoardView) {
	current := b.view
	if current == ViewManage {
		current = ViewLogin
	}
	if current == view {
		b.Close()
		return
	}
	switch view {
	case ViewEvents:
		b.Open()
	case ViewLogin:
		b.OpenAdmin()
	case ViewMembership:
		b.OpenMembership()
	}
}

// Close hides the panel and resets the login form.
func (b *BoardPanel) Close() {
	b.view = ViewClosed
	b.username = ""
	b.password = ""
	b.loginFailed = false
	b.editing = -1
	b.CloseDetail()
}

// SetCredentials fills the login form.
func (b *BoardPanel) SetCredentials(username, password string) {
	b.username = username
	b.password = password
}

// SubmitLogin checks the login form. On success the management view opens.
func (b *BoardPanel) SubmitLogin() bool {
	if !b.creds.Authenticate(b.username, b.password) {
		b.loginFailed = true
		return false
	}
	b.loginFailed = false
	b.editing = -1
	b.scroll = 0
	b.view = ViewManage
	return true
}

// Editing reports whether a text box has keyboard focus.
func (b *BoardPanel) Editing() bool {
	return b.IsOpen() && b.editing >= 0
}

// LoginFailed reports whether the last login attempt failed.
func (b *BoardPanel) LoginFailed() bool {
	return b.loginFailed
}

// OpenDetail shows the detail modal for an event.
func (b *BoardPanel) OpenDetail(id string) error {
	rec, err := b.board.Find(id)
	if err != nil {
		return err
	}
	b.detail = rec
	b.showDetail = true
	return nil
}

// CloseDetail hides the detail modal.
func (b *BoardPanel) CloseDetail() {
	b.showDetail = false
	b.detail = events.Record{}
}

// Detail returns the event shown in the detail modal.
func (b *BoardPanel) Detail() (events.Record, bool) {
	return b.detail, b.showDetail
}

// HandleEscape closes the detail modal if it is open.
func (b *BoardPanel) HandleEscape() bool {
	if !b.showDetail {
		return false
	}
	b.CloseDetail()
	return true
}

// Form returns the add-event form for editing.
func (b *BoardPanel) Form() *EventForm {
	return &b.form
}

// SubmitEvent adds the form as a new event and clears the form.
func (b *BoardPanel) SubmitEvent() (events.Record, error) {
	rec, err := b.form.Record()
	if err == nil {
		rec, err = b.board.Add(rec)
	}
	if err != nil {
		b.status.set(err.Error(), true, messageFrames)
		return events.Record{}, err
	}

	b.form = EventForm{Kind: events.KindUpcoming}
	b.editing = -1
	b.status.set(addedText, false, messageFrames)
	return rec, nil
}

// DeleteEvent removes an event from the board.
func (b *BoardPanel) DeleteEvent(id string) error {
	if err := b.board.Delete(id); err != nil {
		b.status.set(err.Error(), true, messageFrames)
		return err
	}
	if b.showDetail && b.detail.ID == id {
		b.CloseDetail()
	}
	return nil
}

// Message returns the current status message, if any.
func (b *BoardPanel) Message() (text string, isError bool, ok bool) {
	return b.status.get()
}

// Update advances per-frame timers.
func (b *BoardPanel) Update() {
	b.status.tick()
	b.joinStatus.tick()
}

// statusLine is a form message shown for a number of frames.
type statusLine struct {
	text    string
	isError bool
	ttl     int
}

func (s *statusLine) set(text string, isError bool, frames int) {
	s.text = text
	s.isError = isError
	s.ttl = frames
}

func (s *statusLine) tick() {
	if s.ttl > 0 {
		s.ttl--
	}
}

func (s *statusLine) get() (string, bool, bool) {
	if s.ttl <= 0 {
		return "", false, false
	}
	return s.text, s.isError, true
}

// Cards builds the public list: upcoming events soonest first, then past
// event highlights most recent first.
func (b *BoardPanel) Cards() []Card {
	var cards []Card
	for _, rec := range b.board.Upcoming() {
		cards = append(cards, newCard(rec))
	}
	for _, rec := range b.board.Past() {
		cards = append(cards, newCard(rec))
	}
	return cards
}

func newCard(rec events.Record) Card {
	c := Card{
		ID:      rec.ID,
		Title:   events.CardTitle(rec),
		Date:    "Date: " + events.CardDate(rec),
		Summary: events.Summary(rec.Description),
	}
	if rec.Kind == events.KindUpcoming {
		c.Venue = "Venue: " + rec.Venue
	}
	return c
}

// ListEntry is one line of the admin event list.
type ListEntry struct {
	ID    string
	Name  string
	Label string
}

// Entries lists every event in stored order for the management view.
func (b *BoardPanel) Entries() []ListEntry {
	all := b.board.All()
	out := make([]ListEntry, len(all))
	for i, rec := range all {
		out[i] = ListEntry{
			ID:    rec.ID,
			Name:  rec.Name,
			Label: events.ListDate(rec.Date) + " - " + rec.Kind.Label(),
		}
	}
	return out
}
