package ui

import (
	"strings"
	"unicode/utf8"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aurora/events"
)

// Text box indices for edit focus
const (
	fieldUsername = iota
	fieldPassword
	fieldName
	fieldDate
	fieldTime
	fieldVenue
	fieldDescription
	fieldMemberName
	fieldMemberEmail
	fieldMemberPhone
	fieldMemberCollege
	fieldMemberInterest
)

const (
	cardHeight   = 112
	entryHeight  = 40
	windowMargin = 40
	buttonHeight = 28
)

// Draw renders the open view, if any, centred on the screen.
func (b *BoardPanel) Draw(screenWidth, screenHeight int32) {
	if b.view == ViewClosed {
		return
	}

	width := min(screenWidth-2*windowMargin, 820)
	height := screenHeight - 3*windowMargin
	bounds := rl.Rectangle{
		X:      float32((screenWidth - width) / 2),
		Y:      float32(windowMargin),
		Width:  float32(width),
		Height: float32(height),
	}

	title := "Events"
	switch b.view {
	case ViewLogin:
		title = "Admin Login"
	case ViewManage:
		title = "Manage Events"
	case ViewMembership:
		title = "Join Us"
	}

	if gui.WindowBox(bounds, title) {
		b.Close()
		return
	}

	content := rl.Rectangle{X: bounds.X + 12, Y: bounds.Y + 36, Width: bounds.Width - 24, Height: bounds.Height - 48}

	// Controls under the modal stay visible but inert
	if b.showDetail {
		gui.Lock()
	}
	switch b.view {
	case ViewEvents:
		b.drawEvents(content)
	case ViewLogin:
		b.drawLogin(content)
	case ViewManage:
		b.drawManage(content)
	case ViewMembership:
		b.drawMembership(content)
	}

	if b.showDetail {
		gui.Unlock()
		b.drawDetail(screenWidth, screenHeight)
	}
}

func (b *BoardPanel) drawEvents(area rl.Rectangle) {
	theme := b.renderer.Theme
	cards := b.Cards()
	if len(cards) == 0 {
		rl.DrawText(emptyBoardText, int32(area.X), int32(area.Y+20), theme.FontSize, theme.LabelColor)
		return
	}

	perPage := int(area.Height-buttonHeight-8) / cardHeight
	if perPage < 1 {
		perPage = 1
	}
	b.scroll = clampScroll(b.scroll, len(cards), perPage)

	y := area.Y
	for _, card := range cards[b.scroll:min(b.scroll+perPage, len(cards))] {
		b.drawCard(rl.Rectangle{X: area.X, Y: y, Width: area.Width, Height: cardHeight - 8}, card)
		y += cardHeight
	}

	navY := area.Y + area.Height - buttonHeight
	if b.scroll > 0 && gui.Button(rl.Rectangle{X: area.X, Y: navY, Width: 100, Height: buttonHeight}, "Previous") {
		b.scroll -= perPage
	}
	if b.scroll+perPage < len(cards) &&
		gui.Button(rl.Rectangle{X: area.X + area.Width - 100, Y: navY, Width: 100, Height: buttonHeight}, "Next") {
		b.scroll += perPage
	}
}

func (b *BoardPanel) drawCard(bounds rl.Rectangle, card Card) {
	r := b.renderer
	x, y := int32(bounds.X), int32(bounds.Y)
	r.DrawPanel(x, y, int32(bounds.Width), int32(bounds.Height))

	x += r.Theme.Padding
	y += 8
	rl.DrawText(card.Title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	y += r.Theme.LineHeight + 2
	rl.DrawText(card.Date, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight
	if card.Venue != "" {
		rl.DrawText(card.Venue, x, y, r.Theme.FontSize, r.Theme.LabelColor)
		y += r.Theme.LineHeight
	}
	summaryWidth := int32(bounds.Width) - 2*r.Theme.Padding - 130
	lines := WrapText(card.Summary, summaryWidth, func(s string) int32 { return rl.MeasureText(s, r.Theme.FontSize) })
	if len(lines) > 0 {
		rl.DrawText(lines[0], x, y, r.Theme.FontSize, r.Theme.ValueColor)
	}

	btn := rl.Rectangle{X: bounds.X + bounds.Width - 120, Y: bounds.Y + bounds.Height - buttonHeight - 8, Width: 110, Height: buttonHeight}
	if gui.Button(btn, "Learn More") {
		b.OpenDetail(card.ID)
	}
}

func (b *BoardPanel) drawLogin(area rl.Rectangle) {
	theme := b.renderer.Theme
	x := area.X + area.Width/2 - 150
	y := area.Y + 20

	gui.Label(rl.Rectangle{X: x, Y: y, Width: 300, Height: 20}, "Username")
	y += 22
	b.textBox(rl.Rectangle{X: x, Y: y, Width: 300, Height: 30}, &b.username, fieldUsername, 64)
	y += 44

	gui.Label(rl.Rectangle{X: x, Y: y, Width: 300, Height: 20}, "Password")
	y += 22
	if b.editing == fieldPassword {
		b.textBox(rl.Rectangle{X: x, Y: y, Width: 300, Height: 30}, &b.password, fieldPassword, 64)
	} else {
		masked := strings.Repeat("*", utf8.RuneCountInString(b.password))
		b.textBox(rl.Rectangle{X: x, Y: y, Width: 300, Height: 30}, &masked, fieldPassword, 64)
	}
	y += 48

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 300, Height: 32}, "Login") {
		b.SubmitLogin()
	}
	y += 44

	if b.loginFailed {
		rl.DrawText(loginErrorText, int32(x), int32(y), theme.FontSize, theme.ErrorColor)
	}
}

func (b *BoardPanel) drawManage(area rl.Rectangle) {
	r := b.renderer
	listW := area.Width*0.5 - 8
	formX := area.X + listW + 16
	formW := area.Width - listW - 16

	// Current events
	y := r.DrawSectionHeader(int32(area.X), int32(area.Y), "Current Events")
	entries := b.Entries()
	if len(entries) == 0 {
		rl.DrawText(emptyListText, int32(area.X), y, r.Theme.FontSize, r.Theme.LabelColor)
	}

	perPage := int(area.Height-float32(y-int32(area.Y))-buttonHeight-8) / entryHeight
	if perPage < 1 {
		perPage = 1
	}
	b.scroll = clampScroll(b.scroll, len(entries), perPage)

	rowY := float32(y)
	for _, e := range entries[b.scroll:min(b.scroll+perPage, len(entries))] {
		rl.DrawText(e.Name, int32(area.X), int32(rowY), r.Theme.FontSize, r.Theme.ValueColor)
		rl.DrawText(e.Label, int32(area.X), int32(rowY)+r.Theme.LineHeight, 12, r.Theme.LabelColor)
		if gui.Button(rl.Rectangle{X: area.X + listW - 70, Y: rowY + 4, Width: 70, Height: 26}, "Delete") {
			b.DeleteEvent(e.ID)
		}
		rowY += entryHeight
	}

	navY := area.Y + area.Height - buttonHeight
	if b.scroll > 0 && gui.Button(rl.Rectangle{X: area.X, Y: navY, Width: 90, Height: buttonHeight}, "Previous") {
		b.scroll -= perPage
	}
	if b.scroll+perPage < len(entries) &&
		gui.Button(rl.Rectangle{X: area.X + listW - 90, Y: navY, Width: 90, Height: buttonHeight}, "Next") {
		b.scroll += perPage
	}

	// Add event form
	fy := float32(r.DrawSectionHeader(int32(formX), int32(area.Y), "Add New Event"))
	inputs := []struct {
		label string
		value *string
		field int
		size  int
	}{
		{"Event name", &b.form.Name, fieldName, 128},
		{"Date (YYYY-MM-DD)", &b.form.Date, fieldDate, 16},
		{"Time", &b.form.Time, fieldTime, 16},
		{"Venue", &b.form.Venue, fieldVenue, 128},
		{"Description", &b.form.Description, fieldDescription, 1024},
	}
	for _, in := range inputs {
		gui.Label(rl.Rectangle{X: formX, Y: fy, Width: formW, Height: 18}, in.label)
		fy += 20
		b.textBox(rl.Rectangle{X: formX, Y: fy, Width: formW, Height: 28}, in.value, in.field, in.size)
		fy += 36
	}

	active := int32(0)
	if b.form.Kind == events.KindPast {
		active = 1
	}
	active = gui.ToggleGroup(rl.Rectangle{X: formX, Y: fy, Width: formW/2 - 2, Height: 28}, "Upcoming;Past", active)
	b.form.Kind = events.KindUpcoming
	if active == 1 {
		b.form.Kind = events.KindPast
	}
	fy += 40

	if gui.Button(rl.Rectangle{X: formX, Y: fy, Width: formW, Height: 32}, "Add Event") {
		b.SubmitEvent()
	}
	fy += 42

	if text, isErr, ok := b.Message(); ok {
		color := r.Theme.SuccessColor
		if isErr {
			color = r.Theme.ErrorColor
		}
		r.DrawParagraph(int32(formX), int32(fy), text, int32(formW), color)
	}
}

func (b *BoardPanel) drawMembership(area rl.Rectangle) {
	r := b.renderer
	w := min(area.Width, 420)
	x := area.X + (area.Width-w)/2
	y := float32(r.DrawSectionHeader(int32(x), int32(area.Y), "Membership Application"))

	inputs := []struct {
		label string
		value *string
		field int
		size  int
	}{
		{"Full name", &b.membership.Name, fieldMemberName, 128},
		{"Email", &b.membership.Email, fieldMemberEmail, 128},
		{"Phone", &b.membership.Phone, fieldMemberPhone, 32},
		{"College / Organisation", &b.membership.College, fieldMemberCollege, 128},
		{"Area of interest", &b.membership.Interest, fieldMemberInterest, 256},
	}
	for _, in := range inputs {
		gui.Label(rl.Rectangle{X: x, Y: y, Width: w, Height: 18}, in.label)
		y += 20
		b.textBox(rl.Rectangle{X: x, Y: y, Width: w, Height: 28}, in.value, in.field, in.size)
		y += 36
	}

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 32}, "Submit Application") {
		b.SubmitMembership()
	}
	y += 42

	if text, isErr, ok := b.MembershipMessage(); ok {
		color := r.Theme.SuccessColor
		if isErr {
			color = r.Theme.ErrorColor
		}
		r.DrawParagraph(int32(x), int32(y), text, int32(w), color)
	}
}

func (b *BoardPanel) drawDetail(screenWidth, screenHeight int32) {
	rec, ok := b.Detail()
	if !ok {
		return
	}
	r := b.renderer

	// Dim the board behind the modal
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.Color{R: 0, G: 0, B: 0, A: 140})

	width := min(screenWidth-4*windowMargin, 600)
	height := min(screenHeight-4*windowMargin, 380)
	bounds := rl.Rectangle{
		X:      float32((screenWidth - width) / 2),
		Y:      float32((screenHeight - height) / 2),
		Width:  float32(width),
		Height: float32(height),
	}
	if gui.WindowBox(bounds, rec.Name) {
		b.CloseDetail()
		return
	}

	x := int32(bounds.X) + r.Theme.Padding*2
	y := int32(bounds.Y) + 44
	textW := width - r.Theme.Padding*4

	y = r.DrawParagraph(x, y, events.DetailDate(rec), textW, r.Theme.SectionHeader)
	if rec.Venue != "" {
		y = r.DrawParagraph(x, y, rec.Venue, textW, r.Theme.LabelColor)
	}
	y += 8
	r.DrawParagraph(x, y, rec.Description, textW, r.Theme.ValueColor)
}

// textBox draws a raygui text box and moves edit focus on click.
func (b *BoardPanel) textBox(bounds rl.Rectangle, value *string, field, size int) {
	if gui.TextBox(bounds, value, size, b.editing == field) {
		b.toggleEdit(field)
	}
}

func (b *BoardPanel) toggleEdit(field int) {
	if b.editing == field {
		b.editing = -1
		return
	}
	b.editing = field
}

// clampScroll keeps a page offset inside [0, n) aligned to whole pages.
func clampScroll(scroll, n, perPage int) int {
	if n == 0 || scroll < 0 {
		return 0
	}
	if scroll >= n {
		return ((n - 1) / perPage) * perPage
	}
	return scroll
}
