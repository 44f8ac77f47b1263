package ui

import (
	"errors"
	"log/slog"
	"net/mail"
	"strings"
)

const (
	// Frames the membership confirmation stays visible (5s at 60 FPS)
	membershipFrames = 300

	membershipText = "Details successfully uploaded! We'll be in touch soon."
)

// MembershipForm holds the join-the-club application fields.
type MembershipForm struct {
	Name     string
	Email    string
	Phone    string
	College  string
	Interest string
}

// Validate trims the form and checks the required name and email.
func (f MembershipForm) Validate() (MembershipForm, error) {
	out := MembershipForm{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Phone:    strings.TrimSpace(f.Phone),
		College:  strings.TrimSpace(f.College),
		Interest: strings.TrimSpace(f.Interest),
	}
	if out.Name == "" {
		return MembershipForm{}, errors.New("name is required")
	}
	if _, err := mail.ParseAddress(out.Email); err != nil {
		return MembershipForm{}, errors.New("a valid email address is required")
	}
	return out, nil
}

// OpenMembership shows the membership form.
func (b *BoardPanel) OpenMembership() {
	b.view = ViewMembership
	b.editing = -1
}

// Membership returns the membership form for editing.
func (b *BoardPanel) Membership() *MembershipForm {
	return &b.membership
}

// SubmitMembership records the application and clears the form. Applications
// are only logged; nothing is stored.
func (b *BoardPanel) SubmitMembership() error {
	app, err := b.membership.Validate()
	if err != nil {
		b.joinStatus.set(err.Error(), true, membershipFrames)
		return err
	}

	slog.Info("membership application submitted",
		"name", app.Name,
		"email", app.Email,
		"phone", app.Phone,
		"college", app.College,
		"interest", app.Interest,
	)
	b.membership = MembershipForm{}
	b.editing = -1
	b.joinStatus.set(membershipText, false, membershipFrames)
	return nil
}

// MembershipMessage returns the membership status message, if any.
func (b *BoardPanel) MembershipMessage() (text string, isError bool, ok bool) {
	return b.joinStatus.get()
}
