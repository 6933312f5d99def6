// Package mailer sends notification email through SendGrid. Sends are best
// effort: callers fire them from goroutines and only log failures.
package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"sharebnb/internal/models"
)

// Mailer wraps the SendGrid client. With an empty API key every send is a
// silent no-op so local development needs no account.
type Mailer struct {
	apiKey string
	sender string
}

func New(apiKey, sender string) *Mailer {
	return &Mailer{apiKey: apiKey, sender: sender}
}

// Enabled reports whether an API key is configured.
func (m *Mailer) Enabled() bool {
	return m.apiKey != ""
}

// SendWelcome greets a freshly signed-up user.
func (m *Mailer) SendWelcome(ctx context.Context, user *models.User) error {
	if !m.Enabled() {
		return nil
	}

	subject := "Welcome to ShareBnB"
	plain := fmt.Sprintf("Hi %s, your account %q is ready.", user.FirstName, user.Username)
	html := fmt.Sprintf("Hi %s,<br><br>your account <strong>%s</strong> is ready.", user.FirstName, user.Username)
	return m.send(user.Email, subject, plain, html)
}

// SendBookingNotice tells a host their listing was booked.
func (m *Mailer) SendBookingNotice(ctx context.Context, host *models.User, guest *models.User, listing *models.Listing) error {
	if !m.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("%q was booked", listing.Name)
	plain := fmt.Sprintf("Hi %s, %s %s just booked %q.",
		host.FirstName, guest.FirstName, guest.LastName, listing.Name)
	html := fmt.Sprintf("Hi %s,<br><br><strong>%s %s</strong> just booked %q.",
		host.FirstName, guest.FirstName, guest.LastName, listing.Name)
	return m.send(host.Email, subject, plain, html)
}

func (m *Mailer) send(recipient, subject, plain, html string) error {
	from := mail.NewEmail("ShareBnB", m.sender)
	to := mail.NewEmail("", recipient)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, recipient, err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected %q to %s: status %d", subject, recipient, response.StatusCode)
	}
	return nil
}
