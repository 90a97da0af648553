package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/config"
	"github.com/stadtwache/stadtwache-api/models"
	templates "github.com/stadtwache/stadtwache-api/templates/html"
)

const senderName = "Stadtwache"

// Mailer notifies submitters when an admin has answered them
type Mailer interface {
	ApplicationResponse(ctx context.Context, app models.Application) error
	FeedbackResponse(ctx context.Context, fb models.Feedback) error
}

// New returns a SendGrid mailer, or NoOp when no API key is configured
func New(conf *config.Config) Mailer {
	if conf.SendGridAPIKey == "" {
		zap.S().Info("SENDGRID_API_KEY is not set, response emails are disabled")
		return NoOp{}
	}
	return NewSendGrid(sendgrid.NewSendClient(conf.SendGridAPIKey), conf.MailFrom)
}

type sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGrid delivers notifications through the SendGrid v3 API
type SendGrid struct {
	client sender
	from   *mail.Email
}

// NewSendGrid creates a SendGrid mailer sending from the given address
func NewSendGrid(client sender, from string) *SendGrid {
	return &SendGrid{client: client, from: mail.NewEmail(senderName, from)}
}

var applicationStatusLabels = map[string]string{
	models.ApplicationPending:  "in Bearbeitung",
	models.ApplicationReviewed: "geprüft",
	models.ApplicationAccepted: "angenommen",
	models.ApplicationRejected: "abgelehnt",
}

// ApplicationResponse emails the applicant the admin's decision
func (s *SendGrid) ApplicationResponse(ctx context.Context, app models.Application) error {
	status := applicationStatusLabels[app.Status]
	subject := "Antwort auf Ihre Bewerbung"
	plain := fmt.Sprintf("Hallo %s,\n\nder aktuelle Stand Ihrer Bewerbung als %s: %s.\n\n%s\n\nMit freundlichen Grüßen\nIhre Stadtwache",
		app.Name, app.Position, status, app.AdminResponse)
	html := templates.RenderApplicationResponseEmail(templates.ResponseEmailData{
		Name:     app.Name,
		Subject:  app.Position,
		Status:   status,
		Response: app.AdminResponse,
	})

	msg := mail.NewSingleEmail(s.from, subject, mail.NewEmail(app.Name, app.Email), plain, html)
	if app.AdminEmail != "" {
		msg.SetReplyTo(mail.NewEmail(senderName, app.AdminEmail))
	}
	return s.send(ctx, msg)
}

// FeedbackResponse emails the citizen the admin's reply
func (s *SendGrid) FeedbackResponse(ctx context.Context, fb models.Feedback) error {
	subject := "Antwort auf Ihr Feedback"
	plain := fmt.Sprintf("Hallo %s,\n\nvielen Dank für Ihr Feedback zum Thema %s. Unsere Antwort:\n\n%s\n\nMit freundlichen Grüßen\nIhre Stadtwache",
		fb.Name, fb.Subject, fb.AdminResponse)
	html := templates.RenderFeedbackResponseEmail(templates.ResponseEmailData{
		Name:     fb.Name,
		Subject:  fb.Subject,
		Response: fb.AdminResponse,
	})

	msg := mail.NewSingleEmail(s.from, subject, mail.NewEmail(fb.Name, fb.Email), plain, html)
	return s.send(ctx, msg)
}

func (s *SendGrid) send(ctx context.Context, msg *mail.SGMailV3) error {
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// NoOp drops every notification
type NoOp struct{}

// ApplicationResponse does nothing
func (NoOp) ApplicationResponse(context.Context, models.Application) error { return nil }

// FeedbackResponse does nothing
func (NoOp) FeedbackResponse(context.Context, models.Feedback) error { return nil }
