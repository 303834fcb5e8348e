package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"

	"github.com/hemant-mistri/portfolio/internal/config"
	"github.com/hemant-mistri/portfolio/internal/logger"
	"github.com/hemant-mistri/portfolio/internal/mailer"
	"github.com/hemant-mistri/portfolio/internal/model"
)

type ContactUsecase struct {
	sender mailer.Sender
	cfg    config.MailConfig
	newID  func() string
}

func NewContactUsecase(sender mailer.Sender, cfg config.MailConfig) *ContactUsecase {
	return &ContactUsecase{sender: sender, cfg: cfg, newID: uuid.NewString}
}

// Submit validates sub and relays it to the inbox in exactly one attempt.
// Errors are *ValidationError, *ConfigurationError or *DeliveryError.
func (uc *ContactUsecase) Submit(ctx context.Context, sub model.ContactSubmission) (mailer.Receipt, error) {
	if err := validate(sub); err != nil {
		return mailer.Receipt{}, err
	}
	if !uc.cfg.Configured() {
		logger.Error().Msg("GMAIL_USER or GMAIL_PASS not configured")
		return mailer.Receipt{}, &ConfigurationError{Missing: uc.missingSettings()}
	}

	env := uc.envelope(sub)
	receipt, err := uc.sender.Send(ctx, env)
	if err != nil {
		logger.Error().Err(err).Str("message_id", env.MessageID).Msg("contact email failed")
		return mailer.Receipt{}, newDeliveryError(err)
	}

	logger.Info().Str("message_id", receipt.MessageID).Msg("contact email sent")
	return receipt, nil
}

func validate(sub model.ContactSubmission) error {
	var missing []string
	if strings.TrimSpace(sub.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(sub.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(sub.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func (uc *ContactUsecase) missingSettings() []string {
	var missing []string
	if uc.cfg.Username == "" {
		missing = append(missing, "GMAIL_USER")
	}
	if uc.cfg.Password == "" {
		missing = append(missing, "GMAIL_PASS")
	}
	return missing
}

func (uc *ContactUsecase) envelope(sub model.ContactSubmission) mailer.Envelope {
	name := strings.TrimSpace(sub.Name)
	email := strings.TrimSpace(sub.Email)

	return mailer.Envelope{
		MessageID:   uc.newID() + "@" + uc.cfg.Domain(),
		FromName:    name,
		FromAddress: email,
		ReplyTo:     email,
		To:          uc.cfg.Inbox(),
		Subject:     fmt.Sprintf("Portfolio contact from %s", name),
		Text:        fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", name, email, sub.Message),
		HTML:        renderHTML(name, email, sub.Message),
	}
}

func renderHTML(name, email, message string) string {
	body := strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`, html.EscapeString(name), html.EscapeString(email), body)
}
