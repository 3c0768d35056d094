package background

import (
	"context"

	"github.com/lifeline-bd/lifeline-api/external/mailer"
	"github.com/lifeline-bd/lifeline-api/utils"
)

const (
	TemplateRequestSubmitted  = "request_submitted"
	TemplateAssignmentCreated = "assignment_created"
)

type NotificationCenter interface {
	NotifyByTemplate(ctx context.Context, to []string, lang, template string, data map[string]interface{}) error
}

// EmailNotificationCenter renders localized email templates and sends them
// through a mailer
type EmailNotificationCenter struct {
	mailer mailer.Mailer
}

func NewEmailNotificationCenter(m mailer.Mailer) *EmailNotificationCenter {
	return &EmailNotificationCenter{
		mailer: m,
	}
}

func (e *EmailNotificationCenter) NotifyByTemplate(ctx context.Context, to []string, lang, template string, data map[string]interface{}) error {
	return e.mailer.Send(ctx, mailer.Message{
		To:      to,
		Subject: utils.Localize(lang, "email."+template+".subject", data),
		Text:    utils.Localize(lang, "email."+template+".body", data),
	})
}
