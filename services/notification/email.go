package notification

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"clinicore/config"

	"gopkg.in/gomail.v2"
)

type emailTemplate struct {
	Subject string
	Body    *template.Template
}

var emailTemplates = map[string]emailTemplate{
	TemplateAppointmentAccepted: {
		Subject: "Your appointment has been confirmed",
		Body: template.Must(template.New(TemplateAppointmentAccepted).Parse(
			"Dear {{.patientName}},\n\n" +
				"Your appointment with {{.staffName}} on {{.dateLabel}} at {{.slotDisplay}} has been confirmed.\n\n" +
				"Please arrive 10 minutes early.\n")),
	},
	TemplateAppointmentRescheduled: {
		Subject: "Your appointment has been rescheduled",
		Body: template.Must(template.New(TemplateAppointmentRescheduled).Parse(
			"Dear {{.patientName}},\n\n" +
				"Your appointment with {{.staffName}} has been moved to {{.dateLabel}} at {{.slotDisplay}}.\n\n" +
				"If the new time does not work for you, please contact the clinic.\n")),
	},
	TemplateAppointmentReminder: {
		Subject: "Appointment reminder",
		Body: template.Must(template.New(TemplateAppointmentReminder).Parse(
			"Dear {{.patientName}},\n\n" +
				"This is a reminder of your appointment with {{.staffName}} on {{.dateLabel}} at {{.slotDisplay}}.\n")),
	},
}

// EmailNotificationService delivers templated notifications over SMTP.
type EmailNotificationService struct{}

// NewEmailNotificationService creates the production notification sender.
func NewEmailNotificationService() *EmailNotificationService {
	return &EmailNotificationService{}
}

// Send renders the template and delivers it to the recipient. One attempt, no
// retries; the caller decides what a failure means.
func (s *EmailNotificationService) Send(ctx context.Context, templateID, recipient string, params map[string]string) error {
	tmpl, ok := emailTemplates[templateID]
	if !ok {
		return fmt.Errorf("unknown notification template %q", templateID)
	}

	var body bytes.Buffer
	if err := tmpl.Body.Execute(&body, params); err != nil {
		return fmt.Errorf("failed to render template %q: %w", templateID, err)
	}

	cfg := config.AppConfig
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", tmpl.Subject)
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", templateID, recipient, err)
	}
	return nil
}
