package mailer

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/viettl/skipli/config"
)

type MailerContract interface {
	SendAccessCode(to, code string) error
	SendInvitation(to, name, setupLink string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.AppConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}
}

func (m *SMTPMailer) SendAccessCode(to, code string) error {
	subject := "Your access code"
	body := fmt.Sprintf(`<p>Your one-time access code is:</p><h2>%s</h2><p>It expires in 10 minutes.</p>`, code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendInvitation(to, name, setupLink string) error {
	subject := "You have been invited"
	body := fmt.Sprintf(`<p>Hi %s,</p><p>Your instructor added you as a student. Set up your account here:</p><p><a href="%s">%s</a></p>`, name, setupLink, setupLink)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	// without SMTP credentials we log instead of dialing, handy for local runs
	if m.dialer.Username == "" {
		log.Info().Str("to", to).Str("subject", subject).Msg("smtp not configured, skipping send")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}
