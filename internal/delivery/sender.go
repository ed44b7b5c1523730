package delivery

import (
	"fmt"

	"github.com/shenikar/urban_response_system/internal/config"
	"gopkg.in/gomail.v2"
)

// EmailSender - интерфейс отправки одного письма
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMTPSender - реализация EmailSender поверх SMTP (gomail)
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender создает SMTPSender из конфигурации приложения
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

// Send отправляет письмо, открывая соединение на каждую отправку
func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
