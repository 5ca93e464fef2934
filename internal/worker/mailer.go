package worker

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/config"
)

// Mailer wraps SMTP configuration for incidencia notification emails.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     from,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Enviar sends a plain-text notification.
func (m *Mailer) Enviar(para, asunto, cuerpo string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{para}
	e.Subject = asunto
	e.Text = []byte(cuerpo)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
