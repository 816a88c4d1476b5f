package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/wilardzysenpai/portfolio-core/internal/config"
)

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender sends emails via SMTP. Disabled senders silently drop messages so
// notification is strictly optional.
type Sender struct {
	cfg config.MailConfig
}

func New(cfg config.MailConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send dispatches an email via net/smtp.
func (s *Sender) Send(msg Message) error {
	if !s.cfg.Enable {
		return nil
	}

	host := s.cfg.Host
	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, host)
	return smtp.SendMail(addr, auth, from, msg.To, body.Bytes())
}

// NotifyNewMessage emails the owner about a fresh contact form submission.
func (s *Sender) NotifyNewMessage(name, email, subject, message string) error {
	if !s.cfg.Enable || s.cfg.To == "" {
		return nil
	}

	var html bytes.Buffer
	if err := contactNotifyTmpl.Execute(&html, map[string]string{
		"Name":    name,
		"Email":   email,
		"Subject": subject,
		"Message": message,
	}); err != nil {
		return err
	}

	return s.Send(Message{
		To:      []string{s.cfg.To},
		Subject: fmt.Sprintf("New contact message: %s", subject),
		HTML:    html.String(),
	})
}

var contactNotifyTmpl = template.Must(template.New("contact-notify").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">New contact message</h2>
  <p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt; wrote:</p>
  <p><strong>{{.Subject}}</strong></p>
  <table width="100%" style="background:#f3f4f6;border-radius:8px;padding:0 1rem">
    <tbody><tr><td><p style="font-size:13px;line-height:22px;color:#333">{{.Message}}</p></td></tr></tbody>
  </table>
  <p style="color:#999;font-size:12px">Sent automatically by the portfolio backend.</p>
</div>
</body>
</html>`))
