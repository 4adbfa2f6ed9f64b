package mail

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Sender delivers outbound application mail. The SMTP implementation is
// used in production; tests and test mode substitute their own.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}

// LogSender writes mail to the server log instead of delivering it.
// Used when TEST_MODE is enabled.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(to, subject, htmlBody string) error {
	log.Printf("[mail] to=%s subject=%q\n%s", to, subject, htmlBody)
	return nil
}
