package service

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrMailNotConfigured = errors.New("mail relay credentials are not configured")

// ContactMessage is one contact-form submission. Nothing is persisted;
// the message only exists as the relayed mail.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactService relays contact-form submissions to the operator's own
// mailbox over SMTP with STARTTLS.
type ContactService struct {
	host     string
	port     string
	address  string
	password string
	logger   zerolog.Logger
}

// NewContactService creates a ContactService instance. address and
// password are the operator's relay credentials.
func NewContactService(host, port, address, password string, logger zerolog.Logger) *ContactService {
	return &ContactService{
		host:     host,
		port:     port,
		address:  address,
		password: password,
		logger:   logger,
	}
}

// Send relays msg to the operator address. The connection is scoped to
// this call and closed on every exit path. There is no retry; the caller
// decides how to surface a failure.
func (s *ContactService) Send(msg ContactMessage) error {
	if s.address == "" || s.password == "" {
		return ErrMailNotConfigured
	}

	ref := uuid.NewString()
	payload := buildContactMail(s.address, ref, msg)

	addr := net.JoinHostPort(s.host, s.port)
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial mail relay: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	auth := smtp.PlainAuth("", s.address, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("relay auth: %w", err)
	}

	if err := client.Mail(s.address); err != nil {
		return err
	}
	if err := client.Rcpt(s.address); err != nil {
		return err
	}

	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write(payload); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	s.logger.Info().Str("ref", ref).Str("from", msg.Email).Msg("contact message relayed")
	return client.Quit()
}

// buildContactMail renders the fixed-format message. The visitor's email
// goes into Reply-To so the operator can answer directly.
func buildContactMail(operator, ref string, msg ContactMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", operator)
	fmt.Fprintf(&b, "To: %s\r\n", operator)
	if strings.TrimSpace(msg.Email) != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", strings.TrimSpace(msg.Email))
	}
	fmt.Fprintf(&b, "Subject: Blog Contact Form [%s]\r\n", ref)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Name: %s\r\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Phone: %s\r\n", msg.Phone)
	fmt.Fprintf(&b, "Message: %s\r\n", msg.Message)
	return []byte(b.String())
}
