package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSendRequiresCredentials(t *testing.T) {
	svc := NewContactService("smtp.example.com", "587", "", "", zerolog.Nop())

	err := svc.Send(ContactMessage{Name: "V", Email: "v@x.com"})
	if !errors.Is(err, ErrMailNotConfigured) {
		t.Fatalf("expected ErrMailNotConfigured, got %v", err)
	}
}

func TestBuildContactMailFormat(t *testing.T) {
	payload := string(buildContactMail("op@example.com", "ref-123", ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@x.com",
		Phone:   "555-0100",
		Message: "Hello there",
	}))

	headers, body, found := strings.Cut(payload, "\r\n\r\n")
	if !found {
		t.Fatal("expected blank line between headers and body")
	}

	for _, want := range []string{
		"From: op@example.com",
		"To: op@example.com",
		"Reply-To: visitor@x.com",
		"Subject: Blog Contact Form [ref-123]",
	} {
		if !strings.Contains(headers, want) {
			t.Fatalf("headers missing %q:\n%s", want, headers)
		}
	}

	for _, want := range []string{
		"Name: Visitor",
		"Email: visitor@x.com",
		"Phone: 555-0100",
		"Message: Hello there",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestBuildContactMailOmitsEmptyReplyTo(t *testing.T) {
	payload := string(buildContactMail("op@example.com", "ref-123", ContactMessage{Name: "V"}))
	if strings.Contains(payload, "Reply-To:") {
		t.Fatal("expected no Reply-To header without a visitor email")
	}
}
