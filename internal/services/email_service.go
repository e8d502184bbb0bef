package services

import (
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/kashyap-d/Solo-Suite-sub000/internal/metrics"
	"google.golang.org/api/gmail/v1"
)

// MailParams are the template parameters every transactional email is built
// from: who gets it, whose name to greet, which job, who the counterpart is,
// and a deep link path into the web app.
type MailParams struct {
	To              string
	RecipientName   string
	JobTitle        string
	CounterpartName string
	Link            string
}

// Mailer is the transactional email boundary. Every send is best-effort:
// callers log failures and never roll back the triggering mutation.
type Mailer interface {
	JobPosted(p MailParams) error
	ApplicationSubmitted(p MailParams) error
	ApplicationAccepted(p MailParams) error
}

// GmailMailer sends through the Gmail API. A nil service disables delivery
// gracefully: sends are logged and reported as success.
type GmailMailer struct {
	Service *gmail.Service
	Sender  string
	BaseURL string
}

func NewGmailMailer(svc *gmail.Service, sender, baseURL string) *GmailMailer {
	return &GmailMailer{Service: svc, Sender: sender, BaseURL: baseURL}
}

func (m *GmailMailer) JobPosted(p MailParams) error {
	subject := fmt.Sprintf("Your job %q is live", p.JobTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour job posting %q is now live and visible to providers.\n\nView it here: %s\n\n— SoloSuite",
		orFallback(p.RecipientName, "there"), p.JobTitle, m.link(p.Link))
	return m.send("job_posted", p.To, subject, body)
}

func (m *GmailMailer) ApplicationSubmitted(p MailParams) error {
	subject := fmt.Sprintf("New application for %q", p.JobTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\n%s just applied to your job %q.\n\nReview the proposal: %s\n\n— SoloSuite",
		orFallback(p.RecipientName, "there"), orFallback(p.CounterpartName, "A provider"), p.JobTitle, m.link(p.Link))
	return m.send("application_submitted", p.To, subject, body)
}

func (m *GmailMailer) ApplicationAccepted(p MailParams) error {
	subject := fmt.Sprintf("You were accepted for %q", p.JobTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\nGood news: %s accepted your application for %q.\n\nSee the details: %s\n\n— SoloSuite",
		orFallback(p.RecipientName, "there"), orFallback(p.CounterpartName, "the client"), p.JobTitle, m.link(p.Link))
	return m.send("application_accepted", p.To, subject, body)
}

func (m *GmailMailer) send(template, to, subject, body string) error {
	if m.Service == nil {
		log.Printf("📭 mail disabled, skipping %s to %s (%s)", template, to, subject)
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", m.Sender)
	fmt.Fprintf(&sb, "To: %s\r\n", to)
	fmt.Fprintf(&sb, "Subject: %s\r\n", subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(body)

	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString([]byte(sb.String()))}
	if _, err := m.Service.Users.Messages.Send("me", msg).Do(); err != nil {
		metrics.EmailFailures.Inc()
		return fmt.Errorf("gmail send %s: %w", template, err)
	}
	metrics.EmailsSent.WithLabelValues(template).Inc()
	return nil
}

func (m *GmailMailer) link(path string) string {
	return strings.TrimRight(m.BaseURL, "/") + path
}

func orFallback(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
