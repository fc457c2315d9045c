package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	htmltemplate "html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"

	"mvp_studio_go/config"
	"mvp_studio_go/models"
)

// Email represents an outgoing email message.
type Email struct {
	From     string
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
	ReplyTo  string
}

// Sender delivers an email and returns the provider-assigned message ID.
type Sender interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// ProviderErrorKind discriminates delivery failures at the provider
// boundary so callers never have to inspect free-text error messages.
type ProviderErrorKind int

const (
	// ProviderOther covers every failure that is neither an auth nor a
	// rate-limit problem, timeouts included.
	ProviderOther ProviderErrorKind = iota
	// ProviderAuth means the provider rejected the API credential.
	ProviderAuth
	// ProviderRateLimited means the provider throttled the sender.
	ProviderRateLimited
)

// ProviderError is a delivery failure tagged with a stable kind.
type ProviderError struct {
	Kind ProviderErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case ProviderAuth:
		return fmt.Sprintf("provider auth error: %v", e.Err)
	case ProviderRateLimited:
		return fmt.Sprintf("provider rate limited: %v", e.Err)
	default:
		return fmt.Sprintf("provider error: %v", e.Err)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classifyResendError maps a resend-go error to a tagged ProviderError.
// The Resend client surfaces failures as free-text messages, so substring
// inference is the only signal available here; it is confined to this
// function and nothing outside the sender depends on provider wording.
func classifyResendError(err error) *ProviderError {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return &ProviderError{Kind: ProviderAuth, Err: err}
	case strings.Contains(msg, "rate limit"):
		return &ProviderError{Kind: ProviderRateLimited, Err: err}
	default:
		return &ProviderError{Kind: ProviderOther, Err: err}
	}
}

// ResendSender delivers emails through the Resend API.
type ResendSender struct {
	apiKey  string
	client  *resend.Client
	timeout time.Duration
}

// NewResendSender creates a sender for the given API key. An empty key is
// accepted so the process can start without a credential; the first send
// attempt then fails with a ProviderAuth error instead of crashing.
func NewResendSender(apiKey string, timeout time.Duration) *ResendSender {
	s := &ResendSender{apiKey: apiKey, timeout: timeout}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

// Send delivers the email via Resend under the configured timeout.
func (s *ResendSender) Send(ctx context.Context, email *Email) (string, error) {
	if s.client == nil {
		return "", &ProviderError{Kind: ProviderAuth, Err: errors.New("RESEND_API_KEY not configured")}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
		ReplyTo: email.ReplyTo,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", classifyResendError(err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return sent.Id, nil
}

// LogSender logs emails to the console instead of sending them. It is
// used in test mode and when developing without a Resend credential.
type LogSender struct{}

func (LogSender) Send(_ context.Context, email *Email) (string, error) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("From: %s", email.From)
	log.Printf("To: %v", email.To)
	log.Printf("Reply-To: %s", email.ReplyTo)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
	return uuid.NewString(), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// stripPolicy removes all markup from submitted fields before they are
// interpolated into the notification subject and bodies.
var stripPolicy = bluemonday.StrictPolicy()

func stripMarkup(s string) string {
	// Sanitize entity-escapes the survivors; unescape so plain characters
	// like "&" stay readable in the text body and subject.
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

type leadEmailData struct {
	FullName           string
	Email              string
	Phone              string
	ProjectDescription string
	Ref                string
}

const leadTemplateName = "lead_notification"

// BuildLeadEmail composes the lead notification: an HTML version and a
// plain-text fallback, both carrying the lead's name, contact links and
// the full project description verbatim. Reply-To is set to the lead's
// email so the business can answer directly.
func BuildLeadEmail(cfg *config.Config, lead models.Lead, ref string) (*Email, error) {
	l := lead.Trimmed()
	data := leadEmailData{
		FullName:           stripMarkup(l.FullName),
		Email:              stripMarkup(l.Email),
		Phone:              stripMarkup(l.Phone),
		ProjectDescription: stripMarkup(l.ProjectDescription),
		Ref:                ref,
	}

	htmlBody, err := renderLeadHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render HTML body: %w", err)
	}
	textBody, err := renderLeadText(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}

	return &Email{
		From:     fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:       []string{cfg.EmailTo},
		Subject:  fmt.Sprintf("🚀 Nuevo Cliente MVP: %s quiere validar su idea", data.FullName),
		HTMLBody: htmlBody,
		TextBody: textBody,
		ReplyTo:  l.Email,
	}, nil
}

// loadTemplateSource reads an override from templates/emails if one is
// present, otherwise returns the compiled-in fallback.
func loadTemplateSource(ext, fallback string) string {
	path := filepath.Join("templates", "emails", leadTemplateName+ext)
	content, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	return string(content)
}

func renderLeadHTML(data leadEmailData) (string, error) {
	src := loadTemplateSource(".html", leadHTMLFallback)
	tmpl, err := htmltemplate.New(leadTemplateName + ".html").Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderLeadText(data leadEmailData) (string, error) {
	src := loadTemplateSource(".txt", leadTextFallback)
	tmpl, err := texttemplate.New(leadTemplateName + ".txt").Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
