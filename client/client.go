// Package client implements the contact form's submission pipeline: local
// validation, a single POST to the contact endpoint and error mapping for
// the surrounding UI. It shares its predicates with the server through the
// validation package.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"mvp_studio_go/models"
	"mvp_studio_go/validation"
)

// User-facing messages, verbatim from the site's Spanish UI.
const (
	MsgConnectivity = "Error de conexión. Verifica tu conexión a internet e intenta de nuevo."
	MsgRateLimited  = "Has enviado demasiadas solicitudes. Espera unos minutos antes de intentar de nuevo."
	MsgGeneric      = "Error al enviar el mensaje"
)

// ErrInFlight is returned when Submit is called while a previous
// submission is still outstanding.
var ErrInFlight = errors.New("a submission is already in progress")

// ErrValidation is returned when local validation fails; the per-field
// messages are available through FieldErrors. No request is sent.
var ErrValidation = errors.New("one or more fields are invalid")

// ErrorKind classifies a failed submission for display.
type ErrorKind int

const (
	// KindServer is a server-returned error or an unreadable response.
	KindServer ErrorKind = iota
	// KindConnectivity is a transport failure: the request never
	// produced an HTTP response (offline, DNS, timeout).
	KindConnectivity
	// KindRateLimited means the server asked the user to slow down.
	KindRateLimited
)

// SubmitError is a failed submission with a display-ready message.
type SubmitError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Form holds the state of one contact form instance: the four fields,
// their validation errors and the in-flight guard. Safe for use from the
// UI goroutine and the submitting goroutine.
type Form struct {
	endpoint   string
	httpClient *http.Client

	mu          sync.Mutex
	lead        models.Lead
	fieldErrors map[string]string
	submitting  bool
}

// Option configures a Form.
type Option func(*Form)

// WithHTTPClient replaces the transport used for submissions.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) {
		f.httpClient = c
	}
}

// NewForm creates an empty form that submits to the given endpoint URL.
func NewForm(endpoint string, opts ...Option) *Form {
	f := &Form{
		endpoint:    endpoint,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		fieldErrors: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetField updates a field and clears that field's error, so messages
// disappear the moment the user edits the field they refer to.
func (f *Form) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "fullName":
		f.lead.FullName = value
	case "email":
		f.lead.Email = value
	case "phone":
		f.lead.Phone = value
	case "projectDescription":
		f.lead.ProjectDescription = value
	default:
		return
	}
	delete(f.fieldErrors, name)
}

// Lead returns a snapshot of the current field values.
func (f *Form) Lead() models.Lead {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lead
}

// FieldErrors returns a copy of the current per-field errors.
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		errs[k] = v
	}
	return errs
}

// Submitting reports whether a submission is outstanding.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the form locally and, when valid, sends exactly one
// request to the contact endpoint. On success all fields are reset. The
// form is left with submitting == false on every path.
func (f *Form) Submit(ctx context.Context) (*models.SubmissionResult, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrInFlight
	}
	f.submitting = true
	lead := f.lead
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	// All fields are checked independently; every failure is surfaced at
	// once and no request leaves the client.
	if errs := validation.CheckLead(lead); len(errs) > 0 {
		f.mu.Lock()
		f.fieldErrors = errs
		f.mu.Unlock()
		return nil, ErrValidation
	}

	result, err := f.post(ctx, lead)
	if err != nil {
		return nil, err
	}

	// Submission complete: reset the form for the next lead.
	f.mu.Lock()
	f.lead = models.Lead{}
	f.fieldErrors = make(map[string]string)
	f.mu.Unlock()

	return result, nil
}

// responseBody is the union of the endpoint's success and error shapes.
type responseBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId"`
	Error   string `json:"error"`
}

func (f *Form) post(ctx context.Context, lead models.Lead) (*models.SubmissionResult, error) {
	payload, err := json.Marshal(lead)
	if err != nil {
		return nil, &SubmitError{Kind: KindServer, Message: MsgGeneric, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &SubmitError{Kind: KindServer, Message: MsgGeneric, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		// The request never reached the server or no response came back;
		// distinct from a server-returned error body.
		return nil, &SubmitError{Kind: KindConnectivity, Message: MsgConnectivity, Err: err}
	}
	defer resp.Body.Close()

	var body responseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &SubmitError{Kind: KindServer, Message: MsgGeneric, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && body.Success {
		return &models.SubmissionResult{
			Success: true,
			Message: body.Message,
			EmailID: body.EmailID,
		}, nil
	}

	message := body.Error
	if message == "" {
		message = MsgGeneric
	}

	if resp.StatusCode == http.StatusTooManyRequests || strings.Contains(strings.ToLower(message), "rate limit") || strings.Contains(message, "Demasiadas solicitudes") {
		return nil, &SubmitError{Kind: KindRateLimited, Message: MsgRateLimited}
	}
	return nil, &SubmitError{Kind: KindServer, Message: message}
}
