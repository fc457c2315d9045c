package services

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"mvp_studio_go/config"
	"mvp_studio_go/models"
	"mvp_studio_go/validation"
)

// User-facing messages, verbatim from the site's Spanish UI.
const (
	MsgAllFieldsRequired = "Todos los campos son requeridos"
	MsgInvalidEmail      = "Formato de email inválido"
	MsgServerConfig      = "Error de configuración del servidor"
	MsgRateLimited       = "Demasiadas solicitudes. Intenta de nuevo en unos minutos."
	MsgInternal          = "Error interno del servidor. Intenta de nuevo más tarde."
	MsgEmailSent         = "Email enviado correctamente"
)

// SubmissionError carries the HTTP status and user-facing message for a
// failed submission. Details holds diagnostic text for non-production
// responses; it is never populated for auth failures so credential
// information cannot reach a response body.
type SubmissionError struct {
	Status  int
	Message string
	Details string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// ProcessLead is the single submission core behind both hosting adapters:
// it re-validates the lead, composes the notification email and dispatches
// it exactly once through the sender. No retry is performed; a failure is
// surfaced immediately and the user resubmits manually.
func ProcessLead(ctx context.Context, cfg *config.Config, sender Sender, lead models.Lead) (*models.SubmissionResult, *SubmissionError) {
	if validation.HasMissingField(lead) {
		return nil, &SubmissionError{Status: http.StatusBadRequest, Message: MsgAllFieldsRequired}
	}

	// Full predicate set, server-side: the client runs the same checks but
	// cannot be trusted.
	errs := validation.CheckLead(lead)
	if _, ok := errs["email"]; ok {
		return nil, &SubmissionError{Status: http.StatusBadRequest, Message: MsgInvalidEmail}
	}
	if msg, ok := errs["phone"]; ok {
		return nil, &SubmissionError{Status: http.StatusBadRequest, Message: msg}
	}
	if msg, ok := errs["projectDescription"]; ok {
		return nil, &SubmissionError{Status: http.StatusBadRequest, Message: msg}
	}

	ref := uuid.NewString()

	email, err := BuildLeadEmail(cfg, lead, ref)
	if err != nil {
		log.Printf("Error composing lead email (ref %s): %v", ref, err)
		return nil, &SubmissionError{Status: http.StatusInternalServerError, Message: MsgInternal, Details: err.Error()}
	}

	id, err := sender.Send(ctx, email)
	if err != nil {
		log.Printf("Error sending lead email (ref %s): %v", ref, err)

		// Senders tag their failures; for any that do not, fall back to
		// message classification so a misbehaving provider client still
		// maps to the right status.
		var perr *ProviderError
		if !errors.As(err, &perr) {
			perr = classifyResendError(err)
		}
		switch perr.Kind {
		case ProviderAuth:
			return nil, &SubmissionError{Status: http.StatusUnauthorized, Message: MsgServerConfig}
		case ProviderRateLimited:
			return nil, &SubmissionError{Status: http.StatusTooManyRequests, Message: MsgRateLimited}
		default:
			return nil, &SubmissionError{Status: http.StatusInternalServerError, Message: MsgInternal, Details: err.Error()}
		}
	}

	log.Printf("Lead %s submitted by %s <%s>, email ID %s", ref, lead.FullName, lead.Email, id)

	return &models.SubmissionResult{
		Success: true,
		Message: MsgEmailSent,
		EmailID: id,
	}, nil
}
