package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"mvp_studio_go/config"
	"mvp_studio_go/models"
	"mvp_studio_go/services"
)

// MsgMethodNotAllowed is returned for any verb other than POST on the
// contact endpoint.
const MsgMethodNotAllowed = "Method not allowed"

// MsgInvalidBody is returned when the request body is not valid JSON.
const MsgInvalidBody = "Cuerpo de solicitud inválido"

// Contact adapts the submission core to the hosting environment. Both
// adapters (the Echo route and the request/response function) delegate to
// services.ProcessLead so their behavior cannot drift apart.
type Contact struct {
	cfg    *config.Config
	sender services.Sender
}

func NewContact(cfg *config.Config, sender services.Sender) *Contact {
	return &Contact{cfg: cfg, sender: sender}
}

// Handle serves the routed shape of the contact endpoint. The route is
// registered for every method so non-POST requests get the contract's 405
// body instead of the framework default.
func (h *Contact) Handle(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: MsgMethodNotAllowed})
	}

	var lead models.Lead
	if err := c.Bind(&lead); err != nil {
		log.Printf("Failed to parse contact request body: %v", err)
		return c.JSON(http.StatusBadRequest, h.errorBody(&services.SubmissionError{
			Status:  http.StatusBadRequest,
			Message: MsgInvalidBody,
			Details: err.Error(),
		}))
	}

	result, serr := services.ProcessLead(c.Request().Context(), h.cfg, h.sender, lead)
	if serr != nil {
		return c.JSON(serr.Status, h.errorBody(serr))
	}
	return c.JSON(http.StatusOK, result)
}

// Func returns the request/response function shape of the same endpoint,
// suitable for serverless hosting.
func (h *Contact) Func() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{Error: MsgMethodNotAllowed})
			return
		}

		var lead models.Lead
		if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
			log.Printf("Failed to parse contact request body: %v", err)
			writeJSON(w, http.StatusBadRequest, h.errorBody(&services.SubmissionError{
				Status:  http.StatusBadRequest,
				Message: MsgInvalidBody,
				Details: err.Error(),
			}))
			return
		}

		result, serr := services.ProcessLead(r.Context(), h.cfg, h.sender, lead)
		if serr != nil {
			writeJSON(w, serr.Status, h.errorBody(serr))
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// errorBody builds the error response, stripping diagnostics in production.
func (h *Contact) errorBody(serr *services.SubmissionError) models.ErrorResponse {
	body := models.ErrorResponse{Error: serr.Message}
	if !h.cfg.IsProduction() {
		body.Details = serr.Details
	}
	return body
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
