package models

import "strings"

// Lead represents a contact form submission. It is never persisted: it
// exists for the duration of one request and is discarded once the
// notification email has been dispatched (or the attempt failed).
type Lead struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	ProjectDescription string `json:"projectDescription"`
}

// Trimmed returns a copy of the lead with surrounding whitespace removed
// from every field.
func (l Lead) Trimmed() Lead {
	return Lead{
		FullName:           strings.TrimSpace(l.FullName),
		Email:              strings.TrimSpace(l.Email),
		Phone:              strings.TrimSpace(l.Phone),
		ProjectDescription: strings.TrimSpace(l.ProjectDescription),
	}
}

// SubmissionResult is the success body returned by the contact endpoint.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId,omitempty"`
}

// ErrorResponse is the error body returned by the contact endpoint.
// Details is populated only outside production.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
