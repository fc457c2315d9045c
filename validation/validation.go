// Package validation holds the lead predicate set shared by the server
// pipeline and the client package, so both sides of the network boundary
// enforce the same rules.
package validation

import (
	"regexp"
	"strings"

	"mvp_studio_go/models"
)

// MinDescriptionLength is the minimum trimmed length of a project description.
const MinDescriptionLength = 20

var (
	// Shape checks, not deliverability checks: a plausible email has a
	// local part, an "@", a domain and a TLD, with no whitespace; a
	// plausible phone has an optional leading "+" and at least 10
	// digits/spaces/hyphens/parentheses.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[+]?[\d\s\-()]{10,}$`)
)

// Field error messages, also shown verbatim in the form UI.
const (
	MsgNameRequired        = "El nombre es requerido"
	MsgEmailRequired       = "El correo es requerido"
	MsgEmailInvalid        = "Correo electrónico no válido"
	MsgPhoneRequired       = "El teléfono es requerido"
	MsgPhoneInvalid        = "Número de teléfono no válido"
	MsgDescriptionRequired = "La descripción del proyecto es requerida"
	MsgDescriptionTooShort = "La descripción debe tener al menos 20 caracteres"
)

// ValidFullName reports whether the name is non-empty after trimming.
func ValidFullName(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidEmail reports whether the string plausibly represents an email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// ValidPhone reports whether the string plausibly represents a phone number.
func ValidPhone(s string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(s))
}

// ValidDescription reports whether the trimmed description meets the
// minimum length.
func ValidDescription(s string) bool {
	return len([]rune(strings.TrimSpace(s))) >= MinDescriptionLength
}

// CheckLead evaluates every field independently and returns a map of field
// name to error message for each failure. An empty map means the lead is
// valid. The function is pure: calling it twice on the same lead yields
// the same result.
func CheckLead(lead models.Lead) map[string]string {
	errs := make(map[string]string)

	if !ValidFullName(lead.FullName) {
		errs["fullName"] = MsgNameRequired
	}

	if strings.TrimSpace(lead.Email) == "" {
		errs["email"] = MsgEmailRequired
	} else if !ValidEmail(lead.Email) {
		errs["email"] = MsgEmailInvalid
	}

	if strings.TrimSpace(lead.Phone) == "" {
		errs["phone"] = MsgPhoneRequired
	} else if !ValidPhone(lead.Phone) {
		errs["phone"] = MsgPhoneInvalid
	}

	if strings.TrimSpace(lead.ProjectDescription) == "" {
		errs["projectDescription"] = MsgDescriptionRequired
	} else if !ValidDescription(lead.ProjectDescription) {
		errs["projectDescription"] = MsgDescriptionTooShort
	}

	return errs
}

// HasMissingField reports whether any of the four fields is empty after
// trimming. This is the aggregate presence check the server runs before
// the per-field shape checks.
func HasMissingField(lead models.Lead) bool {
	l := lead.Trimmed()
	return l.FullName == "" || l.Email == "" || l.Phone == "" || l.ProjectDescription == ""
}
