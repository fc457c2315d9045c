package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mvp_studio_go/models"
	"mvp_studio_go/validation"
)

type fakeSender struct {
	calls int
	last  *Email
	id    string
	err   error
}

func (s *fakeSender) Send(_ context.Context, email *Email) (string, error) {
	s.calls++
	s.last = email
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func TestProcessLead_Success(t *testing.T) {
	sender := &fakeSender{id: "re_abc123"}

	result, serr := ProcessLead(context.Background(), testConfig(), sender, testLead())
	assert.Nil(t, serr)
	assert.True(t, result.Success)
	assert.Equal(t, MsgEmailSent, result.Message)
	assert.Equal(t, "re_abc123", result.EmailID)

	// Exactly one outbound send, reply-to pointed at the lead
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "ana@example.com", sender.last.ReplyTo)
	assert.Contains(t, sender.last.Subject, "Ana Pérez")
}

func TestProcessLead_MissingFields(t *testing.T) {
	fields := []func(*models.Lead){
		func(l *models.Lead) { l.FullName = "" },
		func(l *models.Lead) { l.Email = "   " },
		func(l *models.Lead) { l.Phone = "" },
		func(l *models.Lead) { l.ProjectDescription = "" },
	}

	for _, mutate := range fields {
		sender := &fakeSender{id: "re_abc123"}
		lead := testLead()
		mutate(&lead)

		result, serr := ProcessLead(context.Background(), testConfig(), sender, lead)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, serr.Status)
		assert.Equal(t, MsgAllFieldsRequired, serr.Message)
		assert.Zero(t, sender.calls)
	}
}

func TestProcessLead_InvalidEmail(t *testing.T) {
	sender := &fakeSender{id: "re_abc123"}
	lead := testLead()
	lead.Email = "not-an-email"

	result, serr := ProcessLead(context.Background(), testConfig(), sender, lead)
	assert.Nil(t, result)
	assert.Equal(t, http.StatusBadRequest, serr.Status)
	assert.Equal(t, MsgInvalidEmail, serr.Message)
	assert.Zero(t, sender.calls)
}

func TestProcessLead_FullPredicateSetServerSide(t *testing.T) {
	t.Run("Invalid phone", func(t *testing.T) {
		sender := &fakeSender{}
		lead := testLead()
		lead.Phone = "12345"

		_, serr := ProcessLead(context.Background(), testConfig(), sender, lead)
		assert.Equal(t, http.StatusBadRequest, serr.Status)
		assert.Equal(t, validation.MsgPhoneInvalid, serr.Message)
		assert.Zero(t, sender.calls)
	})

	t.Run("Description below minimum", func(t *testing.T) {
		sender := &fakeSender{}
		lead := testLead()
		lead.ProjectDescription = strings.Repeat("a", 19)

		_, serr := ProcessLead(context.Background(), testConfig(), sender, lead)
		assert.Equal(t, http.StatusBadRequest, serr.Status)
		assert.Equal(t, validation.MsgDescriptionTooShort, serr.Message)
		assert.Zero(t, sender.calls)
	})

	t.Run("Description at minimum", func(t *testing.T) {
		sender := &fakeSender{id: "re_min"}
		lead := testLead()
		lead.ProjectDescription = strings.Repeat("a", 20)

		result, serr := ProcessLead(context.Background(), testConfig(), sender, lead)
		assert.Nil(t, serr)
		assert.True(t, result.Success)
		assert.Equal(t, 1, sender.calls)
	})
}

func TestProcessLead_ProviderAuthError(t *testing.T) {
	sender := &fakeSender{err: classifyResendError(errors.New("API key is invalid: re_secret_12345"))}

	result, serr := ProcessLead(context.Background(), testConfig(), sender, testLead())
	assert.Nil(t, result)
	assert.Equal(t, http.StatusUnauthorized, serr.Status)
	assert.Equal(t, MsgServerConfig, serr.Message)
	// Credential details never reach the response
	assert.Empty(t, serr.Details)
	assert.NotContains(t, serr.Message, "re_secret_12345")
}

func TestProcessLead_ProviderRateLimited(t *testing.T) {
	sender := &fakeSender{err: classifyResendError(errors.New("rate limit exceeded"))}

	result, serr := ProcessLead(context.Background(), testConfig(), sender, testLead())
	assert.Nil(t, result)
	assert.Equal(t, http.StatusTooManyRequests, serr.Status)
	assert.Equal(t, MsgRateLimited, serr.Message)
}

func TestProcessLead_ProviderGenericError(t *testing.T) {
	sender := &fakeSender{err: classifyResendError(errors.New("connection reset by peer"))}

	result, serr := ProcessLead(context.Background(), testConfig(), sender, testLead())
	assert.Nil(t, result)
	assert.Equal(t, http.StatusInternalServerError, serr.Status)
	assert.Equal(t, MsgInternal, serr.Message)
	assert.Contains(t, serr.Details, "connection reset by peer")
}

func TestProcessLead_ProviderTimeout(t *testing.T) {
	// A timeout is not special-cased: it lands in the generic category
	sender := &fakeSender{err: context.DeadlineExceeded}

	result, serr := ProcessLead(context.Background(), testConfig(), sender, testLead())
	assert.Nil(t, result)
	assert.Equal(t, http.StatusInternalServerError, serr.Status)
	assert.Equal(t, MsgInternal, serr.Message)
}
