package handlers

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"mvp_studio_go/config"
	"mvp_studio_go/services"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:   "test",
		EmailFrom:     "onboarding@resend.dev",
		EmailFromName: "MVP Studio",
		EmailTo:       "delivered@resend.dev",
	}
}

// fakeSender records sends and fails with a preset error when configured
type fakeSender struct {
	calls int
	last  *services.Email
	id    string
	err   error
}

func (s *fakeSender) Send(_ context.Context, email *services.Email) (string, error) {
	s.calls++
	s.last = email
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}
