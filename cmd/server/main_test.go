package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemant-mistri/portfolio/internal/config"
	"github.com/hemant-mistri/portfolio/internal/extractor"
	"github.com/hemant-mistri/portfolio/internal/mailer"
	"github.com/hemant-mistri/portfolio/internal/textsource"
	"github.com/hemant-mistri/portfolio/internal/usecase"
)

type nopSender struct{}

func (nopSender) Send(_ context.Context, env mailer.Envelope) (mailer.Receipt, error) {
	return mailer.Receipt{MessageID: "<" + env.MessageID + ">"}, nil
}

func (nopSender) Verify(context.Context) error { return nil }

func testApp(t *testing.T, ready *atomic.Bool) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>portfolio</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	cfg := &config.AppConfig{
		Name:           "portfolio-test",
		Env:            "development",
		StaticDir:      dir,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	contact := usecase.NewContactUsecase(nopSender{}, config.MailConfig{Host: "smtp.example.com", Username: "me@example.com", Password: "pw"})
	cv := usecase.NewCVUsecase(textsource.NewPlainDecoder(), extractor.New(), textsource.NewLoader(time.Second))
	return newApp(cfg, contact, cv, ready)
}

func status(t *testing.T, app *fiber.App, target string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestStaticSiteIsNotRateLimited(t *testing.T) {
	app := testApp(t, &atomic.Bool{})

	for i := 0; i < 80; i++ {
		require.Equal(t, http.StatusOK, status(t, app, "/app.js"), "request %d", i)
	}
	assert.Equal(t, http.StatusOK, status(t, app, "/"))
	assert.Equal(t, http.StatusOK, status(t, app, "/about"))
}

func TestAPIIsRateLimited(t *testing.T) {
	app := testApp(t, &atomic.Bool{})

	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, status(t, app, "/api/health"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, status(t, app, "/api/health"))
	assert.Equal(t, http.StatusOK, status(t, app, "/app.js"))
}

func TestUnknownAPIRouteIsNotServedBySite(t *testing.T) {
	app := testApp(t, &atomic.Bool{})

	assert.Equal(t, http.StatusNotFound, status(t, app, "/api/nope"))
}

func TestReadinessFollowsMailVerification(t *testing.T) {
	var ready atomic.Bool
	app := testApp(t, &ready)

	assert.Equal(t, http.StatusOK, status(t, app, "/livez"))
	assert.Equal(t, http.StatusServiceUnavailable, status(t, app, "/readyz"))

	ready.Store(true)
	assert.Equal(t, http.StatusOK, status(t, app, "/readyz"))
}
