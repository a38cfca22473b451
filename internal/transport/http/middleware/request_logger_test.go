package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	for _, target := range []string{"/ok?q=fade", "/missing"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0]
	require.Equal(t, zapcore.InfoLevel, ok.Level)
	require.Equal(t, "/ok?q=fade", ok.ContextMap()["path"])
	require.EqualValues(t, http.StatusOK, ok.ContextMap()["status"])
	require.NotEmpty(t, ok.ContextMap()["request_id"])

	missing := entries[1]
	require.Equal(t, zapcore.WarnLevel, missing.Level)
	require.EqualValues(t, http.StatusNotFound, missing.ContextMap()["status"])
}

func TestRequestLogger_LogsPanics(t *testing.T) {
	tests := []struct {
		name  string
		setup func(app *fiber.App, log *zap.SugaredLogger)
	}{
		{
			name: "logger before recover",
			setup: func(app *fiber.App, log *zap.SugaredLogger) {
				app.Use(RequestLogger(log))
				app.Use(recover.New())
			},
		},
		{
			name: "recover before logger",
			setup: func(app *fiber.App, log *zap.SugaredLogger) {
				app.Use(recover.New())
				app.Use(RequestLogger(log))
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)

			app := fiber.New()
			app.Use(requestid.New())
			tt.setup(app, zap.New(core).Sugar())
			app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			require.NoError(t, err)
			_ = resp.Body.Close()
			require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

			entries := logs.All()
			require.Len(t, entries, 1)
			require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
			require.Equal(t, "/boom", entries[0].ContextMap()["path"])
			require.EqualValues(t, http.StatusInternalServerError, entries[0].ContextMap()["status"])
			require.NotEmpty(t, entries[0].ContextMap()["request_id"])
		})
	}
}
