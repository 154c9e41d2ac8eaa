package logout

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesettings/sitesettings/internal/web/handler/login"
	"github.com/sitesettings/sitesettings/internal/web/session"
)

func TestLogout(t *testing.T) {
	session.Init(nil)

	sessionID, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, (&session.Data{UserID: 1}).Write(sessionID, time.Minute))

	app := fiber.New()
	Handler.Init(app)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, Path, nil)
			req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, login.Path, resp.Header.Get(fiber.HeaderLocation))

			var data session.Data
			assert.ErrorIs(t, data.Read(sessionID), session.ErrNotFound)
		})
	}
}
