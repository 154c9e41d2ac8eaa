package site

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/config"
	"github.com/sitesettings/sitesettings/internal/db/controller/setting"
	"github.com/sitesettings/sitesettings/internal/db/controller/sitepage"
	"github.com/sitesettings/sitesettings/internal/db/controller/user"
	"github.com/sitesettings/sitesettings/internal/db/migrations"
	"github.com/sitesettings/sitesettings/internal/settings"
)

// mockTemplateEngine records the data of the last render.
type mockTemplateEngine struct {
	last fiber.Map
}

func (m *mockTemplateEngine) Load() error { return nil }

func (m *mockTemplateEngine) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	m.last, _ = data.(fiber.Map)
	_, err := io.WriteString(w, name)

	return err
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.Migrate(db))

	return db
}

func TestURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/site/acme", URL("http://localhost:8080/", "acme"))
	assert.Equal(t, "https://example.com/site/a%20b", URL("https://example.com", "a b"))
	assert.Equal(t, "example.com/site/acme", Domain("https://example.com", "acme"))
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	owner, err := user.Create(db, "acme", "secret", "")
	require.NoError(t, err)

	engine := &mockTemplateEngine{}
	app := fiber.New(fiber.Config{Views: engine})

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db, func(ref string) string { return "/uploads/" + ref }))

	get := func(path string) int {
		resp, errTest := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, errTest)
		_ = resp.Body.Close()

		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusNotFound, get("/site/nobody"))
	assert.Equal(t, fiber.StatusNotFound, get("/site/acme"), "nothing saved yet")

	_, err = setting.Upsert(db, owner.ID, settings.GroupHomePage, settings.NameCompanyName, "Acme")
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, get("/site/acme"), "status is off")

	_, err = setting.Upsert(db, owner.ID, settings.GroupHomePage, settings.NameStatus, true)
	require.NoError(t, err)
	_, err = setting.Upsert(db, owner.ID, settings.GroupGeneral, settings.NameLogo, "logo.png")
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, get("/site/acme"))
	assert.Equal(t, "Acme", engine.last["Title"])
	assert.Equal(t, "/uploads/logo.png", engine.last["LogoURL"])
	assert.Equal(t, "", engine.last["FaviconURL"])

	content, ok := engine.last["Content"].(*sitepage.Content)
	require.True(t, ok)
	assert.True(t, content.Published())

	require.NoError(t, db.Model(owner).Update("active", false).Error)
	assert.Equal(t, fiber.StatusNotFound, get("/site/acme"), "inactive owner")
}
