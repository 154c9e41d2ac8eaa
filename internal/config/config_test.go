package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectConfigPath returns the etc directory of the repository.
func projectConfigPath(t *testing.T) string {
	t.Helper()

	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(projectRoot, "etc")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600))

	return dir
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.Equal(t, 8080, cfg.Webserver.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL)
	assert.Equal(t, time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, EngineSQLite, cfg.DB.Engine)
	assert.Equal(t, "sitesettings", cfg.Log.AppName)
	assert.Equal(t, "access.log", cfg.Log.File.Access.Name)
	assert.Equal(t, "/uploads", cfg.Upload.URLPrefix)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestReadConfig_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
[DB]
Engine = "sqlite"
Name = "test.db"

[Webserver]
Port = 8080
URL = "http://localhost:8080/"
`)

	t.Setenv("SITESETTINGS_WEBSERVER_PORT", "9090")
	t.Setenv(EnvConfigJSON, `{"Title": "From JSON", "Upload": {"MaxSize": 1024}}`)

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.Equal(t, "From JSON", cfg.Title)
	assert.Equal(t, int64(1024), cfg.Upload.MaxSize)
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL, "trailing slash is trimmed")
	assert.Equal(t, "test.db", cfg.DB.Name)
}

func TestReadConfig_BrokenJSON(t *testing.T) {
	dir := writeConfig(t, `
[DB]
Engine = "sqlite"

[Webserver]
Port = 8080
URL = "http://localhost:8080"
`)

	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(dir)
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	testCases := []struct {
		name          string
		config        Config
		expectedError error
	}{
		{
			name: "valid config",
			config: Config{
				DB:        DB{Engine: EngineMySQL},
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
			},
		},
		{
			name: "missing port",
			config: Config{
				DB:        DB{Engine: EngineMySQL},
				Webserver: Webserver{URL: "http://localhost:8080"},
			},
			expectedError: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing URL",
			config: Config{
				DB:        DB{Engine: EngineMySQL},
				Webserver: Webserver{Port: 8080},
			},
			expectedError: ErrEmptyURL,
		},
		{
			name: "unsupported engine",
			config: Config{
				DB:        DB{Engine: "oracle"},
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
			},
			expectedError: ErrUnsupportedDBEngine,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(&tc.config)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, defaultShutDownTime, tc.config.Webserver.ShutDownTime)
			assert.Equal(t, defaultSessionTTL, tc.config.Webserver.Session.ExpiryTime)
			assert.Equal(t, int64(defaultUploadSize), tc.config.Upload.MaxSize)
			assert.Equal(t, defaultUploadPrefix, tc.config.Upload.URLPrefix)
		})
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:     "Dump",
		DB:        DB{Engine: EngineSQLite, Name: "dump.db"},
		Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
	}

	out, err := DumpConfig(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Dump")
	assert.Contains(t, out, "[Webserver]")

	jsonOut, err := DumpConfigJSON(cfg)
	require.NoError(t, err)
	assert.Contains(t, jsonOut, `"Title": "Dump"`)
	assert.Contains(t, jsonOut, `"Port": 8080`)
}
