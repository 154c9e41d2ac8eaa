package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesettings/sitesettings/internal/logger"
	adapter "github.com/sitesettings/sitesettings/internal/logger/adapter/fiber"
)

// accessLine is the JSON shape written per request.
type accessLine struct {
	IP     string `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
	User   string `json:"user"`
}

func consoleConfig() logger.Log {
	return logger.Log{
		EnableAccessLogToConsole: true,
		Console:                  logger.Console{Enabled: true},
	}
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name       string
		config     adapter.Config
		targetPath string
		expected   *accessLine
	}{
		{
			name:       "console disabled no output",
			targetPath: "/",
		},
		{
			name:       "root",
			config:     adapter.Config{Config: consoleConfig()},
			targetPath: "/",
			expected:   &accessLine{IP: "0.0.0.0", Status: 200, URI: "/", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "query string is kept",
			config:     adapter.Config{Config: consoleConfig()},
			targetPath: "/?test=123",
			expected:   &accessLine{IP: "0.0.0.0", Status: 200, URI: "/?test=123", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "unknown route",
			config:     adapter.Config{Config: consoleConfig()},
			targetPath: "/settings/nope",
			expected:   &accessLine{IP: "0.0.0.0", Status: 404, URI: "/settings/nope", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name: "signed in user",
			config: adapter.Config{
				Config: consoleConfig(),
				User:   func(*fiber.Ctx) string { return "admin" },
			},
			targetPath: "/",
			expected:   &accessLine{IP: "0.0.0.0", Status: 200, URI: "/", Method: fiber.MethodGet, Host: "example.com", User: "admin"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output := serve(t, tc.targetPath, tc.config)

			if tc.expected == nil {
				assert.Empty(t, output)

				return
			}

			require.NotEmpty(t, output)

			var got accessLine
			require.NoError(t, json.Unmarshal([]byte(output), &got))
			assert.Equal(t, *tc.expected, got)
		})
	}
}

func TestNew_CheckAlive(t *testing.T) {
	cfg := consoleConfig()
	cfg.DisableCheckAlive = true

	output := serve(t, "/checkalive", adapter.Config{Config: cfg, CheckAliveURI: "/checkalive"})
	assert.Empty(t, output)

	output = serve(t, "/", adapter.Config{Config: cfg, CheckAliveURI: "/checkalive"})
	assert.NotEmpty(t, output)
}

// serve runs one request through the middleware and returns what it wrote to stdout.
func serve(t *testing.T, targetPath string, config adapter.Config) string {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout, os.Stderr = w, w

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	app := fiber.New()
	app.Use(adapter.New(config))
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hello test")
	})
	app.Get("/checkalive", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	resp, testErr := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), -1)

	_ = w.Close()
	os.Stdout, os.Stderr = stdout, stderr

	require.NoError(t, testErr)
	require.NotNil(t, resp)

	return <-outC
}
