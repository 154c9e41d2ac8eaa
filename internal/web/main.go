// Package web assembles the fiber application: templates, static files, middleware and page handlers.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/config"
	fiberlogger "github.com/sitesettings/sitesettings/internal/logger/adapter/fiber"
	"github.com/sitesettings/sitesettings/internal/upload"
	"github.com/sitesettings/sitesettings/internal/web/handler"
	"github.com/sitesettings/sitesettings/internal/web/handler/login"
	"github.com/sitesettings/sitesettings/internal/web/handler/logout"
	"github.com/sitesettings/sitesettings/internal/web/handler/settings/general"
	"github.com/sitesettings/sitesettings/internal/web/handler/settings/homepage"
	"github.com/sitesettings/sitesettings/internal/web/handler/site"
	"github.com/sitesettings/sitesettings/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic and 503 while it drains.
	CheckAlivePath = "/checkalive"
	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"
	// StaticPath serves the embedded css and images.
	StaticPath = "/static"
)

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	alive atomic.Bool
}

// Start starts the web service on the given address and blocks until it is shut down.
func (s *Service) Start(addr string) error {
	s.alive.Store(true)

	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("fiber listen: %w", err)
	}

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown drains and stops the server.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	// let load balancers see the failing checkalive before the listener closes
	if drain := s.cfg.Webserver.DrainTime; drain > 0 {
		log.Info().Msgf("graceful shutdown: return 503 on %s for %d seconds", CheckAlivePath, drain)
		time.Sleep(time.Duration(drain) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.ShutdownWithTimeout(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// checkAlive reports whether the service accepts traffic.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// New creates the web service with all routes registered.
func New(cfg *config.Config, db *gorm.DB, files *upload.Local) (*Service, error) {
	if cfg == nil || db == nil || files == nil {
		return nil, handler.ErrNilDependency
	}

	app := fiber.New(fiber.Config{
		AppName:       cfg.Title,
		CaseSensitive: true,
		Immutable:     true,
		BodyLimit:     bodyLimit(cfg),
		Views:         newTemplateEngine(cfg),
	})

	service := &Service{App: app, cfg: cfg}

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
		User: func(c *fiber.Ctx) string {
			if u, ok := handler.CurrentUser(c); ok {
				return u.Username
			}

			return ""
		},
	}))

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(StaticPath, filesystem.New(filesystem.Config{
		Root:       http.FS(embeddedStaticFiles),
		PathPrefix: "static",
		Browse:     cfg.Webserver.BrowseStatic,
	}))

	app.Static(cfg.Upload.URLPrefix, files.Dir(), fiber.Static{Browse: false})

	app.Use(auth.New(db,
		StaticPath,
		cfg.Upload.URLPrefix,
		site.Prefix,
		logout.Path,
	))

	if err := login.Handler.Init(app, cfg, db); err != nil {
		return nil, err
	}

	logout.Handler.Init(app)

	if err := homepage.Handler.Init(app, cfg, db); err != nil {
		return nil, err
	}

	if err := general.Handler.Init(app, cfg, db, files); err != nil {
		return nil, err
	}

	if err := site.Handler.Init(app, cfg, db, files.URL); err != nil {
		return nil, err
	}

	app.Get(handler.RootPath, func(c *fiber.Ctx) error {
		return c.Redirect(handler.HomePath)
	})

	return service, nil
}

func bodyLimit(cfg *config.Config) int {
	if cfg.Webserver.BodyLimitMBytes > 0 {
		return cfg.Webserver.BodyLimitMBytes << 20 //nolint:mnd
	}

	return fiber.DefaultBodyLimit
}

// newTemplateEngine loads the embedded templates, or the working tree ones in dev mode.
func newTemplateEngine(cfg *config.Config) *html.Engine {
	engine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")

	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.Reload(true)

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("year", func() int {
		return time.Now().Year()
	})

	return engine
}
