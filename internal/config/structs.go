package config

import (
	"time"

	"github.com/sitesettings/sitesettings/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	Upload    Upload
	Admin     Admin
}

// DB holds the database configuration settings.
type DB struct {
	Engine   string // mysql, postgres or sqlite
	Host     string
	Port     int
	User     string
	Password string
	Name     string // database name, file path for sqlite
	Extras   string // appended to the DSN, e.g. "parseTime=true" or "sslmode=disable"
}

// Session settings.
type Session struct {
	ExpiryTime time.Duration
	Table      string // session table for the mysql and postgres storages
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic    bool   // enable static file browsing (for development purposes only)
	CleanPath       bool   // use clean path middleware to allow multi slash requests
	DisableRecover  bool   // disable recover middleware
	Port            int    // listening port for the webserver
	ShutDownTime    int    // seconds to wait for open requests on shutdown
	DrainTime       int    // seconds /checkalive reports 503 before the listener stops
	URL             string // public base url, used to build the site links
	CookieSecure    bool
	Session         Session
	BodyLimitMBytes int // request body limit, covers logo and favicon uploads
}

// Upload holds the local file store settings for logo and favicon.
type Upload struct {
	Path      string // directory files are written to
	URLPrefix string // route the directory is served under
	MaxSize   int64  // bytes per file
}

// Admin is the account created when the users table is empty.
type Admin struct {
	Username string
	Password string
	Email    string
}
