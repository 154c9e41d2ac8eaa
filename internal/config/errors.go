package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnsupportedDBEngine error if config db.engine is not mysql, postgres or sqlite.
	ErrUnsupportedDBEngine = errors.New("config db.engine must be mysql, postgres or sqlite")
)
