package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool
	UseConsoleWriter bool // human readable output instead of JSON lines
}

// RollingFile describes one lumberjack managed log file.
type RollingFile struct {
	Name       string // file name inside LogFile.Path
	MaxSize    int    // megabytes
	MaxBackups int
	MaxAge     int // days
}

// LogFile implements a file based logger split by level.
type LogFile struct {
	Enabled bool
	Path    string

	Access RollingFile
	Error  RollingFile
	Info   RollingFile
	Trace  RollingFile
	Warn   RollingFile
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error

	// EnableAccessLogToConsole writes http access logs to stdout as well.
	// Has no effect while Console.Enabled is false.
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	AppName     string
	ServiceName string

	Console Console
	File    LogFile
}
