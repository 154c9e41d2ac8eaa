package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the path of a route group's own root.
	RouterRootPath = "/"

	// HomePath is where signed in users land.
	HomePath = "/settings/home-page"

	// LocalsUser is the fiber.Locals key holding the signed in *models.User.
	LocalsUser = "CurrentUser"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
