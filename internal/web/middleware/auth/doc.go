// Package auth provides authentication middleware for the web application.
//
// The middleware resolves the session cookie into the signed in user, re-reads the user from
// the database on every request and stores it in fiber.Locals (see handler.CurrentUser).
// Requests without a valid session for an active user are redirected to the login page,
// signed in users visiting the login page are sent to the settings.
//
// Usage:
//
//	app.Use(auth.New(db, "/static", "/site/"))
package auth
