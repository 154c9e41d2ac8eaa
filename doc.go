// Package main provides the entry point of the sitesettings admin panel.
// Each user signs in, edits the settings groups of their public home page
// (content, contact details, social links and branding uploads) and
// publishes the page under /site/<username>. Settings are persisted with
// gorm in MySQL, PostgreSQL or SQLite and served through a fiber web service.
package main
