// Package settings declares the closed set of site settings, the group each one belongs to
// and the field constraints used to validate submitted values and to generate the forms.
//
// The declarations are static: they are built once at package initialisation and never change
// at runtime.
package settings
