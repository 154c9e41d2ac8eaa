package settings

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phonePattern is the character class accepted for phone numbers.
var phonePattern = regexp.MustCompile(`^[0-9\s\-+()]+$`) //nolint:gochecknoglobals

// validate is shared by all callers; validator.Validate is safe for concurrent use.
var validate = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// tag builds the validator tag for a text field.
func (f Field) tag() string {
	parts := []string{"omitempty"}
	if f.Required {
		parts[0] = "required"
	}

	switch f.Kind {
	case KindURL:
		parts = append(parts, "http_url")
	case KindEmail:
		parts = append(parts, "email")
	case KindPhone:
		parts = append(parts, "phone")
	case KindBoolean, KindShortText, KindLongText, KindFile:
	}

	if f.MaxLength > 0 {
		parts = append(parts, "max="+strconv.Itoa(f.MaxLength))
	}

	return strings.Join(parts, ",")
}

// Validate checks a payload against the constraints of the named setting.
// It returns ErrUnknownSetting for an undeclared name and a *ValidationError when the payload is rejected.
func Validate(name Name, payload any) error {
	f, err := FieldOf(name)
	if err != nil {
		return err
	}

	return f.Validate(payload)
}

// Validate checks a payload against the field constraints.
func (f Field) Validate(payload any) error {
	if f.Kind == KindBoolean {
		switch payload.(type) {
		case nil, bool:
			return nil
		default:
			return &ValidationError{Name: f.Key, Tag: "type", Param: string(f.Kind), Value: payload}
		}
	}

	var s string

	switch v := payload.(type) {
	case nil:
	case string:
		s = v
	default:
		return &ValidationError{Name: f.Key, Tag: "type", Param: string(f.Kind), Value: payload}
	}

	if err := validate.Var(s, f.tag()); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return &ValidationError{Name: f.Key, Tag: fieldErrors[0].Tag(), Param: fieldErrors[0].Param(), Value: payload}
		}

		return err
	}

	return nil
}

// ValidateGroup checks every entry against its field. Entries naming a setting of another group fail
// with a "group" ValidationError; unknown names abort with ErrUnknownSetting.
// All shape failures are collected and returned together as ValidationErrors.
func ValidateGroup(group Group, entries map[Name]any) error {
	fs, err := FieldsOf(group)
	if err != nil {
		return err
	}

	var failures ValidationErrors

	// unknown or foreign keys first, so a typo is never mistaken for a missing value
	for name := range entries {
		if err = CheckMembership(group, name); err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				return err
			}

			failures = append(failures, ve)
		}
	}

	for _, f := range fs {
		payload, ok := entries[f.Key]
		if !ok {
			continue
		}

		if err = f.Validate(payload); err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				return err
			}

			failures = append(failures, ve)
		}
	}

	if len(failures) > 0 {
		return failures
	}

	return nil
}
