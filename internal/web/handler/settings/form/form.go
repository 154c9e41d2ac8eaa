// Package form turns the settings schema into form view models and submitted forms back into payloads.
package form

import (
	"errors"
	"strings"

	"github.com/sitesettings/sitesettings/internal/settings"
)

// RemovePrefix prefixes the checkbox that clears a file field, e.g. "remove_logo".
const RemovePrefix = "remove_"

// FieldView is one input on a settings form.
type FieldView struct {
	settings.Field
	Value   string // current text value
	Checked bool   // current value of a boolean field
	URL     string // public URL of the current file of a file field
	Error   string
}

// InputType returns the HTML input type for single line fields.
func (f FieldView) InputType() string {
	switch f.Kind {
	case settings.KindURL:
		return "url"
	case settings.KindEmail:
		return "email"
	case settings.KindPhone:
		return "tel"
	case settings.KindBoolean:
		return "checkbox"
	case settings.KindFile:
		return "file"
	default:
		return "text"
	}
}

// IsTextArea reports whether the field is rendered as a textarea.
func (f FieldView) IsTextArea() bool {
	return f.Kind == settings.KindLongText
}

// IsFile reports whether the field is an upload.
func (f FieldView) IsFile() bool {
	return f.Kind == settings.KindFile
}

// IsBoolean reports whether the field is a toggle.
func (f FieldView) IsBoolean() bool {
	return f.Kind == settings.KindBoolean
}

// RemoveName is the name of the checkbox clearing a file field.
func (f FieldView) RemoveName() string {
	return RemovePrefix + string(f.Key)
}

// SectionView is a titled box of fields.
type SectionView struct {
	Title       string
	Description string
	Fields      []FieldView
}

// Form is the view model of one settings group.
type Form struct {
	Group    settings.Group
	Sections []SectionView
	errors   int
}

// HasErrors reports whether any field carries an error message.
func (f *Form) HasErrors() bool {
	return f.errors > 0
}

// Build creates the form of a group from the current values.
// messages maps field names to error messages; fileURL resolves file references (may be nil).
func Build(group settings.Group, values map[settings.Name]any, messages map[settings.Name]string,
	fileURL func(ref string) string,
) (*Form, error) {
	sections, err := settings.Sections(group)
	if err != nil {
		return nil, err
	}

	form := &Form{Group: group, Sections: make([]SectionView, 0, len(sections))}

	for _, s := range sections {
		sv := SectionView{Title: s.Title, Description: s.Description, Fields: make([]FieldView, 0, len(s.Fields))}

		for _, f := range s.Fields {
			fv := FieldView{Field: f, Error: messages[f.Key]}
			if fv.Error != "" {
				form.errors++
			}

			switch v := values[f.Key].(type) {
			case bool:
				fv.Checked = v
			case string:
				fv.Value = v
			}

			if f.Kind == settings.KindFile && fv.Value != "" && fileURL != nil {
				fv.URL = fileURL(fv.Value)
			}

			sv.Fields = append(sv.Fields, fv)
		}

		form.Sections = append(form.Sections, sv)
	}

	return form, nil
}

// Parse reads the submitted values of all non file fields of a group through value,
// usually fiber.Ctx.FormValue.
// Text is trimmed and empty text becomes nil; a checkbox is true when it was sent checked.
func Parse(group settings.Group, value func(key string) string) (map[settings.Name]any, error) {
	fields, err := settings.FieldsOf(group)
	if err != nil {
		return nil, err
	}

	out := make(map[settings.Name]any, len(fields))

	for _, f := range fields {
		raw := value(string(f.Key))

		switch f.Kind {
		case settings.KindFile:
			continue
		case settings.KindBoolean:
			out[f.Key] = Checked(raw)
		default:
			if s := strings.TrimSpace(raw); s != "" {
				out[f.Key] = s
			} else {
				out[f.Key] = nil
			}
		}
	}

	return out, nil
}

// Checked interprets a submitted checkbox value.
func Checked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// Messages maps validation failures to per field messages. Other errors yield nil.
func Messages(err error) map[settings.Name]string {
	var (
		many settings.ValidationErrors
		one  *settings.ValidationError
	)

	switch {
	case errors.As(err, &many):
		out := make(map[settings.Name]string, len(many))
		for name, ve := range many.ByName() {
			out[name] = ve.Message()
		}

		return out
	case errors.As(err, &one):
		return map[settings.Name]string{one.Name: one.Message()}
	default:
		return nil
	}
}
