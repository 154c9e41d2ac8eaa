package settings

import "fmt"

// Kind is the data kind of a field; it selects the form widget and the validation rule.
type Kind string

const (
	// KindBoolean is an on/off toggle.
	KindBoolean Kind = "boolean"
	// KindShortText is a single line text input.
	KindShortText Kind = "short_text"
	// KindLongText is a multi line text area.
	KindLongText Kind = "long_text"
	// KindURL is a text input holding an absolute URL.
	KindURL Kind = "url"
	// KindEmail is a text input holding an email address.
	KindEmail Kind = "email"
	// KindPhone is a text input holding a phone number.
	KindPhone Kind = "phone"
	// KindFile is a reference to an uploaded file.
	KindFile Kind = "file"
)

// Field declares a single setting as it appears on its form.
type Field struct {
	Key         Name
	Label       string
	Kind        Kind
	Required    bool
	MaxLength   int // 0 means no limit
	Placeholder string
	HelperText  string
	Section     string
	Default     any
}

// IsText reports whether the field holds a string payload.
func (f Field) IsText() bool {
	return f.Kind != KindBoolean
}

// Section groups fields under a titled box on the form.
type Section struct {
	Title       string
	Description string
	Fields      []Field
}

const (
	sectionStatus   = "Homepage Status"
	sectionCompany  = "Company"
	sectionSocial   = "Social Media"
	sectionContact  = "Contact"
	sectionBranding = "Branding"
)

type sectionDecl struct {
	title       string
	description string
}

// sections lists the form sections of every group in display order.
var sections = map[Group][]sectionDecl{ //nolint:gochecknoglobals
	GroupHomePage: {
		{sectionStatus, "Use this toggle to enable or disable the homepage."},
		{sectionCompany, "Basic information about your company that will appear on the home page."},
		{sectionSocial, "Links to your social media profiles that will be shown on your page."},
		{sectionContact, "Provide your preferred contact details for customers to reach you."},
	},
	GroupGeneral: {
		{sectionBranding, "Upload and manage the visual identity for your site."},
	},
}

// fields declares the fields of every group in form order.
var fields = map[Group][]Field{ //nolint:gochecknoglobals
	GroupHomePage: {
		{
			Key: NameStatus, Label: "Status", Kind: KindBoolean,
			Section: sectionStatus, Default: false,
		},
		{
			Key: NameCompanyName, Label: "Name", Kind: KindShortText, Required: true, MaxLength: 255,
			Placeholder: "Example Corporation LTD", Section: sectionCompany,
		},
		{
			Key: NameCompanyAddress, Label: "Address", Kind: KindLongText, MaxLength: 256,
			Placeholder: "123 Main Street, Springfield, USA", Section: sectionCompany,
		},
		{
			Key: NameDescription, Label: "Description", Kind: KindLongText, MaxLength: 256,
			Placeholder: "Leading provider of industrial solutions since 1998", Section: sectionCompany,
		},
		{
			Key: NameInstagramLink, Label: "Instagram", Kind: KindURL,
			Placeholder: "https://www.instagram.com/username", Section: sectionSocial,
		},
		{
			Key: NameFacebookLink, Label: "Facebook", Kind: KindURL,
			Placeholder: "https://www.facebook.com/username", Section: sectionSocial,
		},
		{
			Key: NameTikTokLink, Label: "TikTok", Kind: KindURL,
			Placeholder: "https://www.tiktok.com/username", Section: sectionSocial,
		},
		{
			Key: NameEmail, Label: "Email", Kind: KindEmail, MaxLength: 255,
			Placeholder: "example@gmail.com", Section: sectionContact,
		},
		{
			Key: NamePhoneNumber, Label: "Phone number", Kind: KindPhone, MaxLength: 255,
			Placeholder: "+40760123456", Section: sectionContact,
		},
	},
	GroupGeneral: {
		{
			Key: NameLogo, Label: "Logo", Kind: KindFile, MaxLength: 255, Section: sectionBranding,
			HelperText: "Main logo shown in navigation, login, and emails. " +
				"Use a transparent PNG or SVG for best results.",
		},
		{
			Key: NameFavicon, Label: "Favicon", Kind: KindFile, MaxLength: 255, Section: sectionBranding,
			HelperText: "Small icon for browser tabs and bookmarks. Recommended size: 32x32 or 64x64 pixels.",
		},
	},
}

// fieldByName indexes every declared field.
var fieldByName = indexFields() //nolint:gochecknoglobals

func indexFields() map[Name]Field {
	out := make(map[Name]Field, len(groupOf))
	for _, fs := range fields {
		for _, f := range fs {
			out[f.Key] = f
		}
	}

	return out
}

// FieldsOf returns the field declarations of a group in form order.
// The returned slice is a copy and may be modified by the caller.
func FieldsOf(group Group) ([]Field, error) {
	fs, ok := fields[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}

	out := make([]Field, len(fs))
	copy(out, fs)

	return out, nil
}

// FieldOf returns the declaration of a single setting.
func FieldOf(name Name) (Field, error) {
	f, ok := fieldByName[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}

	return f, nil
}

// Sections returns the form sections of a group with their fields, in display order.
func Sections(group Group) ([]Section, error) {
	fs, err := FieldsOf(group)
	if err != nil {
		return nil, err
	}

	decls := sections[group]
	out := make([]Section, 0, len(decls))

	for _, d := range decls {
		s := Section{Title: d.title, Description: d.description}

		for _, f := range fs {
			if f.Section == d.title {
				s.Fields = append(s.Fields, f)
			}
		}

		out = append(out, s)
	}

	return out, nil
}

// Defaults returns a copy of values where every field of the group missing from values
// is set to its declared default (nil when the field declares none).
func Defaults(group Group, values map[Name]any) (map[Name]any, error) {
	fs, err := FieldsOf(group)
	if err != nil {
		return nil, err
	}

	out := make(map[Name]any, len(fs))
	for k, v := range values {
		out[k] = v
	}

	for _, f := range fs {
		if v, ok := out[f.Key]; !ok || v == nil {
			out[f.Key] = f.Default
		}
	}

	return out, nil
}
