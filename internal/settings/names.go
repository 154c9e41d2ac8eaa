package settings

import "fmt"

// Group partitions settings into independent namespaces, one per admin form page.
type Group string

const (
	// GroupHomePage holds the public home page settings.
	GroupHomePage Group = "home_page"
	// GroupGeneral holds the site branding settings.
	GroupGeneral Group = "general"
)

// Name is the key of a single setting.
type Name string

const (
	// NameStatus toggles the public home page on or off.
	NameStatus Name = "status"
	// NameCompanyName is the company name shown on the home page.
	NameCompanyName Name = "company_name"
	// NameCompanyAddress is the postal address of the company.
	NameCompanyAddress Name = "company_address"
	// NameDescription is a short company description.
	NameDescription Name = "description"
	// NameInstagramLink is the Instagram profile URL.
	NameInstagramLink Name = "instagram_link"
	// NameFacebookLink is the Facebook profile URL.
	NameFacebookLink Name = "facebook_link"
	// NameTikTokLink is the TikTok profile URL.
	NameTikTokLink Name = "tiktok_link"
	// NameEmail is the public contact email address.
	NameEmail Name = "email"
	// NamePhoneNumber is the public contact phone number.
	NamePhoneNumber Name = "phone_number"
	// NameLogo references the uploaded site logo.
	NameLogo Name = "logo"
	// NameFavicon references the uploaded favicon.
	NameFavicon Name = "favicon"
)

// groups lists the valid groups in navigation order.
var groups = []Group{GroupHomePage, GroupGeneral} //nolint:gochecknoglobals

// groupOf maps every setting name to its group.
var groupOf = map[Name]Group{ //nolint:gochecknoglobals
	NameStatus:         GroupHomePage,
	NameCompanyName:    GroupHomePage,
	NameCompanyAddress: GroupHomePage,
	NameDescription:    GroupHomePage,
	NameInstagramLink:  GroupHomePage,
	NameFacebookLink:   GroupHomePage,
	NameTikTokLink:     GroupHomePage,
	NameEmail:          GroupHomePage,
	NamePhoneNumber:    GroupHomePage,

	NameLogo:    GroupGeneral,
	NameFavicon: GroupGeneral,
}

// GroupOf returns the group the setting belongs to.
func GroupOf(name Name) (Group, error) {
	g, ok := groupOf[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}

	return g, nil
}

// ParseName converts a raw key into a Name.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if _, err := GroupOf(n); err != nil {
		return "", err
	}

	return n, nil
}

// ParseGroup converts a raw group tag into a Group.
func ParseGroup(s string) (Group, error) {
	g := Group(s)
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGroup, s)
	}

	return g, nil
}

// Groups returns all groups in navigation order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)

	return out
}

// Valid reports whether g is a declared group.
func (g Group) Valid() bool {
	for _, known := range groups {
		if g == known {
			return true
		}
	}

	return false
}

// CheckMembership verifies that name is known and belongs to group.
// An unknown name yields ErrUnknownSetting, a name of another group a ValidationError.
func CheckMembership(group Group, name Name) error {
	if !group.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}

	actual, err := GroupOf(name)
	if err != nil {
		return err
	}

	if actual != group {
		return &ValidationError{Name: name, Tag: "group", Param: string(group), Value: string(actual)}
	}

	return nil
}
