// Package sitepage reads the settings of an owner into the typed content of the public home page.
package sitepage

import (
	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/db/controller/setting"
	"github.com/sitesettings/sitesettings/internal/settings"
)

type (
	// Content is everything the public home page of one owner shows.
	Content struct {
		Status         bool
		CompanyName    string
		CompanyAddress string
		Description    string
		InstagramLink  string
		FacebookLink   string
		TikTokLink     string
		Email          string
		PhoneNumber    string
		Logo           string // file reference inside the upload store
		Favicon        string // file reference inside the upload store
	}
)

// Load reads both setting groups of the owner.
func (c *Content) Load(db *gorm.DB, ownerID uint64) error {
	homePage, err := setting.LoadPayloads(db, ownerID, settings.GroupHomePage)
	if err != nil {
		return err
	}

	general, err := setting.LoadPayloads(db, ownerID, settings.GroupGeneral)
	if err != nil {
		return err
	}

	*c = FromHomePage(homePage)
	c.Logo = text(general, settings.NameLogo)
	c.Favicon = text(general, settings.NameFavicon)

	return nil
}

// FromHomePage builds the content of the home page group values alone, e.g. for a preview
// of values not stored yet. Branding stays empty.
func FromHomePage(values map[settings.Name]any) Content {
	c := Content{
		CompanyName:    text(values, settings.NameCompanyName),
		CompanyAddress: text(values, settings.NameCompanyAddress),
		Description:    text(values, settings.NameDescription),
		InstagramLink:  text(values, settings.NameInstagramLink),
		FacebookLink:   text(values, settings.NameFacebookLink),
		TikTokLink:     text(values, settings.NameTikTokLink),
		Email:          text(values, settings.NameEmail),
		PhoneNumber:    text(values, settings.NamePhoneNumber),
	}
	c.Status, _ = values[settings.NameStatus].(bool)

	return c
}

// Published reports whether the page may be shown: it is switched on and has a company name.
func (c *Content) Published() bool {
	return c.Status && c.CompanyName != ""
}

// HasSocialLinks reports whether any social media link is set.
func (c *Content) HasSocialLinks() bool {
	return c.InstagramLink != "" || c.FacebookLink != "" || c.TikTokLink != ""
}

func text(values map[settings.Name]any, name settings.Name) string {
	s, _ := values[name].(string)

	return s
}
