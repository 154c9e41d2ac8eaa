// Package navigation provides the page title, breadcrumbs and menu shown by the layout.
package navigation

// SectionSettings is the section of all settings pages.
const SectionSettings = "settings"

// Item is a link in the menu or the breadcrumb trail.
type Item struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	PageTitle     string
	Breadcrumbs   []Item
	Menu          []Item
}

// settingsPages is the settings menu in display order.
var settingsPages = []struct { //nolint:gochecknoglobals
	page, title, url string
}{
	{"home-page", "Home Page", "/settings/home-page"},
	{"general", "General", "/settings/general"},
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]Item, 0),
	}
}

// ForSettings returns the context of a settings page: the settings menu and a two level breadcrumb.
func ForSettings(page string) *Context {
	c := NewContext("", SectionSettings, page).AddBreadcrumb("Settings", "#", false)

	for _, p := range settingsPages {
		c.AddMenuItem(p.title, p.url, p.page)

		if p.page == page {
			c.PageTitle = p.title
			c.AddBreadcrumb(p.title, p.url, true)
		}
	}

	return c
}

// AddBreadcrumb appends a breadcrumb item.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, Item{Title: title, URL: url, Active: active})

	return c
}

// AddMenuItem appends a menu link, marked active when page is the current page.
func (c *Context) AddMenuItem(title, url, page string) *Context {
	c.Menu = append(c.Menu, Item{Title: title, URL: url, Active: page == c.ActivePage})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
