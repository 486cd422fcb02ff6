package domain

// ShowOn restricts a workspace or nav item to a breakpoint.
type ShowOn string

const (
	ShowOnBoth    ShowOn = "both"
	ShowOnMobile  ShowOn = "mobile"
	ShowOnDesktop ShowOn = "desktop"
)

// Visible reports whether an item with this scope is shown at the given
// breakpoint. The empty value means both.
func (s ShowOn) Visible(mobile bool) bool {
	switch s {
	case "", ShowOnBoth:
		return true
	case ShowOnMobile:
		return mobile
	case ShowOnDesktop:
		return !mobile
	default:
		return false
	}
}

// Valid reports whether s is one of the known scopes (or empty).
func (s ShowOn) Valid() bool {
	switch s {
	case "", ShowOnBoth, ShowOnMobile, ShowOnDesktop:
		return true
	}
	return false
}

// NavItem is one entry of a workspace's side navigation. Section and divider
// items are grouping markers and carry no route.
type NavItem struct {
	Label   string `yaml:"label" json:"label"`
	Icon    string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Route   string `yaml:"route,omitempty" json:"route,omitempty"`
	Section bool   `yaml:"section,omitempty" json:"section,omitempty"`
	Divider bool   `yaml:"divider,omitempty" json:"divider,omitempty"`
	ShowOn  ShowOn `yaml:"show_on,omitempty" json:"show_on,omitempty"`
}

// Navigable reports whether the item points at a route.
func (n NavItem) Navigable() bool {
	return n.Route != "" && !n.Section && !n.Divider
}

// Workspace groups nav items under a switcher entry.
type Workspace struct {
	ID       string    `yaml:"id" json:"id"`
	Label    string    `yaml:"label" json:"label"`
	Icon     string    `yaml:"icon,omitempty" json:"icon,omitempty"`
	NavItems []NavItem `yaml:"nav" json:"nav"`
	ShowOn   ShowOn    `yaml:"show_on,omitempty" json:"show_on,omitempty"`
}

// Tab is an open tab. Identity is the route; ID always equals Route.
type Tab struct {
	ID     string
	Route  string
	Label  string
	Icon   string
	Pinned bool
}

// TabRouteInfo is the registry metadata used to materialize a tab.
type TabRouteInfo struct {
	Label string
	Icon  string
}

// ComponentRef names a renderable page. The UI layer maps refs to renderers.
type ComponentRef string

// SplitOrientation is the split-view layout direction.
type SplitOrientation string

const (
	// SplitVertical places panes side by side.
	SplitVertical SplitOrientation = "vertical"
	// SplitHorizontal stacks panes.
	SplitHorizontal SplitOrientation = "horizontal"
)

// ParseSplitOrientation maps a string to an orientation.
func ParseSplitOrientation(s string) (SplitOrientation, bool) {
	switch SplitOrientation(s) {
	case SplitVertical:
		return SplitVertical, true
	case SplitHorizontal:
		return SplitHorizontal, true
	}
	return "", false
}

// SidenavState is the desktop side navigation display state.
type SidenavState string

const (
	SidenavExpanded  SidenavState = "expanded"
	SidenavCompact   SidenavState = "compact"
	SidenavCollapsed SidenavState = "collapsed"
)

// ThemeMode is the user's light/dark preference.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// ThemeModes lists the modes in toggle order.
var ThemeModes = []ThemeMode{ThemeLight, ThemeDark, ThemeSystem}

// Valid reports whether m is a known mode.
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// ThemeColor is the accent palette.
type ThemeColor string

const (
	ColorViolet ThemeColor = "violet"
	ColorBlue   ThemeColor = "blue"
	ColorGreen  ThemeColor = "green"
	ColorRed    ThemeColor = "red"
	ColorOrange ThemeColor = "orange"
)

// ThemeColors lists the palette in display order.
var ThemeColors = []ThemeColor{ColorViolet, ColorBlue, ColorGreen, ColorRed, ColorOrange}

// Valid reports whether c is part of the palette.
func (c ThemeColor) Valid() bool {
	for _, known := range ThemeColors {
		if c == known {
			return true
		}
	}
	return false
}
