package ui

import (
	"encoding/json"
	"fmt"
	"strconv"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/router"
	"dwex-demo/internal/shell"
	"dwex-demo/internal/shell/splitview"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const appName = "dwex"

// shellPage renders the full chrome around the page for match. Call it under
// the session lock.
func shellPage(pc pageContext, match router.Match, found bool) Node {
	s := pc.s
	title := match.Title
	var content Node
	if found {
		content = renderComponent(match.Component, pc)
	} else {
		title = "Not Found"
		content = notFoundContent(pc.path)
	}
	if title == "" {
		title = appName
	}
	applied := s.Theme.Applied()

	shortcuts, _ := json.Marshal(s.Keys.All())

	shellClass := "shell sidenav-" + string(s.Shell.SidenavState())
	if s.Shell.IsMobile() {
		shellClass += " is-mobile"
		if s.Shell.MobileNavOpen() {
			shellClass += " mobile-nav-open"
		}
	}

	return Doctype(HTML(
		Lang("en"),
		Class(applied.Class()),
		Style("color-scheme: "+applied.ColorScheme),
		Data("theme-mode", string(s.Theme.Mode())),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | "+appName)),
			csrfMeta(pc.r),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Material+Symbols+Outlined:opsz,wght,FILL,GRAD@20..48,100..700,0..1,-50..200")),
			Link(Rel("stylesheet"), Href(uiStylesheetHref())),
			Script(
				Type("module"),
				Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
			Script(Src(uiScriptHref("shell.js")), Defer()),
		),
		Body(
			Data("mobile", strconv.FormatBool(s.Shell.IsMobile())),
			Data("system-dark", strconv.FormatBool(s.Theme.SystemDark())),
			Data("online", strconv.FormatBool(s.Shell.IsOnline())),
			Data("mobile-query", shell.MobileBreakpoint),
			Data("shortcuts", string(shortcuts)),
			Div(
				Class(shellClass),
				offlineBanner(s.Shell.IsOnline()),
				toolbar(pc),
				Div(
					Class("shell-body"),
					sidenav(pc),
					If(s.Shell.IsMobile() && s.Shell.MobileNavOpen(), mobileBackdrop(pc)),
					Main(
						Class("shell-main"),
						tabBar(pc),
						splitContainer(pc, content),
					),
				),
			),
		),
	))
}

// offlineBanner is toggled by the client as connectivity changes; the server
// renders the last status it was told.
func offlineBanner(online bool) Node {
	return Div(
		ID("offline-banner"),
		Class("offline-banner"),
		Role("status"),
		If(online, Attr("hidden", "")),
		icon("cloud_off"),
		Span(Text("You are offline. Actions will not reach the server until the connection returns.")),
	)
}

func toolbar(pc pageContext) Node {
	s := pc.s
	settingsClass := iconButtonClass()
	settingsLabel := "Open settings"
	if s.Shell.IsSettingsActive() {
		settingsClass += " active"
		settingsLabel = "Close settings"
	}
	return Header(
		Class("toolbar"),
		postButton(pc.r, "/ui/shell/sidenav", "Toggle navigation", "menu", iconButtonClass()),
		A(Href("/"), Class("brand"), Text(appName)),
		workspaceSwitcher(pc),
		Div(Class("toolbar-spacer")),
		postButton(pc.r, "/ui/theme/toggle", "Theme: "+string(s.Theme.Mode()), themeIcon(s.Theme.Mode()), iconButtonClass()),
		postButton(pc.r, "/ui/shell/settings", settingsLabel, "settings", settingsClass),
		profileMenu(pc),
	)
}

func themeIcon(mode domain.ThemeMode) string {
	switch mode {
	case domain.ThemeLight:
		return "light_mode"
	case domain.ThemeDark:
		return "dark_mode"
	default:
		return "brightness_auto"
	}
}

func workspaceSwitcher(pc pageContext) Node {
	s := pc.s
	visible := s.Shell.VisibleWorkspaces()
	if len(visible) < 2 {
		return nil
	}
	buttons := make([]Node, 0, len(visible))
	for _, ws := range visible {
		class := "workspace-btn"
		if ws.ID == s.Shell.ActiveWorkspaceID() {
			class += " active"
		}
		buttons = append(buttons, postButton(pc.r, "/ui/shell/workspace", ws.Label, ws.Icon, class, hidden("id", ws.ID)))
	}
	return Nav(Class("workspace-switcher"), Attr("aria-label", "Workspaces"), Group(buttons))
}

func profileMenu(pc pageContext) Node {
	name := pc.profile.Name
	if name == "" {
		name = "Guest"
	}
	return Details(
		Class("dropdown profile-menu"),
		Summary(Class(iconButtonClass()), Title(name), Attr("aria-label", "Account menu"), avatar(name)),
		Div(
			Class("dropdown-menu dropdown-menu-right"),
			Div(Class("dropdown-header"), Strong(Text(name)), If(pc.profile.Email != "", Div(Class(mutedClass()), Text(pc.profile.Email)))),
			menuPost(pc.r, "/ui/shell/profile", "Profile", "person", false),
			menuPost(pc.r, "/ui/shell/settings", "Settings", "settings", false),
			menuDivider(),
			menuPost(pc.r, "/ui/signout", "Sign out", "logout", true),
		),
	)
}

func sidenav(pc pageContext) Node {
	s := pc.s
	width := s.Shell.SidenavWidth()
	compact := s.Shell.ShowCompact() && s.Shell.SidenavState() == domain.SidenavCompact
	items := s.Shell.CurrentNavItems()

	rows := make([]Node, 0, len(items)+1)
	if s.Shell.IsSettingsActive() {
		rows = append(rows, Div(Class("nav-heading"), Text("Settings")))
	}
	for _, item := range items {
		rows = append(rows, navRow(pc, item, compact))
	}

	style := "width:" + strconv.Itoa(width) + "px"
	if s.Shell.IsMobile() {
		style = ""
	}
	return Aside(
		Class("sidenav"),
		If(style != "", Style(style)),
		If(width == 0 && !s.Shell.IsMobile(), Attr("hidden", "")),
		Nav(Attr("aria-label", "Section navigation"), Group(rows)),
	)
}

func navRow(pc pageContext, item domain.NavItem, compact bool) Node {
	if item.Section {
		return Group([]Node{
			If(item.Divider, Hr(Class("nav-divider"))),
			If(!compact && item.Label != "", Div(Class("nav-section"), Text(item.Label))),
		})
	}
	if !item.Navigable() {
		return Div(Class("nav-label"), icon(item.Icon), If(!compact, Span(Text(item.Label))))
	}
	class := "nav-link"
	if pc.s.Shell.IsActive(item.Route) {
		class += " active"
	}
	return Div(
		Class("nav-row"),
		A(
			Href(item.Route),
			Class(class),
			Title(item.Label),
			Data("nav-route", item.Route),
			icon(item.Icon),
			If(!compact, Span(Class("nav-text"), Text(item.Label))),
		),
		If(!compact, actionMenu("More options for "+item.Label, "more_vert",
			menuPost(pc.r, "/ui/split/open", "Open in split view", "vertical_split", false, hidden("route", item.Route), hidden("orientation", string(domain.SplitVertical))),
			menuPost(pc.r, "/ui/split/open", "Open below", "horizontal_split", false, hidden("route", item.Route), hidden("orientation", string(domain.SplitHorizontal))),
		)),
	)
}

func mobileBackdrop(pc pageContext) Node {
	return Form(
		Method("post"),
		Action("/ui/shell/mobile-nav/close"),
		Class("mobile-backdrop"),
		csrfField(pc.r),
		Button(Type("submit"), Class("backdrop-btn"), Attr("aria-label", "Close navigation")),
	)
}

func tabBar(pc pageContext) Node {
	t := pc.s.Tabs
	if !t.Enabled() || len(t.Tabs()) == 0 {
		return nil
	}
	pinned := t.PinnedTabs()
	unpinned := t.UnpinnedTabs()
	visible, overflow := unpinned, []domain.Tab(nil)
	if limit := t.MaxVisibleTabs(); len(unpinned) > limit {
		visible, overflow = unpinned[:limit], unpinned[limit:]
	}

	nodes := make([]Node, 0, len(pinned)+len(visible)+1)
	for i, tab := range pinned {
		nodes = append(nodes, tabItem(pc, tab, "pinned", i, len(pinned)))
	}
	for i, tab := range visible {
		nodes = append(nodes, tabItem(pc, tab, "unpinned", i, len(unpinned)))
	}
	if len(overflow) > 0 {
		links := make([]Node, 0, len(overflow))
		for _, tab := range overflow {
			links = append(links, A(Href(tab.Route), Class("dropdown-item"), icon(tab.Icon), Span(Text(tab.Label))))
		}
		nodes = append(nodes, Details(
			Class("dropdown tab-overflow"),
			Summary(Class(secondaryButtonClass()), Text(fmt.Sprintf("+%d", len(overflow)))),
			Div(Class("dropdown-menu dropdown-menu-right"), Group(links)),
		))
	}
	return Nav(Class("tab-bar"), Attr("aria-label", "Open tabs"), Role("tablist"), Group(nodes))
}

func tabItem(pc pageContext, tab domain.Tab, group string, index, groupLen int) Node {
	active := pc.s.Tabs.ActiveRoute() == tab.Route
	class := "tab"
	if active {
		class += " active"
	}
	if tab.Pinned {
		class += " pinned"
	}
	route := hidden("route", tab.Route)
	reorderAction := "/ui/tabs/reorder"

	menu := []Node{
		menuPost(pc.r, "/ui/tabs/pin", pinLabel(tab.Pinned), "push_pin", false, route),
		menuPost(pc.r, "/ui/split/open", "Open in split view", "vertical_split", false, route),
	}
	if index > 0 {
		menu = append(menu, menuPost(pc.r, reorderAction, "Move left", "arrow_back", false,
			hidden("group", group), hidden("from", strconv.Itoa(index)), hidden("to", strconv.Itoa(index-1))))
	}
	if index < groupLen-1 {
		menu = append(menu, menuPost(pc.r, reorderAction, "Move right", "arrow_forward", false,
			hidden("group", group), hidden("from", strconv.Itoa(index)), hidden("to", strconv.Itoa(index+1))))
	}
	menu = append(menu, menuDivider())
	if !tab.Pinned {
		menu = append(menu, menuPost(pc.r, "/ui/tabs/close", "Close", "close", false, route))
	}
	menu = append(menu,
		menuPost(pc.r, "/ui/tabs/close-others", "Close others", "tab_close", false, route),
		menuPost(pc.r, "/ui/tabs/close-right", "Close to the right", "tab_close_right", false, route),
		menuPost(pc.r, "/ui/tabs/close-all", "Close all", "close_fullscreen", true),
	)

	return Div(
		Class(class),
		Role("tab"),
		Attr("aria-selected", strconv.FormatBool(active)),
		Attr("draggable", "true"),
		Data("tab-group", group),
		Data("tab-index", strconv.Itoa(index)),
		A(Href(tab.Route), Class("tab-link"), Title(tab.Label), icon(tab.Icon), If(!tab.Pinned, Span(Class("tab-label"), Text(tab.Label)))),
		If(!tab.Pinned, postButton(pc.r, "/ui/tabs/close", "Close "+tab.Label, "close", "btn-icon tab-close", route)),
		actionMenu("Tab actions", "expand_more", menu...),
	)
}

func pinLabel(pinned bool) string {
	if pinned {
		return "Unpin"
	}
	return "Pin"
}

func splitContainer(pc pageContext, content Node) Node {
	primary := Section(Class("pane pane-primary"), content)
	split := pc.s.Split.State()
	if !split.Active {
		return Div(Class("split"), primary)
	}

	cursor := splitview.CursorColResize
	next := "Stack panes"
	if split.Orientation == domain.SplitHorizontal {
		cursor = splitview.CursorRowResize
		next = "Place panes side by side"
	}
	secondary := pageContext{r: pc.r, s: pc.s, profile: pc.profile, path: split.Path, secondary: true}
	title := split.Title
	if title == "" {
		title = "Split view"
	}

	return Div(
		ID("split"),
		Class("split split-active split-"+string(split.Orientation)),
		Style(fmt.Sprintf("--split-ratio:%.2f%%", split.Ratio)),
		Data("orientation", string(split.Orientation)),
		primary,
		Div(
			Class("split-divider"),
			Role("separator"),
			Attr("tabindex", "0"),
			Attr("aria-orientation", string(split.Orientation)),
			Attr("aria-valuemin", strconv.FormatFloat(splitview.MinRatio, 'f', 0, 64)),
			Attr("aria-valuemax", strconv.FormatFloat(splitview.MaxRatio, 'f', 0, 64)),
			Attr("aria-valuenow", strconv.FormatFloat(split.Ratio, 'f', 0, 64)),
			Data("cursor", cursor),
			Data("reset-action", "/ui/split/reset"),
			Title("Drag to resize, double-click to reset"),
		),
		Section(
			Class("pane pane-secondary"),
			Div(
				Class("pane-header"),
				Span(Class("pane-title"), Text(title)),
				postButton(pc.r, "/ui/split/toggle-orientation", next, "swap_horiz", iconButtonClass()),
				postButton(pc.r, "/ui/split/reset", "Reset size", "fit_screen", iconButtonClass()),
				postButton(pc.r, "/ui/split/close", "Close split view", "close", iconButtonClass()),
			),
			Div(Class("pane-body"), renderComponent(split.Component, secondary)),
		),
	)
}

func notFoundContent(path string) Node {
	return Div(
		pageHeader("Page not found", "Nothing lives at "+path+"."),
		Div(Class(cardClass("blankslate")), A(Href("/"), Class(primaryButtonClass()), Text("Back to dashboard"))),
	)
}

// errorPage is rendered outside a session, so it carries no chrome.
func errorPage(title, message string) Node {
	return Doctype(HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | "+appName)),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("stylesheet"), Href(uiStylesheetHref())),
		),
		Body(
			Main(
				Class("layout"),
				H1(Class("page-title"), Text(title)),
				P(Text(message)),
				P(A(Href("/"), Text("Back to dashboard"))),
			),
		),
	))
}
