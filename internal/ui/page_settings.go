package ui

import (
	"strings"

	"dwex-demo/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func appearancePage(pc pageContext) Node {
	th := pc.s.Theme

	modes := make([]Node, 0, len(domain.ThemeModes))
	for _, m := range domain.ThemeModes {
		class := "choice"
		if th.Mode() == m {
			class += " selected"
		}
		modes = append(modes, postButton(pc.r, "/ui/theme/mode", titleCase(string(m)), themeIcon(m), class, hidden("mode", string(m))))
	}

	colors := make([]Node, 0, len(domain.ThemeColors))
	for _, c := range domain.ThemeColors {
		class := "choice swatch swatch-" + string(c)
		if th.Color() == c {
			class += " selected"
		}
		colors = append(colors, postButton(pc.r, "/ui/theme/color", titleCase(string(c)), "circle", class, hidden("color", string(c))))
	}

	effective := "Currently " + string(th.Effective())
	if th.Mode() == domain.ThemeSystem {
		effective += " (following your system)"
	}

	return Div(
		If(!pc.secondary, pageHeader("Appearance", "Customize theme and colors")),
		Div(Class(cardClass()),
			H3(Class("setting-label"), Text("Theme")),
			P(Class(mutedClass()), Text(effective)),
			Div(Class("choices"), Group(modes)),
		),
		Div(Class(cardClass()),
			H3(Class("setting-label"), Text("Color")),
			Div(Class("choices"), Group(colors)),
		),
	)
}

func accountPage(pc pageContext) Node {
	return Div(
		pageHeader("Account", "Manage your account details and security"),
		Div(Class(cardClass()),
			Dl(Class("details-list"),
				Dt(Text("Name")), Dd(Text(orDash(pc.profile.Name))),
				Dt(Text("Email")), Dd(Text(orDash(pc.profile.Email))),
				Dt(Text("Session")), Dd(Code(Text(pc.s.ID))),
			),
		),
	)
}

func notificationsPage(pc pageContext) Node {
	return Div(
		pageHeader("Notifications", "Configure notification preferences"),
		emptyStateCard("Notification settings will appear here."),
	)
}

func privacyPage(pc pageContext) Node {
	return Div(
		pageHeader("Privacy", "Control your privacy settings"),
		Div(Class(cardClass()),
			P(Text("Only your theme preference is stored, keyed by an anonymous browser id. Open tabs and split view layout live in memory and are dropped when the session expires.")),
			postButton(pc.r, "/ui/forget", "Forget this browser", "delete", secondaryButtonClass()),
		),
	)
}

func advancedPage(pc pageContext) Node {
	shortcuts := pc.s.Keys.All()
	rows := make([]Node, 0, len(shortcuts))
	for _, sc := range shortcuts {
		rows = append(rows, Tr(Td(Kbd(Text(sc.Combo()))), Td(Text(sc.Description)), Td(Code(Text(string(sc.Action))))))
	}
	tabsState := "disabled"
	if pc.s.Tabs.Enabled() {
		tabsState = "enabled"
	}
	return Div(
		pageHeader("Advanced", "Advanced configuration options"),
		Div(Class(cardClass()),
			H3(Class("setting-label"), Text("Keyboard shortcuts")),
			Table(Class("table"), THead(Tr(Th(Text("Keys")), Th(Text("Action")), Th(Text("Id")))), TBody(Group(rows))),
		),
		Div(Class(cardClass()),
			H3(Class("setting-label"), Text("Layout")),
			P(Class(mutedClass()), Text("Tabs are "+tabsState+".")),
			Div(Class("choices"),
				postButton(pc.r, "/ui/split/reset", "Reset split ratio", "fit_screen", secondaryButtonClass()),
				postButton(pc.r, "/ui/tabs/close-all", "Close all tabs", "tab_close", secondaryButtonClass()),
			),
		),
	)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
