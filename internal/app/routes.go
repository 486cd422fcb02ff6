package app

import (
	"dwex-demo/internal/router"
	"dwex-demo/internal/ui"
)

// Routes returns the demo application's route table.
func Routes() router.Table {
	return router.Table{
		{Path: "", RedirectTo: "dashboard"},

		{Path: "dashboard", Title: "Dashboard", Component: ui.ComponentDashboard},
		{Path: "deals", Title: "Deals", Component: ui.ComponentDeals},
		{Path: "profile", Title: "Profile", Component: ui.ComponentProfile},
		{Path: "contacts", Title: "Contacts", Component: ui.ComponentContacts},
		{Path: "companies", Title: "Companies", Component: ui.ComponentCompanies},

		{Path: "settings", Children: []router.Route{
			{Path: "", RedirectTo: "appearance"},
			{Path: "appearance", Title: "Appearance", Component: ui.ComponentSettingsAppearance},
			{Path: "account", Title: "Account", Component: ui.ComponentSettingsAccount},
			{Path: "notifications", Title: "Notifications", Component: ui.ComponentSettingsNotification},
			{Path: "privacy", Title: "Privacy", Component: ui.ComponentSettingsPrivacy},
			{Path: "advanced", Title: "Advanced", Component: ui.ComponentSettingsAdvanced},
		}},

		{Path: "documents", Children: []router.Route{
			{Path: "", RedirectTo: "all"},
			{Path: "all", Title: "All Files", Component: ui.ComponentDocumentsAll},
			{Path: "templates", Title: "Templates", Component: ui.ComponentDocumentsTemplates},
			{Path: "shared", Title: "Shared with Me", Component: ui.ComponentDocumentsShared},
		}},

		{Path: "analytics", Children: []router.Route{
			{Path: "", RedirectTo: "overview"},
			{Path: "overview", Title: "Overview", Component: ui.ComponentAnalyticsOverview},
			{Path: "users", Title: "Team Analytics", Component: ui.ComponentAnalyticsUsers},
			{Path: "performance", Title: "Performance", Component: ui.ComponentAnalyticsPerformance},
		}},
	}
}
