package ui

import (
	"net/http"
	"net/url"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/session"
	"dwex-demo/internal/workspace"

	. "maragu.dev/gomponents"
)

// Page components addressable from the route table.
const (
	ComponentDashboard            domain.ComponentRef = "dashboard"
	ComponentDeals                domain.ComponentRef = "deals"
	ComponentProfile              domain.ComponentRef = "profile"
	ComponentContacts             domain.ComponentRef = "contacts"
	ComponentCompanies            domain.ComponentRef = "companies"
	ComponentDocumentsAll         domain.ComponentRef = "documents-all"
	ComponentDocumentsTemplates   domain.ComponentRef = "documents-templates"
	ComponentDocumentsShared      domain.ComponentRef = "documents-shared"
	ComponentAnalyticsOverview    domain.ComponentRef = "analytics-overview"
	ComponentAnalyticsUsers       domain.ComponentRef = "analytics-users"
	ComponentAnalyticsPerformance domain.ComponentRef = "analytics-performance"
	ComponentSettingsAppearance   domain.ComponentRef = "settings-appearance"
	ComponentSettingsAccount      domain.ComponentRef = "settings-account"
	ComponentSettingsNotification domain.ComponentRef = "settings-notifications"
	ComponentSettingsPrivacy      domain.ComponentRef = "settings-privacy"
	ComponentSettingsAdvanced     domain.ComponentRef = "settings-advanced"
)

// pageContext is what a page renderer may read. It is built under the
// session lock and must not escape the render call.
type pageContext struct {
	r       *http.Request
	s       *session.Session
	profile workspace.Profile
	path    string
	query   url.Values
	// secondary is set when rendering into the split pane.
	secondary bool
}

type pageRenderer func(pc pageContext) Node

var pageRenderers = map[domain.ComponentRef]pageRenderer{
	ComponentDashboard:            dashboardPage,
	ComponentDeals:                dealsPage,
	ComponentProfile:              profilePage,
	ComponentContacts:             contactsPage,
	ComponentCompanies:            companiesPage,
	ComponentDocumentsAll:         allFilesPage,
	ComponentDocumentsTemplates:   templatesPage,
	ComponentDocumentsShared:      sharedDocsPage,
	ComponentAnalyticsOverview:    analyticsOverviewPage,
	ComponentAnalyticsUsers:       analyticsUsersPage,
	ComponentAnalyticsPerformance: analyticsPerformancePage,
	ComponentSettingsAppearance:   appearancePage,
	ComponentSettingsAccount:      accountPage,
	ComponentSettingsNotification: notificationsPage,
	ComponentSettingsPrivacy:      privacyPage,
	ComponentSettingsAdvanced:     advancedPage,
}

// KnownComponent reports whether ref has a renderer.
func KnownComponent(ref domain.ComponentRef) bool {
	_, ok := pageRenderers[ref]
	return ok
}

func renderComponent(ref domain.ComponentRef, pc pageContext) Node {
	render, ok := pageRenderers[ref]
	if !ok {
		return notFoundContent(pc.path)
	}
	return render(pc)
}
