package ui

import (
	"strconv"

	"dwex-demo/internal/demo"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

func dashboardPage(pc pageContext) Node {
	greeting := "Welcome back"
	if pc.profile.Name != "" {
		greeting += ", " + pc.profile.Name
	}

	deals := make([]Node, 0, 6)
	for _, stage := range demo.Pipeline() {
		for _, d := range stage.Deals {
			if len(deals) == 6 {
				break
			}
			if d.DaysInStage > 7 {
				continue
			}
			deals = append(deals, Tr(
				Td(Strong(Text(d.Name)), Div(Class(mutedClass()), Text(d.Company))),
				Td(Text(demo.FormatMoney(d.Value))),
				Td(statusLabel(stage.Label, toneFor(stage.Label))),
				Td(Class(mutedClass()), Text(pluralize(d.DaysInStage, "day", "days")+" in stage")),
			))
		}
	}

	activities := make([]Node, 0, 6)
	for _, a := range demo.RecentActivities() {
		activities = append(activities, Li(Class("activity"), icon(a.Icon), Div(P(Text(a.Text)), Span(Class(mutedClass()), Text(a.When)))))
	}

	tasks := make([]Node, 0, 6)
	for _, t := range demo.Tasks() {
		class := "task"
		if t.Done {
			class += " done"
		}
		if t.Overdue {
			class += " overdue"
		}
		tasks = append(tasks, Li(Class(class),
			icon(taskIcon(t.Done)),
			Div(Text(t.Title), Div(Class(mutedClass()), Text(t.Due))),
			statusLabel(t.Priority, toneFor(t.Priority)),
		))
	}

	return Div(
		pageHeader("Dashboard", greeting+". Here is your pipeline today."),
		kpiGrid(demo.DashboardKPIs()),
		Div(
			Class("grid-2"),
			Div(Class(cardClass()),
				H2(Class("card-title"), Text("Recent deals")),
				Table(Class("table"), THead(Tr(Th(Text("Deal")), Th(Text("Value")), Th(Text("Stage")), Th(Text("Age")))), TBody(Group(deals))),
			),
			Div(Class(cardClass()),
				H2(Class("card-title"), Text("Activity")),
				Ul(Class("activity-list"), Group(activities)),
			),
		),
		Div(Class(cardClass()),
			H2(Class("card-title"), Text("Tasks")),
			Ul(Class("task-list"), Group(tasks)),
		),
	)
}

func taskIcon(done bool) string {
	if done {
		return "check_circle"
	}
	return "radio_button_unchecked"
}

func dealsPage(pc pageContext) Node {
	stages := demo.Pipeline()
	columns := make([]Node, 0, len(stages))
	for _, stage := range stages {
		cards := make([]Node, 0, len(stage.Deals))
		for _, d := range stage.Deals {
			cards = append(cards, Div(
				Class("deal-card"),
				Strong(Text(d.Name)),
				Div(Class(mutedClass()), Text(d.Company)),
				Div(Class("deal-meta"),
					Span(Class("deal-value"), Text(demo.FormatMoney(d.Value))),
					Span(Class(mutedClass()), Text(strconv.Itoa(d.Probability)+"%")),
				),
				Div(Class("deal-owner"), avatar(d.Owner), Span(Class(mutedClass()), Text(d.Owner))),
			))
		}
		columns = append(columns, Section(
			Class("board-column"),
			Div(Class("board-column-header"),
				Span(Class("stage-dot"), Style("background:"+stage.Color)),
				Strong(Text(stage.Label)),
				Span(Class("counter"), Text(strconv.Itoa(len(stage.Deals)))),
				Span(Class(mutedClass()), Text(demo.FormatMoney(stage.Total()))),
			),
			Group(cards),
		))
	}
	return Div(
		pageHeader("Deals", demo.PipelineSummary(stages)),
		Div(Class("board"), Group(columns)),
	)
}

func profilePage(pc pageContext) Node {
	name := pc.profile.Name
	if name == "" {
		name = "Guest"
	}
	return Div(
		pageHeader("Profile", "Your account and the contacts you own."),
		Div(Class(cardClass("profile-card")),
			avatar(name),
			Div(H2(Class("card-title"), Text(name)), If(pc.profile.Email != "", P(Class(mutedClass()), Text(pc.profile.Email)))),
		),
		contactsTable(pc),
	)
}

func contactsPage(pc pageContext) Node {
	counts := demo.CountByStatus(demo.Contacts())
	return Div(
		pageHeader("Contacts", strconv.Itoa(counts["Active"])+" active, "+strconv.Itoa(counts["Lead"])+" leads, "+strconv.Itoa(counts["Inactive"])+" inactive"),
		contactsTable(pc),
	)
}

func contactsTable(pc pageContext) Node {
	q := pc.query.Get("q")
	contacts := demo.SearchContacts(demo.Contacts(), q)
	if len(contacts) == 0 {
		return Group([]Node{quickFilterCard("Search contacts", q), emptyStateCard("No contacts match your search.")})
	}
	rows := make([]Node, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, Tr(
			data.Show(containsExpr(c.Name, c.Company, c.Role)),
			Td(Div(Class("cell-with-avatar"), avatar(c.Name), Div(Strong(Text(c.Name)), Div(Class(mutedClass()), Text(c.Role))))),
			Td(Text(c.Company)),
			Td(A(Href("mailto:"+c.Email), Text(c.Email)), Div(Class(mutedClass()), Text(c.Phone))),
			Td(statusLabel(c.Status, toneFor(c.Status))),
			Td(Text(strconv.Itoa(c.Deals))),
			Td(Text(c.Value)),
		))
	}
	return Group([]Node{
		quickFilterCard("Search contacts", q),
		Div(Class(cardClass("table-card")),
			Table(Class("table"),
				THead(Tr(Th(Text("Name")), Th(Text("Company")), Th(Text("Contact")), Th(Text("Status")), Th(Text("Deals")), Th(Text("Value")))),
				TBody(Group(rows)),
			),
		),
	})
}

func companiesPage(pc pageContext) Node {
	q := pc.query.Get("q")
	companies := demo.SearchCompanies(demo.Companies(), q)
	cards := make([]Node, 0, len(companies))
	for _, c := range companies {
		cards = append(cards, Div(
			Class(cardClass("company-card")),
			data.Show(containsExpr(c.Name, c.Industry)),
			Div(Class("company-head"),
				Span(Class("company-logo"), Text(c.Logo)),
				Div(Strong(Text(c.Name)), Div(Class(mutedClass()), Text(c.Industry))),
				statusLabel(c.Status, toneFor(c.Status)),
			),
			Div(Class("company-stats"),
				Span(Text(pluralize(c.Contacts, "contact", "contacts"))),
				Span(Text(pluralize(c.OpenDeals, "open deal", "open deals"))),
				Span(Strong(Text(c.Revenue))),
			),
			Div(Class(mutedClass()), Text("Last activity "+c.LastActivity)),
		))
	}
	body := Node(Div(Class("card-grid"), Group(cards)))
	if len(companies) == 0 {
		body = emptyStateCard("No companies match your search.")
	}
	return Div(
		pageHeader("Companies", pluralize(len(demo.Companies()), "account", "accounts")),
		quickFilterCard("Search companies", q),
		body,
	)
}
