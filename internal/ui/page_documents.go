package ui

import (
	"net/url"
	"strconv"

	"dwex-demo/internal/demo"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func allFilesPage(pc pageContext) Node {
	filter := pc.query.Get("filter")
	if filter == "" {
		filter = "All"
	}
	q := pc.query.Get("q")
	files := demo.FilterFiles(demo.Files(), filter, q)

	chips := make([]Node, 0, len(demo.FileFilters))
	for _, f := range demo.FileFilters {
		class := "chip"
		if f == filter {
			class += " active"
		}
		v := url.Values{}
		if f != "All" {
			v.Set("filter", f)
		}
		if q != "" {
			v.Set("q", q)
		}
		href := pc.path
		if enc := v.Encode(); enc != "" {
			href += "?" + enc
		}
		chips = append(chips, A(Href(href), Class(class), Text(f)))
	}

	rows := make([]Node, 0, len(files))
	for _, f := range files {
		rows = append(rows, Tr(
			Td(Div(Class("cell-with-icon"), icon(f.Icon), Span(Text(f.Name)))),
			Td(statusLabel(f.Type, toneFor(f.Type))),
			Td(Text(f.Client)),
			Td(Class(mutedClass()), Text(f.Size)),
			Td(Class(mutedClass()), Text(f.Modified)),
		))
	}

	var body Node
	if len(files) == 0 {
		body = emptyStateCard("No files match the current filter.")
	} else {
		body = Div(Class(cardClass("table-card")),
			Table(Class("table"),
				THead(Tr(Th(Text("Name")), Th(Text("Type")), Th(Text("Client")), Th(Text("Size")), Th(Text("Modified")))),
				TBody(Group(rows)),
			),
		)
	}

	return Div(
		pageHeader("All Files", pluralize(len(files), "file", "files")),
		Div(Class(cardClass("toolbar")),
			Div(Class("toolbar-row"),
				Div(Class("chips"), Group(chips)),
				Form(Method("get"), Class("filter-form"),
					If(filter != "All", hidden("filter", filter)),
					Input(Type("search"), Name("q"), Value(q), Class("form-control"), Placeholder("Search files")),
				),
			),
		),
		body,
	)
}

func templatesPage(pc pageContext) Node {
	templates := demo.Templates()
	cards := make([]Node, 0, len(templates))
	for _, t := range templates {
		cards = append(cards, Div(
			Class(cardClass("template-card")),
			Div(Class("template-head"), icon(t.Icon), statusLabel(t.Category, toneFor(t.Category))),
			H2(Class("card-title"), Text(t.Name)),
			P(Class(mutedClass()), Text(t.Description)),
			Div(Class("template-foot"),
				Span(Class(mutedClass()), Text("Used "+strconv.Itoa(t.Uses)+" times")),
				Span(Class(mutedClass()), Text("Last used "+t.LastUsed)),
			),
		))
	}
	return Div(
		pageHeader("Templates", "Start new documents from a proven layout."),
		Div(Class("card-grid"), Group(cards)),
	)
}

func sharedDocsPage(pc pageContext) Node {
	docs := demo.SharedDocs()
	rows := make([]Node, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, Tr(
			Td(Div(Class("cell-with-icon"), icon(d.Icon), Span(Text(d.Name)))),
			Td(Div(Class("cell-with-avatar"), avatar(d.SharedBy), Span(Text(d.SharedBy)))),
			Td(statusLabel(d.Permission, toneFor(d.Permission))),
			Td(Class(mutedClass()), Text(d.Date)),
		))
	}
	return Div(
		pageHeader("Shared with Me", pluralize(len(docs), "document", "documents")+" shared by your team"),
		Div(Class(cardClass("table-card")),
			Table(Class("table"),
				THead(Tr(Th(Text("Name")), Th(Text("Shared by")), Th(Text("Permission")), Th(Text("Date")))),
				TBody(Group(rows)),
			),
		),
	)
}
