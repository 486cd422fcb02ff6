package ui

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"dwex-demo/internal/demo"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

func icon(name string) Node {
	if name == "" {
		return nil
	}
	return Span(Class("material-symbols-outlined icon"), Attr("aria-hidden", "true"), Text(name))
}

func cardClass(extra ...string) string {
	parts := []string{"card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "text-muted text-small"
}

func primaryButtonClass() string {
	return "btn btn-primary"
}

func secondaryButtonClass() string {
	return "btn"
}

func iconButtonClass() string {
	return "btn btn-icon"
}

func pageHeader(title, subtitle string, actions ...Node) Node {
	var sub Node
	if subtitle != "" {
		sub = P(Class(mutedClass()), Text(subtitle))
	}
	return Div(
		Class("page-header"),
		Div(H1(Class("page-title"), Text(title)), sub),
		If(len(actions) > 0, Div(Class("page-actions"), Group(actions))),
	)
}

func statusLabel(text, tone string) Node {
	className := "label"
	if tone != "" {
		className += " label-" + tone
	}
	return Span(Class(className), Text(text))
}

func toneFor(status string) string {
	switch strings.ToLower(status) {
	case "active", "customer", "closed", "can edit", "high":
		return "success"
	case "lead", "prospect", "proposal", "can comment", "medium":
		return "accent"
	case "inactive", "churned", "low":
		return "muted"
	case "negotiation":
		return "attention"
	default:
		return ""
	}
}

func kpiGrid(kpis []demo.KPI) Node {
	cards := make([]Node, 0, len(kpis))
	for _, k := range kpis {
		trend := "trend-up"
		if !k.Positive {
			trend = "trend-down"
		}
		cards = append(cards, Div(
			Class(cardClass("kpi")),
			icon(k.Icon),
			Div(Class("kpi-value"), Text(k.Value)),
			Div(Class(mutedClass()), Text(k.Label)),
			Div(Class("kpi-change "+trend), Text(k.Change)),
		))
	}
	return Div(Class("kpi-grid"), Group(cards))
}

// barList renders horizontal bars. Bars without a percentage are drawn full
// width as a colored legend.
func barList(title string, bars []demo.Bar) Node {
	rows := make([]Node, 0, len(bars))
	for _, b := range bars {
		pct := b.Pct
		if pct <= 0 {
			pct = 100
		}
		style := "width:" + strconv.Itoa(pct) + "%"
		if b.Color != "" {
			style += ";background:" + b.Color
		}
		rows = append(rows, Div(
			Class("bar-row"),
			Span(Class("bar-label"), Text(b.Label)),
			Div(Class("bar-track"), Div(Class("bar-fill"), Style(style))),
			Span(Class("bar-value"), Text(b.Value)),
		))
	}
	return Div(Class(cardClass()), H2(Class("card-title"), Text(title)), Group(rows))
}

// columnChart renders vertical bars, one per label.
func columnChart(title string, bars []demo.Bar) Node {
	cols := make([]Node, 0, len(bars))
	for _, b := range bars {
		cols = append(cols, Div(
			Class("column"),
			Attr("title", b.Label+": "+b.Value),
			Div(Class("column-fill"), Style("height:"+strconv.Itoa(b.Pct)+"%")),
			Span(Class("column-label"), Text(b.Label)),
		))
	}
	return Div(Class(cardClass()), H2(Class("card-title"), Text(title)), Div(Class("column-chart"), Group(cols)))
}

func containsExpr(values ...string) string {
	lower := strings.ToLower(strings.Join(values, " "))
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

// quickFilterCard binds the q signal that filterRow expressions read. The
// form submits ?q= for clients without scripts.
func quickFilterCard(placeholder, initial string, extraControls ...Node) Node {
	controls := []Node{
		Form(
			Method("get"),
			Class("filter-form"),
			Label(Class("sr-only"), For("quick-filter"), Text("Quick filter")),
			Input(ID("quick-filter"), Type("search"), Name("q"), Value(initial), Class("form-control"), Placeholder(placeholder), data.Bind("q"), AutoComplete("off")),
		),
	}
	controls = append(controls, extraControls...)
	return Div(
		Class(cardClass("toolbar")),
		data.Signals(map[string]any{"q": initial}),
		Div(Class("toolbar-row"), Group(controls)),
	)
}

func emptyStateCard(message string) Node {
	return Div(Class(cardClass("blankslate")), P(Class("text-muted"), Text(message)))
}

func avatar(name string) Node {
	initials := ""
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		initials += string(r[0])
		if len([]rune(initials)) == 2 {
			break
		}
	}
	return Span(Class("avatar"), Attr("aria-hidden", "true"), Text(strings.ToUpper(initials)))
}

func hidden(name, value string) Node {
	return Input(Type("hidden"), Name(name), Value(value))
}

// postButton is a one-button form for a gesture endpoint.
func postButton(r *http.Request, action, label, iconName, class string, fields ...Node) Node {
	return Form(
		Method("post"),
		Action(action),
		Class("inline-form"),
		csrfField(r),
		Group(fields),
		Button(
			Type("submit"),
			Class(class),
			Title(label),
			Attr("aria-label", label),
			icon(iconName),
			If(!strings.Contains(class, "btn-icon"), Span(Text(label))),
		),
	)
}

func actionMenu(label, iconName string, items ...Node) Node {
	return Details(
		Class("dropdown"),
		Summary(Class(iconButtonClass()), Title(label), Attr("aria-label", label), icon(iconName)),
		Div(Class("dropdown-menu"), Group(items)),
	)
}

// menuPost is a dropdown entry that posts a gesture.
func menuPost(r *http.Request, action, label, iconName string, danger bool, fields ...Node) Node {
	class := "dropdown-item"
	if danger {
		class += " dropdown-item-danger"
	}
	return Form(
		Method("post"),
		Action(action),
		csrfField(r),
		Group(fields),
		Button(Type("submit"), Class(class), icon(iconName), Span(Text(label))),
	)
}

func menuDivider() Node {
	return Div(Class("dropdown-divider"))
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
