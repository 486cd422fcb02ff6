package ui

import (
	"strconv"

	"dwex-demo/internal/demo"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func analyticsOverviewPage(pc pageContext) Node {
	reps := demo.TopReps(5)
	bars := make([]demo.Bar, 0, len(reps))
	for _, r := range reps {
		bars = append(bars, demo.Bar{Label: r.Name, Value: r.Revenue, Pct: r.Share})
	}
	return Div(
		pageHeader("Overview", "Revenue and pipeline across the team"),
		kpiGrid(demo.AnalyticsMetrics()),
		columnChart("Monthly revenue", demo.MonthlyRevenue()),
		Div(Class("grid-2"),
			barList("Top performers", bars),
			barList("Pipeline by stage", demo.PipelineStages()),
		),
	)
}

func analyticsUsersPage(pc pageContext) Node {
	reps := demo.Reps()
	rows := make([]Node, 0, len(reps))
	for _, r := range reps {
		trend := "trend-down"
		if r.TrendUp {
			trend = "trend-up"
		}
		quota := r.QuotaPct
		if quota > 100 {
			quota = 100
		}
		rows = append(rows, Tr(
			Td(Div(Class("cell-with-avatar"), avatar(r.Name), Div(Strong(Text(r.Name)), Div(Class(mutedClass()), Text(r.Role))))),
			Td(Text(strconv.Itoa(r.Deals))),
			Td(Text(r.Revenue)),
			Td(
				Div(Class("bar-track"), Div(Class("bar-fill"), Style("width:"+strconv.Itoa(quota)+"%"))),
				Span(Class(mutedClass()), Text(strconv.Itoa(r.QuotaPct)+"% of "+r.Quota)),
			),
			Td(Span(Class(trend), Text(r.Trend))),
		))
	}
	return Div(
		pageHeader("Team Analytics", pluralize(len(reps), "representative", "representatives")),
		Div(Class(cardClass("table-card")),
			Table(Class("table"),
				THead(Tr(Th(Text("Rep")), Th(Text("Deals")), Th(Text("Revenue")), Th(Text("Quota")), Th(Text("Trend")))),
				TBody(Group(rows)),
			),
		),
	)
}

func analyticsPerformancePage(pc pageContext) Node {
	return Div(
		pageHeader("Performance", "Sales velocity and conversion"),
		kpiGrid(demo.VelocityMetrics()),
		Div(Class("grid-2"),
			barList("Conversion funnel", demo.Funnel()),
			barList("Win and loss reasons", demo.WinLossReasons()),
		),
	)
}
