package cli

import (
	"os"

	"github.com/spf13/cobra"

	"dwex-demo/internal/app"
	"dwex-demo/internal/router"
)

type routeRow struct {
	Path       string `json:"path"`
	Title      string `json:"title,omitempty"`
	Component  string `json:"component,omitempty"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var routes []routeRow
			app.Routes().Walk(func(full string, r router.Route) {
				if r.Component == "" && r.RedirectTo == "" {
					return
				}
				routes = append(routes, routeRow{
					Path:       "/" + full,
					Title:      r.Title,
					Component:  string(r.Component),
					RedirectTo: r.RedirectTo,
				})
			})

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, routes)
			}
			rows := make([][]string, 0, len(routes))
			for _, r := range routes {
				rows = append(rows, []string{r.Path, r.Title, r.Component, r.RedirectTo})
			}
			return printTable(os.Stdout, []string{"path", "title", "component", "redirect"}, rows)
		},
	}
}
