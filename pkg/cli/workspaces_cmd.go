package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"dwex-demo/internal/app"
	"dwex-demo/internal/workspace"
)

func newWorkspacesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "Inspect and validate workspace definitions",
	}
	cmd.AddCommand(newWorkspacesListCmd(opts))
	cmd.AddCommand(newWorkspacesValidateCmd(opts))
	return cmd
}

// loadWorkspaces reads path, or the built-in demo workspaces when path is
// empty.
func loadWorkspaces(path string) (*workspace.Config, error) {
	if path == "" {
		return workspace.Default(), nil
	}
	return workspace.Load(path)
}

func newWorkspacesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workspaces and their navigation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadWorkspaces(opts.workspaceFile)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, cfg.Workspaces)
			}
			rows := make([][]string, 0, len(cfg.Workspaces))
			for _, ws := range cfg.Workspaces {
				n := 0
				for _, item := range ws.NavItems {
					if item.Navigable() {
						n++
					}
				}
				rows = append(rows, []string{ws.ID, ws.Label, ws.Icon, strconv.Itoa(n), string(ws.ShowOn)})
			}
			return printTable(os.Stdout, []string{"id", "label", "icon", "routes", "show on"}, rows)
		},
	}
}

func newWorkspacesValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a workspace file offline",
		Long:  "Parses the workspace file and checks that every navigation route renders a page.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.workspaceFile
			if len(args) == 1 {
				path = args[0]
			}

			var problems []string
			cfg, err := loadWorkspaces(path)
			if err != nil {
				problems = append(problems, err.Error())
			} else {
				problems = app.UnresolvedNavRoutes(app.Routes(), cfg)
			}

			if getOutputFormat(cmd) == "json" {
				if err := printJSON(os.Stdout, map[string]any{
					"valid":  len(problems) == 0,
					"errors": problems,
				}); err != nil {
					return err
				}
			} else if len(problems) == 0 {
				_, _ = fmt.Fprintln(os.Stdout, "Workspace configuration is valid.")
			} else {
				_, _ = fmt.Fprintf(os.Stdout, "Workspace configuration has %d problem(s):\n", len(problems))
				for _, p := range problems {
					_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", p)
				}
			}
			if len(problems) > 0 {
				return fmt.Errorf("workspace configuration is invalid")
			}
			return nil
		},
	}
}
