package cli

import (
	"os"

	"github.com/spf13/cobra"

	"dwex-demo/internal/shell/keys"
)

func newShortcutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcuts",
		Short: "List the built-in keyboard shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shortcuts := keys.Defaults()
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, shortcuts)
			}
			rows := make([][]string, 0, len(shortcuts))
			for _, s := range shortcuts {
				rows = append(rows, []string{s.Combo(), string(s.Action), s.Description})
			}
			return printTable(os.Stdout, []string{"keys", "action", "description"}, rows)
		},
	}
}
