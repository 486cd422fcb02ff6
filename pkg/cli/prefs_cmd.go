package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	internaldb "dwex-demo/internal/db"
	"dwex-demo/internal/db/repository"
	"dwex-demo/internal/domain"
)

func newPrefsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage stored theme preferences",
	}
	cmd.AddCommand(newPrefsCountCmd(opts))
	cmd.AddCommand(newPrefsForgetCmd(opts))
	return cmd
}

// openPrefs opens and migrates the preference database at path.
func openPrefs(path string) (*internaldb.Pools, *repository.PreferenceRepo, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("no preference database configured: set --prefs-db")
	}
	pools, err := internaldb.OpenPools(path, 1)
	if err != nil {
		return nil, nil, err
	}
	if err := internaldb.RunMigrations(pools.Write); err != nil {
		_ = pools.Close()
		return nil, nil, err
	}
	return pools, repository.NewPreferenceRepo(pools), nil
}

func newPrefsCountCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count clients with stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pools, repo, err := openPrefs(opts.prefsDB)
			if err != nil {
				return err
			}
			defer pools.Close() //nolint:errcheck

			n, err := repo.Count(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, map[string]any{"path": opts.prefsDB, "clients": n})
			}
			_, _ = fmt.Fprintf(os.Stdout, "%d client(s) with stored preferences in %s\n", n, opts.prefsDB)
			return nil
		},
	}
}

func newPrefsForgetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "forget <client-id>",
		Short: "Delete the stored preferences of one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !domain.IsValidID(id) {
				return domain.ErrValidation("invalid client id %q", id)
			}
			pools, repo, err := openPrefs(opts.prefsDB)
			if err != nil {
				return err
			}
			defer pools.Close() //nolint:errcheck

			if err := repo.Delete(cmd.Context(), id); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, map[string]string{"status": "ok", "client_id": id})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Preferences for %s deleted\n", id)
			return nil
		},
	}
}
