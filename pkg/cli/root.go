package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions are the resolved persistent flags shared by all commands.
type rootOptions struct {
	host          string
	output        string
	profile       string
	prefsDB       string
	workspaceFile string
}

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = printJSON(os.Stdout, map[string]any{"error": err.Error()})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "dwex",
		Short:         "dwex shell CLI",
		Long:          "Inspect the dwex route table, workspaces and shortcuts, and manage stored preferences.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Config file is optional
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = defaultUserConfig()
			}
			p, err := cfg.ActiveProfile(opts.profile)
			if err != nil {
				return err
			}

			// Apply precedence: flag > env > profile > default
			resolve(cmd, "host", &opts.host, "DWEX_HOST", p.Host)
			resolve(cmd, "output", &opts.output, "DWEX_OUTPUT", p.Output)
			resolve(cmd, "prefs-db", &opts.prefsDB, "PREFS_DB_PATH", p.PrefsDB)
			resolve(cmd, "workspace-file", &opts.workspaceFile, "WORKSPACE_FILE", p.WorkspaceFile)

			if err := validateOutputFormat(opts.output); err != nil {
				return err
			}
			// Keep the flag in sync so getOutputFormat sees env and profile values.
			return cmd.Root().PersistentFlags().Set("output", opts.output)
		},
	}

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)
	rootCmd.PersistentFlags().StringVar(&opts.host, "host", "http://localhost:8080", "Server URL")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "", "Config profile to use")
	rootCmd.PersistentFlags().StringVar(&opts.prefsDB, "prefs-db", "dwex_prefs.sqlite", "Preference database file")
	rootCmd.PersistentFlags().StringVar(&opts.workspaceFile, "workspace-file", "", "Workspace definition file (default: built-in demo workspaces)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newRoutesCmd())
	rootCmd.AddCommand(newWorkspacesCmd(opts))
	rootCmd.AddCommand(newShortcutsCmd())
	rootCmd.AddCommand(newHealthCmd(opts))
	rootCmd.AddCommand(newPrefsCmd(opts))

	// Shell completions
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// normalizeFlagName accepts underscores in flag names (--prefs_db == --prefs-db).
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func resolve(cmd *cobra.Command, flag string, dst *string, env, profileValue string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	} else if profileValue != "" {
		*dst = profileValue
	}
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
