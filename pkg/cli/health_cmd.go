package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type healthReport struct {
	Status         string `json:"status"`
	Sessions       int    `json:"sessions"`
	Workspaces     int    `json:"workspaces"`
	PersistedPrefs bool   `json:"persisted_prefs"`
	NextSweep      string `json:"next_sweep,omitempty"`
}

func newHealthCmd(opts *rootOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Query a running server's health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateHostURL(opts.host); err != nil {
				return err
			}
			url := strings.TrimSuffix(strings.TrimSpace(opts.host), "/") + "/healthz"

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			client := &http.Client{Timeout: timeout}
			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("request %s: %w", url, err)
			}
			defer resp.Body.Close() //nolint:errcheck
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("request %s: unexpected status %s", url, resp.Status)
			}

			var report healthReport
			if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
				return fmt.Errorf("decode health response: %w", err)
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, report)
			}
			return printTable(os.Stdout, []string{"status", "sessions", "workspaces", "persisted prefs", "next sweep"}, [][]string{{
				report.Status,
				strconv.Itoa(report.Sessions),
				strconv.Itoa(report.Workspaces),
				strconv.FormatBool(report.PersistedPrefs),
				report.NextSweep,
			}})
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")
	return cmd
}
