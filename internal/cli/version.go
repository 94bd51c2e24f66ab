package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// VersionInfo contains version information for the application
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go_version"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date, builtBy string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information including build commit and date.",
		Example: `  # Display version information
  steamlens version

  # Output in JSON format
  steamlens version --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVersion(cmd.OutOrStdout(), VersionInfo{
				Version:   version,
				Commit:    commit,
				Date:      date,
				BuiltBy:   builtBy,
				GoVersion: runtime.Version(),
			})
		},
	}

	return cmd
}

// printVersion prints version information in the appropriate format
func printVersion(w io.Writer, info VersionInfo) error {
	if IsJSONOutput() {
		output := struct {
			Status string      `json:"status"`
			Data   VersionInfo `json:"data"`
		}{
			Status: "success",
			Data:   info,
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			return fmt.Errorf("encode JSON output: %w", err)
		}
		return nil
	}

	fmt.Fprintf(w, "steamlens version %s\n", info.Version)
	fmt.Fprintf(w, "Commit:   %s\n", info.Commit)
	fmt.Fprintf(w, "Built:    %s by %s\n", info.Date, info.BuiltBy)
	fmt.Fprintf(w, "Go:       %s\n", info.GoVersion)

	return nil
}
