package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/levosilimo/steamlens/internal/settings"
)

// NewPathCommand creates the config path command.
func NewPathCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the settings file path",
		Long:  `Print the full path of the persisted settings file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPath(w io.Writer, jsonOutput bool) error {
	store, err := settings.NewStore()
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(w, Output{
			Status: "success",
			Data:   map[string]string{"path": store.Path()},
		})
	}

	fmt.Fprintln(w, store.Path())
	return nil
}
