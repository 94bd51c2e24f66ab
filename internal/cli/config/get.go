package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/levosilimo/steamlens/internal/settings"
)

// NewGetCommand creates the config get command.
func NewGetCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get one settings value",
		Long:  `Print the current value of a single settings key.`,
		Example: `  # Show the link policy
  steamlens config get open_links_in_steam`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), jsonOutput, args[0])
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runGet(w io.Writer, jsonOutput bool, key string) error {
	store, err := settings.NewStore()
	if err != nil {
		return err
	}
	current, err := store.Load()
	if err != nil {
		return err
	}

	var value interface{}
	switch key {
	case keyAPIKey:
		value = maskKey(current.APIKey)
	case keyLinkMode:
		value = current.OpenLinksInSteam
	case keyCurrency:
		value = current.SteamCurrency
	default:
		return fmt.Errorf("unknown settings key %q", key)
	}

	if jsonOutput {
		return printJSON(w, Output{
			Status: "success",
			Data:   map[string]interface{}{key: value},
		})
	}

	fmt.Fprintf(w, "%v\n", value)
	return nil
}
