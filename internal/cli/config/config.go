// Package config implements the settings management commands.
package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Settings keys accepted by get/set.
const (
	keyAPIKey   = "api_key"
	keyLinkMode = "open_links_in_steam"
	keyCurrency = "steam_currency"
)

// NewCommand creates the config command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage settings",
		Long: `View and modify steamlens settings.

Settings keys:
  api_key              Steam Web API key used for vanity name resolution
  open_links_in_steam  0 = plain browser, 1 = always steam://, 2 = hybrid
  steam_currency       numeric market currency id (or ISO code on set)

Settings are stored in the user config directory and are separate from the
steamlens config file, which only holds tool behavior like the item
language.`,
		Example: `  # View all settings
  steamlens config show

  # Store an API key
  steamlens config set api_key ABCDEF0123456789

  # Use the hybrid link policy
  steamlens config set open_links_in_steam 2

  # Quote prices in euros
  steamlens config set steam_currency EUR

  # Show where settings live
  steamlens config path`,
		Aliases: []string{"cfg"},
	}

	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewSetCommand())
	cmd.AddCommand(NewPathCommand())

	return cmd
}

// Output is the JSON envelope for config command output.
type Output struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func printJSON(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}

// maskKey hides all but the tail of an API key for display.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
