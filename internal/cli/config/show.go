package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/levosilimo/steamlens/internal/settings"
	"github.com/levosilimo/steamlens/internal/steam"
)

// NewShowCommand creates the config show command.
func NewShowCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show all settings",
		Long:  `Show the current value of every settings key.`,
		Example: `  # Show settings
  steamlens config show

  # Show settings as JSON
  steamlens config show --json`,
		Aliases: []string{"list", "ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runShow(w io.Writer, jsonOutput bool) error {
	store, err := settings.NewStore()
	if err != nil {
		return err
	}
	current, err := store.Load()
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(w, Output{
			Status: "success",
			Data: map[string]interface{}{
				keyAPIKey:   maskKey(current.APIKey),
				keyLinkMode: current.OpenLinksInSteam,
				keyCurrency: current.SteamCurrency,
			},
		})
	}

	currency := fmt.Sprintf("%d", current.SteamCurrency)
	if c, ok := steam.CurrencyByID(current.SteamCurrency); ok {
		currency = fmt.Sprintf("%d (%s)", c.ID, c.Code)
	}

	fmt.Fprintf(w, "%-22s %s\n", keyAPIKey, maskKey(current.APIKey))
	fmt.Fprintf(w, "%-22s %d (%s)\n", keyLinkMode, current.OpenLinksInSteam, linkModeName(current.OpenLinksInSteam))
	fmt.Fprintf(w, "%-22s %s\n", keyCurrency, currency)

	return nil
}

// linkModeName names a link policy value for human output.
func linkModeName(mode int) string {
	switch mode {
	case settings.OpenLinksPlain:
		return "plain browser"
	case settings.OpenLinksSteam:
		return "always steam://"
	case settings.OpenLinksHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}
