package config

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/levosilimo/steamlens/internal/settings"
	"github.com/levosilimo/steamlens/internal/steam"
)

// NewSetCommand creates the config set command.
func NewSetCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one settings value",
		Long: `Set a settings key and persist it.

steam_currency accepts either the numeric market currency id or an ISO code
like USD or EUR. open_links_in_steam must be 0, 1 or 2.`,
		Example: `  # Store an API key
  steamlens config set api_key ABCDEF0123456789

  # Clear the API key
  steamlens config set api_key ""

  # Quote prices in rubles
  steamlens config set steam_currency RUB`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd.OutOrStdout(), jsonOutput, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runSet(w io.Writer, jsonOutput bool, key, value string) error {
	store, err := settings.NewStore()
	if err != nil {
		return err
	}
	current, err := store.Load()
	if err != nil {
		return err
	}

	switch key {
	case keyAPIKey:
		current.APIKey = value

	case keyLinkMode:
		mode, err := strconv.Atoi(value)
		if err != nil || mode < settings.OpenLinksPlain || mode > settings.OpenLinksHybrid {
			return fmt.Errorf("open_links_in_steam must be 0, 1 or 2, got %q", value)
		}
		current.OpenLinksInSteam = mode

	case keyCurrency:
		currency, err := parseCurrency(value)
		if err != nil {
			return err
		}
		current.SteamCurrency = currency

	default:
		return fmt.Errorf("unknown settings key %q", key)
	}

	if err := store.Save(current); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(w, Output{
			Status:  "success",
			Message: fmt.Sprintf("Set %s", key),
		})
	}

	fmt.Fprintf(w, "Set %s\n", key)
	return nil
}

// parseCurrency accepts a numeric currency id or an ISO code.
func parseCurrency(value string) (int, error) {
	if id, err := strconv.Atoi(value); err == nil {
		if !steam.ValidCurrencyID(id) {
			return 0, fmt.Errorf("unknown currency id %d", id)
		}
		return id, nil
	}

	if c, ok := steam.CurrencyByCode(value); ok {
		return c.ID, nil
	}

	return 0, fmt.Errorf("unknown currency %q", value)
}
