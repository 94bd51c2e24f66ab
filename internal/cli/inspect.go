package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/levosilimo/steamlens/internal/settings"
	"github.com/levosilimo/steamlens/internal/steam"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	var (
		language   string
		skipPrices bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <reference>",
		Short: "Inspect a profile once and print the result",
		Long: `Resolve a profile reference, fetch its mini-profile and equipped community
items, attach market listings and prices, and print everything.

The reference may be a vanity name, a numeric id, or a full profile URL
containing /id/<name> or /profiles/<id>.`,
		Example: `  # Inspect by vanity name
  steamlens inspect Levosilimo

  # Inspect by profile URL, localized item text
  steamlens inspect https://steamcommunity.com/id/Levosilimo --language russian

  # Skip the per-item price lookups
  steamlens inspect Levosilimo --skip-prices`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if language == "" {
				language = viper.GetString("language")
			}
			return runInspect(cmd.Context(), cmd.OutOrStdout(), args[0], language, skipPrices)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "item text language (default from config)")
	cmd.Flags().BoolVar(&skipPrices, "skip-prices", false, "do not look up market prices")

	return cmd
}

// inspectReport is the aggregate result of one inspection run.
type inspectReport struct {
	Reference   string               `json:"reference"`
	ID32        string               `json:"id32"`
	ID64        string               `json:"id64"`
	MiniProfile *steam.MiniProfile   `json:"mini_profile,omitempty"`
	Items       []steam.EquippedItem `json:"items"`
}

func runInspect(ctx context.Context, w io.Writer, rawReference, language string, skipPrices bool) error {
	store, err := settings.NewStore()
	if err != nil {
		return err
	}
	userSettings, err := store.Load()
	if err != nil {
		return err
	}

	if !steam.ValidReference(rawReference) {
		return fmt.Errorf("reference contains characters outside [A-Za-z0-9/.:]")
	}

	reference := steam.NormalizeReference(rawReference)
	if reference == "" {
		return fmt.Errorf("empty profile reference")
	}

	client := steam.NewClient(nil)

	id32, err := resolveWithAuthRetry(ctx, client, store, &userSettings, reference)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", reference, err)
	}

	id64, err := steam.Steam32To64(id32)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", reference, err)
	}

	report := inspectReport{
		Reference: reference,
		ID32:      id32,
		ID64:      id64,
	}

	// The two branches are independent: a failure in one never blocks the
	// other, it just leaves that part of the report empty.
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		profile, err := client.FetchMiniProfile(ctx, id32)
		if err != nil {
			slog.Warn("mini-profile fetch failed", "error", err)
			return
		}
		report.MiniProfile = profile
	}()

	go func() {
		defer wg.Done()
		items, err := client.FetchEquippedItems(ctx, id64, language)
		if err != nil {
			slog.Warn("equipped items fetch failed", "error", err)
			return
		}
		items = client.AttachMarketURIs(ctx, items)
		if !skipPrices {
			fetchPrices(ctx, client, items, userSettings.SteamCurrency)
		}
		report.Items = items
	}()

	wg.Wait()

	if IsJSONOutput() {
		return printReportJSON(w, report)
	}
	return printReportText(w, report)
}

// resolveWithAuthRetry applies the credential retry policy: a rejected API
// key is cleared from the stored settings and the resolution is replayed
// exactly once without it.
func resolveWithAuthRetry(ctx context.Context, client *steam.Client, store *settings.Store, userSettings *settings.Settings, reference string) (string, error) {
	id32, err := client.ResolveID32(ctx, reference, userSettings.APIKey)
	if err == nil || !errors.Is(err, steam.ErrKeyUnauthorized) {
		return id32, err
	}

	slog.Warn("api key rejected, clearing it and retrying without credential")
	userSettings.APIKey = ""
	if saveErr := store.Save(*userSettings); saveErr != nil {
		slog.Error("failed to persist cleared api key", "error", saveErr)
	}

	return client.ResolveID32(ctx, reference, "")
}

// fetchPrices looks up prices for all items with a market id, in place.
func fetchPrices(ctx context.Context, client *steam.Client, items []steam.EquippedItem, currency int) {
	var wg sync.WaitGroup
	for i := range items {
		if items[i].ItemMarketID == 0 {
			continue
		}
		wg.Add(1)
		go func(item *steam.EquippedItem) {
			defer wg.Done()
			price, err := client.FetchMarketPrice(ctx, *item, currency)
			if err != nil {
				slog.Debug("price lookup failed", "item", item.ItemName, "error", err)
				item.PriceStatus = steam.PriceFailed
				return
			}
			item.ItemMarketPrice = price
			item.PriceStatus = steam.PriceLoaded
		}(&items[i])
	}
	wg.Wait()
}

func printReportJSON(w io.Writer, report inspectReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}

func printReportText(w io.Writer, report inspectReport) error {
	fmt.Fprintf(w, "Profile %s (id32 %s, id64 %s)\n", report.Reference, report.ID32, report.ID64)

	if p := report.MiniProfile; !p.Empty() {
		fmt.Fprintf(w, "  %s", p.Persona)
		if p.Status != "" {
			fmt.Fprintf(w, " (%s)", p.Status)
		}
		if p.Level != "" {
			fmt.Fprintf(w, ", level %s", p.Level)
		}
		fmt.Fprintln(w)
		if p.Game != "" {
			fmt.Fprintf(w, "  playing %s\n", p.Game)
		}
	}

	if len(report.Items) == 0 {
		fmt.Fprintln(w, "No equipped items.")
		return nil
	}

	fmt.Fprintf(w, "Equipped items (%d):\n", len(report.Items))
	for _, item := range report.Items {
		price := "-"
		switch {
		case item.ItemMarketPrice != "":
			price = item.ItemMarketPrice
		case item.ItemMarketURI == "":
			price = "not on market"
		}
		fmt.Fprintf(w, "  [%d] %-40s %6s pts  %s\n",
			item.CommunityItemClass, item.ItemTitle, item.PointCost, price)
	}

	return nil
}
