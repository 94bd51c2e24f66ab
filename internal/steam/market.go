package steam

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// communityMarketAppID is the app id the community market files profile
// items under.
const communityMarketAppID = 753

var (
	noListingsPattern   = regexp.MustCompile(`<div id="searchResultsTable"[\s\S]*?class="market_content_block market_home_listing_table market_home_main_listing_table market_listing_table">`)
	orderSpreadPattern  = regexp.MustCompile(`Market_LoadOrderSpread\(\s*(\d+)\s*\);`)
	promotedOrderHeader = regexp.MustCompile(`<span class=\\"market_commodity_orders_header_promote\\">([^<]*)<\\/span>",`)
)

// AttachMarketURIs augments each item with its community market listing URI
// and numeric market id, looked up concurrently per item. Items whose
// listing page reports no listings stay unenriched, as do items whose
// lookup fails; per-item failures are logged, never fatal.
//
// The upstream lookups complete in arbitrary order, so the result is
// re-sorted by community item class before returning.
func (c *Client) AttachMarketURIs(ctx context.Context, items []EquippedItem) []EquippedItem {
	if len(items) == 0 {
		return items
	}

	results := make(chan EquippedItem, len(items))

	for i := range items {
		go func(item EquippedItem) {
			if item.ItemMarketURI == "" {
				c.attachMarketURI(ctx, &item)
			}
			results <- item
		}(items[i])
	}

	enriched := make([]EquippedItem, 0, len(items))
	for range items {
		enriched = append(enriched, <-results)
	}

	SortByItemClass(enriched)

	return enriched
}

// attachMarketURI fills the market URI and id of a single item in place.
func (c *Client) attachMarketURI(ctx context.Context, item *EquippedItem) {
	listingURI := c.marketListingURL(*item)

	body, err := c.FetchPageBody(ctx, listingURI)
	if err != nil {
		slog.Warn("market listing lookup failed",
			"item", item.ItemName, "error", err)
		return
	}

	// A populated search results table means the page fell back to a
	// search, i.e. the item has no listings of its own.
	if noListingsPattern.MatchString(body) {
		slog.Debug("item has no market listing", "item", item.ItemName)
		return
	}

	item.ItemMarketURI = listingURI

	match := orderSpreadPattern.FindStringSubmatch(body)
	if len(match) < 2 {
		return
	}

	marketID, err := strconv.Atoi(match[1])
	if err != nil {
		slog.Warn("unparsable market id",
			"item", item.ItemName, "value", match[1], "error", err)
		return
	}

	item.ItemMarketID = marketID
}

// marketListingURL builds the community market listing URL for an item.
func (c *Client) marketListingURL(item EquippedItem) string {
	name := strings.ReplaceAll(item.ItemName, " ", "%20")
	return fmt.Sprintf("%s/market/listings/%d/%d-%s",
		c.communityBaseURL, communityMarketAppID, item.AppID, name)
}

// FetchMarketPrice looks up the current promoted sell order price for an
// item that has a resolved market id, formatted in the given currency.
func (c *Client) FetchMarketPrice(ctx context.Context, item EquippedItem, currency int) (string, error) {
	if item.ItemMarketID == 0 {
		return "", ErrNoMarketListing
	}

	endpoint := fmt.Sprintf("%s/market/itemordershistogram?language=english&currency=%d&item_nameid=%d",
		c.communityBaseURL, currency, item.ItemMarketID)

	body, err := c.FetchPageBody(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("fetch order histogram: %w", err)
	}

	match := promotedOrderHeader.FindStringSubmatch(body)
	if len(match) < 2 {
		return "", fmt.Errorf("no price in order histogram for %q", item.ItemName)
	}

	return match[1], nil
}
