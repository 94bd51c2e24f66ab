package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noListingsBody = `<html><body>
<div id="searchResultsTable">
	<div class="market_content_block market_home_listing_table market_home_main_listing_table market_listing_table">
	</div>
</div>
</body></html>`

func listingBody(marketID int) string {
	return fmt.Sprintf(`<html><body>
<div class="market_listing_table"></div>
<script>Market_LoadOrderSpread( %d );</script>
</body></html>`, marketID)
}

func TestClient_AttachMarketURIs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "Cascading Neon"):
			fmt.Fprint(w, listingBody(12345))
		case strings.Contains(r.URL.Path, "Unlisted Frame"):
			fmt.Fprint(w, noListingsBody)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(&Config{CommunityBaseURL: server.URL, DisableCache: true})

	items := []EquippedItem{
		{AppID: 3260, CommunityItemClass: 8, ItemName: "Cascading Neon"},
		{AppID: 440, CommunityItemClass: 5, ItemName: "Unlisted Frame"},
		{AppID: 570, CommunityItemClass: 3, ItemName: "Broken Lookup"},
	}

	enriched := client.AttachMarketURIs(context.Background(), items)
	require.Len(t, enriched, 3)

	// Lookups complete in arbitrary order; the result is re-sorted by class.
	assert.Equal(t, []int{3, 5, 8}, []int{
		enriched[0].CommunityItemClass,
		enriched[1].CommunityItemClass,
		enriched[2].CommunityItemClass,
	})

	assert.Equal(t, "Cascading Neon", enriched[2].ItemName)
	assert.Equal(t, 12345, enriched[2].ItemMarketID)
	assert.Equal(t,
		server.URL+"/market/listings/753/3260-Cascading%20Neon",
		enriched[2].ItemMarketURI)

	// No listings of its own: stays unenriched.
	assert.Empty(t, enriched[1].ItemMarketURI)
	assert.Zero(t, enriched[1].ItemMarketID)

	// Failed lookup is non-fatal and leaves the item untouched.
	assert.Empty(t, enriched[0].ItemMarketURI)
	assert.Zero(t, enriched[0].ItemMarketID)
}

func TestClient_AttachMarketURIs_Empty(t *testing.T) {
	client := NewClient(&Config{DisableCache: true})

	assert.Empty(t, client.AttachMarketURIs(context.Background(), nil))
}

func TestClient_MarketListingURL(t *testing.T) {
	client := NewClient(&Config{CommunityBaseURL: "https://steamcommunity.com", DisableCache: true})

	item := EquippedItem{AppID: 3260, ItemName: "Cascading Neon"}

	assert.Equal(t,
		"https://steamcommunity.com/market/listings/753/3260-Cascading%20Neon",
		client.marketListingURL(item))
}

func TestClient_FetchMarketPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/market/itemordershistogram", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("currency"))
		assert.Equal(t, "12345", r.URL.Query().Get("item_nameid"))
		fmt.Fprint(w, `{"success":1,"sell_order_summary":"<span class=\"market_commodity_orders_header_promote\">125,50 pуб.<\/span>","buy_order_summary":""}`)
	}))
	defer server.Close()

	client := NewClient(&Config{CommunityBaseURL: server.URL, DisableCache: true})

	price, err := client.FetchMarketPrice(context.Background(),
		EquippedItem{ItemName: "Cascading Neon", ItemMarketID: 12345}, 5)
	require.NoError(t, err)
	assert.Equal(t, "125,50 pуб.", price)
}

func TestClient_FetchMarketPrice_NoMarketID(t *testing.T) {
	client := NewClient(&Config{DisableCache: true})

	_, err := client.FetchMarketPrice(context.Background(), EquippedItem{ItemName: "x"}, 1)
	assert.ErrorIs(t, err, ErrNoMarketListing)
}

func TestClient_FetchMarketPrice_NoPromotedOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":1,"sell_order_summary":"","buy_order_summary":""}`)
	}))
	defer server.Close()

	client := NewClient(&Config{CommunityBaseURL: server.URL, DisableCache: true})

	_, err := client.FetchMarketPrice(context.Background(),
		EquippedItem{ItemName: "x", ItemMarketID: 12345}, 1)
	assert.Error(t, err)
}
