package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
)

// FetchEquippedItems retrieves the community items currently equipped by a
// profile, identified by its 64-bit id, with item text localized to the
// given language. The result is sorted ascending by community item class;
// that ordering is a display invariant, ties keep response order.
func (c *Client) FetchEquippedItems(ctx context.Context, id64, language string) ([]EquippedItem, error) {
	endpoint := fmt.Sprintf("%s/ILoyaltyRewardsService/GetEquippedProfileItems/v1?steamid=%s&language=%s",
		c.apiBaseURL, url.QueryEscape(id64), url.QueryEscape(language))

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, NewAPIError(resp.StatusCode, string(body))
	}

	var response equippedItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode equipped items: %w", err)
	}

	active := response.Response.ActiveDefinitions
	inactive := response.Response.InactiveDefinitions

	items := make([]EquippedItem, 0, len(active)+len(inactive))
	for _, def := range active {
		items = append(items, equippedItemFromDefinition(def, true))
	}
	for _, def := range inactive {
		items = append(items, equippedItemFromDefinition(def, false))
	}

	SortByItemClass(items)

	slog.Debug("equipped items fetched",
		"id64", id64,
		"active", len(active),
		"inactive", len(inactive))

	return items, nil
}

// equippedItemFromDefinition flattens an item definition into display form.
// Animated items prefer the mp4 asset, then webm, then the small still;
// static items use the large image.
func equippedItemFromDefinition(def itemDefinition, isActive bool) EquippedItem {
	data := def.CommunityItemData

	imageURI := data.ItemImageLarge
	if data.Animated {
		switch {
		case data.ItemMovieMp4 != "":
			imageURI = data.ItemMovieMp4
		case data.ItemMovieWebm != "":
			imageURI = data.ItemMovieWebm
		default:
			imageURI = data.ItemImageSmall
		}
	}

	return EquippedItem{
		AppID:               def.AppID,
		CommunityItemClass:  def.CommunityItemClass,
		ItemName:            data.ItemName,
		ItemTitle:           data.ItemTitle,
		PointCost:           def.PointCost,
		ItemDescription:     data.ItemDescription,
		Active:              def.Active,
		InternalDescription: def.InternalDescription,
		Animated:            data.Animated,
		IsActiveDefinition:  isActive,
		ItemImageURI:        imageURI,
		ItemPointsURI:       fmt.Sprintf("https://store.steampowered.com/points/shop/app/%d/reward/%d/", def.AppID, def.DefID),
	}
}

// SortByItemClass sorts items ascending by community item class, keeping
// the relative order of equal classes.
func SortByItemClass(items []EquippedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CommunityItemClass < items[j].CommunityItemClass
	})
}

// ItemImageURL builds the CDN URL for an item's image or video asset.
func ItemImageURL(item EquippedItem) string {
	return fmt.Sprintf("https://cdn.cloudflare.steamstatic.com/steamcommunity/public/images/items/%d/%s",
		item.AppID, item.ItemImageURI)
}
