package steam

import "time"

// PriceStatus tracks the lifecycle of a per-item market price lookup.
type PriceStatus int

const (
	PriceNotRequested PriceStatus = iota
	PriceLoading
	PriceLoaded
	PriceFailed
)

// vanityResponse is the envelope returned by ISteamUser/ResolveVanityURL.
type vanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
		Message string `json:"message"`
	} `json:"response"`
}

// itemData holds the presentation assets of one community item definition.
type itemData struct {
	ItemName           string `json:"item_name"`
	ItemTitle          string `json:"item_title"`
	ItemDescription    string `json:"item_description"`
	ItemImageLarge     string `json:"item_image_large"`
	ItemImageSmall     string `json:"item_image_small"`
	ItemMovieWebm      string `json:"item_movie_webm"`
	ItemMovieMp4       string `json:"item_movie_mp4"`
	ItemMovieWebmSmall string `json:"item_movie_webm_small"`
	ItemMovieMp4Small  string `json:"item_movie_mp4_small"`
	Animated           bool   `json:"animated"`
}

// itemDefinition is one entry of the GetEquippedProfileItems response.
type itemDefinition struct {
	AppID               int      `json:"appid"`
	DefID               int      `json:"defid"`
	Type                int      `json:"type"`
	CommunityItemClass  int      `json:"community_item_class"`
	CommunityItemType   int      `json:"community_item_type"`
	PointCost           string   `json:"point_cost"`
	Quantity            string   `json:"quantity"`
	InternalDescription string   `json:"internal_description"`
	Active              bool     `json:"active"`
	CommunityItemData   itemData `json:"community_item_data"`
	UsableDuration      int      `json:"usable_duration"`
	BundleDiscount      int      `json:"bundle_discount"`
	BundleDefIDs        []int    `json:"bundle_defids"`
}

// equippedItemsResponse is the envelope of GetEquippedProfileItems.
type equippedItemsResponse struct {
	Response struct {
		ActiveDefinitions   []itemDefinition `json:"active_definitions"`
		InactiveDefinitions []itemDefinition `json:"inactive_definitions"`
	} `json:"response"`
}

// EquippedItem is one community item currently equipped by a profile,
// flattened for display and optionally enriched with market data.
type EquippedItem struct {
	AppID               int    `json:"appid"`
	CommunityItemClass  int    `json:"community_item_class"`
	ItemName            string `json:"item_name"`
	ItemTitle           string `json:"item_title"`
	PointCost           string `json:"point_cost"`
	ItemDescription     string `json:"item_description"`
	Active              bool   `json:"active"`
	InternalDescription string `json:"internal_description"`
	Animated            bool   `json:"animated"`
	IsActiveDefinition  bool   `json:"is_active_definition"`
	ItemImageURI        string `json:"item_image_uri"`
	ItemPointsURI       string `json:"item_points_uri"`
	ItemMarketURI       string `json:"item_market_uri"`
	ItemMarketID        int    `json:"item_market_id"`
	ItemMarketPrice     string `json:"item_market_price"`

	// PriceStatus is display state only and never serialized.
	PriceStatus PriceStatus `json:"-"`
}

// IsVideo reports whether the item image reference is a video asset.
func (i EquippedItem) IsVideo() bool {
	return hasVideoExtension(i.ItemImageURI)
}

func hasVideoExtension(uri string) bool {
	return len(uri) > 4 && (uri[len(uri)-4:] == ".mp4" || uri[len(uri)-5:] == ".webm")
}

// MiniProfile is the structured form of a community mini-profile page.
type MiniProfile struct {
	Persona            string
	Level              string
	Status             string
	Game               string
	AvatarURL          string
	BackgroundURL      string
	BackgroundVideoURL string
	BadgeName          string
	BadgeDescription   string
	BadgeIconURL       string
}

// Empty reports whether nothing renderable was extracted.
func (p *MiniProfile) Empty() bool {
	return p == nil || (p.Persona == "" && p.AvatarURL == "" && p.BackgroundURL == "" && p.BackgroundVideoURL == "")
}

// CacheEntry is a cached identity resolution result.
type CacheEntry struct {
	Value     string
	Timestamp time.Time
	NotFound  bool // true if the profile does not exist
}
