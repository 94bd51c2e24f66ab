package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	// DefaultAPIBaseURL is the default Steam Web API base URL.
	DefaultAPIBaseURL = "https://api.steampowered.com"

	// DefaultCommunityBaseURL is the default Steam community base URL.
	DefaultCommunityBaseURL = "https://steamcommunity.com"

	// DefaultResolverBaseURL is the fallback id resolver used when no API
	// key is available for vanity lookups.
	DefaultResolverBaseURL = "https://steamid.xyz"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// UserAgent is the user agent string sent with requests.
	UserAgent = "steamlens/dev (https://github.com/levosilimo/steamlens)"
)

// Client talks to the Steam Web API and the community site.
type Client struct {
	apiBaseURL       string
	communityBaseURL string
	resolverBaseURL  string
	httpClient       *http.Client
	userAgent        string
	cache            *Cache
}

// Config holds client configuration.
type Config struct {
	APIBaseURL       string
	CommunityBaseURL string
	ResolverBaseURL  string
	Timeout          time.Duration
	UserAgent        string
	CacheSize        int
	CacheTTL         time.Duration
	DisableCache     bool
}

// NewClient creates a new Steam client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	if config.APIBaseURL == "" {
		config.APIBaseURL = DefaultAPIBaseURL
	}

	if config.CommunityBaseURL == "" {
		config.CommunityBaseURL = DefaultCommunityBaseURL
	}

	if config.ResolverBaseURL == "" {
		config.ResolverBaseURL = DefaultResolverBaseURL
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.UserAgent == "" {
		config.UserAgent = UserAgent
	}

	var cache *Cache
	if !config.DisableCache {
		cache = NewCache(config.CacheSize, config.CacheTTL)
	}

	slog.Debug("creating Steam client",
		"api_base_url", config.APIBaseURL,
		"community_base_url", config.CommunityBaseURL,
		"timeout", config.Timeout,
		"cache_enabled", !config.DisableCache)

	return &Client{
		apiBaseURL:       config.APIBaseURL,
		communityBaseURL: config.CommunityBaseURL,
		resolverBaseURL:  config.ResolverBaseURL,
		httpClient:       &http.Client{Timeout: config.Timeout},
		userAgent:        config.UserAgent,
		cache:            cache,
	}
}

// ResolveID32 resolves a normalized profile reference to a 32-bit account id.
//
// With an API key the vanity resolution endpoint is tried first; a rejected
// key surfaces as ErrKeyUnauthorized and is never papered over, any other
// API-path failure falls back to the scraper. Without a key only the scraper
// path is available.
func (c *Client) ResolveID32(ctx context.Context, reference, apiKey string) (string, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return "", fmt.Errorf("%w: empty reference", ErrInvalidReference)
	}

	if c.cache != nil {
		if entry := c.cache.Get(reference); entry != nil {
			slog.Debug("steam id cache hit", "reference", reference)
			if entry.NotFound {
				return "", ErrProfileNotFound
			}
			return entry.Value, nil
		}
	}

	id32, err := c.resolve(ctx, reference, apiKey)

	if c.cache != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			c.cache.Set(reference, CacheEntry{NotFound: true})
		case err == nil:
			c.cache.Set(reference, CacheEntry{Value: id32})
		}
	}

	return id32, err
}

func (c *Client) resolve(ctx context.Context, reference, apiKey string) (string, error) {
	if apiKey != "" {
		id32, err := c.resolveViaAPI(ctx, reference, apiKey)
		if err == nil {
			return id32, nil
		}
		if errors.Is(err, ErrKeyUnauthorized) {
			return "", err
		}
		slog.Debug("vanity API resolution failed, falling back to scraper",
			"reference", reference, "error", err)
	}

	return c.resolveViaScraper(ctx, reference)
}

// resolveViaAPI resolves through ISteamUser/ResolveVanityURL.
func (c *Client) resolveViaAPI(ctx context.Context, reference, apiKey string) (string, error) {
	endpoint := fmt.Sprintf("%s/ISteamUser/ResolveVanityURL/v0001/?key=%s&vanityurl=%s",
		c.apiBaseURL, url.QueryEscape(apiKey), url.QueryEscape(reference))

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		var vanity vanityResponse
		if err := json.NewDecoder(resp.Body).Decode(&vanity); err != nil {
			return "", fmt.Errorf("decode vanity response: %w", err)
		}

		if vanity.Response.Success != 1 {
			slog.Debug("vanity lookup unsuccessful",
				"reference", reference,
				"success", vanity.Response.Success,
				"message", vanity.Response.Message)
			return "", ErrProfileNotFound
		}

		return Steam64To32(vanity.Response.SteamID)

	case http.StatusForbidden:
		return "", ErrKeyUnauthorized

	default:
		body, _ := io.ReadAll(resp.Body)
		return "", NewAPIError(resp.StatusCode, string(body))
	}
}

var legacyIDPattern = regexp.MustCompile(`^STEAM_0:(\d+):(\d+)$`)

// resolveViaScraper resolves by scraping a third-party id lookup page for
// the legacy STEAM_0:X:Y form and recombining it (id32 = Y*2 + X).
func (c *Client) resolveViaScraper(ctx context.Context, reference string) (string, error) {
	endpoint := c.resolverBaseURL + "/" + CommunityProfileURL(reference)

	body, err := c.FetchPageBody(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPIUnavailable, err)
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse resolver page: %w", err)
	}

	legacyID := findLegacyIDInput(doc)
	matches := legacyIDPattern.FindStringSubmatch(legacyID)
	if len(matches) < 3 {
		return "", ErrProfileNotFound
	}

	universe, _ := strconv.Atoi(matches[1])
	account, _ := strconv.Atoi(matches[2])
	return strconv.Itoa(account*2 + universe), nil
}

// findLegacyIDInput walks the document for an input element whose value
// carries the legacy STEAM_ id.
func findLegacyIDInput(doc *html.Node) string {
	var value string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if value != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "input" {
			for _, attr := range n.Attr {
				if attr.Key == "value" && strings.HasPrefix(attr.Val, "STEAM_") {
					value = attr.Val
					return
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return value
}

// FetchPageBody fetches a URL and returns the raw response body.
func (c *Client) FetchPageBody(ctx context.Context, endpoint string) (string, error) {
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", NewAPIError(resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	return string(body), nil
}

// get performs a GET request with the client's standard headers.
func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	slog.Debug("steam request", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPIUnavailable, err)
	}

	return resp, nil
}

// ClearCache clears the identity resolution cache.
func (c *Client) ClearCache() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// CacheSize returns the current number of entries in the cache.
func (c *Client) CacheSize() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
