package steam

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var backgroundImagePattern = regexp.MustCompile(`background-image:\s*url\(\s*'?(.*?)'?\s*\);?`)

// FetchMiniProfile retrieves the community mini-profile page for a 32-bit
// account id and converts its markup into a structured MiniProfile.
// Missing sections parse to zero fields rather than errors; only transport
// and decode failures are returned.
func (c *Client) FetchMiniProfile(ctx context.Context, id32 string) (*MiniProfile, error) {
	endpoint := fmt.Sprintf("%s/miniprofile/%s.html", c.communityBaseURL, id32)

	body, err := c.FetchPageBody(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch mini-profile: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse mini-profile: %w", err)
	}

	profile := parseMiniProfile(doc)

	slog.Debug("mini-profile fetched",
		"id32", id32,
		"persona", profile.Persona,
		"level", profile.Level)

	return profile, nil
}

// parseMiniProfile extracts the renderable fields from a mini-profile
// document. The markup is not a stable API, so extraction is by class
// substring and tolerates absent nodes.
func parseMiniProfile(doc *html.Node) *MiniProfile {
	profile := &MiniProfile{}

	walkNodes(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}

		class := attrValue(n, "class")

		switch {
		case n.Data == "span" && strings.Contains(class, "persona"):
			if profile.Persona == "" {
				profile.Persona = strings.TrimSpace(textContent(n))
				profile.Status = personaStatus(class)
			}

		case n.Data == "span" && strings.Contains(class, "friendPlayerLevelNum"):
			profile.Level = strings.TrimSpace(textContent(n))

		case n.Data == "span" && strings.Contains(class, "game_name"):
			if profile.Game == "" {
				profile.Game = strings.TrimSpace(textContent(n))
			}

		case n.Data == "img" && strings.Contains(attrValue(n.Parent, "class"), "playersection_avatar"):
			profile.AvatarURL = attrValue(n, "src")

		case n.Data == "div" && strings.Contains(class, "miniprofile_featuredcontainer"):
			parseBadge(n, profile)
		}

		if style := attrValue(n, "style"); style != "" && profile.BackgroundURL == "" {
			if m := backgroundImagePattern.FindStringSubmatch(style); len(m) > 1 {
				profile.BackgroundURL = strings.TrimSpace(m[1])
			}
		}

		if n.Data == "source" && attrValue(n, "type") == "video/mp4" && profile.BackgroundVideoURL == "" {
			profile.BackgroundVideoURL = attrValue(n, "src")
		}
	})

	return profile
}

// parseBadge fills badge fields from a featured-content container.
func parseBadge(container *html.Node, profile *MiniProfile) {
	walkNodes(container, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}

		class := attrValue(n, "class")

		switch {
		case n.Data == "img" && profile.BadgeIconURL == "":
			profile.BadgeIconURL = attrValue(n, "src")
		case n.Data == "div" && strings.Contains(class, "name") && profile.BadgeName == "":
			profile.BadgeName = strings.TrimSpace(textContent(n))
		case n.Data == "div" && strings.Contains(class, "description") && profile.BadgeDescription == "":
			profile.BadgeDescription = strings.TrimSpace(textContent(n))
		}
	})
}

// personaStatus maps the persona span's class list to a display status.
func personaStatus(class string) string {
	switch {
	case strings.Contains(class, "in-game"):
		return "in-game"
	case strings.Contains(class, "online"):
		return "online"
	case strings.Contains(class, "offline"):
		return "offline"
	default:
		return ""
	}
}

// walkNodes visits every node in the tree in document order.
func walkNodes(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walkNodes(child, visit)
	}
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent concatenates all text nodes below n.
func textContent(n *html.Node) string {
	var b strings.Builder
	walkNodes(n, func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
	})
	return b.String()
}
