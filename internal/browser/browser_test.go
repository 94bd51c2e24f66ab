package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/levosilimo/steamlens/internal/settings"
)

func TestResolveTarget(t *testing.T) {
	const url = "https://steamcommunity.com/market/listings/753/3260-Cascading%20Neon"

	tests := []struct {
		name         string
		policy       int
		wantTarget   string
		wantFallback string
	}{
		{
			name:         "plain policy opens the URL directly",
			policy:       settings.OpenLinksPlain,
			wantTarget:   url,
			wantFallback: "",
		},
		{
			name:         "steam policy always routes through the protocol handler",
			policy:       settings.OpenLinksSteam,
			wantTarget:   steamProtocolPrefix + url,
			wantFallback: "",
		},
		{
			name:         "hybrid policy prefers the handler with a plain fallback",
			policy:       settings.OpenLinksHybrid,
			wantTarget:   steamProtocolPrefix + url,
			wantFallback: url,
		},
		{
			name:         "unknown policy behaves like hybrid",
			policy:       99,
			wantTarget:   steamProtocolPrefix + url,
			wantFallback: url,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, fallback := resolveTarget(url, tt.policy)

			assert.Equal(t, tt.wantTarget, target)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}
