package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"vanity name", "Levosilimo", true},
		{"numeric id", "76561198083722517", true},
		{"full url", "https://steamcommunity.com/id/Levosilimo", true},
		{"space", "some name", false},
		{"underscore", "some_name", false},
		{"query string", "profile?tab=items", false},
		{"unicode", "профиль", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidReference(tt.input))
		})
	}
}

func TestNormalizeReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "vanity url",
			input: "https://steamcommunity.com/id/Levosilimo",
			want:  "Levosilimo",
		},
		{
			name:  "profiles url",
			input: "https://steamcommunity.com/profiles/76561198083722517",
			want:  "76561198083722517",
		},
		{
			name:  "vanity url with trailing path",
			input: "https://steamcommunity.com/id/Levosilimo/badges",
			want:  "Levosilimo",
		},
		{
			name:  "bare vanity name passes through",
			input: "Levosilimo",
			want:  "Levosilimo",
		},
		{
			name:  "bare numeric id passes through",
			input: "76561198083722517",
			want:  "76561198083722517",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  Levosilimo  ",
			want:  "Levosilimo",
		},
		{
			name:  "path without id or profiles kind passes through",
			input: "steamcommunity.com/groups/something",
			want:  "steamcommunity.com/groups/something",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeReference(tt.input))
		})
	}
}

func TestSteam32To64(t *testing.T) {
	// 123456789 + 76561197960265728 = 76561198083722517, which is also
	// "765" + (123456789 + 61197960265728).
	id64, err := Steam32To64("123456789")
	require.NoError(t, err)
	assert.Equal(t, "76561198083722517", id64)

	_, err = Steam32To64("not-a-number")
	assert.ErrorIs(t, err, ErrInvalidSteamID)
}

func TestSteam64To32(t *testing.T) {
	id32, err := Steam64To32("76561198083722517")
	require.NoError(t, err)
	assert.Equal(t, "123456789", id32)

	_, err = Steam64To32("123")
	assert.ErrorIs(t, err, ErrInvalidSteamID)

	_, err = Steam64To32("garbage")
	assert.ErrorIs(t, err, ErrInvalidSteamID)
}

func TestSteamIDRoundTrip(t *testing.T) {
	for _, id32 := range []string{"1", "123456789", "4294967295"} {
		id64, err := Steam32To64(id32)
		require.NoError(t, err)

		back, err := Steam64To32(id64)
		require.NoError(t, err)
		assert.Equal(t, id32, back)
	}
}

func TestLooksLikeSteam64(t *testing.T) {
	assert.True(t, LooksLikeSteam64("76561197960265728"))
	assert.True(t, LooksLikeSteam64("76561198083722516"))
	assert.False(t, LooksLikeSteam64("123456789"))
	// The heuristic only accepts an even last digit; odd ids fall through
	// to the vanity path exactly like the upstream shape check.
	assert.False(t, LooksLikeSteam64("76561198083722517"))
	assert.False(t, LooksLikeSteam64("Levosilimo"))
}

func TestCommunityProfileURL(t *testing.T) {
	assert.Equal(t,
		"https://steamcommunity.com/profiles/76561198083722516",
		CommunityProfileURL("76561198083722516"))
	assert.Equal(t,
		"https://steamcommunity.com/id/Levosilimo",
		CommunityProfileURL("Levosilimo"))
}
