package steam

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// steam64Base is the fixed offset between the 32-bit account id and the
// 64-bit community id of the same profile.
const steam64Base uint64 = 76561197960265728

var (
	referencePattern = regexp.MustCompile(`/(id|profiles)/([A-Za-z0-9_-]+)`)
	steam64Pattern   = regexp.MustCompile(`^7\d{15}[02468]$`)
)

// ValidReference reports whether s contains only characters allowed in a
// profile reference. The TUI input filter calls this per keystroke, so a
// reference string never reaches the resolver with anything else in it.
func ValidReference(s string) bool {
	for _, ch := range s {
		isAlpha := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		isDigit := ch >= '0' && ch <= '9'

		if !isAlpha && !isDigit && ch != '/' && ch != '.' && ch != ':' {
			return false
		}
	}
	return true
}

// NormalizeReference extracts the profile token from user input.
// Full profile URLs contain "/id/<vanity>" or "/profiles/<steam64>"; the
// token is whatever follows the path kind. Anything else passes through
// trimmed, so bare vanity names and raw ids work as-is.
func NormalizeReference(s string) string {
	if m := referencePattern.FindStringSubmatch(s); len(m) >= 3 {
		return m[2]
	}
	return strings.TrimSpace(s)
}

// Steam32To64 converts a 32-bit account id to its 64-bit community form.
func Steam32To64(id32 string) (string, error) {
	id, err := strconv.ParseUint(id32, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSteamID, err)
	}
	return strconv.FormatUint(id+steam64Base, 10), nil
}

// Steam64To32 converts a 64-bit community id back to the 32-bit account id.
func Steam64To32(id64 string) (string, error) {
	id, err := strconv.ParseUint(id64, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSteamID, err)
	}
	if id < steam64Base {
		return "", fmt.Errorf("%w: %s below community id range", ErrInvalidSteamID, id64)
	}
	return strconv.FormatUint(id-steam64Base, 10), nil
}

// LooksLikeSteam64 reports whether the token is shaped like a 64-bit
// community id. Individual account ids are even in their universe bit, so
// the last digit is always even.
func LooksLikeSteam64(s string) bool {
	return steam64Pattern.MatchString(s)
}

// CommunityProfileURL builds the community URL for a profile token, choosing
// the /profiles/ path for numeric 64-bit ids and /id/ for vanity names.
func CommunityProfileURL(token string) string {
	if LooksLikeSteam64(token) {
		return "https://steamcommunity.com/profiles/" + token
	}
	return "https://steamcommunity.com/id/" + token
}
