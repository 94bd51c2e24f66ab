package tui

import "github.com/levosilimo/steamlens/internal/steam"

// Completion messages carry the generation of the inspection cycle that
// issued them, so results of a superseded cycle can be discarded.

// identityResolvedMsg is sent when identity resolution completes.
type identityResolvedMsg struct {
	gen       int
	reference string
	id32      string
	retried   bool // true if this was the credential-less replay
	err       error
}

// miniProfileMsg is sent when the mini-profile fetch completes.
type miniProfileMsg struct {
	gen     int
	profile *steam.MiniProfile
	err     error
}

// itemsLoadedMsg is sent when the equipped items fetch completes.
type itemsLoadedMsg struct {
	gen   int
	items []steam.EquippedItem
	err   error
}

// itemsEnrichedMsg is sent when market enrichment completes.
type itemsEnrichedMsg struct {
	gen   int
	items []steam.EquippedItem
}

// priceMsg is sent when a single item's price lookup completes.
type priceMsg struct {
	gen      int
	marketID int
	price    string
	err      error
}

// debounceFiredMsg is sent when an auto-mode debounce window elapses.
type debounceFiredMsg struct {
	seq int
}

// settingsSavedMsg is sent when a settings write completes.
type settingsSavedMsg struct {
	err error
}

// linkOpenedMsg is sent when an external link launch completes.
type linkOpenedMsg struct {
	err error
}

// clearErrorMsg is sent to clear the error message.
type clearErrorMsg struct{}
