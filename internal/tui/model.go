package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/levosilimo/steamlens/internal/browser"
	"github.com/levosilimo/steamlens/internal/settings"
	"github.com/levosilimo/steamlens/internal/steam"
)

// debounceWindow is the quiescence delay after the last input change before
// an auto-mode inspection fires.
const debounceWindow = 300 * time.Millisecond

// errorDisplayTime is how long error messages stay visible.
const errorDisplayTime = 3 * time.Second

// Inspector is the slice of the Steam client the dashboard depends on.
type Inspector interface {
	ResolveID32(ctx context.Context, reference, apiKey string) (string, error)
	FetchMiniProfile(ctx context.Context, id32 string) (*steam.MiniProfile, error)
	FetchEquippedItems(ctx context.Context, id64, language string) ([]steam.EquippedItem, error)
	AttachMarketURIs(ctx context.Context, items []steam.EquippedItem) []steam.EquippedItem
	FetchMarketPrice(ctx context.Context, item steam.EquippedItem, currency int) (string, error)
}

// SettingsSaver persists settings mutations made from the dashboard.
type SettingsSaver interface {
	Save(settings.Settings) error
}

// focus identifies which pane receives key input.
type focus int

const (
	focusInput focus = iota
	focusItems
)

// Model is the bubbletea model for the inspection dashboard. It owns the
// whole view-model: the resolved id, the item list, the mini-profile and
// the independent loading flags.
type Model struct {
	client   Inspector
	store    SettingsSaver
	settings settings.Settings
	language string

	input   textinput.Model
	spinner spinner.Model
	focus   focus

	auto           bool
	loadingProfile bool
	loadingItems   bool

	id32        string
	items       []steam.EquippedItem
	miniProfile *steam.MiniProfile
	selectedIdx int

	// generation numbers the current inspection cycle; completions from
	// older cycles are dropped instead of touching the view-model.
	generation int

	// debounceSeq invalidates pending debounce timers: only the timer
	// carrying the latest sequence may trigger a cycle.
	debounceSeq int

	err       error
	errorTime time.Time

	openLink func(url string, policy int) error

	width    int
	height   int
	ctx      context.Context
	quitting bool
}

// NewModel creates a new dashboard model.
func NewModel(ctx context.Context, client Inspector, store SettingsSaver, userSettings settings.Settings, language string) *Model {
	input := textinput.New()
	input.Placeholder = "vanity name, id or profile URL"
	input.Prompt = "profile> "
	input.CharLimit = 128
	input.Validate = func(s string) error {
		if !steam.ValidReference(s) {
			return fmt.Errorf("character not allowed in a profile reference")
		}
		return nil
	}
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		client:   client,
		store:    store,
		settings: userSettings,
		language: language,
		input:    input,
		spinner:  spin,
		openLink: browser.OpenLink,
		ctx:      ctx,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// resolveCmd returns a command that resolves a profile reference.
func resolveCmd(ctx context.Context, client Inspector, gen int, reference, apiKey string, retried bool) tea.Cmd {
	return func() tea.Msg {
		id32, err := client.ResolveID32(ctx, reference, apiKey)
		return identityResolvedMsg{
			gen:       gen,
			reference: reference,
			id32:      id32,
			retried:   retried,
			err:       err,
		}
	}
}

// fetchMiniProfileCmd returns a command that fetches the mini-profile.
func fetchMiniProfileCmd(ctx context.Context, client Inspector, gen int, id32 string) tea.Cmd {
	return func() tea.Msg {
		profile, err := client.FetchMiniProfile(ctx, id32)
		return miniProfileMsg{gen: gen, profile: profile, err: err}
	}
}

// fetchItemsCmd returns a command that fetches the equipped items.
func fetchItemsCmd(ctx context.Context, client Inspector, gen int, id64, language string) tea.Cmd {
	return func() tea.Msg {
		items, err := client.FetchEquippedItems(ctx, id64, language)
		return itemsLoadedMsg{gen: gen, items: items, err: err}
	}
}

// enrichCmd returns a command that attaches market URIs to the items.
func enrichCmd(ctx context.Context, client Inspector, gen int, items []steam.EquippedItem) tea.Cmd {
	return func() tea.Msg {
		enriched := client.AttachMarketURIs(ctx, items)
		return itemsEnrichedMsg{gen: gen, items: enriched}
	}
}

// priceCmd returns a command that fetches one item's market price.
func priceCmd(ctx context.Context, client Inspector, gen int, item steam.EquippedItem, currency int) tea.Cmd {
	return func() tea.Msg {
		price, err := client.FetchMarketPrice(ctx, item, currency)
		return priceMsg{gen: gen, marketID: item.ItemMarketID, price: price, err: err}
	}
}

// debounceCmd returns a command that fires after the debounce window.
func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(debounceWindow, func(time.Time) tea.Msg {
		return debounceFiredMsg{seq: seq}
	})
}

// saveSettingsCmd returns a command that persists the settings.
func saveSettingsCmd(store SettingsSaver, s settings.Settings) tea.Cmd {
	return func() tea.Msg {
		return settingsSavedMsg{err: store.Save(s)}
	}
}

// openLinkCmd returns a command that opens an external link.
func (m Model) openLinkCmd(url string) tea.Cmd {
	open := m.openLink
	policy := m.settings.OpenLinksInSteam
	return func() tea.Msg {
		return linkOpenedMsg{err: open(url, policy)}
	}
}

// clearErrorCmd returns a command that clears the error message after a delay.
func clearErrorCmd() tea.Cmd {
	return tea.Tick(errorDisplayTime, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
