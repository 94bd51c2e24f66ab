package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/levosilimo/steamlens/internal/steam"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case identityResolvedMsg:
		return m.handleIdentityResolved(msg)

	case miniProfileMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.loadingProfile = false
		if msg.err != nil {
			// Non-fatal: the item branch continues regardless.
			slog.Warn("mini-profile fetch failed", "error", msg.err)
			return m, nil
		}
		m.miniProfile = msg.profile
		return m, nil

	case itemsLoadedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		if msg.err != nil {
			m.loadingItems = false
			m.items = nil
			slog.Warn("equipped items fetch failed", "error", msg.err)
			return m, nil
		}
		m.items = msg.items
		m.clampSelection()
		// Items stay in loading state until enrichment settles.
		return m, enrichCmd(m.ctx, m.client, msg.gen, msg.items)

	case itemsEnrichedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.loadingItems = false
		m.items = msg.items
		m.clampSelection()
		cmd := m.dispatchPriceLookups(msg.gen)
		return m, cmd

	case priceMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.applyPrice(msg)
		return m, nil

	case debounceFiredMsg:
		// Only the latest timer for the latest input state may fire, and
		// only while auto mode is still on.
		if !m.auto || msg.seq != m.debounceSeq {
			return m, nil
		}
		return m.startInspection()

	case settingsSavedMsg:
		if msg.err != nil {
			return m.reportError(fmt.Errorf("save settings: %w", msg.err))
		}
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			return m.reportError(fmt.Errorf("open link: %w", msg.err))
		}
		return m, nil

	case clearErrorMsg:
		if time.Since(m.errorTime) >= errorDisplayTime {
			m.err = nil
		}
		return m, nil
	}

	return m, nil
}

// handleIdentityResolved applies the resolution result: the auth-failure
// replay, terminal failure, or fan-out into the two fetch branches.
func (m Model) handleIdentityResolved(msg identityResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.generation {
		return m, nil
	}

	if msg.err != nil {
		if errors.Is(msg.err, steam.ErrKeyUnauthorized) && !msg.retried {
			// The stored key was rejected upstream: drop it, persist the
			// removal and replay the resolution without it, exactly once.
			slog.Warn("api key rejected, retrying without credential")
			m.settings.APIKey = ""
			return m, tea.Batch(
				saveSettingsCmd(m.store, m.settings),
				resolveCmd(m.ctx, m.client, msg.gen, msg.reference, "", true),
			)
		}

		m.loadingProfile = false
		m.loadingItems = false
		slog.Error("identity resolution failed", "reference", msg.reference, "error", msg.err)
		return m.reportError(fmt.Errorf("resolve %q: %w", msg.reference, msg.err))
	}

	m.id32 = msg.id32

	id64, err := steam.Steam32To64(msg.id32)
	if err != nil {
		m.loadingProfile = false
		m.loadingItems = false
		return m.reportError(fmt.Errorf("resolve %q: %w", msg.reference, err))
	}

	// Both branches run concurrently from here; each clears only its own
	// loading flag.
	return m, tea.Batch(
		fetchMiniProfileCmd(m.ctx, m.client, msg.gen, msg.id32),
		fetchItemsCmd(m.ctx, m.client, msg.gen, id64, m.language),
	)
}

// startInspection begins a new inspection cycle for the current input.
func (m Model) startInspection() (tea.Model, tea.Cmd) {
	reference := steam.NormalizeReference(m.input.Value())
	if reference == "" {
		return m, nil
	}

	m.generation++
	m.loadingProfile = true
	m.loadingItems = true
	m.id32 = ""
	m.miniProfile = nil
	m.items = nil
	m.selectedIdx = 0

	slog.Debug("inspection cycle started", "generation", m.generation, "reference", reference)

	return m, tea.Batch(
		resolveCmd(m.ctx, m.client, m.generation, reference, m.settings.APIKey, false),
		m.spinner.Tick,
	)
}

// dispatchPriceLookups marks every item with a market id as price-loading
// and issues one independent lookup per item.
func (m *Model) dispatchPriceLookups(gen int) tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.items {
		if m.items[i].ItemMarketID == 0 {
			continue
		}
		m.items[i].PriceStatus = steam.PriceLoading
		cmds = append(cmds, priceCmd(m.ctx, m.client, gen, m.items[i], m.settings.SteamCurrency))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// applyPrice applies one completed price lookup to the matching item.
func (m *Model) applyPrice(msg priceMsg) {
	for i := range m.items {
		if m.items[i].ItemMarketID != msg.marketID {
			continue
		}
		if msg.err != nil {
			m.items[i].PriceStatus = steam.PriceFailed
			slog.Debug("price lookup failed", "item", m.items[i].ItemName, "error", msg.err)
			return
		}
		m.items[i].ItemMarketPrice = msg.price
		m.items[i].PriceStatus = steam.PriceLoaded
		return
	}
}

// handleKeyPress handles keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+a":
		return m.toggleAuto()

	case "tab":
		if m.focus == focusInput {
			m.focus = focusItems
			m.input.Blur()
		} else {
			m.focus = focusInput
			m.input.Focus()
		}
		return m, nil

	case "enter":
		// Serializes user-initiated cycles; auto-triggered cycles are not
		// guarded against and may race (the generation check keeps the
		// view-model consistent).
		if m.loadingProfile {
			return m, nil
		}
		return m.startInspection()
	}

	if m.focus == focusItems {
		return m.handleItemsKey(msg)
	}

	return m.handleInputKey(msg)
}

// handleInputKey forwards a key to the text input and schedules a debounce
// trigger when auto mode is on and the value changed.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.auto && m.input.Value() != before {
		m.debounceSeq++
		return m, tea.Batch(cmd, debounceCmd(m.debounceSeq))
	}

	return m, cmd
}

// handleItemsKey handles navigation and link actions on the item list.
func (m Model) handleItemsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "a":
		return m.toggleAuto()

	case "up", "k":
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case "down", "j":
		if m.selectedIdx < len(m.items)-1 {
			m.selectedIdx++
		}
		return m, nil

	case "o":
		// Market page, only when enrichment resolved a listing.
		if item, ok := m.selectedItem(); ok && item.ItemMarketURI != "" {
			return m, m.openLinkCmd(item.ItemMarketURI)
		}
		return m, nil

	case "p":
		// Points shop page, gated on the definition being active.
		if item, ok := m.selectedItem(); ok && item.IsActiveDefinition {
			return m, m.openLinkCmd(item.ItemPointsURI)
		}
		return m, nil
	}

	return m, nil
}

// toggleAuto flips auto mode. Turning it on schedules a trigger for the
// current input; turning it off invalidates any pending debounce timer.
func (m Model) toggleAuto() (tea.Model, tea.Cmd) {
	m.auto = !m.auto
	m.debounceSeq++

	if m.auto {
		return m, debounceCmd(m.debounceSeq)
	}
	return m, nil
}

// reportError surfaces an error in the footer and schedules its removal.
func (m Model) reportError(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.errorTime = time.Now()
	return m, clearErrorCmd()
}

func (m Model) anyLoading() bool {
	if m.loadingProfile || m.loadingItems {
		return true
	}
	for _, item := range m.items {
		if item.PriceStatus == steam.PriceLoading {
			return true
		}
	}
	return false
}

func (m Model) selectedItem() (steam.EquippedItem, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.items) {
		return steam.EquippedItem{}, false
	}
	return m.items[m.selectedIdx], true
}

func (m *Model) clampSelection() {
	if len(m.items) == 0 {
		m.selectedIdx = 0
	} else if m.selectedIdx >= len(m.items) {
		m.selectedIdx = len(m.items) - 1
	}
}
