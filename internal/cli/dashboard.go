package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/levosilimo/steamlens/internal/settings"
	"github.com/levosilimo/steamlens/internal/steam"
	"github.com/levosilimo/steamlens/internal/tui"
)

// NewDashboardCommand creates the dashboard command
func NewDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive profile inspection dashboard",
		Long: `Launch the interactive dashboard: type a profile reference, press enter to
inspect it, and browse the equipped items with their market listings.

Auto mode re-inspects automatically shortly after you stop typing.

Keyboard shortcuts:
  enter       Inspect the current reference
  ctrl+a / a  Toggle auto mode
  tab         Switch focus between input and item list
  ↑/k ↓/j     Move item selection
  o           Open the selected item's market listing
  p           Open the selected item's points shop page
  q/Ctrl+C    Quit`,
		Example: `  # Launch the dashboard
  steamlens dashboard

  # Alternative using alias
  steamlens top`,
		Aliases: []string{"top", "ui"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context())
		},
	}

	return cmd
}

// runDashboard executes the dashboard command
func runDashboard(ctx context.Context) error {
	store, err := settings.NewStore()
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}

	userSettings, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	client := steam.NewClient(nil)
	model := tui.NewModel(ctx, client, store, userSettings, viper.GetString("language"))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	return nil
}
