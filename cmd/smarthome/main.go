package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/angristan/smarthome-tui/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions are the flags shared by every command
type rootOptions struct {
	configPath string
	backend    string
	dataPath   string
	ephemeral  bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "smarthome",
		Short:         "Control simulated smart-home devices from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Configuration file (default $XDG_CONFIG_HOME/smarthome/config.yaml)")
	flags.StringVar(&opts.backend, "backend", "", "Storage backend: file, sqlite or memory")
	flags.StringVar(&opts.dataPath, "data", "", "Data directory (file) or database path (sqlite)")
	flags.BoolVar(&opts.ephemeral, "ephemeral", false, "Keep state in memory only")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	cmd.AddCommand(
		newListCmd(opts),
		newToggleCmd(opts),
		newAllCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

func runDashboard(opts *rootOptions) error {
	s, err := openSession(opts, false)
	if err != nil {
		return err
	}
	defer s.Close()

	s.log.Info("Starting dashboard", "backend", s.cfg.Storage.Backend, "path", s.cfg.Storage.Path)

	p := tea.NewProgram(
		tui.NewModel(s.home, s.log),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
