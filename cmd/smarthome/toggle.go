package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angristan/smarthome-tui/internal/catalog"
)

func newToggleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>...",
		Short: "Flip the power of one or more devices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, true)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, id := range args {
				if err := s.home.Toggle(id); err != nil {
					return err
				}
				d, _ := catalog.Find(s.home.Devices(), id)
				s.log.Info("Toggled device", "id", id, "power", d.State.Power)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, powerLabel(d.State.Power))
			}
			return nil
		},
	}
}

func newAllCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "all on|off",
		Short:     "Turn every device on or off",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, true)
			if err != nil {
				return err
			}
			defer s.Close()

			if args[0] == "on" {
				s.home.AllOn()
			} else {
				s.home.AllOff()
			}

			sum := catalog.Summarize(s.home.Devices())
			s.log.Info("Switched all devices", "power", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d devices on\n", sum.DevicesOn, sum.Devices)
			return nil
		},
	}
}
